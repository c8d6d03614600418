package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// current is the client state built before every command runs.
var current *app

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := execute(ctx); err != nil {
		os.Exit(1)
	}
}

// execute runs the root command and closes the client state afterwards,
// whether or not the command failed, so metrics are flushed and spans exported.
func execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if current != nil {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if cerr := current.close(closeCtx); cerr != nil {
			err = errors.Join(err, cerr)
		}
		current = nil
	}
	return err
}

var rootCmd = &cobra.Command{
	Use:           "shipit",
	Short:         "Shipit parcel API client - rates, labels, tracking and account data",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("log-format")
		a, err := setup(cmd.Context(), format)
		if err != nil {
			return err
		}
		current = a
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-format", "json", "log encoding: json or console")

	rootCmd.AddCommand(
		methodsCmd(),
		agentsCmd(),
		shipmentsCmd(),
		trackCmd(),
		postalCmd(),
		balanceCmd(),
		userCmd(),
	)
}

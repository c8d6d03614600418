package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tournevent/shipit/pkg/shipit"
)

func methodsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "methods", Short: "Shipping methods and prices"}

	var file string
	get := &cobra.Command{
		Use:   "get",
		Short: "Price the parcels of a shipping-methods request",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req shipit.ShippingMethodsRequest
			if err := readJSON(cmd, file, &req); err != nil {
				return err
			}
			resp, err := current.connector.ShippingMethods().Get(cmd.Context(), &req)
			return printJSON(cmd, resp, err)
		},
	}
	get.Flags().StringVarP(&file, "file", "f", "-", "request JSON file, - for stdin")

	cmd.AddCommand(
		get,
		&cobra.Command{
			Use:   "list",
			Short: "List every method available to the account",
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := current.connector.ShippingMethods().List(cmd.Context())
				return printJSON(cmd, resp, err)
			},
		},
		&cobra.Command{
			Use:   "details <serviceId>",
			Short: "Show the localized descriptions of a method",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := current.connector.ShippingMethods().Details(cmd.Context(), args[0])
				return printJSON(cmd, resp, err)
			},
		},
	)
	return cmd
}

func agentsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "agents", Short: "Pickup points"}

	var params []string
	search := &cobra.Command{
		Use:   "search",
		Short: "Search pickup points",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseParams(params)
			if err != nil {
				return err
			}
			body := make(map[string]any, len(filter))
			for k := range filter {
				body[k] = filter.Get(k)
			}
			resp, err := current.connector.Agents().Get(cmd.Context(), body)
			return printJSON(cmd, resp, err)
		},
	}
	search.Flags().StringArrayVarP(&params, "param", "p", nil, "filter as key=value, repeatable")

	cmd.AddCommand(
		search,
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show one pickup point",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := current.connector.Agents().GetByID(cmd.Context(), args[0])
				return printJSON(cmd, resp, err)
			},
		},
	)
	return cmd
}

func shipmentsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "shipments", Short: "Validate and book shipments"}

	type action func(r *shipit.ShipmentsResource, cmd *cobra.Command, req *shipit.ShipmentRequest) (any, error)
	sub := func(use, short string, run action) *cobra.Command {
		var file string
		c := &cobra.Command{
			Use:   use,
			Short: short,
			RunE: func(cmd *cobra.Command, args []string) error {
				var req shipit.ShipmentRequest
				if err := readJSON(cmd, file, &req); err != nil {
					return err
				}
				resp, err := run(current.connector.Shipments(), cmd, &req)
				return printJSON(cmd, resp, err)
			},
		}
		c.Flags().StringVarP(&file, "file", "f", "-", "shipment JSON file, - for stdin")
		return c
	}

	cmd.AddCommand(
		sub("validate", "Check a shipment without booking it",
			func(r *shipit.ShipmentsResource, cmd *cobra.Command, req *shipit.ShipmentRequest) (any, error) {
				return r.Validate(cmd.Context(), req)
			}),
		sub("create", "Book a shipment and print its labels",
			func(r *shipit.ShipmentsResource, cmd *cobra.Command, req *shipit.ShipmentRequest) (any, error) {
				return r.Create(cmd.Context(), req)
			}),
		sub("pending", "Store a shipment for later booking",
			func(r *shipit.ShipmentsResource, cmd *cobra.Command, req *shipit.ShipmentRequest) (any, error) {
				return r.CreatePending(cmd.Context(), req)
			}),
		sub("return", "Book a customer return",
			func(r *shipit.ShipmentsResource, cmd *cobra.Command, req *shipit.ShipmentRequest) (any, error) {
				return r.BookReturn(cmd.Context(), req)
			}),
	)
	return cmd
}

func trackCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "track", Short: "Tracking links and events"}

	var file string
	query := &cobra.Command{
		Use:   "query",
		Short: "Query tracking events",
		RunE: func(cmd *cobra.Command, args []string) error {
			var body map[string]any
			if err := readJSON(cmd, file, &body); err != nil {
				return err
			}
			resp, err := current.connector.Tracking().Query(cmd.Context(), body)
			return printJSON(cmd, resp, err)
		},
	}
	query.Flags().StringVarP(&file, "file", "f", "-", "query JSON file, - for stdin")

	cmd.AddCommand(
		query,
		&cobra.Command{
			Use:   "link <trackingNumber>...",
			Short: "Print the public tracking links of one or more shipments",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := current.connector.Tracking().Links(cmd.Context(), args...)
				return printJSON(cmd, resp, err)
			},
		},
	)
	return cmd
}

func postalCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "postal", Short: "Postal code lookups"}

	var params []string
	suggest := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest postal codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseParams(params)
			if err != nil {
				return err
			}
			resp, err := current.connector.PostalCodes().Suggestions(cmd.Context(), q)
			return printJSON(cmd, resp, err)
		},
	}
	suggest.Flags().StringArrayVarP(&params, "param", "p", nil, "query parameter as key=value, repeatable")

	var country, postcode, city string
	match := &cobra.Command{
		Use:   "match",
		Short: "Find the postal code matching a country and code or city",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := &shipit.PostalCodeQuery{Country: strings.ToUpper(country)}
			if postcode != "" {
				q.PostalCode = shipit.Some(postcode)
			}
			if city != "" {
				q.City = shipit.Some(city)
			}
			resp, err := current.connector.PostalCodes().Match(cmd.Context(), q)
			return printJSON(cmd, resp, err)
		},
	}
	match.Flags().StringVar(&country, "country", "FI", "two-letter country code")
	match.Flags().StringVar(&postcode, "postcode", "", "postal code")
	match.Flags().StringVar(&city, "city", "", "city")

	cmd.AddCommand(
		suggest,
		match,
		&cobra.Command{
			Use:   "countries",
			Short: "List supported countries",
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := current.connector.PostalCodes().CountryInfo(cmd.Context())
				return printJSON(cmd, resp, err)
			},
		},
	)
	return cmd
}

func balanceCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "balance", Short: "Account balance and invoicing"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "carriers",
			Short: "Balance per carrier",
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := current.connector.Balance().Carriers(cmd.Context())
				return printJSON(cmd, resp, err)
			},
		},
		&cobra.Command{
			Use:   "reports",
			Short: "Carrier reports",
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := current.connector.Balance().CarrierReports(cmd.Context())
				return printJSON(cmd, resp, err)
			},
		},
		&cobra.Command{
			Use:   "invoice <invoice>",
			Short: "Show one invoice",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := current.connector.Balance().Invoice(cmd.Context(), args[0])
				return printJSON(cmd, resp, err)
			},
		},
	)
	return cmd
}

func userCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "user", Short: "The authenticated user"}
	cmd.AddCommand(&cobra.Command{
		Use:   "me",
		Short: "Show the user owning the API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := current.connector.User().Current(cmd.Context())
			return printJSON(cmd, resp, err)
		},
	})
	return cmd
}

func readJSON(cmd *cobra.Command, path string, v any) error {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func parseParams(params []string) (url.Values, error) {
	q := url.Values{}
	for _, p := range params {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("parameter %q is not key=value", p)
		}
		q.Add(key, value)
	}
	return q, nil
}

func printJSON(cmd *cobra.Command, v any, err error) error {
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

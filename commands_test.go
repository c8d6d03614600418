package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/shipit/pkg/shipit/mock"
)

func runCLI(t *testing.T, srv *mock.Server, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SHIPIT_API_TOKEN", "cli-token")
	t.Setenv("SHIPIT_BASE_URL", srv.URL())
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() { current = nil })

	err := execute(context.Background())
	return out.String(), err
}

func TestCLI_UserMe(t *testing.T) {
	srv := mock.NewServer()
	defer srv.Close()

	out, err := runCLI(t, srv, "", "user", "me")
	require.NoError(t, err)

	var user map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &user))
	assert.Equal(t, "mock@example.com", user["email"])

	call, ok := srv.LastCall()
	require.True(t, ok)
	assert.Equal(t, "Bearer cli-token", call.Header.Get("Authorization"))
	assert.Equal(t, "shipit-cli/0.1.0", call.Header.Get("User-Agent"))
}

func TestCLI_TrackLinks(t *testing.T) {
	srv := mock.NewServer()
	defer srv.Close()

	out, err := runCLI(t, srv, "", "track", "link", "JJFI1", "JJFI2")
	require.NoError(t, err)

	var links []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &links))
	require.Len(t, links, 2)
	assert.Equal(t, "JJFI1", links[0]["trackingNumber"])
	assert.Equal(t, "JJFI2", links[1]["trackingNumber"])
}

func TestCLI_ValidateFromStdinWritesMetrics(t *testing.T) {
	srv := mock.NewServer()
	defer srv.Close()

	metricsFile := filepath.Join(t.TempDir(), "shipit.prom")
	t.Setenv("METRICS_TEXTFILE", metricsFile)

	shipment := `{
		"sender": {"name":"A","email":"a@b","phone":"1","address":"x","city":"Helsinki","postcode":"00100","country":"FI"},
		"receiver": {"name":"B","email":"b@c","phone":"2","address":"z","city":"Stockholm","postcode":"11122","country":"SE"},
		"parcels": [{"length":10,"width":10,"height":10,"weight":1}],
		"serviceId": "POSTI.2103"
	}`
	out, err := runCLI(t, srv, shipment, "shipments", "validate", "-f", "-")
	require.NoError(t, err)
	assert.Contains(t, out, `"valid": true`)

	metrics, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `shipit_requests_total{operation="ValidateShipment",status="200"} 1`)
}

func TestCLI_FailedCommandStillWritesMetrics(t *testing.T) {
	srv := mock.NewServer()
	defer srv.Close()
	srv.SimulateErrors(true)

	metricsFile := filepath.Join(t.TempDir(), "shipit.prom")
	t.Setenv("METRICS_TEXTFILE", metricsFile)

	_, err := runCLI(t, srv, "", "user", "me")
	require.Error(t, err)
	assert.Nil(t, current)

	metrics, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "shipit_errors_total")
	assert.Contains(t, string(metrics), `error_type="http"`)
}

func TestCLI_MissingToken(t *testing.T) {
	srv := mock.NewServer()
	defer srv.Close()

	t.Setenv("SHIPIT_API_TOKEN", "")
	rootCmd.SetArgs([]string{"user", "me"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	err := execute(context.Background())
	assert.ErrorContains(t, err, "SHIPIT_API_TOKEN")
	assert.Empty(t, srv.Calls())
}

func TestParseParams(t *testing.T) {
	q, err := parseParams([]string{"country=FI", "postalCode=00100", "tag=a", "tag=b=c"})
	require.NoError(t, err)
	assert.Equal(t, "FI", q.Get("country"))
	assert.Equal(t, []string{"a", "b=c"}, q["tag"])

	_, err = parseParams([]string{"novalue"})
	assert.Error(t, err)

	_, err = parseParams([]string{"=x"})
	assert.Error(t, err)
}

func TestReadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "body.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"country":"FI"}`), 0o600))

	cmd := &cobra.Command{}
	var body map[string]string
	require.NoError(t, readJSON(cmd, path, &body))
	assert.Equal(t, "FI", body["country"])

	cmd.SetIn(strings.NewReader(`not json`))
	assert.Error(t, readJSON(cmd, "-", &body))

	assert.Error(t, readJSON(cmd, filepath.Join(t.TempDir(), "missing.json"), &body))
}

package shipit_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/shipit/pkg/shipit"
	"github.com/tournevent/shipit/pkg/shipit/mock"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// capturingDoer records requests and answers every one of them with the
// same canned response.
type capturingDoer struct {
	status int
	body   string
	err    error

	mu       sync.Mutex
	requests []*http.Request
}

func (d *capturingDoer) Do(req *http.Request) (*http.Response, error) {
	d.mu.Lock()
	d.requests = append(d.requests, req)
	d.mu.Unlock()

	if d.err != nil {
		return nil, d.err
	}
	return &http.Response{
		StatusCode: d.status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(d.body)),
		Request:    req,
	}, nil
}

func (d *capturingDoer) last(t *testing.T) *http.Request {
	t.Helper()
	d.mu.Lock()
	defer d.mu.Unlock()
	require.NotEmpty(t, d.requests, "no request was sent")
	return d.requests[len(d.requests)-1]
}

type recordingObserver struct {
	mu     sync.Mutex
	ops    []string
	status []int
	errs   []error
}

func (o *recordingObserver) ObserveRequest(op string, status int, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ops = append(o.ops, op)
	o.status = append(o.status, status)
	o.errs = append(o.errs, err)
}

func newTestConnector(t *testing.T, doer shipit.HTTPDoer) *shipit.Connector {
	t.Helper()
	c, err := shipit.New(shipit.Config{
		Token:      "test-token",
		HTTPClient: doer,
		Logger:     otelzap.New(zap.NewNop()),
	})
	require.NoError(t, err)
	return c
}

const trackingLinkBody = `{"trackingUrl":"https://t.example/JJFI1","trackingNumber":"JJFI1"}`

func TestNew_EnvironmentHosts(t *testing.T) {
	tests := []struct {
		env  shipit.Environment
		want string
	}{
		{env: "", want: "https://apitest.shipit.ax"},
		{env: shipit.EnvTest, want: "https://apitest.shipit.ax"},
		{env: shipit.EnvLive, want: "https://api.shipit.ax"},
		{env: shipit.EnvProduction, want: "https://api.shipit.fi"},
	}

	for _, tt := range tests {
		t.Run(string(tt.env), func(t *testing.T) {
			doer := &capturingDoer{status: http.StatusOK, body: trackingLinkBody}
			c, err := shipit.New(shipit.Config{Token: "tok", Environment: tt.env, HTTPClient: doer})
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.BaseURL())

			_, err = c.Tracking().Link(context.Background(), "JJFI1")
			require.NoError(t, err)
			assert.Equal(t, tt.want+"/v1/tracking-link/JJFI1", doer.last(t).URL.String())
		})
	}
}

func TestNew_UnknownEnvironment(t *testing.T) {
	_, err := shipit.New(shipit.Config{Environment: "staging"})
	assert.Error(t, err)
}

func TestNew_BaseURLOverride(t *testing.T) {
	c, err := shipit.New(shipit.Config{Environment: shipit.EnvProduction, BaseURL: "https://proxy.example.com/shipit/"})
	require.NoError(t, err)
	assert.Equal(t, "https://proxy.example.com/shipit", c.BaseURL())

	_, err = shipit.New(shipit.Config{BaseURL: "not a url"})
	assert.Error(t, err)
}

func TestFactories(t *testing.T) {
	assert.Equal(t, shipit.ProductionURL, shipit.ForProduction("t").BaseURL())
	assert.Equal(t, shipit.TestURL, shipit.ForTesting("t").BaseURL())
	assert.Equal(t, shipit.LiveURL, shipit.Live("t").BaseURL())
	assert.Equal(t, shipit.TestURL, shipit.Test("t").BaseURL())
}

func TestConnector_DefaultHeaders(t *testing.T) {
	doer := &capturingDoer{status: http.StatusOK, body: trackingLinkBody}
	c := newTestConnector(t, doer)

	_, err := c.Tracking().Link(context.Background(), "JJFI1")
	require.NoError(t, err)

	req := doer.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "Bearer test-token", req.Header.Get("Authorization"))
	assert.NotEmpty(t, req.Header.Get("User-Agent"))
	assert.Len(t, req.Header.Get("X-Request-ID"), 36)
}

func TestConnector_NotFoundIsHTTPError(t *testing.T) {
	doer := &capturingDoer{status: http.StatusNotFound, body: `{"code":404,"message":"Not Found"}`}
	c := newTestConnector(t, doer)

	resp, err := c.Agents().GetByID(context.Background(), "agent-1")
	assert.Nil(t, resp)

	var httpErr *shipit.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, "404", httpErr.Code)
	assert.Equal(t, "Not Found", httpErr.Message)
	require.NotNil(t, httpErr.Envelope)
	assert.Equal(t, shipit.ID("404"), httpErr.Envelope.Code)
	assert.True(t, shipit.IsNotFound(err))
	assert.Equal(t, http.StatusNotFound, shipit.StatusCode(err))
}

func TestConnector_ErrorBodyIsNeverDecoded(t *testing.T) {
	// A body that would decode successfully as the result type.
	doer := &capturingDoer{status: http.StatusUnprocessableEntity, body: trackingLinkBody}
	c := newTestConnector(t, doer)

	resp, err := c.Tracking().Link(context.Background(), "JJFI1")
	assert.Nil(t, resp)

	var httpErr *shipit.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "422", httpErr.Code)
	assert.Nil(t, httpErr.Envelope)
	assert.JSONEq(t, trackingLinkBody, string(httpErr.Body))
	assert.True(t, errors.Is(err, shipit.ErrUnprocessable))
}

func TestConnector_ErrorEnvelopeWithStringCode(t *testing.T) {
	doer := &capturingDoer{
		status: http.StatusBadRequest,
		body:   `{"code":"INVALID_POSTCODE","message":"Receiver postcode is invalid","messages":["postcode"]}`,
	}
	c := newTestConnector(t, doer)

	_, err := c.Shipments().Create(context.Background(), minimalShipment())

	var httpErr *shipit.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "INVALID_POSTCODE", httpErr.Code)
	assert.Equal(t, "Receiver postcode is invalid", httpErr.Message)
	assert.True(t, httpErr.Envelope.Messages.IsSet())
	assert.True(t, errors.Is(err, shipit.ErrBadRequest))
}

func TestConnector_NonJSONErrorBody(t *testing.T) {
	doer := &capturingDoer{status: http.StatusBadGateway, body: `<html>bad gateway</html>`}
	c := newTestConnector(t, doer)

	_, err := c.User().Current(context.Background())

	var httpErr *shipit.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "502", httpErr.Code)
	assert.Equal(t, "Bad Gateway", httpErr.Message)
	assert.True(t, errors.Is(err, shipit.ErrServer))
}

func TestConnector_TransportError(t *testing.T) {
	cause := errors.New("connection refused")
	doer := &capturingDoer{err: cause}
	c := newTestConnector(t, doer)

	_, err := c.Tracking().Link(context.Background(), "JJFI1")

	var transportErr *shipit.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "GetTrackingLink", transportErr.Operation)
	assert.True(t, errors.Is(err, cause))
}

func TestConnector_DecodingError(t *testing.T) {
	doer := &capturingDoer{status: http.StatusOK, body: `{"trackingNumber":"JJFI1"}`}
	c := newTestConnector(t, doer)

	_, err := c.Tracking().Link(context.Background(), "JJFI1")

	var decErr *shipit.DecodingError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, "TrackingLinkResponse", decErr.Type)
	assert.Equal(t, "trackingUrl", decErr.Field)
}

func TestConnector_InvalidPayloadIsNotSent(t *testing.T) {
	doer := &capturingDoer{status: http.StatusOK, body: `{"status":1}`}
	c := newTestConnector(t, doer)

	req := minimalShipment()
	req.Parcels = nil

	_, err := c.Shipments().Create(context.Background(), req)
	assert.True(t, errors.Is(err, shipit.ErrInvalidPayload))
	assert.Empty(t, doer.requests)
}

func TestConnector_ObserverSeesEveryCall(t *testing.T) {
	doer := &capturingDoer{status: http.StatusNotFound, body: `{"code":404,"message":"Not Found"}`}
	observer := &recordingObserver{}
	c, err := shipit.New(shipit.Config{Token: "t", HTTPClient: doer, Observer: observer})
	require.NoError(t, err)

	_, _ = c.Locations().Get(context.Background(), "loc-1")

	require.Len(t, observer.ops, 1)
	assert.Equal(t, "GetLocation", observer.ops[0])
	assert.Equal(t, http.StatusNotFound, observer.status[0])
	assert.Error(t, observer.errs[0])
}

func TestConnector_ContextCancellation(t *testing.T) {
	srv := mock.NewServer()
	defer srv.Close()
	srv.SimulateLatency(200 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := srv.Connector("tok").User().Current(ctx)

	var transportErr *shipit.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestValidateShipment_InvalidIsNotAnError(t *testing.T) {
	doer := &capturingDoer{
		status: http.StatusOK,
		body:   `{"status":200,"valid":false,"errors":[{"field":"receiver.postcode","message":"invalid"}]}`,
	}
	c := newTestConnector(t, doer)

	resp, err := c.Shipments().Validate(context.Background(), minimalShipment())
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)
	assert.False(t, resp.Valid)
	errs, ok := resp.Errors.Get()
	require.True(t, ok)
	assert.JSONEq(t, `[{"field":"receiver.postcode","message":"invalid"}]`, string(errs))
	assert.False(t, resp.Warnings.IsSet())

	req := doer.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/v1/validate-shipment", req.URL.Path)
}

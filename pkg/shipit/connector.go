package shipit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Base URLs of the Shipit API environments.
const (
	ProductionURL = "https://api.shipit.fi"
	LiveURL       = "https://api.shipit.ax"
	TestURL       = "https://apitest.shipit.ax"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "tournevent-shipit/1.0"
	tracerName       = "github.com/tournevent/shipit"
)

// Environment selects which API host a Connector talks to.
type Environment string

const (
	EnvProduction Environment = "production"
	EnvLive       Environment = "live"
	EnvTest       Environment = "test"
)

// BaseURL returns the default host for the environment. The empty
// environment maps to the test host.
func (e Environment) BaseURL() (string, error) {
	switch e {
	case EnvProduction:
		return ProductionURL, nil
	case EnvLive:
		return LiveURL, nil
	case EnvTest, "":
		return TestURL, nil
	}
	return "", fmt.Errorf("unknown environment %q", string(e))
}

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Observer receives one call per completed API operation. status is 0 when
// no response was received.
type Observer interface {
	ObserveRequest(operation string, status int, duration time.Duration, err error)
}

// Config holds configuration for a Connector.
type Config struct {
	Token       string
	Environment Environment
	// BaseURL overrides the host derived from Environment.
	BaseURL string
	// Timeout applies to the default HTTP client only.
	Timeout    time.Duration
	HTTPClient HTTPDoer
	UserAgent  string
	Logger     *otelzap.Logger
	Tracer     trace.Tracer
	Observer   Observer
}

// Connector is the entry point to the API. It is immutable after
// construction and safe for concurrent use.
type Connector struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient HTTPDoer
	logger     *otelzap.Logger
	tracer     trace.Tracer
	observer   Observer
}

// New creates a Connector from cfg.
func New(cfg Config) (*Connector, error) {
	base := cfg.BaseURL
	if base == "" {
		var err error
		if base, err = cfg.Environment.BaseURL(); err != nil {
			return nil, err
		}
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be an absolute http(s) URL", base)
	}
	return build(cfg, strings.TrimRight(base, "/")), nil
}

func build(cfg Config, baseURL string) *Connector {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	logger := cfg.Logger
	if logger == nil {
		logger = otelzap.New(zap.NewNop())
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	observer := cfg.Observer
	if observer == nil {
		observer = nopObserver{}
	}

	return &Connector{
		baseURL:    baseURL,
		token:      cfg.Token,
		userAgent:  userAgent,
		httpClient: httpClient,
		logger:     logger,
		tracer:     tracer,
		observer:   observer,
	}
}

// ForProduction returns a Connector for the production host.
func ForProduction(token string) *Connector {
	return build(Config{Token: token}, ProductionURL)
}

// ForTesting returns a Connector for the test host.
func ForTesting(token string) *Connector {
	return build(Config{Token: token}, TestURL)
}

// Live returns a Connector for the live host.
func Live(token string) *Connector {
	return build(Config{Token: token}, LiveURL)
}

// Test returns a Connector for the test host.
func Test(token string) *Connector {
	return build(Config{Token: token}, TestURL)
}

// BaseURL returns the host every request is resolved against.
func (c *Connector) BaseURL() string { return c.baseURL }

// Shipments returns the shipment booking facade.
func (c *Connector) Shipments() *ShipmentsResource { return &ShipmentsResource{c: c} }

// ShippingMethods returns the pricing and service facade.
func (c *Connector) ShippingMethods() *ShippingMethodsResource {
	return &ShippingMethodsResource{c: c}
}

// Agents returns the pickup point facade.
func (c *Connector) Agents() *AgentsResource { return &AgentsResource{c: c} }

// Locations returns the saved address facade.
func (c *Connector) Locations() *LocationsResource { return &LocationsResource{c: c} }

// Organizations returns the organization facade.
func (c *Connector) Organizations() *OrganizationsResource { return &OrganizationsResource{c: c} }

// OrganizationMembers returns the facade for organization members.
func (c *Connector) OrganizationMembers() *OrganizationMembersResource {
	return &OrganizationMembersResource{c: c}
}

// PostalCodes returns the postal code lookup facade.
func (c *Connector) PostalCodes() *PostalCodesResource { return &PostalCodesResource{c: c} }

// Tracking returns the tracking facade.
func (c *Connector) Tracking() *TrackingResource { return &TrackingResource{c: c} }

// CarrierContracts returns the carrier contract facade.
func (c *Connector) CarrierContracts() *CarrierContractsResource {
	return &CarrierContractsResource{c: c}
}

// ConsignmentTemplates returns the consignment template facade.
func (c *Connector) ConsignmentTemplates() *ConsignmentTemplatesResource {
	return &ConsignmentTemplatesResource{c: c}
}

// Balance returns the invoicing and wallet facade.
func (c *Connector) Balance() *BalanceResource { return &BalanceResource{c: c} }

// User returns the account facade.
func (c *Connector) User() *UserResource { return &UserResource{c: c} }

// Dimensions returns the parcel preset facade.
func (c *Connector) Dimensions() *DimensionsResource { return &DimensionsResource{c: c} }

// PrintTemplates returns the label layout facade.
func (c *Connector) PrintTemplates() *PrintTemplatesResource {
	return &PrintTemplatesResource{c: c}
}

type validatable interface {
	Validate() error
}

// call performs one API operation and returns the raw response body of a
// successful (status below 400) response.
func (c *Connector) call(ctx context.Context, op, method, path string, query url.Values, body any) ([]byte, error) {
	if v, ok := body.(validatable); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}

	requestID := uuid.NewString()
	ctx, span := c.tracer.Start(ctx, "shipit."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("shipit.operation", op),
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
			attribute.String("shipit.request_id", requestID),
		),
	)
	defer span.End()

	start := time.Now()
	status, payload, err := c.roundTrip(ctx, op, method, path, query, body, requestID)
	elapsed := time.Since(start)
	c.observer.ObserveRequest(op, status, elapsed, err)

	if status != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}

	fields := []zap.Field{
		zap.String("operation", op),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Duration("duration", elapsed),
		zap.String("request_id", requestID),
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Ctx(ctx).Error("Shipit API error", append(fields, zap.Error(err))...)
		return nil, err
	}

	c.logger.Ctx(ctx).Debug("Shipit API call", fields...)
	return payload, nil
}

func (c *Connector) roundTrip(ctx context.Context, op, method, path string, query url.Values, body any, requestID string) (int, []byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal %s request body: %w", op, err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create %s request: %w", op, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Operation: op, Method: method, URL: target, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &TransportError{Operation: op, Method: method, URL: target, Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return resp.StatusCode, nil, parseError(op, method, path, resp.StatusCode, payload)
	}
	return resp.StatusCode, payload, nil
}

// parseError builds an HTTPError, taking code and message from the error
// envelope when the body is one.
func parseError(op, method, path string, status int, body []byte) error {
	httpErr := &HTTPError{
		Operation:  op,
		Method:     method,
		Path:       path,
		StatusCode: status,
		Code:       strconv.Itoa(status),
		Message:    http.StatusText(status),
		Body:       body,
	}

	var envelope ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil {
		return httpErr.WithEnvelope(&envelope)
	}

	// Try to parse as a simple error message
	var simpleErr struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &simpleErr); err == nil {
		if msg := simpleErr.Message; msg != "" {
			httpErr.Message = msg
		} else if simpleErr.Error != "" {
			httpErr.Message = simpleErr.Error
		}
	}
	return httpErr
}

type nopObserver struct{}

func (nopObserver) ObserveRequest(string, int, time.Duration, error) {}

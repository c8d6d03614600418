package shipit

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// GetPrintTemplatesRequest lists label layouts, optionally for one carrier.
func GetPrintTemplatesRequest(carrierID string) Request[[]PrintTemplateResponse] {
	q := url.Values{}
	if carrierID != "" {
		q.Set("carrier_id", carrierID)
	}
	return Request[[]PrintTemplateResponse]{
		Name:   "GetPrintTemplates",
		Method: http.MethodGet,
		Path:   "/v1/print-templates",
		Query:  q,
		Decode: decodeList[PrintTemplateResponse]("PrintTemplateResponse"),
	}
}

// GetPrintTemplateOptionsRequest returns the raw "data" member describing
// the layouts available for a carrier and service.
func GetPrintTemplateOptionsRequest(carrier, service string) Request[json.RawMessage] {
	q := url.Values{}
	if carrier != "" {
		q.Set("carrier", carrier)
	}
	if service != "" {
		q.Set("service", service)
	}
	return Request[json.RawMessage]{
		Name:   "GetPrintTemplateOptions",
		Method: http.MethodGet,
		Path:   "/v1/print-templates/options",
		Query:  q,
		Decode: func(body []byte) (json.RawMessage, error) {
			var envelope struct {
				Data json.RawMessage `json:"data"`
			}
			if err := json.Unmarshal(body, &envelope); err != nil {
				return nil, wrapDecodeError("PrintTemplateOptions", err)
			}
			if len(envelope.Data) == 0 || bytes.Equal(envelope.Data, jsonNull) {
				return nil, &DecodingError{Type: "PrintTemplateOptions", Field: "data", Err: ErrMissingField}
			}
			return envelope.Data, nil
		},
	}
}

// CreatePrintTemplateRequest saves a label layout.
func CreatePrintTemplateRequest(data map[string]any) Request[NoContent] {
	return Request[NoContent]{
		Name:   "CreatePrintTemplate",
		Method: http.MethodPost,
		Path:   "/v1/print-templates",
		Body:   rawBody(data),
		Decode: discard,
	}
}

// DeletePrintTemplateRequest deletes a label layout.
func DeletePrintTemplateRequest(id string) Request[NoContent] {
	return Request[NoContent]{
		Name:   "DeletePrintTemplate",
		Method: http.MethodDelete,
		Path:   pathf("/v1/print-templates", id),
		Decode: discard,
	}
}

// PrintTemplatesResource manages label layouts.
type PrintTemplatesResource struct {
	c *Connector
}

// List returns the layouts, all carriers when carrierID is empty.
func (r *PrintTemplatesResource) List(ctx context.Context, carrierID string) ([]PrintTemplateResponse, error) {
	return Send(ctx, r.c, GetPrintTemplatesRequest(carrierID))
}

// Options returns the raw layout options for carrier and service.
func (r *PrintTemplatesResource) Options(ctx context.Context, carrier, service string) (json.RawMessage, error) {
	return Send(ctx, r.c, GetPrintTemplateOptionsRequest(carrier, service))
}

// Create saves a layout.
func (r *PrintTemplatesResource) Create(ctx context.Context, data map[string]any) error {
	_, err := Send(ctx, r.c, CreatePrintTemplateRequest(data))
	return err
}

// Delete removes layout id.
func (r *PrintTemplatesResource) Delete(ctx context.Context, id string) error {
	_, err := Send(ctx, r.c, DeletePrintTemplateRequest(id))
	return err
}

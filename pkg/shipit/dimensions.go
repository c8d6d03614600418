package shipit

import (
	"context"
	"net/http"
	"net/url"
)

// DimensionFilter narrows a dimension listing. Empty fields are not sent.
type DimensionFilter struct {
	Type    string
	Service string
}

func (f DimensionFilter) query() url.Values {
	q := url.Values{}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.Service != "" {
		q.Set("service", f.Service)
	}
	return q
}

// GetDimensionsRequest lists parcel presets matching filter.
func GetDimensionsRequest(filter DimensionFilter) Request[[]DimensionResponse] {
	return Request[[]DimensionResponse]{
		Name:   "GetDimensions",
		Method: http.MethodGet,
		Path:   "/v1/dimensions",
		Query:  filter.query(),
		Decode: decodeList[DimensionResponse]("DimensionResponse"),
	}
}

// CreateDimensionRequest saves a parcel preset.
func CreateDimensionRequest(data map[string]any) Request[NoContent] {
	return Request[NoContent]{
		Name:   "CreateDimension",
		Method: http.MethodPost,
		Path:   "/v1/dimensions",
		Body:   rawBody(data),
		Decode: discard,
	}
}

// UpdateDimensionRequest updates preset id.
func UpdateDimensionRequest(id string, data map[string]any) Request[NoContent] {
	return Request[NoContent]{
		Name:   "UpdateDimension",
		Method: http.MethodPut,
		Path:   pathf("/v1/dimensions", id),
		Body:   rawBody(data),
		Decode: discard,
	}
}

// DeleteDimensionRequest deletes preset id.
func DeleteDimensionRequest(id string) Request[NoContent] {
	return Request[NoContent]{
		Name:   "DeleteDimension",
		Method: http.MethodDelete,
		Path:   pathf("/v1/dimensions", id),
		Decode: discard,
	}
}

// DimensionsResource manages saved parcel size presets.
type DimensionsResource struct {
	c *Connector
}

// List returns the saved presets matching filter.
func (r *DimensionsResource) List(ctx context.Context, filter DimensionFilter) ([]DimensionResponse, error) {
	return Send(ctx, r.c, GetDimensionsRequest(filter))
}

// Create saves a preset.
func (r *DimensionsResource) Create(ctx context.Context, data map[string]any) error {
	_, err := Send(ctx, r.c, CreateDimensionRequest(data))
	return err
}

// Update changes preset id.
func (r *DimensionsResource) Update(ctx context.Context, id string, data map[string]any) error {
	_, err := Send(ctx, r.c, UpdateDimensionRequest(id, data))
	return err
}

// Delete removes preset id.
func (r *DimensionsResource) Delete(ctx context.Context, id string) error {
	_, err := Send(ctx, r.c, DeleteDimensionRequest(id))
	return err
}

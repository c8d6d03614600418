package shipit

import (
	"context"
	"net/http"
)

// GetShippingMethodsRequest prices the shipment described by data.
func GetShippingMethodsRequest(data *ShippingMethodsRequest) Request[*ShippingMethodsResponse] {
	return Request[*ShippingMethodsResponse]{
		Name:   "GetShippingMethods",
		Method: http.MethodPost,
		Path:   "/v1/shipping-methods",
		Body:   data,
		Decode: decodeInto[ShippingMethodsResponse]("ShippingMethodsResponse"),
	}
}

// GetShippingMethodListRequest lists every method of the account. The
// endpoint answers with a bare array.
func GetShippingMethodListRequest() Request[*ShippingMethodListResponse] {
	return Request[*ShippingMethodListResponse]{
		Name:   "GetShippingMethodList",
		Method: http.MethodGet,
		Path:   "/v1/list-methods",
		Decode: func(body []byte) (*ShippingMethodListResponse, error) {
			methods, err := decodeList[ShippingMethod]("ShippingMethodListResponse")(body)
			if err != nil {
				return nil, err
			}
			return &ShippingMethodListResponse{Data: methods}, nil
		},
	}
}

// GetQuickShippingMethodsRequest returns quick prices and the most used methods.
func GetQuickShippingMethodsRequest(data map[string]any) Request[*QuickShippingMethodsResponse] {
	return Request[*QuickShippingMethodsResponse]{
		Name:   "GetQuickShippingMethods",
		Method: http.MethodPost,
		Path:   "/v1/shipping-methods/quick",
		Body:   rawBody(data),
		Decode: decodeInto[QuickShippingMethodsResponse]("QuickShippingMethodsResponse"),
	}
}

// GetShippingMethodDetailsRequest reads the texts of one service.
func GetShippingMethodDetailsRequest(serviceID string) Request[*ShippingMethodDetailsResponse] {
	return Request[*ShippingMethodDetailsResponse]{
		Name:   "GetShippingMethodDetails",
		Method: http.MethodGet,
		Path:   pathf("/v1/shipping-method-details", serviceID),
		Decode: decodeInto[ShippingMethodDetailsResponse]("ShippingMethodDetailsResponse"),
	}
}

// ShippingMethodsResource queries carrier services and prices.
type ShippingMethodsResource struct {
	c *Connector
}

// Get returns the methods available for the parcels and parties in data.
func (r *ShippingMethodsResource) Get(ctx context.Context, data *ShippingMethodsRequest) (*ShippingMethodsResponse, error) {
	return Send(ctx, r.c, GetShippingMethodsRequest(data))
}

// List returns every method of the account.
func (r *ShippingMethodsResource) List(ctx context.Context) (*ShippingMethodListResponse, error) {
	return Send(ctx, r.c, GetShippingMethodListRequest())
}

// Details returns the localized texts of serviceID.
func (r *ShippingMethodsResource) Details(ctx context.Context, serviceID string) (*ShippingMethodDetailsResponse, error) {
	return Send(ctx, r.c, GetShippingMethodDetailsRequest(serviceID))
}

// Quick returns quick prices for data.
func (r *ShippingMethodsResource) Quick(ctx context.Context, data map[string]any) (*QuickShippingMethodsResponse, error) {
	return Send(ctx, r.c, GetQuickShippingMethodsRequest(data))
}

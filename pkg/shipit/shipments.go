package shipit

import (
	"context"
	"net/http"
)

// CreateShipmentRequest books a shipment and returns its labels.
func CreateShipmentRequest(data *ShipmentRequest) Request[*ShipmentResponse] {
	return Request[*ShipmentResponse]{
		Name:   "CreateShipment",
		Method: http.MethodPut,
		Path:   "/v1/shipment",
		Body:   data,
		Decode: decodeInto[ShipmentResponse]("ShipmentResponse"),
	}
}

// CreatePendingShipmentRequest stores a shipment without booking it.
func CreatePendingShipmentRequest(data *ShipmentRequest) Request[*ShipmentResponse] {
	return Request[*ShipmentResponse]{
		Name:   "CreatePendingShipment",
		Method: http.MethodPut,
		Path:   "/v1/pending-shipment",
		Body:   data,
		Decode: decodeInto[ShipmentResponse]("ShipmentResponse"),
	}
}

// BookCustomerReturnRequest books a return shipment.
func BookCustomerReturnRequest(data *ShipmentRequest) Request[*ShipmentResponse] {
	return Request[*ShipmentResponse]{
		Name:   "BookCustomerReturn",
		Method: http.MethodPut,
		Path:   "/v1/customer-return",
		Body:   data,
		Decode: decodeInto[ShipmentResponse]("ShipmentResponse"),
	}
}

// ValidateShipmentRequest asks the API whether data would be accepted.
func ValidateShipmentRequest(data *ShipmentRequest) Request[*ValidateShipmentResponse] {
	return Request[*ValidateShipmentResponse]{
		Name:   "ValidateShipment",
		Method: http.MethodPut,
		Path:   "/v1/validate-shipment",
		Body:   data,
		Decode: decodeInto[ValidateShipmentResponse]("ValidateShipmentResponse"),
	}
}

// ConsolidateShipmentRequest merges shipments under one tracking number.
func ConsolidateShipmentRequest(data *ConsolidateShipment) Request[*ConsolidateShipmentResponse] {
	return Request[*ConsolidateShipmentResponse]{
		Name:   "ConsolidateShipment",
		Method: http.MethodPost,
		Path:   "/v1/consolidate-shipment",
		Body:   data,
		Decode: decodeInto[ConsolidateShipmentResponse]("ConsolidateShipmentResponse"),
	}
}

// BookPickUpRequest orders a courier pickup.
func BookPickUpRequest(data *BookPickUp) Request[*BookPickUpResponse] {
	return Request[*BookPickUpResponse]{
		Name:   "BookPickUp",
		Method: http.MethodPost,
		Path:   "/v1/pick-ups",
		Body:   data,
		Decode: decodeInto[BookPickUpResponse]("BookPickUpResponse"),
	}
}

// ShipmentsResource creates, validates and books shipments.
type ShipmentsResource struct {
	c *Connector
}

// Create books a shipment.
func (r *ShipmentsResource) Create(ctx context.Context, data *ShipmentRequest) (*ShipmentResponse, error) {
	return Send(ctx, r.c, CreateShipmentRequest(data))
}

// CreatePending stores the shipment for later booking.
func (r *ShipmentsResource) CreatePending(ctx context.Context, data *ShipmentRequest) (*ShipmentResponse, error) {
	return Send(ctx, r.c, CreatePendingShipmentRequest(data))
}

// BookReturn books a customer return shipment.
func (r *ShipmentsResource) BookReturn(ctx context.Context, data *ShipmentRequest) (*ShipmentResponse, error) {
	return Send(ctx, r.c, BookCustomerReturnRequest(data))
}

// Validate checks the shipment against the API without booking it. An
// invalid shipment is reported through the response, not as an error.
func (r *ShipmentsResource) Validate(ctx context.Context, data *ShipmentRequest) (*ValidateShipmentResponse, error) {
	return Send(ctx, r.c, ValidateShipmentRequest(data))
}

// Consolidate merges the shipments listed in data.
func (r *ShipmentsResource) Consolidate(ctx context.Context, data *ConsolidateShipment) (*ConsolidateShipmentResponse, error) {
	return Send(ctx, r.c, ConsolidateShipmentRequest(data))
}

// BookPickUp orders a pickup for booked shipments.
func (r *ShipmentsResource) BookPickUp(ctx context.Context, data *BookPickUp) (*BookPickUpResponse, error) {
	return Send(ctx, r.c, BookPickUpRequest(data))
}

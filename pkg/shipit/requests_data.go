package shipit

// ShippingMethodsRequest asks for the services and prices available for a
// set of parcels between two parties.
type ShippingMethodsRequest struct {
	Sender                 Party            `json:"sender"`
	Receiver               Party            `json:"receiver"`
	Parcels                []Parcel         `json:"parcels" validate:"required,min=1,dive"`
	Fragile                Optional[bool]   `json:"fragile,omitzero"`
	CustomPickupPostalCode Nullable[string] `json:"customPickupPostalCode,omitzero"`
	CompanyIsSending       Optional[bool]   `json:"companyIsSending,omitzero"`
	CompanyIsReceiving     Optional[bool]   `json:"companyIsReceiving,omitzero"`
	Pickup                 Optional[bool]   `json:"pickup,omitzero"`
	Delivery               Optional[bool]   `json:"delivery,omitzero"`
	Dangerous              Optional[bool]   `json:"dangerous,omitzero"`
	LimitedQtys            Optional[bool]   `json:"limitedQtys,omitzero"`
	Delivery09             Optional[bool]   `json:"delivery09,omitzero"`
	COD                    Optional[bool]   `json:"cod,omitzero"`
	IncludeDescriptions    Optional[bool]   `json:"includeDescriptions,omitzero"`
	UserSessionID          Optional[string] `json:"userSessionId,omitzero"`
}

func (r *ShippingMethodsRequest) UnmarshalJSON(data []byte) error {
	type plain ShippingMethodsRequest
	return decodeObject(data, "ShippingMethodsRequest", (*plain)(r), "sender", "receiver", "parcels")
}

func (r *ShippingMethodsRequest) Validate() error {
	return checkPayload("ShippingMethodsRequest", r, nil)
}

// BookPickUp books a carrier pickup for an existing shipment.
type BookPickUp struct {
	TrackingNumber string           `json:"trackingNumber" validate:"required"`
	Date           string           `json:"date"`
	ReadyTime      string           `json:"readyTime"`
	CloseTime      string           `json:"closeTime"`
	Instructions   Nullable[string] `json:"instructions,omitzero"`
}

func (b *BookPickUp) UnmarshalJSON(data []byte) error {
	type plain BookPickUp
	return decodeObject(data, "BookPickUp", (*plain)(b),
		"trackingNumber", "date", "readyTime", "closeTime")
}

func (b *BookPickUp) Validate() error {
	return checkPayload("BookPickUp", b, nil)
}

// ConsolidateShipment merges existing shipments under one service.
type ConsolidateShipment struct {
	TrackingNumbers []string `json:"trackingNumbers" validate:"required,min=1"`
	ServiceID       string   `json:"serviceId" validate:"required"`
}

func (c *ConsolidateShipment) UnmarshalJSON(data []byte) error {
	type plain ConsolidateShipment
	return decodeObject(data, "ConsolidateShipment", (*plain)(c), "trackingNumbers", "serviceId")
}

func (c *ConsolidateShipment) Validate() error {
	return checkPayload("ConsolidateShipment", c, nil)
}

// PostalCodeQuery looks up postal codes in a country, optionally narrowed
// by code or city.
type PostalCodeQuery struct {
	Country    string           `json:"country" validate:"len=2"`
	PostalCode Optional[string] `json:"postalCode,omitzero"`
	City       Optional[string] `json:"city,omitzero"`
}

func (q *PostalCodeQuery) UnmarshalJSON(data []byte) error {
	type plain PostalCodeQuery
	return decodeObject(data, "PostalCodeQuery", (*plain)(q), "country")
}

func (q *PostalCodeQuery) Validate() error {
	return checkPayload("PostalCodeQuery", q, nil)
}

// Registration creates a new API user.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Country  string `json:"country" validate:"len=2"`
}

func (r *Registration) UnmarshalJSON(data []byte) error {
	type plain Registration
	return decodeObject(data, "Registration", (*plain)(r),
		"email", "password", "name", "phone", "country")
}

func (r *Registration) Validate() error {
	return checkPayload("Registration", r, nil)
}

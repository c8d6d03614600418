package shipit

import (
	"bytes"
	"encoding/json"
)

// ErrorResponse is the envelope the API returns on failure.
type ErrorResponse struct {
	Code      ID                        `json:"code"`
	Message   string                    `json:"message"`
	ErrorData Optional[json.RawMessage] `json:"errordata,omitzero"`
	Messages  Optional[json.RawMessage] `json:"messages,omitzero"`
}

func (r *ErrorResponse) UnmarshalJSON(data []byte) error {
	type plain ErrorResponse
	return decodeObject(data, "ErrorResponse", (*plain)(r), "code", "message")
}

// AgentResponse is a pickup point (agent) location.
type AgentResponse struct {
	ID                   string                    `json:"id"`
	Name                 string                    `json:"name"`
	Address1             string                    `json:"address1"`
	City                 string                    `json:"city"`
	Zipcode              string                    `json:"zipcode"`
	CountryCode          string                    `json:"countryCode"`
	ServiceID            Optional[string]          `json:"serviceId,omitzero"`
	Carrier              Optional[string]          `json:"carrier,omitzero"`
	CarrierLogo          Optional[string]          `json:"carrierLogo,omitzero"`
	OpeningHours         Nullable[json.RawMessage] `json:"openingHours,omitzero"`
	Latitude             Optional[float64]         `json:"latitude,omitzero"`
	Longitude            Optional[float64]         `json:"longitude,omitzero"`
	DistanceInKilometers Optional[float64]         `json:"distanceInKilometers,omitzero"`
	DistanceInMeters     Optional[float64]         `json:"distanceInMeters,omitzero"`
}

func (r *AgentResponse) UnmarshalJSON(data []byte) error {
	type plain AgentResponse
	return decodeObject(data, "AgentResponse", (*plain)(r),
		"id", "name", "address1", "city", "zipcode", "countryCode")
}

// AgentsResponse is the result of a pickup point search.
type AgentsResponse struct {
	Status    int             `json:"status"`
	Locations []AgentResponse `json:"locations"`
}

func (r *AgentsResponse) UnmarshalJSON(data []byte) error {
	type plain AgentsResponse
	return decodeObject(data, "AgentsResponse", (*plain)(r), "status", "locations")
}

// ShippingMethod is one carrier service offered for a route.
type ShippingMethod struct {
	ServiceID                 string                    `json:"serviceId"`
	Carrier                   string                    `json:"carrier"`
	ServiceName               Optional[string]          `json:"serviceName,omitzero"`
	Price                     Optional[float64]         `json:"price,omitzero"`
	PriceVat0                 Optional[float64]         `json:"priceVat0,omitzero"`
	Currency                  Optional[string]          `json:"currency,omitzero"`
	Pickup                    Optional[bool]            `json:"pickup,omitzero"`
	DeliveryTime              Optional[string]          `json:"deliveryTime,omitzero"`
	IsPickupLocationMethod    Optional[bool]            `json:"isPickupLocationMethod,omitzero"`
	IsReturnService           Optional[bool]            `json:"isReturnService,omitzero"`
	RequiresEmailForRecipient Optional[bool]            `json:"requiresEmailForRecipient,omitzero"`
	RequiresHSTariffCode      Optional[bool]            `json:"requiresHSTariffCode,omitzero"`
	SupportsReturnFreightDoc  Optional[bool]            `json:"supportsReturnFreightDoc,omitzero"`
	Logo                      Optional[string]          `json:"logo,omitzero"`
	Descriptions              Optional[json.RawMessage] `json:"descriptions,omitzero"`
}

func (m *ShippingMethod) UnmarshalJSON(data []byte) error {
	type plain ShippingMethod
	return decodeObject(data, "ShippingMethod", (*plain)(m), "serviceId", "carrier")
}

// ServicePointLocation is a pickup location returned with shipping methods.
type ServicePointLocation struct {
	ID           string                    `json:"id"`
	Name         string                    `json:"name"`
	Address      string                    `json:"address"`
	City         Optional[string]          `json:"city,omitzero"`
	Postcode     Optional[string]          `json:"postcode,omitzero"`
	Country      Optional[string]          `json:"country,omitzero"`
	Latitude     Optional[float64]         `json:"latitude,omitzero"`
	Longitude    Optional[float64]         `json:"longitude,omitzero"`
	ServiceID    Optional[string]          `json:"serviceId,omitzero"`
	Price        Optional[float64]         `json:"price,omitzero"`
	OpeningHours Optional[json.RawMessage] `json:"openingHours,omitzero"`
	Distance     Optional[string]          `json:"distance,omitzero"`
}

func (l *ServicePointLocation) UnmarshalJSON(data []byte) error {
	type plain ServicePointLocation
	return decodeObject(data, "ServicePointLocation", (*plain)(l), "id", "name", "address")
}

// ShippingMethodsResponse lists the priced methods for a shipment.
type ShippingMethodsResponse struct {
	Status     int                              `json:"status"`
	Methods    []ShippingMethod                 `json:"methods"`
	Locations  Optional[[]ServicePointLocation] `json:"locations,omitzero"`
	CartID     Optional[string]                 `json:"cartId,omitzero"`
	CartItemID Optional[string]                 `json:"cartItemId,omitzero"`
	Error      Optional[string]                 `json:"error,omitzero"`
}

func (r *ShippingMethodsResponse) UnmarshalJSON(data []byte) error {
	type plain ShippingMethodsResponse
	return decodeObject(data, "ShippingMethodsResponse", (*plain)(r), "status", "methods")
}

// QuickShippingMethodsResponse is the quick price listing.
type QuickShippingMethodsResponse struct {
	Status   int              `json:"status"`
	Methods  []ShippingMethod `json:"methods"`
	MostUsed json.RawMessage  `json:"mostUsed"`
}

func (r *QuickShippingMethodsResponse) UnmarshalJSON(data []byte) error {
	type plain QuickShippingMethodsResponse
	return decodeObject(data, "QuickShippingMethodsResponse", (*plain)(r), "status", "methods", "mostUsed")
}

// ShippingMethodListResponse holds every method the account can use. The
// API returns a bare array which is wrapped into Data.
type ShippingMethodListResponse struct {
	Data []ShippingMethod `json:"data"`
}

// ShippingMethodDetailsResponse carries the localized texts of a service.
type ShippingMethodDetailsResponse struct {
	ServiceID string                    `json:"serviceId"`
	StringsFI Optional[json.RawMessage] `json:"strings_fi,omitzero"`
	StringsEN Optional[json.RawMessage] `json:"strings_en,omitzero"`
	StringsSV Optional[json.RawMessage] `json:"strings_sv,omitzero"`
	StringsET Optional[json.RawMessage] `json:"strings_et,omitzero"`
}

func (r *ShippingMethodDetailsResponse) UnmarshalJSON(data []byte) error {
	type plain ShippingMethodDetailsResponse
	return decodeObject(data, "ShippingMethodDetailsResponse", (*plain)(r), "serviceId")
}

// ShipmentResponse is returned by shipment creation and return booking.
type ShipmentResponse struct {
	Status         int                       `json:"status"`
	TrackingNumber Optional[string]          `json:"trackingNumber,omitzero"`
	TrackingURLs   Optional[json.RawMessage] `json:"trackingUrls,omitzero"`
	OrderID        Optional[string]          `json:"orderId,omitzero"`
	ShipitNumber   Optional[string]          `json:"shipitNumber,omitzero"`
	FreightDoc     Optional[json.RawMessage] `json:"freightDoc,omitzero"`
	Receipt        Optional[string]          `json:"receipt,omitzero"`
	Labels         Optional[json.RawMessage] `json:"labels,omitzero"`
	CartID         Optional[string]          `json:"cartId,omitzero"`
	CartItemID     Optional[string]          `json:"cartItemId,omitzero"`
	Error          Optional[json.RawMessage] `json:"error,omitzero"`
}

func (r *ShipmentResponse) UnmarshalJSON(data []byte) error {
	type plain ShipmentResponse
	return decodeObject(data, "ShipmentResponse", (*plain)(r), "status")
}

// ValidateShipmentResponse reports whether a shipment would be accepted.
// A false Valid is a successful answer, not an error.
type ValidateShipmentResponse struct {
	Status   int                       `json:"status"`
	Valid    bool                      `json:"valid"`
	Errors   Optional[json.RawMessage] `json:"errors,omitzero"`
	Warnings Optional[json.RawMessage] `json:"warnings,omitzero"`
}

func (r *ValidateShipmentResponse) UnmarshalJSON(data []byte) error {
	type plain ValidateShipmentResponse
	return decodeObject(data, "ValidateShipmentResponse", (*plain)(r), "status", "valid")
}

// ConsolidateShipmentResponse is the result of merging shipments.
type ConsolidateShipmentResponse struct {
	Status                     int                       `json:"status"`
	ConsolidatedTrackingNumber Optional[string]          `json:"consolidatedTrackingNumber,omitzero"`
	Shipments                  Optional[json.RawMessage] `json:"shipments,omitzero"`
}

func (r *ConsolidateShipmentResponse) UnmarshalJSON(data []byte) error {
	type plain ConsolidateShipmentResponse
	return decodeObject(data, "ConsolidateShipmentResponse", (*plain)(r), "status")
}

// BookPickUpResponse confirms a courier pickup.
type BookPickUpResponse struct {
	Status   int              `json:"status"`
	PickupID Optional[string] `json:"pickupId,omitzero"`
	Message  Optional[string] `json:"message,omitzero"`
}

func (r *BookPickUpResponse) UnmarshalJSON(data []byte) error {
	type plain BookPickUpResponse
	return decodeObject(data, "BookPickUpResponse", (*plain)(r), "status")
}

// LocationResponse is a saved address of the account.
type LocationResponse struct {
	ID        ID               `json:"id"`
	Name      string           `json:"name"`
	Address   string           `json:"address"`
	City      string           `json:"city"`
	Postcode  string           `json:"postcode"`
	Country   string           `json:"country"`
	Address2  Optional[string] `json:"address2,omitzero"`
	State     Optional[string] `json:"state,omitzero"`
	IsDefault Optional[bool]   `json:"is_default,omitzero"`
	CreatedAt Optional[string] `json:"created_at,omitzero"`
	UpdatedAt Optional[string] `json:"updated_at,omitzero"`
}

func (r *LocationResponse) UnmarshalJSON(data []byte) error {
	type plain LocationResponse
	return decodeObject(data, "LocationResponse", (*plain)(r),
		"id", "name", "address", "city", "postcode", "country")
}

// OrganizationResponse is an organization the user belongs to.
type OrganizationResponse struct {
	ID          ID                        `json:"id"`
	Name        string                    `json:"name"`
	Description Optional[string]          `json:"description,omitzero"`
	Settings    Optional[json.RawMessage] `json:"settings,omitzero"`
	CreatedAt   Optional[string]          `json:"created_at,omitzero"`
	UpdatedAt   Optional[string]          `json:"updated_at,omitzero"`
}

func (r *OrganizationResponse) UnmarshalJSON(data []byte) error {
	type plain OrganizationResponse
	return decodeObject(data, "OrganizationResponse", (*plain)(r), "id", "name")
}

// DimensionResponse is a saved parcel size preset.
type DimensionResponse struct {
	ID           ID               `json:"id"`
	Type         string           `json:"type"`
	Name         Optional[string] `json:"name,omitzero"`
	Service      Optional[string] `json:"service,omitzero"`
	ParcelType   Optional[string] `json:"parcel_type,omitzero"`
	Length       float64          `json:"length"`
	Width        float64          `json:"width"`
	Height       float64          `json:"height"`
	Weight       float64          `json:"weight"`
	UnitOfLength Optional[string] `json:"unit_of_length,omitzero"`
	UnitOfMass   Optional[string] `json:"unit_of_mass,omitzero"`
	CreatedAt    Optional[string] `json:"created_at,omitzero"`
	UpdatedAt    Optional[string] `json:"updated_at,omitzero"`
}

func (r *DimensionResponse) UnmarshalJSON(data []byte) error {
	type plain DimensionResponse
	return decodeObject(data, "DimensionResponse", (*plain)(r),
		"id", "type", "length", "width", "height", "weight")
}

// PrintTemplateResponse is a saved label layout.
type PrintTemplateResponse struct {
	ID        ID                        `json:"id"`
	Carrier   string                    `json:"carrier"`
	Service   string                    `json:"service"`
	Layout    string                    `json:"layout"`
	Metadata  Optional[json.RawMessage] `json:"metadata,omitzero"`
	CreatedAt Optional[string]          `json:"created_at,omitzero"`
	UpdatedAt Optional[string]          `json:"updated_at,omitzero"`
}

func (r *PrintTemplateResponse) UnmarshalJSON(data []byte) error {
	type plain PrintTemplateResponse
	return decodeObject(data, "PrintTemplateResponse", (*plain)(r), "id", "carrier", "service", "layout")
}

// PostalCodeResponse is one postal code with its city.
type PostalCodeResponse struct {
	PostalCode string           `json:"postalCode"`
	City       string           `json:"city"`
	Country    string           `json:"country"`
	State      Optional[string] `json:"state,omitzero"`
	Region     Optional[string] `json:"region,omitzero"`
}

func (r *PostalCodeResponse) UnmarshalJSON(data []byte) error {
	type plain PostalCodeResponse
	return decodeObject(data, "PostalCodeResponse", (*plain)(r), "postalCode", "city", "country")
}

// PostalCodeSuggestionsResponse holds suggestions in server order.
type PostalCodeSuggestionsResponse struct {
	Suggestions []PostalCodeResponse `json:"suggestions"`
}

func (r *PostalCodeSuggestionsResponse) UnmarshalJSON(data []byte) error {
	type plain PostalCodeSuggestionsResponse
	return decodeObject(data, "PostalCodeSuggestionsResponse", (*plain)(r), "suggestions")
}

// CountryInfoResponse keeps the country table as raw JSON.
type CountryInfoResponse struct {
	Countries json.RawMessage `json:"countries"`
}

func (r *CountryInfoResponse) UnmarshalJSON(data []byte) error {
	type plain CountryInfoResponse
	return decodeObject(data, "CountryInfoResponse", (*plain)(r), "countries")
}

// TrackingEventResponse holds the events of one parcel.
type TrackingEventResponse struct {
	TrackingNumber    string           `json:"trackingNumber"`
	Events            json.RawMessage  `json:"events"`
	Status            Optional[string] `json:"status,omitzero"`
	EstimatedDelivery Optional[string] `json:"estimatedDelivery,omitzero"`
}

func (r *TrackingEventResponse) UnmarshalJSON(data []byte) error {
	type plain TrackingEventResponse
	return decodeObject(data, "TrackingEventResponse", (*plain)(r), "trackingNumber", "events")
}

// TrackingLinkResponse is the public tracking page of a parcel.
type TrackingLinkResponse struct {
	TrackingURL    string `json:"trackingUrl"`
	TrackingNumber string `json:"trackingNumber"`
}

func (r *TrackingLinkResponse) UnmarshalJSON(data []byte) error {
	type plain TrackingLinkResponse
	return decodeObject(data, "TrackingLinkResponse", (*plain)(r), "trackingUrl", "trackingNumber")
}

// UserResponse is the user owning the API token.
type UserResponse struct {
	ID                string                    `json:"id"`
	Name              string                    `json:"name"`
	Email             string                    `json:"email"`
	Phone             Optional[string]          `json:"phone,omitzero"`
	Country           Optional[string]          `json:"country,omitzero"`
	Locale            Optional[string]          `json:"locale,omitzero"`
	IsBillingCustomer Optional[bool]            `json:"isBillingCustomer,omitzero"`
	BusinessEntity    Optional[json.RawMessage] `json:"businessEntity,omitzero"`
	Wallet            Optional[json.RawMessage] `json:"wallet,omitzero"`
}

func (r *UserResponse) UnmarshalJSON(data []byte) error {
	type plain UserResponse
	return decodeObject(data, "UserResponse", (*plain)(r), "id", "name", "email")
}

// RegistrationResponse is returned when an account is created.
type RegistrationResponse struct {
	Status  int                    `json:"status"`
	Message Optional[string]       `json:"message,omitzero"`
	User    Optional[UserResponse] `json:"user,omitzero"`
	Token   Optional[string]       `json:"token,omitzero"`
}

func (r *RegistrationResponse) UnmarshalJSON(data []byte) error {
	type plain RegistrationResponse
	return decodeObject(data, "RegistrationResponse", (*plain)(r), "status")
}

// OpaqueData is a response whose "data" member has no fixed shape. The
// payload is kept as raw JSON and may be null.
type OpaqueData struct {
	Data json.RawMessage `json:"data"`
}

// DecodeData unmarshals the payload into v.
func (o *OpaqueData) DecodeData(v any) error {
	if len(o.Data) == 0 || bytes.Equal(o.Data, jsonNull) {
		return &DecodingError{Type: "OpaqueData", Field: "data", Err: ErrMissingField}
	}
	if err := json.Unmarshal(o.Data, v); err != nil {
		return wrapDecodeError("OpaqueData", err)
	}
	return nil
}

func (o *OpaqueData) UnmarshalJSON(data []byte) error {
	type plain OpaqueData
	return decodeObject(data, "OpaqueData", (*plain)(o))
}

// Opaque responses of the balance, contract, template and member endpoints.
type (
	BalanceResponse             struct{ OpaqueData }
	CarrierContractResponse     struct{ OpaqueData }
	ConsignmentTemplateResponse struct{ OpaqueData }
	OrganizationMemberResponse  struct{ OpaqueData }
)

package shipit

import "encoding/json"

// ShipmentRequest is the body for creating, validating and booking
// shipments. Only sender, receiver, parcels and serviceId are required.
type ShipmentRequest struct {
	Sender    Party    `json:"sender"`
	Receiver  Party    `json:"receiver"`
	Parcels   []Parcel `json:"parcels" validate:"required,min=1,dive"`
	ServiceID string   `json:"serviceId" validate:"required"`

	Reference        Optional[string]   `json:"reference,omitzero"`
	Payer            Nullable[Party]    `json:"payer,omitzero"`
	PickupAddress    Nullable[Party]    `json:"pickupAddress,omitzero"`
	PickupID         Optional[string]   `json:"pickupId,omitzero"`
	ReturnShipment   Optional[bool]     `json:"returnShipment,omitzero"`
	ReturnFreightDoc Optional[bool]     `json:"returnFreightDoc,omitzero"`
	ValueAmount      Optional[float64]  `json:"valueAmount,omitzero"`
	FreeText         Optional[string]   `json:"freeText,omitzero"`
	FreeTextPickUp   Optional[string]   `json:"freeTextPickUp,omitzero"`
	Contents         Optional[string]   `json:"contents,omitzero"`
	Proforma         Nullable[Proforma] `json:"proforma,omitzero"`

	Dangerous           Optional[bool] `json:"dangerous,omitzero"`
	ProofOfDelivery     Optional[bool] `json:"proofOfDelivery,omitzero"`
	LeaveAtDoor         Optional[bool] `json:"leaveAtDoor,omitzero"`
	PreNoticeSMS        Optional[bool] `json:"preNoticeSMS,omitzero"`
	PreNoticeEmail      Optional[bool] `json:"preNoticeEmail,omitzero"`
	DeliveryCarryIn     Optional[bool] `json:"deliveryCarryIn,omitzero"`
	Special             Optional[bool] `json:"special,omitzero"`
	CallBeforeDelivery  Optional[bool] `json:"callBeforeDelivery,omitzero"`
	ClimateCompensation Optional[bool] `json:"climateCompensation,omitzero"`

	Items           Optional[[]Item] `json:"items,omitzero"`
	IsQuickShipment Optional[bool]   `json:"isQuickShipment,omitzero"`
	COD             Nullable[COD]    `json:"cod,omitzero"`

	PersonalVerification Optional[bool] `json:"personalVerification,omitzero"`
	IDCheck              Optional[bool] `json:"idCheck,omitzero"`
	SignatureRequired    Optional[bool] `json:"signatureRequired,omitzero"`
	Fragile              Optional[bool] `json:"fragile,omitzero"`
	Delivery             Optional[bool] `json:"delivery,omitzero"`
	Delivery09           Optional[bool] `json:"delivery09,omitzero"`

	Currency      Optional[string] `json:"currency,omitzero"`
	WeightUnit    Optional[string] `json:"weightUnit,omitzero"`
	DimensionUnit Optional[string] `json:"dimensionUnit,omitzero"`

	DateInformation    Nullable[DateInformation]    `json:"dateInformation,omitzero"`
	AdditionalServices Nullable[AdditionalServices] `json:"additionalServices,omitzero"`

	OrganizationID        Optional[int]            `json:"organizationId,omitzero"`
	OrganizationMemberID  Optional[int]            `json:"organizationMemberId,omitzero"`
	Wolt                  Optional[map[string]any] `json:"wolt,omitzero"`
	AssociatedShipments   Optional[[]string]       `json:"associatedShipments,omitzero"`
	CarrierContract       Optional[string]         `json:"carrierContract,omitzero"`
	CarrierContractID     Optional[int]            `json:"carrierContractId,omitzero"`
	ConsignmentTemplateID Optional[int]            `json:"consignmentTemplateId,omitzero"`
	SenderID              Optional[string]         `json:"senderId,omitzero"`
	ReceiverID            Optional[string]         `json:"receiverId,omitzero"`
	PendingShipmentID     Nullable[string]         `json:"pendingShipmentId,omitzero"`

	Type                       Optional[string] `json:"type,omitzero"`
	SelectedPayment            Optional[string] `json:"selectedPayment,omitzero"`
	CartID                     Optional[string] `json:"cartId,omitzero"`
	CartItemID                 Optional[string] `json:"cartItemId,omitzero"`
	ResellerID                 Optional[int]    `json:"resellerId,omitzero"`
	PrintType                  Optional[string] `json:"printType,omitzero"`
	SendOrderConfirmationEmail Optional[bool]   `json:"sendOrderConfirmationEmail,omitzero"`
	WidgetIdentifier           Optional[string] `json:"widgetIdentifier,omitzero"`
	Inventory                  Optional[string] `json:"inventory,omitzero"`
	DropinID                   Optional[string] `json:"dropinId,omitzero"`
	ExternalID                 Optional[string] `json:"externalId,omitzero"`
	PickupInstructions         Optional[string] `json:"pickupInstructions,omitzero"`
	DeliveryInstructions       Optional[string] `json:"deliveryInstructions,omitzero"`
	APIContext                 Optional[string] `json:"apiContext,omitzero"`
}

func (r *ShipmentRequest) UnmarshalJSON(data []byte) error {
	type plain ShipmentRequest
	return decodeObject(data, "ShipmentRequest", (*plain)(r),
		"sender", "receiver", "parcels", "serviceId")
}

// Validate checks the structural invariants of the request: two-letter
// country codes on every present party, at least one parcel, positive
// finite parcel measurements and a service id.
func (r *ShipmentRequest) Validate() error {
	if r == nil {
		return &InvalidPayloadError{Type: "ShipmentRequest", Fields: map[string]string{"body": "is required"}}
	}
	extra := make(map[string]any, 2)
	if payer, ok := r.Payer.Get(); ok {
		extra["payer"] = &payer
	}
	if pickup, ok := r.PickupAddress.Get(); ok {
		extra["pickupAddress"] = &pickup
	}
	return checkPayload("ShipmentRequest", r, extra)
}

// COD holds cash-on-delivery details.
type COD struct {
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currencyCode"`
	Account      string  `json:"account"`
	Bank         string  `json:"bank"`
	Reference    string  `json:"reference"`
}

func (c *COD) UnmarshalJSON(data []byte) error {
	type plain COD
	return decodeObject(data, "COD", (*plain)(c),
		"amount", "currencyCode", "account", "bank", "reference")
}

// Proforma is the customs invoice summary for shipments leaving the
// customs area.
type Proforma struct {
	InvoiceSubTotal     float64 `json:"invoiceSubTotal"`
	OtherCharges        float64 `json:"otherCharges"`
	Insurance           float64 `json:"insurance"`
	IncoTerms           string  `json:"incoTerms"`
	ShipperName         string  `json:"shipperName"`
	InvoiceNumber       string  `json:"invoiceNumber"`
	TotalWeight         float64 `json:"totalWeight"`
	FreightCharges      float64 `json:"freightCharges"`
	InvoiceCurrency     string  `json:"invoiceCurrency"`
	Discount            float64 `json:"discount"`
	InvoiceTotal        float64 `json:"invoiceTotal"`
	ShippingDate        string  `json:"shippingDate"`
	TotalDutiesAndTaxes float64 `json:"totalDutiesAndTaxes"`
	TotalDuties         float64 `json:"totalDuties"`
	TotalTaxes          float64 `json:"totalTaxes"`
}

func (p *Proforma) UnmarshalJSON(data []byte) error {
	type plain Proforma
	return decodeObject(data, "Proforma", (*plain)(p),
		"invoiceSubTotal", "otherCharges", "insurance", "incoTerms",
		"shipperName", "invoiceNumber", "totalWeight", "freightCharges",
		"invoiceCurrency", "discount", "invoiceTotal", "shippingDate",
		"totalDutiesAndTaxes", "totalDuties", "totalTaxes")
}

// Item is one customs line item.
type Item struct {
	Quantity        int     `json:"quantity"`
	QuantityUnit    string  `json:"quantityUnit"`
	Description     string  `json:"description"`
	UnitWeight      float64 `json:"unitWeight"`
	UnitValue       float64 `json:"unitValue"`
	HSTariffCode    string  `json:"hsTariffCode"`
	CountryOfOrigin string  `json:"countryOfOrigin"`
}

func (i *Item) UnmarshalJSON(data []byte) error {
	type plain Item
	return decodeObject(data, "Item", (*plain)(i),
		"quantity", "quantityUnit", "description", "unitWeight",
		"unitValue", "hsTariffCode", "countryOfOrigin")
}

// AdditionalServices toggles carrier add-on services.
type AdditionalServices struct {
	DangerousGoods      Optional[bool] `json:"dangerousGoods,omitzero"`
	CallAdvising        Optional[bool] `json:"callAdvising,omitzero"`
	EmailAdvising       Optional[bool] `json:"emailAdvising,omitzero"`
	ReceiptInTerminal   Optional[bool] `json:"receiptInTerminal,omitzero"`
	ReceptionInTerminal Optional[bool] `json:"receptionInTerminal,omitzero"`
	HiabPickUp          Optional[bool] `json:"hiabPickUp,omitzero"`
	HiabDelivery        Optional[bool] `json:"hiabDelivery,omitzero"`
	TailLiftLoading     Optional[bool] `json:"tailLiftLoading,omitzero"`
	TailLiftUnloading   Optional[bool] `json:"tailLiftUnloading,omitzero"`
	ScheduledPickups    Optional[bool] `json:"scheduledPickups,omitzero"`
	ScheduledDeliveries Optional[bool] `json:"scheduledDeliveries,omitzero"`
	CarryingGoods       Optional[bool] `json:"carryingGoods,omitzero"`
	EdibleTransport     Optional[bool] `json:"edibleTransport,omitzero"`
	FrozenTransport     Optional[bool] `json:"frozenTransport,omitzero"`
	ColdTransport       Optional[bool] `json:"coldTransport,omitzero"`
	WarmTransport       Optional[bool] `json:"warmTransport,omitzero"`
	SaturdayDelivery    Optional[bool] `json:"saturdayDelivery,omitzero"`
	Pharmaceuticals     Optional[bool] `json:"pharmaceuticals,omitzero"`
	ExpressDelivery     Optional[bool] `json:"expressDelivery,omitzero"`
	Insurance           Optional[bool] `json:"insurance,omitzero"`
	AdditionalDriver    Optional[bool] `json:"additionalDriver,omitzero"`
	IndoorDelivery      Optional[bool] `json:"indoorDelivery,omitzero"`
}

func (a *AdditionalServices) UnmarshalJSON(data []byte) error {
	type plain AdditionalServices
	return decodeObject(data, "AdditionalServices", (*plain)(a))
}

// DateInformation carries requested collection and delivery windows as
// the API's date and time strings.
type DateInformation struct {
	CollectionDate         Optional[string] `json:"collectionDate,omitzero"`
	CollectionTimeEarliest Optional[string] `json:"collectionTimeEarliest,omitzero"`
	CollectionTimeLatest   Optional[string] `json:"collectionTimeLatest,omitzero"`
	DeliveryDate           Optional[string] `json:"deliveryDate,omitzero"`
	DeliveryTimeEarliest   Optional[string] `json:"deliveryTimeEarliest,omitzero"`
	DeliveryTimeLatest     Optional[string] `json:"deliveryTimeLatest,omitzero"`
}

func (d *DateInformation) UnmarshalJSON(data []byte) error {
	type plain DateInformation
	return decodeObject(data, "DateInformation", (*plain)(d))
}

var _ json.Unmarshaler = (*ShipmentRequest)(nil)

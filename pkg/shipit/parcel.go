package shipit

// Parcel is one physical package. Dimensions are in centimetres and the
// weight in kilograms unless the shipment says otherwise.
type Parcel struct {
	Copies         Optional[int]            `json:"copies,omitzero"`
	Type           Optional[string]         `json:"type,omitzero"`
	Length         float64                  `json:"length" validate:"gt=0,finite"`
	Width          float64                  `json:"width" validate:"gt=0,finite"`
	Height         float64                  `json:"height" validate:"gt=0,finite"`
	Weight         float64                  `json:"weight" validate:"gt=0,finite"`
	DangerousGoods Nullable[DangerousGoods] `json:"dangerousGoods,omitzero"`
}

func (p *Parcel) UnmarshalJSON(data []byte) error {
	type plain Parcel
	return decodeObject(data, "Parcel", (*plain)(p), "length", "width", "height", "weight")
}

// DangerousGoods describes ADR-classified contents of a parcel.
type DangerousGoods struct {
	ADRClass          string         `json:"adrClass"`
	Description       string         `json:"description"`
	HazardCode        string         `json:"hazardCode"`
	NetWeight         float64        `json:"netWeight"`
	PackageCode       string         `json:"packageCode"`
	PackageType       string         `json:"packageType"`
	TechnicalDescr    string         `json:"technicalDescr"`
	UNCode            string         `json:"unCode"`
	LimitedQuantities Optional[bool] `json:"limitedQuantities,omitzero"`
}

func (d *DangerousGoods) UnmarshalJSON(data []byte) error {
	type plain DangerousGoods
	return decodeObject(data, "DangerousGoods", (*plain)(d),
		"adrClass", "description", "hazardCode", "netWeight",
		"packageCode", "packageType", "technicalDescr", "unCode")
}

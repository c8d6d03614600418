package shipit

// Party is a sender, receiver, payer or pickup address.
type Party struct {
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Phone    string           `json:"phone"`
	Address  string           `json:"address"`
	Address2 Optional[string] `json:"address2,omitzero"`
	City     string           `json:"city"`
	Postcode string           `json:"postcode"`
	State    Optional[string] `json:"state,omitzero"`
	// Country is an ISO 3166-1 alpha-2 code.
	Country       string           `json:"country" validate:"len=2"`
	IsCompany     Optional[bool]   `json:"isCompany,omitzero"`
	ContactPerson Optional[string] `json:"contactPerson,omitzero"`

	// Customs and tax identifiers.
	EORINumber                   Nullable[string] `json:"eoriNumber,omitzero"`
	HMRCNumber                   Nullable[string] `json:"hmrcNumber,omitzero"`
	IOSSNumber                   Nullable[string] `json:"iossNumber,omitzero"`
	IOSSNumberIssuer             Nullable[string] `json:"iossNumberIssuer,omitzero"`
	VATNumber                    Nullable[string] `json:"vatNumber,omitzero"`
	VOECNumber                   Nullable[string] `json:"voecNumber,omitzero"`
	SocialSecurityNumber         Nullable[string] `json:"socialSecurityNumber,omitzero"`
	EmployerIdentificationNumber Nullable[string] `json:"employerIdentificationNumber,omitzero"`
}

func (p *Party) UnmarshalJSON(data []byte) error {
	type plain Party
	return decodeObject(data, "Party", (*plain)(p),
		"name", "email", "phone", "address", "city", "postcode", "country")
}

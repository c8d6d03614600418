package shipit

import "context"

func opaqueCollection[T any](singular, plural, base string) collection[*T, *T] {
	decode := decodeInto[T](singular + "Response")
	return collection[*T, *T]{
		singular: singular,
		plural:   plural,
		base:     base,
		one:      decode,
		many:     decode,
	}
}

var (
	carrierContracts     = opaqueCollection[CarrierContractResponse]("CarrierContract", "CarrierContracts", "/v1/carrier-contracts")
	consignmentTemplates = opaqueCollection[ConsignmentTemplateResponse]("ConsignmentTemplate", "ConsignmentTemplates", "/v1/consignment-templates")
)

// GetCarrierContractsRequest lists carrier contracts.
func GetCarrierContractsRequest() Request[*CarrierContractResponse] { return carrierContracts.list() }

// GetCarrierContractRequest reads one carrier contract.
func GetCarrierContractRequest(id string) Request[*CarrierContractResponse] {
	return carrierContracts.show(id)
}

// CreateCarrierContractRequest creates a carrier contract from data.
func CreateCarrierContractRequest(data map[string]any) Request[*CarrierContractResponse] {
	return carrierContracts.create(data)
}

// UpdateCarrierContractRequest replaces the fields of contract id with data.
func UpdateCarrierContractRequest(id string, data map[string]any) Request[*CarrierContractResponse] {
	return carrierContracts.update(id, data)
}

// DeleteCarrierContractRequest deletes a carrier contract.
func DeleteCarrierContractRequest(id string) Request[*CarrierContractResponse] {
	return carrierContracts.remove(id)
}

// GetConsignmentTemplatesRequest lists consignment templates.
func GetConsignmentTemplatesRequest() Request[*ConsignmentTemplateResponse] {
	return consignmentTemplates.list()
}

// GetConsignmentTemplateRequest reads one consignment template.
func GetConsignmentTemplateRequest(id string) Request[*ConsignmentTemplateResponse] {
	return consignmentTemplates.show(id)
}

// CreateConsignmentTemplateRequest creates a consignment template.
func CreateConsignmentTemplateRequest(data map[string]any) Request[*ConsignmentTemplateResponse] {
	return consignmentTemplates.create(data)
}

// UpdateConsignmentTemplateRequest updates template id.
func UpdateConsignmentTemplateRequest(id string, data map[string]any) Request[*ConsignmentTemplateResponse] {
	return consignmentTemplates.update(id, data)
}

// DeleteConsignmentTemplateRequest deletes a consignment template.
func DeleteConsignmentTemplateRequest(id string) Request[*ConsignmentTemplateResponse] {
	return consignmentTemplates.remove(id)
}

// CarrierContractsResource manages the account's own carrier contracts.
type CarrierContractsResource struct {
	c *Connector
}

// List returns the carrier contracts of the account.
func (r *CarrierContractsResource) List(ctx context.Context) (*CarrierContractResponse, error) {
	return Send(ctx, r.c, GetCarrierContractsRequest())
}

// Get returns contract id.
func (r *CarrierContractsResource) Get(ctx context.Context, id string) (*CarrierContractResponse, error) {
	return Send(ctx, r.c, GetCarrierContractRequest(id))
}

// Create adds a carrier contract.
func (r *CarrierContractsResource) Create(ctx context.Context, data map[string]any) (*CarrierContractResponse, error) {
	return Send(ctx, r.c, CreateCarrierContractRequest(data))
}

// Update changes contract id.
func (r *CarrierContractsResource) Update(ctx context.Context, id string, data map[string]any) (*CarrierContractResponse, error) {
	return Send(ctx, r.c, UpdateCarrierContractRequest(id, data))
}

// Delete removes contract id.
func (r *CarrierContractsResource) Delete(ctx context.Context, id string) (*CarrierContractResponse, error) {
	return Send(ctx, r.c, DeleteCarrierContractRequest(id))
}

// ConsignmentTemplatesResource manages reusable shipment templates.
type ConsignmentTemplatesResource struct {
	c *Connector
}

// List returns the saved consignment templates.
func (r *ConsignmentTemplatesResource) List(ctx context.Context) (*ConsignmentTemplateResponse, error) {
	return Send(ctx, r.c, GetConsignmentTemplatesRequest())
}

// Get returns template id.
func (r *ConsignmentTemplatesResource) Get(ctx context.Context, id string) (*ConsignmentTemplateResponse, error) {
	return Send(ctx, r.c, GetConsignmentTemplateRequest(id))
}

// Create saves a new consignment template.
func (r *ConsignmentTemplatesResource) Create(ctx context.Context, data map[string]any) (*ConsignmentTemplateResponse, error) {
	return Send(ctx, r.c, CreateConsignmentTemplateRequest(data))
}

// Update changes template id.
func (r *ConsignmentTemplatesResource) Update(ctx context.Context, id string, data map[string]any) (*ConsignmentTemplateResponse, error) {
	return Send(ctx, r.c, UpdateConsignmentTemplateRequest(id, data))
}

// Delete removes template id.
func (r *ConsignmentTemplatesResource) Delete(ctx context.Context, id string) (*ConsignmentTemplateResponse, error) {
	return Send(ctx, r.c, DeleteConsignmentTemplateRequest(id))
}

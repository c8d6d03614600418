package shipit

import "context"

var organizations = collection[*OrganizationResponse, []OrganizationResponse]{
	singular: "Organization",
	plural:   "Organizations",
	base:     "/v1/organizations",
	one:      decodeInto[OrganizationResponse]("OrganizationResponse"),
	many:     decodeList[OrganizationResponse]("OrganizationResponse"),
}

// GetOrganizationsRequest lists the organizations of the user.
func GetOrganizationsRequest() Request[[]OrganizationResponse] { return organizations.list() }

// GetOrganizationRequest reads one organization.
func GetOrganizationRequest(id string) Request[*OrganizationResponse] {
	return organizations.show(id)
}

// CreateOrganizationRequest creates an organization.
func CreateOrganizationRequest(data map[string]any) Request[*OrganizationResponse] {
	return organizations.create(data)
}

// UpdateOrganizationRequest updates organization id.
func UpdateOrganizationRequest(id string, data map[string]any) Request[*OrganizationResponse] {
	return organizations.update(id, data)
}

// DeleteOrganizationRequest deletes an organization.
func DeleteOrganizationRequest(id string) Request[*OrganizationResponse] {
	return organizations.remove(id)
}

// OrganizationsResource manages organizations.
type OrganizationsResource struct {
	c *Connector
}

// List returns the organizations in server order.
func (r *OrganizationsResource) List(ctx context.Context) ([]OrganizationResponse, error) {
	return Send(ctx, r.c, GetOrganizationsRequest())
}

// Get returns organization id.
func (r *OrganizationsResource) Get(ctx context.Context, id string) (*OrganizationResponse, error) {
	return Send(ctx, r.c, GetOrganizationRequest(id))
}

// Create adds an organization.
func (r *OrganizationsResource) Create(ctx context.Context, data map[string]any) (*OrganizationResponse, error) {
	return Send(ctx, r.c, CreateOrganizationRequest(data))
}

// Update changes organization id.
func (r *OrganizationsResource) Update(ctx context.Context, id string, data map[string]any) (*OrganizationResponse, error) {
	return Send(ctx, r.c, UpdateOrganizationRequest(id, data))
}

// Delete removes organization id and returns it.
func (r *OrganizationsResource) Delete(ctx context.Context, id string) (*OrganizationResponse, error) {
	return Send(ctx, r.c, DeleteOrganizationRequest(id))
}

func organizationMembers(orgID string) collection[*OrganizationMemberResponse, *OrganizationMemberResponse] {
	decode := decodeInto[OrganizationMemberResponse]("OrganizationMemberResponse")
	return collection[*OrganizationMemberResponse, *OrganizationMemberResponse]{
		singular: "OrganizationMember",
		plural:   "OrganizationMembers",
		base:     pathf("/v1/organizations", orgID) + "/members",
		one:      decode,
		many:     decode,
	}
}

// GetOrganizationMembersRequest lists the members of orgID.
func GetOrganizationMembersRequest(orgID string) Request[*OrganizationMemberResponse] {
	return organizationMembers(orgID).list()
}

// GetOrganizationMemberRequest reads one member.
func GetOrganizationMemberRequest(orgID, memberID string) Request[*OrganizationMemberResponse] {
	return organizationMembers(orgID).show(memberID)
}

// CreateOrganizationMemberRequest adds a member to orgID.
func CreateOrganizationMemberRequest(orgID string, data map[string]any) Request[*OrganizationMemberResponse] {
	return organizationMembers(orgID).create(data)
}

// UpdateOrganizationMemberRequest updates a member.
func UpdateOrganizationMemberRequest(orgID, memberID string, data map[string]any) Request[*OrganizationMemberResponse] {
	return organizationMembers(orgID).update(memberID, data)
}

// DeleteOrganizationMemberRequest removes a member from orgID.
func DeleteOrganizationMemberRequest(orgID, memberID string) Request[*OrganizationMemberResponse] {
	return organizationMembers(orgID).remove(memberID)
}

// OrganizationMembersResource manages the members of one organization.
// Member payloads are opaque.
type OrganizationMembersResource struct {
	c *Connector
}

// List returns the members of orgID.
func (r *OrganizationMembersResource) List(ctx context.Context, orgID string) (*OrganizationMemberResponse, error) {
	return Send(ctx, r.c, GetOrganizationMembersRequest(orgID))
}

// Get returns one member.
func (r *OrganizationMembersResource) Get(ctx context.Context, orgID, memberID string) (*OrganizationMemberResponse, error) {
	return Send(ctx, r.c, GetOrganizationMemberRequest(orgID, memberID))
}

// Create adds a member.
func (r *OrganizationMembersResource) Create(ctx context.Context, orgID string, data map[string]any) (*OrganizationMemberResponse, error) {
	return Send(ctx, r.c, CreateOrganizationMemberRequest(orgID, data))
}

// Update changes a member.
func (r *OrganizationMembersResource) Update(ctx context.Context, orgID, memberID string, data map[string]any) (*OrganizationMemberResponse, error) {
	return Send(ctx, r.c, UpdateOrganizationMemberRequest(orgID, memberID, data))
}

// Delete removes a member.
func (r *OrganizationMembersResource) Delete(ctx context.Context, orgID, memberID string) (*OrganizationMemberResponse, error) {
	return Send(ctx, r.c, DeleteOrganizationMemberRequest(orgID, memberID))
}

package shipit

import "context"

var locations = collection[*LocationResponse, []LocationResponse]{
	singular: "Location",
	plural:   "Locations",
	base:     "/v1/locations",
	one:      decodeInto[LocationResponse]("LocationResponse"),
	many:     decodeList[LocationResponse]("LocationResponse"),
}

// GetLocationsRequest lists saved locations. Both a bare array and a
// {"data": [...]} envelope are accepted.
func GetLocationsRequest() Request[[]LocationResponse] { return locations.list() }

// GetLocationRequest reads one saved location.
func GetLocationRequest(id string) Request[*LocationResponse] { return locations.show(id) }

// CreateLocationRequest saves a new location.
func CreateLocationRequest(data map[string]any) Request[*LocationResponse] {
	return locations.create(data)
}

// UpdateLocationRequest updates location id with data.
func UpdateLocationRequest(id string, data map[string]any) Request[*LocationResponse] {
	return locations.update(id, data)
}

// DeleteLocationRequest deletes a location.
func DeleteLocationRequest(id string) Request[*LocationResponse] { return locations.remove(id) }

// LocationsResource manages the account's saved addresses.
type LocationsResource struct {
	c *Connector
}

// List returns the saved locations in server order.
func (r *LocationsResource) List(ctx context.Context) ([]LocationResponse, error) {
	return Send(ctx, r.c, GetLocationsRequest())
}

// Get returns location id.
func (r *LocationsResource) Get(ctx context.Context, id string) (*LocationResponse, error) {
	return Send(ctx, r.c, GetLocationRequest(id))
}

// Create saves a location and returns it.
func (r *LocationsResource) Create(ctx context.Context, data map[string]any) (*LocationResponse, error) {
	return Send(ctx, r.c, CreateLocationRequest(data))
}

// Update changes location id.
func (r *LocationsResource) Update(ctx context.Context, id string, data map[string]any) (*LocationResponse, error) {
	return Send(ctx, r.c, UpdateLocationRequest(id, data))
}

// Delete removes the location and returns it as the API last held it.
func (r *LocationsResource) Delete(ctx context.Context, id string) (*LocationResponse, error) {
	return Send(ctx, r.c, DeleteLocationRequest(id))
}

package shipit_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/shipit/pkg/shipit"
	"github.com/tournevent/shipit/pkg/shipit/mock"
)

func TestLocations_ListKeepsServerOrder(t *testing.T) {
	doer := &capturingDoer{status: http.StatusOK, body: `[
		{"id":"c","name":"C","address":"a","city":"c","postcode":"p","country":"FI"},
		{"id":"a","name":"A","address":"a","city":"c","postcode":"p","country":"FI"},
		{"id":"b","name":"B","address":"a","city":"c","postcode":"p","country":"FI","is_default":true}
	]`}
	c := newTestConnector(t, doer)

	locations, err := c.Locations().List(context.Background())
	require.NoError(t, err)

	ids := make([]shipit.ID, 0, len(locations))
	for _, l := range locations {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []shipit.ID{"c", "a", "b"}, ids)
	assert.True(t, locations[2].IsDefault.OrElse(false))
}

func TestListFields_KeepServerOrder(t *testing.T) {
	t.Run("agents", func(t *testing.T) {
		var resp shipit.AgentsResponse
		require.NoError(t, json.Unmarshal([]byte(`{"status":1,"locations":[
			{"id":"c","name":"C","address1":"x","city":"y","zipcode":"1","countryCode":"FI"},
			{"id":"a","name":"A","address1":"x","city":"y","zipcode":"1","countryCode":"FI"},
			{"id":"b","name":"B","address1":"x","city":"y","zipcode":"1","countryCode":"FI"}
		]}`), &resp))

		ids := make([]string, 0, len(resp.Locations))
		for _, l := range resp.Locations {
			ids = append(ids, l.ID)
		}
		assert.Equal(t, []string{"c", "a", "b"}, ids)
	})

	t.Run("shipping methods", func(t *testing.T) {
		var resp shipit.ShippingMethodsResponse
		require.NoError(t, json.Unmarshal([]byte(`{"status":1,"methods":[
			{"serviceId":"c","carrier":"Posti"},
			{"serviceId":"a","carrier":"DHL"},
			{"serviceId":"b","carrier":"Matkahuolto"}
		]}`), &resp))

		ids := make([]string, 0, len(resp.Methods))
		for _, m := range resp.Methods {
			ids = append(ids, m.ServiceID)
		}
		assert.Equal(t, []string{"c", "a", "b"}, ids)
	})

	t.Run("postal code suggestions", func(t *testing.T) {
		var resp shipit.PostalCodeSuggestionsResponse
		require.NoError(t, json.Unmarshal([]byte(`{"suggestions":[
			{"postalCode":"c","city":"Turku","country":"FI"},
			{"postalCode":"a","city":"Espoo","country":"FI"},
			{"postalCode":"b","city":"Vantaa","country":"FI"}
		]}`), &resp))

		codes := make([]string, 0, len(resp.Suggestions))
		for _, s := range resp.Suggestions {
			codes = append(codes, s.PostalCode)
		}
		assert.Equal(t, []string{"c", "a", "b"}, codes)
	})
}

func TestAgentResponse_NullOptionalIsUnsetButNullRequiredFails(t *testing.T) {
	var agent shipit.AgentResponse
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","name":"A","address1":"x","city":"y",
		"zipcode":"1","countryCode":"FI","serviceId":null,"carrier":null}`), &agent))
	assert.False(t, agent.ServiceID.IsSet())
	assert.False(t, agent.Carrier.IsSet())

	err := json.Unmarshal([]byte(`{"id":"a","name":null,"address1":"x","city":"y",
		"zipcode":"1","countryCode":"FI"}`), &agent)
	var decErr *shipit.DecodingError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, "name", decErr.Field)
}

func TestDecodeList_Shapes(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantLen int
		wantErr bool
	}{
		{name: "bare array", body: `[{"id":1,"name":"Acme"}]`, wantLen: 1},
		{name: "data envelope", body: `{"data":[{"id":1,"name":"Acme"},{"id":2,"name":"Beta"}]}`, wantLen: 2},
		{name: "empty array", body: `[]`, wantLen: 0},
		{name: "null", body: `null`, wantLen: 0},
		{name: "envelope without data", body: `{"items":[]}`, wantErr: true},
		{name: "element missing name", body: `[{"id":1}]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestConnector(t, &capturingDoer{status: http.StatusOK, body: tt.body})

			orgs, err := c.Organizations().List(context.Background())
			if tt.wantErr {
				var decErr *shipit.DecodingError
				assert.True(t, errors.As(err, &decErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, orgs)
			assert.Len(t, orgs, tt.wantLen)
		})
	}
}

func TestShippingMethodList_WrapsBareArray(t *testing.T) {
	srv := mock.NewServer()
	defer srv.Close()

	list, err := srv.Connector("tok").ShippingMethods().List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Data, 3)
	assert.Equal(t, mock.ServicePostiParcel, list.Data[0].ServiceID)
	assert.Equal(t, "Posti", list.Data[0].Carrier)
	assert.Equal(t, 7.9, list.Data[0].Price.OrElse(0))
	assert.True(t, list.Data[2].RequiresHSTariffCode.OrElse(false))
}

func TestCurrentUser_ReadsDataMember(t *testing.T) {
	srv := mock.NewServer()
	defer srv.Close()

	user, err := srv.Connector("tok").User().Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "usr-1", user.ID)
	assert.Equal(t, "mock@example.com", user.Email)
	assert.Equal(t, "fi", user.Locale.OrElse(""))
	assert.False(t, user.Phone.IsSet())

	call, ok := srv.LastCall()
	require.True(t, ok)
	assert.Equal(t, "Bearer tok", call.Header.Get("Authorization"))
}

func TestCurrentUser_MissingDataMember(t *testing.T) {
	c := newTestConnector(t, &capturingDoer{status: http.StatusOK, body: `{"data":null}`})

	_, err := c.User().Current(context.Background())

	var decErr *shipit.DecodingError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, "data", decErr.Field)
}

func TestOpaqueData_DecodeData(t *testing.T) {
	c := newTestConnector(t, &capturingDoer{
		status: http.StatusOK,
		body:   `{"data":{"balance":12.5,"currency":"EUR"}}`,
	})

	resp, err := c.Balance().Get(context.Background(), "b1")
	require.NoError(t, err)

	var balance struct {
		Balance  float64 `json:"balance"`
		Currency string  `json:"currency"`
	}
	require.NoError(t, resp.DecodeData(&balance))
	assert.Equal(t, 12.5, balance.Balance)
	assert.Equal(t, "EUR", balance.Currency)
}

func TestOpaqueData_NullData(t *testing.T) {
	c := newTestConnector(t, &capturingDoer{status: http.StatusOK, body: `{"data":null}`})

	resp, err := c.CarrierContracts().List(context.Background())
	require.NoError(t, err)

	var v map[string]any
	err = resp.DecodeData(&v)
	assert.True(t, errors.Is(err, shipit.ErrMissingField))
}

func TestShipmentsCreate_AgainstMockServer(t *testing.T) {
	srv := mock.NewServer()
	defer srv.Close()

	resp, err := srv.Connector("tok").Shipments().Create(context.Background(), minimalShipment())
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Status)

	number, ok := resp.TrackingNumber.Get()
	require.True(t, ok)
	assert.Contains(t, number, "JJFI")

	call, ok := srv.LastCall()
	require.True(t, ok)
	assert.Equal(t, http.MethodPut, call.Method)

	var sent shipit.ShipmentRequest
	require.NoError(t, call.DecodeBody(&sent))
	assert.Equal(t, "POSTI.2103", sent.ServiceID)
	assert.Equal(t, "Helsinki", sent.Sender.City)
}

func TestShippingMethodsResponse_OptionalLocations(t *testing.T) {
	var resp shipit.ShippingMethodsResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"status": 1,
		"methods": [{"serviceId":"POSTI.2103","carrier":"Posti"}],
		"locations": [{"id":"1","name":"Kiosk","address":"Street 1"}]
	}`), &resp))

	locations, ok := resp.Locations.Get()
	require.True(t, ok)
	require.Len(t, locations, 1)
	assert.Equal(t, "Kiosk", locations[0].Name)
	assert.False(t, resp.CartID.IsSet())
}

func TestQuickShippingMethods_RequiresMostUsed(t *testing.T) {
	var resp shipit.QuickShippingMethodsResponse
	err := json.Unmarshal([]byte(`{"status":1,"methods":[]}`), &resp)

	var decErr *shipit.DecodingError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, "mostUsed", decErr.Field)
}

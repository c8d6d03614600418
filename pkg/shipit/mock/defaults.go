package mock

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Service ids returned by the canned shipping method endpoints.
const (
	ServicePostiParcel = "POSTI.2103"
	ServiceMatkahuolto = "MH.10"
	ServiceDHLExpress  = "DHLEXPRESS.WPX"
)

var defaultMethods = []map[string]any{
	{
		"serviceId":              ServicePostiParcel,
		"carrier":                "Posti",
		"serviceName":            "Postipaketti",
		"price":                  7.9,
		"priceVat0":              6.3,
		"currency":               "EUR",
		"pickup":                 false,
		"deliveryTime":           "1-2",
		"isPickupLocationMethod": true,
	},
	{
		"serviceId":   ServiceMatkahuolto,
		"carrier":     "Matkahuolto",
		"serviceName": "Lähellä-paketti",
		"price":       6.5,
		"currency":    "EUR",
	},
	{
		"serviceId":            ServiceDHLExpress,
		"carrier":              "DHL Express",
		"serviceName":          "Express Worldwide",
		"price":                42,
		"currency":             "EUR",
		"requiresHSTariffCode": true,
	},
}

func (s *Server) registerDefaults() {
	s.RespondJSON(http.MethodGet, "/v1/list-methods", http.StatusOK, defaultMethods)

	s.RespondJSON(http.MethodPost, "/v1/shipping-methods", http.StatusOK, map[string]any{
		"status":  1,
		"methods": defaultMethods,
	})

	s.RespondJSON(http.MethodGet, "/v1/users/me", http.StatusOK, map[string]any{
		"data": map[string]any{
			"id":     "usr-1",
			"name":   "Mock User",
			"email":  "mock@example.com",
			"locale": "fi",
		},
	})

	s.RespondJSON(http.MethodPut, "/v1/validate-shipment", http.StatusOK, map[string]any{
		"status": 1,
		"valid":  true,
	})

	s.Handle(http.MethodPut, "/v1/shipment", func(w http.ResponseWriter, _ *http.Request) {
		trackingNumber := "JJFI" + strings.ToUpper(uuid.New().String()[:12])
		writeJSON(w, http.StatusOK, encode(map[string]any{
			"status":         1,
			"trackingNumber": trackingNumber,
			"orderId":        "ord-" + uuid.New().String()[:8],
			"trackingUrls":   []string{"https://tracking.example.com/" + trackingNumber},
		}))
	})

	s.Handle(http.MethodGet, "/v1/tracking-link/{trackingNumber}", func(w http.ResponseWriter, r *http.Request) {
		number, err := url.PathUnescape(strings.TrimPrefix(r.URL.EscapedPath(), "/v1/tracking-link/"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, encode(map[string]any{"code": 400, "message": err.Error()}))
			return
		}
		writeJSON(w, http.StatusOK, encode(map[string]any{
			"trackingNumber": number,
			"trackingUrl":    "https://tracking.example.com/" + url.PathEscape(number),
		}))
	})
}

package shipit

import (
	"context"
	"net/http"
	"net/url"
)

// GetCountryInfoRequest reads the postal code formats per country.
func GetCountryInfoRequest() Request[*CountryInfoResponse] {
	return Request[*CountryInfoResponse]{
		Name:   "GetCountryInfo",
		Method: http.MethodGet,
		Path:   "/postalcode/country-info",
		Decode: decodeInto[CountryInfoResponse]("CountryInfoResponse"),
	}
}

// GetMatchingPostalCodesRequest resolves a postal code from a partial address.
func GetMatchingPostalCodesRequest(data *PostalCodeQuery) Request[*PostalCodeResponse] {
	return Request[*PostalCodeResponse]{
		Name:   "GetMatchingPostalCodes",
		Method: http.MethodPost,
		Path:   "/v1/postal-codes",
		Body:   data,
		Decode: decodeInto[PostalCodeResponse]("PostalCodeResponse"),
	}
}

// GetPostalCodeSuggestionsRequest sends query as URL parameters.
func GetPostalCodeSuggestionsRequest(query url.Values) Request[*PostalCodeSuggestionsResponse] {
	return Request[*PostalCodeSuggestionsResponse]{
		Name:   "GetPostalCodeSuggestions",
		Method: http.MethodGet,
		Path:   "/postalcode/suggestions",
		Query:  query,
		Decode: decodeInto[PostalCodeSuggestionsResponse]("PostalCodeSuggestionsResponse"),
	}
}

// PostalCodesResource looks up postal codes.
type PostalCodesResource struct {
	c *Connector
}

// Match returns the postal code matching data.
func (r *PostalCodesResource) Match(ctx context.Context, data *PostalCodeQuery) (*PostalCodeResponse, error) {
	return Send(ctx, r.c, GetMatchingPostalCodesRequest(data))
}

// Suggestions returns candidate postal codes in server order.
func (r *PostalCodesResource) Suggestions(ctx context.Context, query url.Values) (*PostalCodeSuggestionsResponse, error) {
	return Send(ctx, r.c, GetPostalCodeSuggestionsRequest(query))
}

// CountryInfo returns the supported countries.
func (r *PostalCodesResource) CountryInfo(ctx context.Context) (*CountryInfoResponse, error) {
	return Send(ctx, r.c, GetCountryInfoRequest())
}

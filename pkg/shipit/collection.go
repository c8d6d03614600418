package shipit

import "net/http"

// collection builds the five CRUD request definitions shared by the
// account resources (locations, organizations, contracts and so on).
type collection[One, Many any] struct {
	singular string
	plural   string
	base     string
	one      func([]byte) (One, error)
	many     func([]byte) (Many, error)
}

func (e collection[One, Many]) list() Request[Many] {
	return Request[Many]{
		Name:   "Get" + e.plural,
		Method: http.MethodGet,
		Path:   e.base,
		Decode: e.many,
	}
}

func (e collection[One, Many]) show(id string) Request[One] {
	return Request[One]{
		Name:   "Get" + e.singular,
		Method: http.MethodGet,
		Path:   pathf(e.base, id),
		Decode: e.one,
	}
}

func (e collection[One, Many]) create(data map[string]any) Request[One] {
	return Request[One]{
		Name:   "Create" + e.singular,
		Method: http.MethodPost,
		Path:   e.base,
		Body:   rawBody(data),
		Decode: e.one,
	}
}

func (e collection[One, Many]) update(id string, data map[string]any) Request[One] {
	return Request[One]{
		Name:   "Update" + e.singular,
		Method: http.MethodPut,
		Path:   pathf(e.base, id),
		Body:   rawBody(data),
		Decode: e.one,
	}
}

func (e collection[One, Many]) remove(id string) Request[One] {
	return Request[One]{
		Name:   "Delete" + e.singular,
		Method: http.MethodDelete,
		Path:   pathf(e.base, id),
		Decode: e.one,
	}
}

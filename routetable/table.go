package routetable

import (
	"fmt"

	"github.com/forestrie/go-meshlabel/label"
)

// Table is an immutable set of built routes, safe for concurrent readers.
type Table struct {
	routes []Route
	byID   map[string]int
}

func newTable(routes []Route) *Table {
	t := &Table{routes: routes, byID: make(map[string]int, len(routes))}
	for i, r := range routes {
		t.byID[r.ID] = i
	}
	return t
}

// Len is the number of routes, usable or not.
func (t *Table) Len() int { return len(t.routes) }

// Routes returns a copy of all routes in request order.
func (t *Table) Routes() []Route {
	return append([]Route(nil), t.routes...)
}

// Get returns the route with the given id.
func (t *Table) Get(id string) (Route, bool) {
	i, ok := t.byID[id]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Through returns the usable routes whose label continues midPath, in request
// order.
func (t *Table) Through(midPath string) ([]Route, error) {
	m, err := label.ParseLabel(midPath)
	if err != nil {
		return nil, err
	}
	var out []Route
	for _, r := range t.routes {
		if !r.Usable {
			continue
		}
		l, err := label.ParseLabel(r.Label)
		if err != nil {
			return nil, fmt.Errorf("route %s: %w", r.ID, err)
		}
		if label.RoutesThroughLabel(l, m) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Prefix returns the label of route id as seen from the node midPath away
// from the source.
func (t *Table) Prefix(id, midPath string) (string, error) {
	r, ok := t.Get(id)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrRouteNotFound, id)
	}
	if !r.Usable {
		return "", fmt.Errorf("%w: %q", ErrUnusable, id)
	}
	return label.Unsplice(r.Label, midPath)
}

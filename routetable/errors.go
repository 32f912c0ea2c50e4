package routetable

import "errors"

var (
	ErrDuplicateID   = errors.New("routetable: duplicate route id")
	ErrRouteNotFound = errors.New("routetable: route not found")
	ErrUnusable      = errors.New("routetable: route overflowed and has no usable label")
)

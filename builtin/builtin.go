// Package builtin ships exemplar's own catalog of Go teaching units. Each
// unit demonstrates one language feature with deterministic printed output
// and carries its expected output, so the whole catalog doubles as a
// self-verifying regression suite for the examples.
package builtin

import (
	"github.com/hupe1980/exemplar/catalog"
	"github.com/hupe1980/exemplar/core"
)

// Topic labels used by the built-in catalog.
const (
	TopicClosures    = "Closures"
	TopicGenerics    = "Generics"
	TopicErrors      = "Error Handling"
	TopicInterfaces  = "Interfaces"
	TopicEnums       = "Enums"
	TopicDefer       = "Defer & Recover"
	TopicCollections = "Slices & Maps"
	TopicStrings     = "Strings"
	TopicConcurrency = "Channels"
)

// Units returns every built-in unit in catalog order.
func Units() []core.Unit {
	var units []core.Unit
	units = append(units, closureUnits()...)
	units = append(units, genericUnits()...)
	units = append(units, errorUnits()...)
	units = append(units, interfaceUnits()...)
	units = append(units, enumUnits()...)
	units = append(units, deferUnits()...)
	units = append(units, collectionUnits()...)
	units = append(units, stringUnits()...)
	units = append(units, channelUnits()...)
	return units
}

// Catalog builds a fresh catalog containing every built-in unit. Duplicate
// ids in the built-in set are a programming error and panic at build time.
func Catalog() *catalog.Catalog {
	c := catalog.New()
	for _, u := range Units() {
		c.MustRegister(u)
	}
	return c
}

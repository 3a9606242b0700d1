package psl

import (
	_ "embed"
)

// fallbackData is a compiled-in subset of the ICANN section of the public
// suffix list, used when the system copy is not installed. It covers the
// suffixes someone is realistically going to type as a libvirt network
// domain; the system file is preferred whenever present.
//
//go:embed fallback.dat
var fallbackData string

// StaticSource serves the compiled-in fallback suffix list.
type StaticSource struct{}

// Entries implements Source.
func (StaticSource) Entries() ([]string, error) {
	return parseList(fallbackData)
}

// Description implements Source.
func (StaticSource) Description() string {
	return "built-in fallback list"
}

// Package psl implements the public-suffix filter.
//
// Routing DNS for a bare public suffix ("com", "co.uk") to a libvirt gateway
// would hijack resolution for every registrable domain under it, so domains
// that are themselves public suffixes are rejected before any resolver
// configuration happens.
package psl

import (
	"strings"

	"libvirt-resolved-hook/internal/log"
)

// Source provides public-suffix entries. Implementations load the list from
// the system PSL file or from the compiled-in fallback.
type Source interface {
	// Entries returns the suffix entries, one exact suffix or "*.suffix"
	// wildcard per element.
	Entries() ([]string, error)
	// Description identifies the source for logging.
	Description() string
}

// Filter checks domains against a loaded public-suffix list. A disabled
// filter accepts everything; there is no implicit "assumed available" state.
type Filter struct {
	enabled bool
	source  string
	entries []string
}

// Disabled returns a filter that accepts all domains.
func Disabled() *Filter {
	return &Filter{enabled: false}
}

// Load builds a filter from the given source. If the source fails, the
// fallback source is tried; if that fails too, the filter is disabled and the
// error is returned so the caller can log it.
func Load(primary, fallback Source) (*Filter, error) {
	filter, err := fromSource(primary)
	if err == nil {
		return filter, nil
	}
	if fallback == nil {
		return Disabled(), err
	}

	log.Warnf("Public suffix source %s unavailable (%v), falling back to %s",
		primary.Description(), err, fallback.Description())

	filter, ferr := fromSource(fallback)
	if ferr != nil {
		return Disabled(), ferr
	}
	return filter, nil
}

func fromSource(src Source) (*Filter, error) {
	entries, err := src.Entries()
	if err != nil {
		return nil, err
	}
	return &Filter{enabled: true, source: src.Description(), entries: entries}, nil
}

// Enabled reports whether the filter has a loaded suffix list.
func (f *Filter) Enabled() bool {
	return f.enabled
}

// Source returns a description of the loaded source, or "" when disabled.
func (f *Filter) Source() string {
	return f.source
}

// Len returns the number of loaded entries.
func (f *Filter) Len() int {
	return len(f.entries)
}

// Match returns the first suffix entry the domain matches, or "" if the
// domain matches no entry (or the filter is disabled). A match means the
// domain must not be configured as a routing domain.
func (f *Filter) Match(domain string) string {
	if !f.enabled {
		return ""
	}
	domain = strings.ToLower(strings.TrimSuffix(domain, "."))
	for _, entry := range f.entries {
		if matchesEntry(domain, entry) {
			return entry
		}
	}
	return ""
}

// matchesEntry checks a single PSL entry. Wildcard entries ("*.ck") match any
// domain ending in "." + suffix; plain entries require exact equality.
func matchesEntry(domain, entry string) bool {
	if suffix, ok := strings.CutPrefix(entry, "*."); ok {
		return strings.HasSuffix(domain, "."+suffix)
	}
	return domain == entry
}

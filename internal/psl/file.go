package psl

import (
	"fmt"
	"os"
	"strings"
)

// privateDomainsMarker separates the ICANN section from vendor-submitted
// private domains in the upstream publicsuffix.org data file. Private
// entries (e.g. "github.io") are legitimate hook domains, so parsing stops
// at the marker.
const privateDomainsMarker = "===BEGIN PRIVATE DOMAINS==="

// FileSource loads suffix entries from a public-suffix data file, typically
// the distribution-installed /usr/share/publicsuffix/public_suffix_list.dat.
type FileSource struct {
	Path string
}

// Entries implements Source.
func (s FileSource) Entries() ([]string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read public suffix file: %v", err)
	}
	return parseList(string(data))
}

// Description implements Source.
func (s FileSource) Description() string {
	return fmt.Sprintf("file %s", s.Path)
}

// parseList extracts suffix entries from PSL-format data: one entry per
// line, "#" and "//" comment lines and blank lines skipped, "!" exception
// rules skipped (they un-mark a suffix, never add one).
func parseList(data string) ([]string, error) {
	var entries []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if strings.Contains(line, privateDomainsMarker) {
			break
		}
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "!") {
			continue
		}
		entries = append(entries, strings.ToLower(line))
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no suffix entries found")
	}
	return entries, nil
}

// Package netxml parses the libvirt network XML document that libvirtd pipes
// to hook scripts on stdin and extracts the handful of fields the hook acts
// on.
package netxml

import (
	"fmt"
	"io"
	"net"
	"regexp"
	"strings"

	"github.com/miekg/dns"
	"libvirt.org/go/libvirtxml"

	"libvirt-resolved-hook/internal/hookerr"
)

// rxDomain is a conservative hostname check: dot-separated labels of 1-63
// alphanumeric/hyphen characters, no leading or trailing hyphen. Stricter
// than what libvirt accepts, on purpose: the domain ends up on a resolvectl
// command line.
var rxDomain = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// NetworkInfo is the flat view of a libvirt network definition, immutable
// after extraction.
type NetworkInfo struct {
	Name        string
	ForwardMode string
	Bridge      string
	Addresses   []string
	Domain      string
}

// Parse reads a libvirt network XML document and extracts NetworkInfo.
// Malformed XML is a fatal hook error.
func Parse(r io.Reader) (*NetworkInfo, error) {
	doc, err := io.ReadAll(r)
	if err != nil {
		return nil, hookerr.NewHookError("failed to read network XML from stdin", err)
	}

	var network libvirtxml.Network
	if err := network.Unmarshal(string(doc)); err != nil {
		return nil, hookerr.NewHookError("failed to parse network XML", err)
	}

	info := &NetworkInfo{Name: network.Name}
	if network.Forward != nil {
		info.ForwardMode = network.Forward.Mode
	}
	if network.Bridge != nil {
		info.Bridge = network.Bridge.Name
	}
	if network.Domain != nil {
		info.Domain = network.Domain.Name
	}
	for _, ip := range network.IPs {
		if ip.Address != "" {
			info.Addresses = append(info.Addresses, ip.Address)
		}
	}

	return info, nil
}

// GatewayIPv4 returns the first IPv4 address of the network, or "" when the
// network carries no IPv4 address. libvirt allows dual-stack networks, so
// IPv6 entries are skipped rather than rejected.
func (n *NetworkInfo) GatewayIPv4() string {
	for _, addr := range n.Addresses {
		if ip := net.ParseIP(addr); ip != nil && ip.To4() != nil {
			return addr
		}
	}
	return ""
}

// CheckName verifies the XML network name against the name libvirtd passed
// on the command line. A mismatch means the hook is looking at the wrong
// network's event and must not act.
func (n *NetworkInfo) CheckName(cliNetwork string) error {
	if n.Name == "" {
		return hookerr.New(hookerr.ErrCodeHook, "network XML has no name element")
	}
	if n.Name != cliNetwork {
		return hookerr.Newf(hookerr.ErrCodeHook,
			"network name mismatch: XML says %q, arguments say %q", n.Name, cliNetwork)
	}
	return nil
}

// CheckRequired verifies the fields whose absence means libvirtd handed us
// malformed hook data: the bridge interface and at least one IP address.
func (n *NetworkInfo) CheckRequired() error {
	if n.Bridge == "" {
		return hookerr.Newf(hookerr.ErrCodeHook,
			"network %q has no bridge name in hook XML", n.Name)
	}
	if len(n.Addresses) == 0 {
		return hookerr.Newf(hookerr.ErrCodeHook,
			"network %q has no IP address in hook XML", n.Name)
	}
	return nil
}

// IsValidDomain reports whether the domain passes the conservative hostname
// syntax check. The miekg/dns length rules are applied on top of the regex
// to keep total-length handling consistent with what a resolver accepts.
func IsValidDomain(domain string) bool {
	if domain == "" || len(domain) > 253 {
		return false
	}
	if !rxDomain.MatchString(domain) {
		return false
	}
	if _, ok := dns.IsDomainName(dns.Fqdn(domain)); !ok {
		return false
	}
	return true
}

// String renders the extracted fields for debug logging.
func (n *NetworkInfo) String() string {
	return fmt.Sprintf("name=%s forward=%s bridge=%s ip=[%s] domain=%s",
		n.Name, n.ForwardMode, n.Bridge, strings.Join(n.Addresses, ","), n.Domain)
}

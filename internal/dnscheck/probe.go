// Package dnscheck probes whether the network gateway actually answers DNS.
//
// libvirt's dnsmasq listens on the gateway address of a NAT network, so a
// freshly configured routing domain should resolve there. The probe is
// purely informational: a NAT network without guests registered yet is
// normal, and the hook never fails because of it.
package dnscheck

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"
)

const probeTimeout = 2 * time.Second

// Prober sends a single DNS query to a gateway.
type Prober struct {
	client *dns.Client
	port   string
}

// NewProber creates a Prober with a bounded UDP client.
func NewProber() *Prober {
	return &Prober{
		client: &dns.Client{
			Net:     "udp",
			Timeout: probeTimeout,
		},
		port: "53",
	}
}

// Probe queries the gateway for the SOA of the network domain and returns
// the response code, or an error when the gateway does not answer at all.
func (p *Prober) Probe(ctx context.Context, gateway, domain string) (string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), dns.TypeSOA)
	msg.RecursionDesired = false

	addr := net.JoinHostPort(gateway, p.port)
	resp, rtt, err := p.client.ExchangeContext(ctx, msg, addr)
	if err != nil {
		return "", fmt.Errorf("no DNS answer from %s: %v", addr, err)
	}

	return fmt.Sprintf("%s answered %s in %v", addr, dns.RcodeToString[resp.Rcode], rtt.Round(time.Millisecond)), nil
}

// Package hook implements the libvirt network hook pipeline: parse the
// network XML from stdin, validate it, and configure systemd-resolved for
// NAT networks with a DNS domain.
package hook

import (
	"context"
	"io"
	"time"

	"libvirt-resolved-hook/internal/config"
	"libvirt-resolved-hook/internal/dnscheck"
	"libvirt-resolved-hook/internal/log"
	"libvirt-resolved-hook/internal/netxml"
	"libvirt-resolved-hook/internal/networking"
	"libvirt-resolved-hook/internal/psl"
	"libvirt-resolved-hook/internal/resolver"
)

// dnsConfigurator is the slice of resolver.Resolvectl the pipeline needs.
type dnsConfigurator interface {
	Apply(ctx context.Context, iface, ip, domain string) []error
	CheckAvailable() (string, error)
}

// Hook wires the pipeline dependencies together for one invocation.
type Hook struct {
	cfg         *config.Config
	filter      *psl.Filter
	rctl        dnsConfigurator
	prober      *dnscheck.Prober
	checkBridge func(name string) networking.BridgeStatus
}

// New builds a Hook from the configuration. The public-suffix filter falls
// back from the system file to the built-in list; if neither loads the
// filter is disabled with a warning rather than failing the hook.
func New(cfg *config.Config) (*Hook, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	filter := psl.Disabled()
	if cfg.PublicSuffixFilter {
		loaded, err := psl.Load(psl.FileSource{Path: cfg.PublicSuffixFile}, psl.StaticSource{})
		if err != nil {
			log.Warnf("Public suffix filter disabled, no list could be loaded: %v", err)
		}
		filter = loaded
	}

	rctl, err := resolver.New(resolver.Options{
		Command:    cfg.ResolvectlPath,
		Timeout:    time.Duration(cfg.CommandTimeoutSeconds) * time.Second,
		DNSArgs:    cfg.DNSArgsTemplate,
		DomainArgs: cfg.DomainArgsTemplate,
	})
	if err != nil {
		return nil, err
	}

	return &Hook{
		cfg:         cfg,
		filter:      filter,
		rctl:        rctl,
		prober:      dnscheck.NewProber(),
		checkBridge: networking.CheckBridge,
	}, nil
}

// Run executes the hook pipeline for one libvirtd event. The returned error
// is fatal (exit non-zero); any Outcome means the run succeeded, with the
// Disposition saying whether DNS configuration was applied or skipped.
func (h *Hook) Run(ctx context.Context, inv *Invocation, stdin io.Reader) (Outcome, error) {
	if !inv.ShouldConfigure() {
		return skip("operation %q requires no DNS configuration", inv.Operation), nil
	}

	info, err := netxml.Parse(stdin)
	if err != nil {
		return Outcome{}, err
	}
	log.Debugf("Network definition: %s", info)

	if err := info.CheckName(inv.Network); err != nil {
		return Outcome{}, err
	}

	if info.ForwardMode != "nat" {
		return skip("network %q forward mode is %q, only NAT networks get DNS routing",
			info.Name, info.ForwardMode), nil
	}

	if err := info.CheckRequired(); err != nil {
		return Outcome{}, err
	}

	gateway := info.GatewayIPv4()
	if gateway == "" {
		return skip("network %q has no IPv4 gateway address", info.Name), nil
	}

	if info.Domain == "" {
		return skip("network %q has no DNS domain", info.Name), nil
	}
	if !netxml.IsValidDomain(info.Domain) {
		log.Errorf("Network %q has a syntactically invalid domain %q", info.Name, info.Domain)
		return skip("domain %q is not a valid hostname", info.Domain), nil
	}

	if entry := h.filter.Match(info.Domain); entry != "" {
		return skip("domain %q is a public suffix (matches %q), refusing to hijack it",
			info.Domain, entry), nil
	}

	switch h.checkBridge(info.Bridge) {
	case networking.BridgeMissing:
		log.Warnf("Bridge %s does not exist (yet), configuring resolved anyway", info.Bridge)
	case networking.BridgeDown:
		log.Warnf("Bridge %s is not up (yet), configuring resolved anyway", info.Bridge)
	}

	log.Infof("Routing DNS for domain %q to %s via %s", info.Domain, gateway, info.Bridge)

	// Best effort from here: resolver failures are logged, not fatal, and
	// one setting failing never blocks the other.
	for _, rerr := range h.rctl.Apply(ctx, info.Bridge, gateway, info.Domain) {
		log.Errorf("%v", rerr)
	}

	if h.cfg.VerifyDNS {
		if result, perr := h.prober.Probe(ctx, gateway, info.Domain); perr != nil {
			log.Warnf("Gateway DNS check: %v", perr)
		} else {
			log.Infof("Gateway DNS check: %s", result)
		}
	}

	return applied(), nil
}

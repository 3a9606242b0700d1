// Package resolver shells out to resolvectl to configure per-interface DNS
// settings in systemd-resolved.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/valyala/fasttemplate"

	"libvirt-resolved-hook/internal/hookerr"
	"libvirt-resolved-hook/internal/log"
)

const (
	// DefaultCommand is the resolver-control binary looked up on $PATH.
	DefaultCommand = "resolvectl"

	// DefaultTimeout bounds a single resolvectl invocation. resolvectl
	// talks to systemd-resolved over D-Bus and normally returns instantly;
	// anything longer means the service is wedged.
	DefaultTimeout = 5 * time.Second

	// DefaultDNSArgs sets the DNS server for the interface.
	DefaultDNSArgs = "dns {interface} {ip}"

	// DefaultDomainArgs sets the routing domain for the interface. The "~"
	// prefix marks a routing-only domain, keeping it out of the search path.
	DefaultDomainArgs = "domain {interface} ~{domain}"
)

// runFunc executes a command and returns its combined output. Tests
// substitute a fake to observe invocations without a real resolvectl.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Options configures a Resolvectl instance. Zero values select the defaults.
type Options struct {
	Command    string
	Timeout    time.Duration
	DNSArgs    string
	DomainArgs string
}

// Resolvectl applies DNS settings through the resolvectl command.
type Resolvectl struct {
	command    string
	timeout    time.Duration
	dnsArgs    *fasttemplate.Template
	domainArgs *fasttemplate.Template
	lookPath   func(file string) (string, error)
	run        runFunc
}

// New creates a Resolvectl from the given options. Invalid argument
// templates are a configuration error.
func New(opts Options) (*Resolvectl, error) {
	if opts.Command == "" {
		opts.Command = DefaultCommand
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.DNSArgs == "" {
		opts.DNSArgs = DefaultDNSArgs
	}
	if opts.DomainArgs == "" {
		opts.DomainArgs = DefaultDomainArgs
	}

	dnsArgs, err := fasttemplate.NewTemplate(opts.DNSArgs, "{", "}")
	if err != nil {
		return nil, hookerr.NewConfigError("invalid dns_args_template", err)
	}
	domainArgs, err := fasttemplate.NewTemplate(opts.DomainArgs, "{", "}")
	if err != nil {
		return nil, hookerr.NewConfigError("invalid domain_args_template", err)
	}

	return &Resolvectl{
		command:    opts.Command,
		timeout:    opts.Timeout,
		dnsArgs:    dnsArgs,
		domainArgs: domainArgs,
		lookPath:   exec.LookPath,
		run:        runCombined,
	}, nil
}

// Apply points the interface's DNS server at the gateway and registers the
// routing domain, in that order. The two settings are independent: a failure
// in one is recorded and the other is still attempted. The returned slice
// holds the per-invocation errors; it is empty on full success.
func (r *Resolvectl) Apply(ctx context.Context, iface, ip, domain string) []error {
	if _, err := r.lookPath(r.command); err != nil {
		return []error{hookerr.Wrap(hookerr.ErrCodeResolver,
			fmt.Sprintf("%s not found on PATH (is systemd-resolved in use?)", r.command), err)}
	}

	vars := map[string]interface{}{
		"interface": iface,
		"ip":        ip,
		"domain":    domain,
	}

	var errs []error
	for _, tmpl := range []*fasttemplate.Template{r.dnsArgs, r.domainArgs} {
		args := strings.Fields(tmpl.ExecuteString(vars))
		if err := r.invoke(ctx, args); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// CheckAvailable reports whether the resolvectl binary can be found,
// returning its resolved path.
func (r *Resolvectl) CheckAvailable() (string, error) {
	path, err := r.lookPath(r.command)
	if err != nil {
		return "", hookerr.Wrap(hookerr.ErrCodeResolver,
			fmt.Sprintf("%s not found on PATH", r.command), err)
	}
	return path, nil
}

// invoke runs a single resolvectl invocation under the configured timeout.
func (r *Resolvectl) invoke(ctx context.Context, args []string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	log.Debugf("Running: %s %s", r.command, strings.Join(args, " "))

	out, err := r.run(ctx, r.command, args...)
	if err == nil {
		return nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return hookerr.Newf(hookerr.ErrCodeResolver,
			"%s %s timed out after %v", r.command, strings.Join(args, " "), r.timeout)
	}

	msg := fmt.Sprintf("%s %s failed", r.command, strings.Join(args, " "))
	if output := strings.TrimSpace(string(out)); output != "" {
		msg += ": " + output
	}
	return hookerr.Wrap(hookerr.ErrCodeResolver, msg, err)
}

// runCombined is the production runFunc. CommandContext kills the subprocess
// when the timeout context expires.
func runCombined(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}

package config

// DefaultPath is where the hook looks for its optional configuration file.
const DefaultPath = "/etc/libvirt-resolved-hook.conf"

// DefaultPublicSuffixFile is the distribution-installed public suffix list.
const DefaultPublicSuffixFile = "/usr/share/publicsuffix/public_suffix_list.dat"

type Config struct {
	// ResolvectlPath overrides the resolver-control binary name or path.
	ResolvectlPath string `toml:"resolvectl_path" validate:"required"`
	// CommandTimeoutSeconds bounds each resolvectl invocation.
	CommandTimeoutSeconds int `toml:"command_timeout_seconds" validate:"gte=1,lte=300"`
	// PublicSuffixFile is the path of the system public suffix list.
	PublicSuffixFile string `toml:"public_suffix_file" validate:"required"`
	// PublicSuffixFilter toggles the public-suffix rejection check.
	PublicSuffixFilter bool `toml:"public_suffix_filter"`
	// VerifyDNS probes the gateway for DNS after configuring it.
	VerifyDNS bool `toml:"verify_dns"`
	// LogFile redirects log output from stderr to a file.
	LogFile string `toml:"log_file"`
	// DNSArgsTemplate is the resolvectl argument template for the DNS
	// server setting. Available variables: {interface}, {ip}, {domain}.
	DNSArgsTemplate string `toml:"dns_args_template" validate:"required,args_template"`
	// DomainArgsTemplate is the resolvectl argument template for the
	// routing-domain setting. Available variables: {interface}, {ip}, {domain}.
	DomainArgsTemplate string `toml:"domain_args_template" validate:"required,args_template"`
}

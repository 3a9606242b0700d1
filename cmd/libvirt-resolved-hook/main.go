package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"libvirt-resolved-hook/internal/config"
	"libvirt-resolved-hook/internal/hook"
	"libvirt-resolved-hook/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	var (
		configPath  string
		verbose     bool
		showVersion bool
		selfCheck   bool
	)

	// Define flags
	flag.StringVar(&configPath, "config", config.DefaultPath, "Path to configuration file")
	flag.BoolVar(&verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.BoolVar(&selfCheck, "self-check", false, "Check environment (resolvectl, suffix list, interfaces) and exit")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "libvirt network hook: routes DNS for NAT network domains to the network gateway via systemd-resolved\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] NETWORK OPERATION [SUB_OPERATION]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Install as /etc/libvirt/hooks/network; libvirtd pipes the network XML on stdin.\n\n")
		fmt.Fprintf(os.Stderr, "Environment:\n")
		fmt.Fprintf(os.Stderr, "  LIBVIRT_HOOK_DEBUG=1    Enable debug logging\n")
		fmt.Fprintf(os.Stderr, "  LIBVIRT_HOOK_LOG=FILE   Append logs to FILE instead of stderr\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("libvirt-resolved-hook %s (commit: %s, date: %s)\n", version, commit, date)
		return
	}

	if os.Getenv("LIBVIRT_HOOK_DEBUG") != "" {
		verbose = true
	}
	log.SetVerbose(verbose)

	// An explicitly given -config must exist; the default path is optional.
	configExplicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configExplicit = true
		}
	})

	cfg, err := config.Load(configPath, configExplicit)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile := cfg.LogFile
	if envLog := os.Getenv("LIBVIRT_HOOK_LOG"); envLog != "" {
		logFile = envLog
	}
	if logFile != "" {
		if err := log.OpenLogFile(logFile); err != nil {
			log.Fatalf("Failed to set up logging: %v", err)
		}
	}

	h, err := hook.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize hook: %v", err)
	}

	if selfCheck {
		if err := h.SelfCheck(); err != nil {
			os.Exit(1)
		}
		return
	}

	inv, err := hook.ParseArgs(flag.Args())
	if err != nil {
		log.Errorf("%v", err)
		flag.Usage()
		os.Exit(1)
	}

	log.Debugf("Hook invoked: network=%s operation=%s sub-operation=%s",
		inv.Network, inv.Operation, inv.SubOperation)

	outcome, err := runHook(h, inv)
	if err != nil {
		log.Fatalf("%v", err)
	}

	switch outcome.Disposition {
	case hook.Applied:
		log.Infof("DNS configuration applied for network %q", inv.Network)
	case hook.Skipped:
		log.Infof("Nothing to do: %s", outcome.Reason)
	}
}

// runHook executes the pipeline with panic recovery so that an unexpected
// crash still leaves a usable log line behind.
func runHook(h *hook.Hook, inv *hook.Invocation) (outcome hook.Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected panic: %v\n%s", r, debug.Stack())
		}
	}()

	return h.Run(context.Background(), inv, os.Stdin)
}

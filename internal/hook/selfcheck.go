package hook

import (
	"fmt"

	"libvirt-resolved-hook/internal/log"
	"libvirt-resolved-hook/internal/networking"
)

// SelfCheck verifies the hook's environment without touching any state:
// resolvectl on PATH, a loadable public-suffix list, and a readable
// interface table. Returns an error when the hook could not do its job.
func (h *Hook) SelfCheck() error {
	log.Infof("Running self-check...")
	failed := false

	if path, err := h.rctl.CheckAvailable(); err != nil {
		log.Errorf("resolver command: %v", err)
		failed = true
	} else {
		log.Infof("resolver command: %s", path)
	}

	if h.filter.Enabled() {
		log.Infof("public suffix filter: %d entries from %s", h.filter.Len(), h.filter.Source())
	} else if h.cfg.PublicSuffixFilter {
		log.Errorf("public suffix filter: enabled in configuration but no list could be loaded")
		failed = true
	} else {
		log.Infof("public suffix filter: disabled in configuration")
	}

	if interfaces, err := networking.GetInterfaceList(); err != nil {
		log.Errorf("interface listing: %v", err)
		failed = true
	} else {
		log.Infof("interface listing: %d interfaces visible", len(interfaces))
	}

	if failed {
		return fmt.Errorf("self-check found problems")
	}

	log.Infof("Self-check passed")
	return nil
}

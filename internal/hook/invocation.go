package hook

import (
	"libvirt-resolved-hook/internal/hookerr"
)

// Operations libvirtd passes to network hooks. Only OpStarted and OpUpdated
// lead to DNS configuration; everything else is a no-op for this hook.
const (
	OpStart       = "start"
	OpStarted     = "started"
	OpStopped     = "stopped"
	OpUpdated     = "updated"
	OpPortCreated = "port-created"
	OpPortDeleted = "port-deleted"
	OpPlugged     = "plugged"
	OpUnplugged   = "unplugged"
)

// Invocation holds the hook arguments from libvirtd: network name, operation
// and sub-operation. Immutable once parsed.
type Invocation struct {
	Network      string
	Operation    string
	SubOperation string
}

// ParseArgs builds an Invocation from the positional hook arguments.
// libvirtd passes "-" for unset slots; an unset or empty network name or
// operation means the hook was called wrong and is a fatal error.
func ParseArgs(args []string) (*Invocation, error) {
	if len(args) < 2 {
		return nil, hookerr.Newf(hookerr.ErrCodeHook,
			"expected NETWORK OPERATION [SUB_OPERATION] arguments, got %d", len(args))
	}

	inv := &Invocation{
		Network:   args[0],
		Operation: args[1],
	}
	if len(args) > 2 {
		inv.SubOperation = args[2]
	}

	if inv.Network == "" || inv.Network == "-" {
		return nil, hookerr.New(hookerr.ErrCodeHook, "network name argument is empty")
	}
	if inv.Operation == "" || inv.Operation == "-" {
		return nil, hookerr.New(hookerr.ErrCodeHook, "operation argument is empty")
	}

	return inv, nil
}

// ShouldConfigure reports whether the operation mutates DNS configuration.
func (inv *Invocation) ShouldConfigure() bool {
	return inv.Operation == OpStarted || inv.Operation == OpUpdated
}

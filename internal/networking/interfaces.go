// Package networking inspects host network interfaces via netlink.
package networking

import (
	"net"

	"github.com/vishvananda/netlink"
)

// Interface wraps a netlink link with the predicates the hook cares about.
type Interface struct {
	netlink.Link
}

// linkByName is swapped out in tests.
var linkByName = netlink.LinkByName

// linkList is swapped out in tests.
var linkList = netlink.LinkList

// GetInterface looks up a single interface by name.
func GetInterface(interfaceName string) (*Interface, error) {
	link, err := linkByName(interfaceName)
	if err != nil {
		return nil, err
	}
	return &Interface{link}, nil
}

// GetInterfaceList returns all host interfaces.
func GetInterfaceList() ([]Interface, error) {
	links, err := linkList()
	if err != nil {
		return nil, err
	}
	var interfaces []Interface
	for _, link := range links {
		interfaces = append(interfaces, Interface{link})
	}
	return interfaces, nil
}

// IsUp reports whether the interface is administratively up.
func (iface *Interface) IsUp() bool {
	return iface.Attrs().Flags&net.FlagUp != 0
}

// IsLoopback reports whether the interface is a loopback device.
func (iface *Interface) IsLoopback() bool {
	return iface.Attrs().Flags&net.FlagLoopback != 0
}

// BridgeStatus describes the hook's view of the network bridge at event time.
type BridgeStatus int

const (
	// BridgePresent means the bridge exists and is up.
	BridgePresent BridgeStatus = iota
	// BridgeDown means the bridge exists but is not up yet.
	BridgeDown
	// BridgeMissing means no interface with that name exists.
	BridgeMissing
)

// CheckBridge reports the state of the named bridge. libvirt fires the
// "started" hook while it is still assembling the network, so an absent or
// down bridge is informational, not an error.
func CheckBridge(name string) BridgeStatus {
	iface, err := GetInterface(name)
	if err != nil {
		return BridgeMissing
	}
	if !iface.IsUp() {
		return BridgeDown
	}
	return BridgePresent
}

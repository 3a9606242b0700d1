package networking

import (
	"fmt"
	"testing"

	"github.com/vishvananda/netlink"
)

func withFakeLinks(t *testing.T, links map[string]*mockNetlinkLink) {
	t.Helper()
	origByName, origList := linkByName, linkList
	linkByName = func(name string) (netlink.Link, error) {
		if l, ok := links[name]; ok {
			return l, nil
		}
		return nil, fmt.Errorf("Link not found")
	}
	linkList = func() ([]netlink.Link, error) {
		var all []netlink.Link
		for _, l := range links {
			all = append(all, l)
		}
		return all, nil
	}
	t.Cleanup(func() {
		linkByName = origByName
		linkList = origList
	})
}

func TestCheckBridge(t *testing.T) {
	withFakeLinks(t, map[string]*mockNetlinkLink{
		"virbr5": {name: "virbr5", up: true, index: 3},
		"virbr6": {name: "virbr6", up: false, index: 4},
	})

	tests := []struct {
		name   string
		bridge string
		want   BridgeStatus
	}{
		{"bridge up", "virbr5", BridgePresent},
		{"bridge down", "virbr6", BridgeDown},
		{"bridge absent", "virbr99", BridgeMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckBridge(tt.bridge); got != tt.want {
				t.Errorf("CheckBridge(%q) = %v, want %v", tt.bridge, got, tt.want)
			}
		})
	}
}

func TestGetInterfaceList(t *testing.T) {
	withFakeLinks(t, map[string]*mockNetlinkLink{
		"lo":     {name: "lo", up: true, index: 1},
		"virbr5": {name: "virbr5", up: true, index: 3},
	})

	interfaces, err := GetInterfaceList()
	if err != nil {
		t.Fatalf("GetInterfaceList() error: %v", err)
	}
	if len(interfaces) != 2 {
		t.Errorf("got %d interfaces, want 2", len(interfaces))
	}
}

func TestInterfaceIsUp(t *testing.T) {
	withFakeLinks(t, map[string]*mockNetlinkLink{
		"virbr5": {name: "virbr5", up: true, index: 3},
	})

	iface, err := GetInterface("virbr5")
	if err != nil {
		t.Fatalf("GetInterface() error: %v", err)
	}
	if !iface.IsUp() {
		t.Errorf("IsUp() = false, want true")
	}
	if iface.IsLoopback() {
		t.Errorf("IsLoopback() = true, want false")
	}
}

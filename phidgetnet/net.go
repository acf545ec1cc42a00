// Package phidgetnet registers remote Phidget servers with the native
// library so channels can be opened over the network (SetIsRemote on the
// channel, then open as usual).
package phidgetnet

import (
	"fmt"

	"github.com/Alia5/gophidget/phidget"
	"github.com/Alia5/gophidget/phidget22"
)

// ServerType selects which published server identities discovery listens
// for (PhidgetServerType in the native header).
type ServerType uint32

const (
	ServerTypeNone           ServerType = 0
	ServerTypeDeviceListener ServerType = 1
	ServerTypeDevice         ServerType = 2
	ServerTypeDeviceRemote   ServerType = 3
	ServerTypeWWWListener    ServerType = 4
	ServerTypeWWW            ServerType = 5
	ServerTypeWWWRemote      ServerType = 6
	ServerTypeSBC            ServerType = 7
)

func (t ServerType) String() string {
	switch t {
	case ServerTypeNone:
		return "None"
	case ServerTypeDeviceListener:
		return "DeviceListener"
	case ServerTypeDevice:
		return "Device"
	case ServerTypeDeviceRemote:
		return "DeviceRemote"
	case ServerTypeWWWListener:
		return "WWWListener"
	case ServerTypeWWW:
		return "WWW"
	case ServerTypeWWWRemote:
		return "WWWRemote"
	case ServerTypeSBC:
		return "SBC"
	default:
		return fmt.Sprintf("ServerType(%d)", uint32(t))
	}
}

func guard() error {
	if !phidget22.Ready() {
		return phidget.ErrNotConfigured
	}
	return nil
}

// AddServer registers a server the client will try to connect to.
func AddServer(name, address string, port int, password string) error {
	if err := guard(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetNet_addServer(name, address, int32(port), password, 0))
}

// RemoveServer drops the registration for a server.
func RemoveServer(name string) error {
	if err := guard(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetNet_removeServer(name))
}

// RemoveAllServers drops every server registration.
func RemoveAllServers() error {
	if err := guard(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetNet_removeAllServers())
}

// EnableServer re-enables connection attempts to a server previously
// disabled with DisableServer.
func EnableServer(name string) error {
	if err := guard(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetNet_enableServer(name))
}

// DisableServer stops automatic connection attempts to a server without
// removing its registration.
func DisableServer(name string) error {
	if err := guard(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetNet_disableServer(name, 0))
}

// SetServerPassword sets the password used when connecting to a server. If
// the server has not been added or discovered yet, a placeholder entry is
// registered so the password applies once it is.
func SetServerPassword(name, password string) error {
	if err := guard(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetNet_setServerPassword(name, password))
}

// EnableServerDiscovery starts mDNS discovery of servers of the given type.
func EnableServerDiscovery(t ServerType) error {
	if err := guard(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetNet_enableServerDiscovery(uint32(t)))
}

// DisableServerDiscovery stops discovery; established connections stay up.
func DisableServerDiscovery(t ServerType) error {
	if err := guard(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetNet_disableServerDiscovery(uint32(t)))
}

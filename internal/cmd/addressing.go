package cmd

import (
	"time"

	"github.com/Alia5/gophidget/phidget"
)

// Addressing carries the channel matching flags shared by every command
// that opens a device channel.
type Addressing struct {
	Serial        int32         `help:"Device serial number to match (-1 matches any)" default:"-1" env:"PHIDGET_SERIAL"`
	Channel       int32         `help:"Channel index to match (-1 matches any)" default:"-1" env:"PHIDGET_CHANNEL"`
	HubPort       int32         `help:"VINT hub port to match (-1 matches any)" default:"-1" env:"PHIDGET_HUB_PORT"`
	HubPortDevice bool          `help:"Address the hub port itself instead of a device on it"`
	Remote        bool          `help:"Only match channels served over the network"`
	Timeout       time.Duration `help:"Attachment wait timeout (0 waits forever)" default:"2500ms"`
}

func (a Addressing) apply(p phidget.Phidget) error {
	if err := p.SetSerialNumber(a.Serial); err != nil {
		return err
	}
	if err := p.SetChannel(a.Channel); err != nil {
		return err
	}
	if err := p.SetHubPort(a.HubPort); err != nil {
		return err
	}
	if a.HubPortDevice {
		if err := p.SetIsHubPortDevice(true); err != nil {
			return err
		}
	}
	if a.Remote {
		if err := p.SetIsRemote(true); err != nil {
			return err
		}
	}
	return nil
}

// open applies the addressing and blocks until the channel attaches.
func (a Addressing) open(p phidget.Phidget) error {
	if err := a.apply(p); err != nil {
		return err
	}
	return p.OpenWait(a.Timeout)
}

package phidget

// DeviceInfo is a point-in-time snapshot of a channel's identity, shaped for
// structured output (yaml/json). It is derived on demand and never cached by
// the wrapper; the handle stays the source of truth.
type DeviceInfo struct {
	SerialNumber int32        `json:"serialNumber" yaml:"serialNumber"`
	Channel      int32        `json:"channel" yaml:"channel"`
	HubPort      int32        `json:"hubPort" yaml:"hubPort"`
	DeviceClass  DeviceClass  `json:"deviceClass" yaml:"deviceClass"`
	ChannelClass ChannelClass `json:"channelClass" yaml:"channelClass"`
	DeviceID     int32        `json:"deviceId" yaml:"deviceId"`
	DeviceName   string       `json:"deviceName" yaml:"deviceName"`
	DeviceSKU    string       `json:"deviceSku" yaml:"deviceSku"`
	ChannelName  string       `json:"channelName" yaml:"channelName"`
	Label        string       `json:"label,omitempty" yaml:"label,omitempty"`
}

// Describe queries the full identity of an attached channel. Any view works:
// borrowed refs inside callbacks, owned generics, concrete device types.
// Fails with ErrNotAttached if the device is absent.
func Describe(src Metadata) (DeviceInfo, error) {
	var info DeviceInfo
	var err error
	if info.SerialNumber, err = src.SerialNumber(); err != nil {
		return DeviceInfo{}, err
	}
	if info.Channel, err = src.ChannelIndex(); err != nil {
		return DeviceInfo{}, err
	}
	if info.HubPort, err = src.HubPort(); err != nil {
		return DeviceInfo{}, err
	}
	if info.DeviceClass, err = src.DeviceClass(); err != nil {
		return DeviceInfo{}, err
	}
	if info.ChannelClass, err = src.ChannelClass(); err != nil {
		return DeviceInfo{}, err
	}
	id, err := src.DeviceID()
	if err != nil {
		return DeviceInfo{}, err
	}
	info.DeviceID = int32(id)
	if info.DeviceName, err = src.DeviceName(); err != nil {
		return DeviceInfo{}, err
	}
	if info.DeviceSKU, err = src.DeviceSKU(); err != nil {
		return DeviceInfo{}, err
	}
	if info.ChannelName, err = src.ChannelName(); err != nil {
		return DeviceInfo{}, err
	}
	// Labels are optional on many devices; an unset label reads as empty.
	if info.Label, err = src.Label(); err != nil {
		return DeviceInfo{}, err
	}
	return info, nil
}

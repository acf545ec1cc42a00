// Package humidity provides the HumiditySensor channel class.
package humidity

import (
	"github.com/Alia5/gophidget/phidget"
	"github.com/Alia5/gophidget/phidget22"
)

// Sensor is a relative-humidity sensor channel.
type Sensor struct {
	*phidget.Channel
}

// New creates an unopened humidity sensor channel.
func New() (*Sensor, error) {
	if !phidget22.Ready() {
		return nil, phidget.ErrNotConfigured
	}
	var h phidget22.Handle
	if err := phidget.Result(phidget22.PhidgetHumiditySensor_create(&h)); err != nil {
		return nil, err
	}
	return &Sensor{Channel: phidget.NewChannel(h, phidget22.PhidgetHumiditySensor_delete)}, nil
}

// Humidity reads the current relative humidity in %RH.
func (s *Sensor) Humidity() (float64, error) {
	if err := s.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetHumiditySensor_getHumidity(s.HandleRef())
	return v, phidget.Result(code)
}

// SetOnHumidityChangeHandler registers fn for humidity change events. fn
// runs on the native event thread and must not block; nil clears it.
func (s *Sensor) SetOnHumidityChangeHandler(fn func(humidity float64)) error {
	if err := s.Alive(); err != nil {
		return err
	}
	if fn == nil {
		return phidget.Result(phidget22.PhidgetHumiditySensor_setOnHumidityChangeHandler(s.HandleRef(), nil))
	}
	return phidget.Result(phidget22.PhidgetHumiditySensor_setOnHumidityChangeHandler(s.HandleRef(),
		func(_ phidget22.Handle, v float64) { fn(v) }))
}

package phidgettest

import (
	"fmt"

	"github.com/Alia5/gophidget/phidget22"
)

// Channel class ids from the native header, used to match created channels
// against simulated devices.
const (
	ClassCurrentInput      uint32 = 2
	ClassDigitalInput      uint32 = 5
	ClassDigitalOutput     uint32 = 6
	ClassHub               uint32 = 13
	ClassHumiditySensor    uint32 = 15
	ClassPressureSensor    uint32 = 21
	ClassStepper           uint32 = 27
	ClassTemperatureSensor uint32 = 28
	ClassVoltageInput      uint32 = 29
	ClassVoltageOutput     uint32 = 30
	ClassVoltageRatioInput uint32 = 31
)

func (s *Sim) devF64(h phidget22.Handle, prop string) (float64, phidget22.Code) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, code := s.attached(h)
	if code != codeOK {
		return 0, code
	}
	return o.dev.Props[prop], codeOK
}

func (s *Sim) setDevF64(h phidget22.Handle, prop string, v float64) phidget22.Code {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, code := s.attached(h)
	if code != codeOK {
		return code
	}
	o.dev.Props[prop] = v
	return codeOK
}

func (s *Sim) setF64Handler(h phidget22.Handle, prop string, fn func(phidget22.Handle, float64)) phidget22.Code {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, code := s.get(h)
	if code != codeOK {
		return code
	}
	if fn == nil {
		delete(o.f64Fns, prop)
	} else {
		o.f64Fns[prop] = fn
	}
	return codeOK
}

func (s *Sim) setBoolHandler(h phidget22.Handle, prop string, fn func(phidget22.Handle, bool)) phidget22.Code {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, code := s.get(h)
	if code != codeOK {
		return code
	}
	if fn == nil {
		delete(o.boolFns, prop)
	} else {
		o.boolFns[prop] = fn
	}
	return codeOK
}

func (s *Sim) devBool(h phidget22.Handle, prop string) (bool, phidget22.Code) {
	v, code := s.devF64(h, prop)
	return v != 0, code
}

func (s *Sim) setDevBool(h phidget22.Handle, prop string, on bool) phidget22.Code {
	v := 0.0
	if on {
		v = 1.0
	}
	return s.setDevF64(h, prop, v)
}

func (s *Sim) devU32(h phidget22.Handle, prop string) (uint32, phidget22.Code) {
	v, code := s.devF64(h, prop)
	return uint32(v), code
}

// Hub port state lives in Props under keys like "portMode3".
func portProp(name string, port int32) string {
	return fmt.Sprintf("%s%d", name, port)
}

func (s *Sim) installClasses() {
	phidget22.PhidgetTemperatureSensor_create = s.create(ClassTemperatureSensor)
	phidget22.PhidgetTemperatureSensor_delete = s.release
	phidget22.PhidgetTemperatureSensor_getTemperature = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "temperature")
	}
	phidget22.PhidgetTemperatureSensor_setOnTemperatureChangeHandler = func(h phidget22.Handle, fn func(phidget22.Handle, float64)) phidget22.Code {
		return s.setF64Handler(h, "temperature", fn)
	}

	phidget22.PhidgetHumiditySensor_create = s.create(ClassHumiditySensor)
	phidget22.PhidgetHumiditySensor_delete = s.release
	phidget22.PhidgetHumiditySensor_getHumidity = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "humidity")
	}
	phidget22.PhidgetHumiditySensor_setOnHumidityChangeHandler = func(h phidget22.Handle, fn func(phidget22.Handle, float64)) phidget22.Code {
		return s.setF64Handler(h, "humidity", fn)
	}

	phidget22.PhidgetDigitalOutput_create = s.create(ClassDigitalOutput)
	phidget22.PhidgetDigitalOutput_delete = s.release
	phidget22.PhidgetDigitalOutput_getState = func(h phidget22.Handle) (bool, phidget22.Code) {
		v, code := s.devF64(h, "state")
		return v != 0, code
	}
	phidget22.PhidgetDigitalOutput_setState = func(h phidget22.Handle, on bool) phidget22.Code {
		v := 0.0
		if on {
			v = 1.0
		}
		return s.setDevF64(h, "state", v)
	}
	phidget22.PhidgetDigitalOutput_getDutyCycle = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "dutyCycle")
	}
	phidget22.PhidgetDigitalOutput_setDutyCycle = func(h phidget22.Handle, duty float64) phidget22.Code {
		if duty < 0 || duty > 1 {
			return codeInvalidArg
		}
		return s.setDevF64(h, "dutyCycle", duty)
	}

	phidget22.PhidgetPressureSensor_create = s.create(ClassPressureSensor)
	phidget22.PhidgetPressureSensor_delete = s.release
	phidget22.PhidgetPressureSensor_getPressure = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "pressure")
	}
	phidget22.PhidgetPressureSensor_getMinPressure = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "minPressure")
	}
	phidget22.PhidgetPressureSensor_getMaxPressure = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "maxPressure")
	}
	phidget22.PhidgetPressureSensor_getPressureChangeTrigger = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "pressureChangeTrigger")
	}
	phidget22.PhidgetPressureSensor_setPressureChangeTrigger = func(h phidget22.Handle, trigger float64) phidget22.Code {
		return s.setDevF64(h, "pressureChangeTrigger", trigger)
	}
	phidget22.PhidgetPressureSensor_getMinPressureChangeTrigger = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "minPressureChangeTrigger")
	}
	phidget22.PhidgetPressureSensor_getMaxPressureChangeTrigger = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "maxPressureChangeTrigger")
	}
	phidget22.PhidgetPressureSensor_setOnPressureChangeHandler = func(h phidget22.Handle, fn func(phidget22.Handle, float64)) phidget22.Code {
		return s.setF64Handler(h, "pressure", fn)
	}

	phidget22.PhidgetCurrentInput_create = s.create(ClassCurrentInput)
	phidget22.PhidgetCurrentInput_delete = s.release
	phidget22.PhidgetCurrentInput_getCurrent = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "current")
	}
	phidget22.PhidgetCurrentInput_getMinCurrent = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "minCurrent")
	}
	phidget22.PhidgetCurrentInput_getMaxCurrent = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "maxCurrent")
	}
	phidget22.PhidgetCurrentInput_getCurrentChangeTrigger = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "currentChangeTrigger")
	}
	phidget22.PhidgetCurrentInput_setCurrentChangeTrigger = func(h phidget22.Handle, trigger float64) phidget22.Code {
		return s.setDevF64(h, "currentChangeTrigger", trigger)
	}
	phidget22.PhidgetCurrentInput_getMinCurrentChangeTrigger = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "minCurrentChangeTrigger")
	}
	phidget22.PhidgetCurrentInput_getMaxCurrentChangeTrigger = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "maxCurrentChangeTrigger")
	}
	phidget22.PhidgetCurrentInput_setOnCurrentChangeHandler = func(h phidget22.Handle, fn func(phidget22.Handle, float64)) phidget22.Code {
		return s.setF64Handler(h, "current", fn)
	}

	phidget22.PhidgetDigitalInput_create = s.create(ClassDigitalInput)
	phidget22.PhidgetDigitalInput_delete = s.release
	phidget22.PhidgetDigitalInput_getState = func(h phidget22.Handle) (bool, phidget22.Code) {
		return s.devBool(h, "state")
	}
	phidget22.PhidgetDigitalInput_getInputMode = func(h phidget22.Handle) (uint32, phidget22.Code) {
		return s.devU32(h, "inputMode")
	}
	phidget22.PhidgetDigitalInput_setInputMode = func(h phidget22.Handle, mode uint32) phidget22.Code {
		return s.setDevF64(h, "inputMode", float64(mode))
	}
	phidget22.PhidgetDigitalInput_getPowerSupply = func(h phidget22.Handle) (uint32, phidget22.Code) {
		return s.devU32(h, "powerSupply")
	}
	phidget22.PhidgetDigitalInput_setPowerSupply = func(h phidget22.Handle, supply uint32) phidget22.Code {
		return s.setDevF64(h, "powerSupply", float64(supply))
	}
	phidget22.PhidgetDigitalInput_setOnStateChangeHandler = func(h phidget22.Handle, fn func(phidget22.Handle, bool)) phidget22.Code {
		return s.setBoolHandler(h, "state", fn)
	}

	phidget22.PhidgetVoltageInput_create = s.create(ClassVoltageInput)
	phidget22.PhidgetVoltageInput_delete = s.release
	phidget22.PhidgetVoltageInput_getVoltage = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "voltage")
	}
	phidget22.PhidgetVoltageInput_getMinVoltage = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "minVoltage")
	}
	phidget22.PhidgetVoltageInput_getMaxVoltage = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "maxVoltage")
	}
	phidget22.PhidgetVoltageInput_setOnVoltageChangeHandler = func(h phidget22.Handle, fn func(phidget22.Handle, float64)) phidget22.Code {
		return s.setF64Handler(h, "voltage", fn)
	}

	phidget22.PhidgetVoltageOutput_create = s.create(ClassVoltageOutput)
	phidget22.PhidgetVoltageOutput_delete = s.release
	phidget22.PhidgetVoltageOutput_getVoltage = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "voltage")
	}
	phidget22.PhidgetVoltageOutput_setVoltage = func(h phidget22.Handle, voltage float64) phidget22.Code {
		return s.setDevF64(h, "voltage", voltage)
	}
	phidget22.PhidgetVoltageOutput_getMinVoltage = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "minVoltage")
	}
	phidget22.PhidgetVoltageOutput_getMaxVoltage = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "maxVoltage")
	}
	phidget22.PhidgetVoltageOutput_getEnabled = func(h phidget22.Handle) (bool, phidget22.Code) {
		return s.devBool(h, "enabled")
	}
	phidget22.PhidgetVoltageOutput_setEnabled = func(h phidget22.Handle, on bool) phidget22.Code {
		return s.setDevBool(h, "enabled", on)
	}

	phidget22.PhidgetVoltageRatioInput_create = s.create(ClassVoltageRatioInput)
	phidget22.PhidgetVoltageRatioInput_delete = s.release
	phidget22.PhidgetVoltageRatioInput_getVoltageRatio = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "voltageRatio")
	}
	phidget22.PhidgetVoltageRatioInput_setOnVoltageRatioChangeHandler = func(h phidget22.Handle, fn func(phidget22.Handle, float64)) phidget22.Code {
		return s.setF64Handler(h, "voltageRatio", fn)
	}

	phidget22.PhidgetHub_create = s.create(ClassHub)
	phidget22.PhidgetHub_delete = s.release
	phidget22.PhidgetHub_getPortMode = func(h phidget22.Handle, port int32) (uint32, phidget22.Code) {
		return s.devU32(h, portProp("portMode", port))
	}
	phidget22.PhidgetHub_setPortMode = func(h phidget22.Handle, port int32, mode uint32) phidget22.Code {
		return s.setDevF64(h, portProp("portMode", port), float64(mode))
	}
	phidget22.PhidgetHub_getPortPower = func(h phidget22.Handle, port int32) (bool, phidget22.Code) {
		return s.devBool(h, portProp("portPower", port))
	}
	phidget22.PhidgetHub_setPortPower = func(h phidget22.Handle, port int32, on bool) phidget22.Code {
		return s.setDevBool(h, portProp("portPower", port), on)
	}
	phidget22.PhidgetHub_setPortAutoSetSpeed = func(h phidget22.Handle, port int32, on bool) phidget22.Code {
		return s.setDevBool(h, portProp("portAutoSetSpeed", port), on)
	}
	phidget22.PhidgetHub_getPortSupportsAutoSetSpeed = func(h phidget22.Handle, port int32) (bool, phidget22.Code) {
		return s.devBool(h, portProp("portSupportsAutoSetSpeed", port))
	}
	phidget22.PhidgetHub_getPortSupportsSetSpeed = func(h phidget22.Handle, port int32) (bool, phidget22.Code) {
		return s.devBool(h, portProp("portSupportsSetSpeed", port))
	}

	phidget22.PhidgetStepper_create = s.create(ClassStepper)
	phidget22.PhidgetStepper_delete = s.release
	phidget22.PhidgetStepper_getPosition = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "position")
	}
	phidget22.PhidgetStepper_getTargetPosition = func(h phidget22.Handle) (float64, phidget22.Code) {
		return s.devF64(h, "targetPosition")
	}
	phidget22.PhidgetStepper_getEngaged = func(h phidget22.Handle) (bool, phidget22.Code) {
		v, code := s.devF64(h, "engaged")
		return v != 0, code
	}
	phidget22.PhidgetStepper_setEngaged = func(h phidget22.Handle, on bool) phidget22.Code {
		v := 0.0
		if on {
			v = 1.0
		}
		return s.setDevF64(h, "engaged", v)
	}
	// Moves complete instantly: the position jumps to the target and the
	// position change and stopped events fire.
	phidget22.PhidgetStepper_setTargetPosition = func(h phidget22.Handle, position float64) phidget22.Code {
		s.mu.Lock()
		defer s.mu.Unlock()
		o, code := s.attached(h)
		if code != codeOK {
			return code
		}
		o.dev.Props["targetPosition"] = position
		o.dev.Props["position"] = position
		if fn := o.f64Fns["position"]; fn != nil {
			h, fn := h, fn
			s.post(func() { fn(h, position) })
		}
		if fn := o.stoppedFn; fn != nil {
			h, fn := h, fn
			s.post(func() { fn(h) })
		}
		return codeOK
	}
	phidget22.PhidgetStepper_setOnPositionChangeHandler = func(h phidget22.Handle, fn func(phidget22.Handle, float64)) phidget22.Code {
		return s.setF64Handler(h, "position", fn)
	}
	phidget22.PhidgetStepper_setOnStoppedHandler = func(h phidget22.Handle, fn func(phidget22.Handle)) phidget22.Code {
		s.mu.Lock()
		defer s.mu.Unlock()
		o, code := s.get(h)
		if code != codeOK {
			return code
		}
		o.stoppedFn = fn
		return codeOK
	}
}

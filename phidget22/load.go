package phidget22

import (
	"fmt"
	"os"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Environment overrides for locating the native library at runtime.
// PHIDGET22_LIBRARY names the shared object itself; PHIDGET_ROOT names the
// vendor install directory (matching the variable the vendor documents for
// build-time linking).
const (
	EnvLibrary = "PHIDGET22_LIBRARY"
	EnvRoot    = "PHIDGET_ROOT"
)

var (
	loadOnce sync.Once
	loadErr  error
)

// Load locates and opens the phidget22 shared library and populates the
// function table. It is safe to call from multiple goroutines; only the
// first call does work and its result is cached. Load is a no-op when a
// test harness has already installed a substitute table.
func Load() error {
	if Ready() {
		return nil
	}
	loadOnce.Do(func() {
		loadErr = load()
	})
	return loadErr
}

// MustLoad is Load for program mainlines that cannot proceed without the
// native library.
func MustLoad() {
	if err := Load(); err != nil {
		panic(err)
	}
}

func load() error {
	var lastErr error
	for _, cand := range libraryCandidates() {
		h, err := openLibrary(cand)
		if err != nil {
			lastErr = err
			continue
		}
		register(h)
		return nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no library candidates for this platform")
	}
	return fmt.Errorf("phidget22: cannot load native library (set %s or %s): %w",
		EnvLibrary, EnvRoot, lastErr)
}

// libraryCandidates returns the shared-library names/paths to try, in order:
// the exact override, the vendor install root, then platform defaults.
func libraryCandidates() []string {
	var out []string
	if p := os.Getenv(EnvLibrary); p != "" {
		out = append(out, p)
	}
	if root := os.Getenv(EnvRoot); root != "" {
		out = append(out, rootCandidates(root)...)
	}
	return append(out, defaultCandidates()...)
}

// goString copies a NUL-terminated C string owned by the native library.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}

func getStr(lib uintptr, name string) func(Handle) (string, Code) {
	var raw func(Handle, *uintptr) Code
	purego.RegisterLibFunc(&raw, lib, name)
	return func(h Handle) (string, Code) {
		var p uintptr
		rc := raw(h, &p)
		if rc != CodeOK {
			return "", rc
		}
		return goString(p), CodeOK
	}
}

func getStr0(lib uintptr, name string) func() (string, Code) {
	var raw func(*uintptr) Code
	purego.RegisterLibFunc(&raw, lib, name)
	return func() (string, Code) {
		var p uintptr
		rc := raw(&p)
		if rc != CodeOK {
			return "", rc
		}
		return goString(p), CodeOK
	}
}

func getF64(lib uintptr, name string) func(Handle) (float64, Code) {
	var raw func(Handle, *float64) Code
	purego.RegisterLibFunc(&raw, lib, name)
	return func(h Handle) (float64, Code) {
		var v float64
		rc := raw(h, &v)
		return v, rc
	}
}

func getU32(lib uintptr, name string) func(Handle) (uint32, Code) {
	var raw func(Handle, *uint32) Code
	purego.RegisterLibFunc(&raw, lib, name)
	return func(h Handle) (uint32, Code) {
		var v uint32
		rc := raw(h, &v)
		return v, rc
	}
}

func getI32(lib uintptr, name string) func(Handle) (int32, Code) {
	var raw func(Handle, *int32) Code
	purego.RegisterLibFunc(&raw, lib, name)
	return func(h Handle) (int32, Code) {
		var v int32
		rc := raw(h, &v)
		return v, rc
	}
}

func getBool(lib uintptr, name string) func(Handle) (bool, Code) {
	var raw func(Handle, *int32) Code
	purego.RegisterLibFunc(&raw, lib, name)
	return func(h Handle) (bool, Code) {
		var v int32
		rc := raw(h, &v)
		return v != 0, rc
	}
}

func getPortU32(lib uintptr, name string) func(Handle, int32) (uint32, Code) {
	var raw func(Handle, int32, *uint32) Code
	purego.RegisterLibFunc(&raw, lib, name)
	return func(h Handle, port int32) (uint32, Code) {
		var v uint32
		rc := raw(h, port, &v)
		return v, rc
	}
}

func getPortBool(lib uintptr, name string) func(Handle, int32) (bool, Code) {
	var raw func(Handle, int32, *int32) Code
	purego.RegisterLibFunc(&raw, lib, name)
	return func(h Handle, port int32) (bool, Code) {
		var v int32
		rc := raw(h, port, &v)
		return v != 0, rc
	}
}

func getSetter(lib uintptr, name string) rawSetter {
	var raw rawSetter
	purego.RegisterLibFunc(&raw, lib, name)
	return raw
}

// register populates the whole function table from an opened library handle.
func register(lib uintptr) {
	reg := func(fptr any, name string) { purego.RegisterLibFunc(fptr, lib, name) }

	// Library-wide.
	Phidget_getLibraryVersion = getStr0(lib, "Phidget_getLibraryVersion")
	Phidget_getLibraryVersionNumber = getStr0(lib, "Phidget_getLibraryVersionNumber")
	{
		var raw func(uint32, *uintptr) Code
		reg(&raw, "Phidget_getErrorDescription")
		Phidget_getErrorDescription = func(code Code) (string, Code) {
			var p uintptr
			rc := raw(uint32(code), &p)
			if rc != CodeOK {
				return "", rc
			}
			return goString(p), CodeOK
		}
	}

	// Lifecycle and addressing.
	reg(&Phidget_open, "Phidget_open")
	reg(&Phidget_openWaitForAttachment, "Phidget_openWaitForAttachment")
	reg(&Phidget_close, "Phidget_close")
	reg(&Phidget_retain, "Phidget_retain")
	reg(&Phidget_release, "Phidget_release")
	Phidget_getAttached = getBool(lib, "Phidget_getAttached")
	Phidget_getIsOpen = getBool(lib, "Phidget_getIsOpen")
	Phidget_getDeviceSerialNumber = getI32(lib, "Phidget_getDeviceSerialNumber")
	reg(&Phidget_setDeviceSerialNumber, "Phidget_setDeviceSerialNumber")
	Phidget_getChannel = getI32(lib, "Phidget_getChannel")
	reg(&Phidget_setChannel, "Phidget_setChannel")
	Phidget_getHubPort = getI32(lib, "Phidget_getHubPort")
	reg(&Phidget_setHubPort, "Phidget_setHubPort")
	Phidget_getIsHubPortDevice = getBool(lib, "Phidget_getIsHubPortDevice")
	reg(&Phidget_setIsHubPortDevice, "Phidget_setIsHubPortDevice")
	Phidget_getIsLocal = getBool(lib, "Phidget_getIsLocal")
	reg(&Phidget_setIsLocal, "Phidget_setIsLocal")
	Phidget_getIsRemote = getBool(lib, "Phidget_getIsRemote")
	reg(&Phidget_setIsRemote, "Phidget_setIsRemote")

	// Metadata.
	Phidget_getDeviceClass = getU32(lib, "Phidget_getDeviceClass")
	Phidget_getDeviceClassName = getStr(lib, "Phidget_getDeviceClassName")
	Phidget_getChannelClass = getU32(lib, "Phidget_getChannelClass")
	Phidget_getChannelClassName = getStr(lib, "Phidget_getChannelClassName")
	Phidget_getDeviceID = getI32(lib, "Phidget_getDeviceID")
	Phidget_getDeviceName = getStr(lib, "Phidget_getDeviceName")
	Phidget_getDeviceSKU = getStr(lib, "Phidget_getDeviceSKU")
	Phidget_getChannelName = getStr(lib, "Phidget_getChannelName")
	Phidget_getDeviceLabel = getStr(lib, "Phidget_getDeviceLabel")
	reg(&Phidget_setDeviceLabel, "Phidget_setDeviceLabel")

	// Common event handlers.
	Phidget_setOnAttachHandler = voidSetter(&chanAttachHandlers, getSetter(lib, "Phidget_setOnAttachHandler"))
	Phidget_setOnDetachHandler = voidSetter(&chanDetachHandlers, getSetter(lib, "Phidget_setOnDetachHandler"))

	// Manager.
	reg(&PhidgetManager_create, "PhidgetManager_create")
	reg(&PhidgetManager_delete, "PhidgetManager_delete")
	reg(&PhidgetManager_open, "PhidgetManager_open")
	reg(&PhidgetManager_close, "PhidgetManager_close")
	PhidgetManager_setOnAttachHandler = managerSetter(&mgrAttachHandlers, getSetter(lib, "PhidgetManager_setOnAttachHandler"))
	PhidgetManager_setOnDetachHandler = managerSetter(&mgrDetachHandlers, getSetter(lib, "PhidgetManager_setOnDetachHandler"))

	// Network.
	reg(&PhidgetNet_addServer, "PhidgetNet_addServer")
	reg(&PhidgetNet_removeServer, "PhidgetNet_removeServer")
	reg(&PhidgetNet_removeAllServers, "PhidgetNet_removeAllServers")
	reg(&PhidgetNet_enableServer, "PhidgetNet_enableServer")
	reg(&PhidgetNet_disableServer, "PhidgetNet_disableServer")
	reg(&PhidgetNet_setServerPassword, "PhidgetNet_setServerPassword")
	reg(&PhidgetNet_enableServerDiscovery, "PhidgetNet_enableServerDiscovery")
	reg(&PhidgetNet_disableServerDiscovery, "PhidgetNet_disableServerDiscovery")

	// TemperatureSensor.
	reg(&PhidgetTemperatureSensor_create, "PhidgetTemperatureSensor_create")
	reg(&PhidgetTemperatureSensor_delete, "PhidgetTemperatureSensor_delete")
	PhidgetTemperatureSensor_getTemperature = getF64(lib, "PhidgetTemperatureSensor_getTemperature")
	PhidgetTemperatureSensor_getMinTemperature = getF64(lib, "PhidgetTemperatureSensor_getMinTemperature")
	PhidgetTemperatureSensor_getMaxTemperature = getF64(lib, "PhidgetTemperatureSensor_getMaxTemperature")
	PhidgetTemperatureSensor_getRTDType = getU32(lib, "PhidgetTemperatureSensor_getRTDType")
	reg(&PhidgetTemperatureSensor_setRTDType, "PhidgetTemperatureSensor_setRTDType")
	PhidgetTemperatureSensor_getRTDWireSetup = getU32(lib, "PhidgetTemperatureSensor_getRTDWireSetup")
	reg(&PhidgetTemperatureSensor_setRTDWireSetup, "PhidgetTemperatureSensor_setRTDWireSetup")
	PhidgetTemperatureSensor_getThermocoupleType = getU32(lib, "PhidgetTemperatureSensor_getThermocoupleType")
	reg(&PhidgetTemperatureSensor_setThermocoupleType, "PhidgetTemperatureSensor_setThermocoupleType")
	PhidgetTemperatureSensor_setOnTemperatureChangeHandler = f64Setter(&temperatureHandlers,
		getSetter(lib, "PhidgetTemperatureSensor_setOnTemperatureChangeHandler"))

	// HumiditySensor.
	reg(&PhidgetHumiditySensor_create, "PhidgetHumiditySensor_create")
	reg(&PhidgetHumiditySensor_delete, "PhidgetHumiditySensor_delete")
	PhidgetHumiditySensor_getHumidity = getF64(lib, "PhidgetHumiditySensor_getHumidity")
	PhidgetHumiditySensor_setOnHumidityChangeHandler = f64Setter(&humidityHandlers,
		getSetter(lib, "PhidgetHumiditySensor_setOnHumidityChangeHandler"))

	// PressureSensor.
	reg(&PhidgetPressureSensor_create, "PhidgetPressureSensor_create")
	reg(&PhidgetPressureSensor_delete, "PhidgetPressureSensor_delete")
	PhidgetPressureSensor_getPressure = getF64(lib, "PhidgetPressureSensor_getPressure")
	PhidgetPressureSensor_getMinPressure = getF64(lib, "PhidgetPressureSensor_getMinPressure")
	PhidgetPressureSensor_getMaxPressure = getF64(lib, "PhidgetPressureSensor_getMaxPressure")
	PhidgetPressureSensor_getPressureChangeTrigger = getF64(lib, "PhidgetPressureSensor_getPressureChangeTrigger")
	reg(&PhidgetPressureSensor_setPressureChangeTrigger, "PhidgetPressureSensor_setPressureChangeTrigger")
	PhidgetPressureSensor_getMinPressureChangeTrigger = getF64(lib, "PhidgetPressureSensor_getMinPressureChangeTrigger")
	PhidgetPressureSensor_getMaxPressureChangeTrigger = getF64(lib, "PhidgetPressureSensor_getMaxPressureChangeTrigger")
	PhidgetPressureSensor_setOnPressureChangeHandler = f64Setter(&pressureHandlers,
		getSetter(lib, "PhidgetPressureSensor_setOnPressureChangeHandler"))

	// CurrentInput.
	reg(&PhidgetCurrentInput_create, "PhidgetCurrentInput_create")
	reg(&PhidgetCurrentInput_delete, "PhidgetCurrentInput_delete")
	PhidgetCurrentInput_getCurrent = getF64(lib, "PhidgetCurrentInput_getCurrent")
	PhidgetCurrentInput_getMinCurrent = getF64(lib, "PhidgetCurrentInput_getMinCurrent")
	PhidgetCurrentInput_getMaxCurrent = getF64(lib, "PhidgetCurrentInput_getMaxCurrent")
	PhidgetCurrentInput_getCurrentChangeTrigger = getF64(lib, "PhidgetCurrentInput_getCurrentChangeTrigger")
	reg(&PhidgetCurrentInput_setCurrentChangeTrigger, "PhidgetCurrentInput_setCurrentChangeTrigger")
	PhidgetCurrentInput_getMinCurrentChangeTrigger = getF64(lib, "PhidgetCurrentInput_getMinCurrentChangeTrigger")
	PhidgetCurrentInput_getMaxCurrentChangeTrigger = getF64(lib, "PhidgetCurrentInput_getMaxCurrentChangeTrigger")
	PhidgetCurrentInput_setOnCurrentChangeHandler = f64Setter(&currentHandlers,
		getSetter(lib, "PhidgetCurrentInput_setOnCurrentChangeHandler"))

	// DigitalInput.
	reg(&PhidgetDigitalInput_create, "PhidgetDigitalInput_create")
	reg(&PhidgetDigitalInput_delete, "PhidgetDigitalInput_delete")
	PhidgetDigitalInput_getState = getBool(lib, "PhidgetDigitalInput_getState")
	PhidgetDigitalInput_getInputMode = getU32(lib, "PhidgetDigitalInput_getInputMode")
	reg(&PhidgetDigitalInput_setInputMode, "PhidgetDigitalInput_setInputMode")
	PhidgetDigitalInput_getPowerSupply = getU32(lib, "PhidgetDigitalInput_getPowerSupply")
	reg(&PhidgetDigitalInput_setPowerSupply, "PhidgetDigitalInput_setPowerSupply")
	PhidgetDigitalInput_setOnStateChangeHandler = stateSetter(&stateChangeHandlers,
		getSetter(lib, "PhidgetDigitalInput_setOnStateChangeHandler"))

	// DigitalOutput.
	reg(&PhidgetDigitalOutput_create, "PhidgetDigitalOutput_create")
	reg(&PhidgetDigitalOutput_delete, "PhidgetDigitalOutput_delete")
	PhidgetDigitalOutput_getState = getBool(lib, "PhidgetDigitalOutput_getState")
	reg(&PhidgetDigitalOutput_setState, "PhidgetDigitalOutput_setState")
	PhidgetDigitalOutput_getDutyCycle = getF64(lib, "PhidgetDigitalOutput_getDutyCycle")
	reg(&PhidgetDigitalOutput_setDutyCycle, "PhidgetDigitalOutput_setDutyCycle")
	PhidgetDigitalOutput_getMinDutyCycle = getF64(lib, "PhidgetDigitalOutput_getMinDutyCycle")
	PhidgetDigitalOutput_getMaxDutyCycle = getF64(lib, "PhidgetDigitalOutput_getMaxDutyCycle")
	PhidgetDigitalOutput_getFrequency = getF64(lib, "PhidgetDigitalOutput_getFrequency")
	reg(&PhidgetDigitalOutput_setFrequency, "PhidgetDigitalOutput_setFrequency")
	PhidgetDigitalOutput_getMinFrequency = getF64(lib, "PhidgetDigitalOutput_getMinFrequency")
	PhidgetDigitalOutput_getMaxFrequency = getF64(lib, "PhidgetDigitalOutput_getMaxFrequency")
	PhidgetDigitalOutput_getLEDCurrentLimit = getF64(lib, "PhidgetDigitalOutput_getLEDCurrentLimit")
	reg(&PhidgetDigitalOutput_setLEDCurrentLimit, "PhidgetDigitalOutput_setLEDCurrentLimit")
	PhidgetDigitalOutput_getLEDForwardVoltage = getU32(lib, "PhidgetDigitalOutput_getLEDForwardVoltage")
	reg(&PhidgetDigitalOutput_setLEDForwardVoltage, "PhidgetDigitalOutput_setLEDForwardVoltage")
	reg(&PhidgetDigitalOutput_enableFailsafe, "PhidgetDigitalOutput_enableFailsafe")
	reg(&PhidgetDigitalOutput_resetFailsafe, "PhidgetDigitalOutput_resetFailsafe")
	PhidgetDigitalOutput_getMinFailsafeTime = getU32(lib, "PhidgetDigitalOutput_getMinFailsafeTime")
	PhidgetDigitalOutput_getMaxFailsafeTime = getU32(lib, "PhidgetDigitalOutput_getMaxFailsafeTime")

	// VoltageInput.
	reg(&PhidgetVoltageInput_create, "PhidgetVoltageInput_create")
	reg(&PhidgetVoltageInput_delete, "PhidgetVoltageInput_delete")
	PhidgetVoltageInput_getVoltage = getF64(lib, "PhidgetVoltageInput_getVoltage")
	PhidgetVoltageInput_getMinVoltage = getF64(lib, "PhidgetVoltageInput_getMinVoltage")
	PhidgetVoltageInput_getMaxVoltage = getF64(lib, "PhidgetVoltageInput_getMaxVoltage")
	PhidgetVoltageInput_setOnVoltageChangeHandler = f64Setter(&voltageHandlers,
		getSetter(lib, "PhidgetVoltageInput_setOnVoltageChangeHandler"))

	// VoltageOutput.
	reg(&PhidgetVoltageOutput_create, "PhidgetVoltageOutput_create")
	reg(&PhidgetVoltageOutput_delete, "PhidgetVoltageOutput_delete")
	PhidgetVoltageOutput_getVoltage = getF64(lib, "PhidgetVoltageOutput_getVoltage")
	reg(&PhidgetVoltageOutput_setVoltage, "PhidgetVoltageOutput_setVoltage")
	PhidgetVoltageOutput_getMinVoltage = getF64(lib, "PhidgetVoltageOutput_getMinVoltage")
	PhidgetVoltageOutput_getMaxVoltage = getF64(lib, "PhidgetVoltageOutput_getMaxVoltage")
	PhidgetVoltageOutput_getEnabled = getBool(lib, "PhidgetVoltageOutput_getEnabled")
	reg(&PhidgetVoltageOutput_setEnabled, "PhidgetVoltageOutput_setEnabled")

	// VoltageRatioInput.
	reg(&PhidgetVoltageRatioInput_create, "PhidgetVoltageRatioInput_create")
	reg(&PhidgetVoltageRatioInput_delete, "PhidgetVoltageRatioInput_delete")
	PhidgetVoltageRatioInput_getVoltageRatio = getF64(lib, "PhidgetVoltageRatioInput_getVoltageRatio")
	PhidgetVoltageRatioInput_setOnVoltageRatioChangeHandler = f64Setter(&voltageRatioHandlers,
		getSetter(lib, "PhidgetVoltageRatioInput_setOnVoltageRatioChangeHandler"))

	// Stepper.
	reg(&PhidgetStepper_create, "PhidgetStepper_create")
	reg(&PhidgetStepper_delete, "PhidgetStepper_delete")
	PhidgetStepper_getAcceleration = getF64(lib, "PhidgetStepper_getAcceleration")
	reg(&PhidgetStepper_setAcceleration, "PhidgetStepper_setAcceleration")
	PhidgetStepper_getMinAcceleration = getF64(lib, "PhidgetStepper_getMinAcceleration")
	PhidgetStepper_getMaxAcceleration = getF64(lib, "PhidgetStepper_getMaxAcceleration")
	PhidgetStepper_getControlMode = getU32(lib, "PhidgetStepper_getControlMode")
	reg(&PhidgetStepper_setControlMode, "PhidgetStepper_setControlMode")
	PhidgetStepper_getCurrentLimit = getF64(lib, "PhidgetStepper_getCurrentLimit")
	reg(&PhidgetStepper_setCurrentLimit, "PhidgetStepper_setCurrentLimit")
	PhidgetStepper_getMinCurrentLimit = getF64(lib, "PhidgetStepper_getMinCurrentLimit")
	PhidgetStepper_getMaxCurrentLimit = getF64(lib, "PhidgetStepper_getMaxCurrentLimit")
	PhidgetStepper_getDataInterval = getU32(lib, "PhidgetStepper_getDataInterval")
	reg(&PhidgetStepper_setDataInterval, "PhidgetStepper_setDataInterval")
	PhidgetStepper_getMinDataInterval = getU32(lib, "PhidgetStepper_getMinDataInterval")
	PhidgetStepper_getMaxDataInterval = getU32(lib, "PhidgetStepper_getMaxDataInterval")
	PhidgetStepper_getDataRate = getF64(lib, "PhidgetStepper_getDataRate")
	reg(&PhidgetStepper_setDataRate, "PhidgetStepper_setDataRate")
	PhidgetStepper_getMinDataRate = getF64(lib, "PhidgetStepper_getMinDataRate")
	PhidgetStepper_getMaxDataRate = getF64(lib, "PhidgetStepper_getMaxDataRate")
	PhidgetStepper_getEngaged = getBool(lib, "PhidgetStepper_getEngaged")
	reg(&PhidgetStepper_setEngaged, "PhidgetStepper_setEngaged")
	reg(&PhidgetStepper_enableFailsafe, "PhidgetStepper_enableFailsafe")
	reg(&PhidgetStepper_resetFailsafe, "PhidgetStepper_resetFailsafe")
	PhidgetStepper_getMinFailsafeTime = getU32(lib, "PhidgetStepper_getMinFailsafeTime")
	PhidgetStepper_getMaxFailsafeTime = getU32(lib, "PhidgetStepper_getMaxFailsafeTime")
	PhidgetStepper_getHoldingCurrentLimit = getF64(lib, "PhidgetStepper_getHoldingCurrentLimit")
	reg(&PhidgetStepper_setHoldingCurrentLimit, "PhidgetStepper_setHoldingCurrentLimit")
	PhidgetStepper_getIsMoving = getBool(lib, "PhidgetStepper_getIsMoving")
	PhidgetStepper_getPosition = getF64(lib, "PhidgetStepper_getPosition")
	PhidgetStepper_getMinPosition = getF64(lib, "PhidgetStepper_getMinPosition")
	PhidgetStepper_getMaxPosition = getF64(lib, "PhidgetStepper_getMaxPosition")
	reg(&PhidgetStepper_addPositionOffset, "PhidgetStepper_addPositionOffset")
	PhidgetStepper_getRescaleFactor = getF64(lib, "PhidgetStepper_getRescaleFactor")
	reg(&PhidgetStepper_setRescaleFactor, "PhidgetStepper_setRescaleFactor")
	PhidgetStepper_getTargetPosition = getF64(lib, "PhidgetStepper_getTargetPosition")
	reg(&PhidgetStepper_setTargetPosition, "PhidgetStepper_setTargetPosition")
	PhidgetStepper_getVelocity = getF64(lib, "PhidgetStepper_getVelocity")
	PhidgetStepper_getVelocityLimit = getF64(lib, "PhidgetStepper_getVelocityLimit")
	reg(&PhidgetStepper_setVelocityLimit, "PhidgetStepper_setVelocityLimit")
	PhidgetStepper_getMinVelocityLimit = getF64(lib, "PhidgetStepper_getMinVelocityLimit")
	PhidgetStepper_getMaxVelocityLimit = getF64(lib, "PhidgetStepper_getMaxVelocityLimit")
	PhidgetStepper_setOnPositionChangeHandler = f64Setter(&positionHandlers,
		getSetter(lib, "PhidgetStepper_setOnPositionChangeHandler"))
	PhidgetStepper_setOnVelocityChangeHandler = f64Setter(&velocityHandlers,
		getSetter(lib, "PhidgetStepper_setOnVelocityChangeHandler"))
	PhidgetStepper_setOnStoppedHandler = voidSetter(&stoppedHandlers,
		getSetter(lib, "PhidgetStepper_setOnStoppedHandler"))

	// Hub.
	reg(&PhidgetHub_create, "PhidgetHub_create")
	reg(&PhidgetHub_delete, "PhidgetHub_delete")
	PhidgetHub_getPortMode = getPortU32(lib, "PhidgetHub_getPortMode")
	reg(&PhidgetHub_setPortMode, "PhidgetHub_setPortMode")
	PhidgetHub_getPortPower = getPortBool(lib, "PhidgetHub_getPortPower")
	reg(&PhidgetHub_setPortPower, "PhidgetHub_setPortPower")
	reg(&PhidgetHub_setPortAutoSetSpeed, "PhidgetHub_setPortAutoSetSpeed")
	PhidgetHub_getPortSupportsAutoSetSpeed = getPortBool(lib, "PhidgetHub_getPortSupportsAutoSetSpeed")
	PhidgetHub_getPortSupportsSetSpeed = getPortBool(lib, "PhidgetHub_getPortSupportsSetSpeed")
}

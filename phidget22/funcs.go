package phidget22

// Function table for the phidget22 library. Every variable is nil until
// Load succeeds. Grouped by the header section it was generated from.

// Library-wide functions.
var (
	Phidget_getLibraryVersion       func() (string, Code)
	Phidget_getLibraryVersionNumber func() (string, Code)
	Phidget_getErrorDescription     func(code Code) (string, Code)
)

// Common channel lifecycle and addressing.
var (
	Phidget_open                  func(h Handle) Code
	Phidget_openWaitForAttachment func(h Handle, timeoutMs uint32) Code
	Phidget_close                 func(h Handle) Code
	Phidget_retain                func(h Handle) Code
	Phidget_release               func(h *Handle) Code

	Phidget_getAttached func(h Handle) (bool, Code)
	Phidget_getIsOpen   func(h Handle) (bool, Code)

	Phidget_getDeviceSerialNumber func(h Handle) (int32, Code)
	Phidget_setDeviceSerialNumber func(h Handle, serial int32) Code
	Phidget_getChannel            func(h Handle) (int32, Code)
	Phidget_setChannel            func(h Handle, channel int32) Code
	Phidget_getHubPort            func(h Handle) (int32, Code)
	Phidget_setHubPort            func(h Handle, port int32) Code
	Phidget_getIsHubPortDevice    func(h Handle) (bool, Code)
	Phidget_setIsHubPortDevice    func(h Handle, on bool) Code
	Phidget_getIsLocal            func(h Handle) (bool, Code)
	Phidget_setIsLocal            func(h Handle, on bool) Code
	Phidget_getIsRemote           func(h Handle) (bool, Code)
	Phidget_setIsRemote           func(h Handle, on bool) Code
)

// Common channel metadata.
var (
	Phidget_getDeviceClass     func(h Handle) (uint32, Code)
	Phidget_getDeviceClassName func(h Handle) (string, Code)
	Phidget_getChannelClass    func(h Handle) (uint32, Code)
	Phidget_getChannelClassName func(h Handle) (string, Code)
	Phidget_getDeviceID        func(h Handle) (int32, Code)
	Phidget_getDeviceName      func(h Handle) (string, Code)
	Phidget_getDeviceSKU       func(h Handle) (string, Code)
	Phidget_getChannelName     func(h Handle) (string, Code)
	Phidget_getDeviceLabel     func(h Handle) (string, Code)
	Phidget_setDeviceLabel     func(h Handle, label string) Code
)

// Common channel event handlers. Passing a nil function clears the handler.
var (
	Phidget_setOnAttachHandler func(h Handle, fn func(Handle)) Code
	Phidget_setOnDetachHandler func(h Handle, fn func(Handle)) Code
)

// Manager.
var (
	PhidgetManager_create             func(m *ManagerHandle) Code
	PhidgetManager_delete             func(m *ManagerHandle) Code
	PhidgetManager_open               func(m ManagerHandle) Code
	PhidgetManager_close              func(m ManagerHandle) Code
	PhidgetManager_setOnAttachHandler func(m ManagerHandle, fn func(Handle)) Code
	PhidgetManager_setOnDetachHandler func(m ManagerHandle, fn func(Handle)) Code
)

// Network (client-side server registration).
var (
	PhidgetNet_addServer              func(name, address string, port int32, password string, flags int32) Code
	PhidgetNet_removeServer           func(name string) Code
	PhidgetNet_removeAllServers       func() Code
	PhidgetNet_enableServer           func(name string) Code
	PhidgetNet_disableServer          func(name string, flags int32) Code
	PhidgetNet_setServerPassword     func(name, password string) Code
	PhidgetNet_enableServerDiscovery  func(serverType uint32) Code
	PhidgetNet_disableServerDiscovery func(serverType uint32) Code
)

// TemperatureSensor channel class.
var (
	PhidgetTemperatureSensor_create            func(h *Handle) Code
	PhidgetTemperatureSensor_delete            func(h *Handle) Code
	PhidgetTemperatureSensor_getTemperature    func(h Handle) (float64, Code)
	PhidgetTemperatureSensor_getMinTemperature func(h Handle) (float64, Code)
	PhidgetTemperatureSensor_getMaxTemperature func(h Handle) (float64, Code)
	PhidgetTemperatureSensor_getRTDType        func(h Handle) (uint32, Code)
	PhidgetTemperatureSensor_setRTDType        func(h Handle, typ uint32) Code
	PhidgetTemperatureSensor_getRTDWireSetup   func(h Handle) (uint32, Code)
	PhidgetTemperatureSensor_setRTDWireSetup   func(h Handle, setup uint32) Code
	PhidgetTemperatureSensor_getThermocoupleType func(h Handle) (uint32, Code)
	PhidgetTemperatureSensor_setThermocoupleType func(h Handle, typ uint32) Code

	PhidgetTemperatureSensor_setOnTemperatureChangeHandler func(h Handle, fn func(Handle, float64)) Code
)

// HumiditySensor channel class.
var (
	PhidgetHumiditySensor_create      func(h *Handle) Code
	PhidgetHumiditySensor_delete      func(h *Handle) Code
	PhidgetHumiditySensor_getHumidity func(h Handle) (float64, Code)

	PhidgetHumiditySensor_setOnHumidityChangeHandler func(h Handle, fn func(Handle, float64)) Code
)

// PressureSensor channel class.
var (
	PhidgetPressureSensor_create                   func(h *Handle) Code
	PhidgetPressureSensor_delete                   func(h *Handle) Code
	PhidgetPressureSensor_getPressure              func(h Handle) (float64, Code)
	PhidgetPressureSensor_getMinPressure           func(h Handle) (float64, Code)
	PhidgetPressureSensor_getMaxPressure           func(h Handle) (float64, Code)
	PhidgetPressureSensor_getPressureChangeTrigger func(h Handle) (float64, Code)
	PhidgetPressureSensor_setPressureChangeTrigger func(h Handle, trigger float64) Code
	PhidgetPressureSensor_getMinPressureChangeTrigger func(h Handle) (float64, Code)
	PhidgetPressureSensor_getMaxPressureChangeTrigger func(h Handle) (float64, Code)

	PhidgetPressureSensor_setOnPressureChangeHandler func(h Handle, fn func(Handle, float64)) Code
)

// CurrentInput channel class.
var (
	PhidgetCurrentInput_create                  func(h *Handle) Code
	PhidgetCurrentInput_delete                  func(h *Handle) Code
	PhidgetCurrentInput_getCurrent              func(h Handle) (float64, Code)
	PhidgetCurrentInput_getMinCurrent           func(h Handle) (float64, Code)
	PhidgetCurrentInput_getMaxCurrent           func(h Handle) (float64, Code)
	PhidgetCurrentInput_getCurrentChangeTrigger func(h Handle) (float64, Code)
	PhidgetCurrentInput_setCurrentChangeTrigger func(h Handle, trigger float64) Code
	PhidgetCurrentInput_getMinCurrentChangeTrigger func(h Handle) (float64, Code)
	PhidgetCurrentInput_getMaxCurrentChangeTrigger func(h Handle) (float64, Code)

	PhidgetCurrentInput_setOnCurrentChangeHandler func(h Handle, fn func(Handle, float64)) Code
)

// DigitalInput channel class.
var (
	PhidgetDigitalInput_create         func(h *Handle) Code
	PhidgetDigitalInput_delete         func(h *Handle) Code
	PhidgetDigitalInput_getState       func(h Handle) (bool, Code)
	PhidgetDigitalInput_getInputMode   func(h Handle) (uint32, Code)
	PhidgetDigitalInput_setInputMode   func(h Handle, mode uint32) Code
	PhidgetDigitalInput_getPowerSupply func(h Handle) (uint32, Code)
	PhidgetDigitalInput_setPowerSupply func(h Handle, supply uint32) Code

	PhidgetDigitalInput_setOnStateChangeHandler func(h Handle, fn func(Handle, bool)) Code
)

// DigitalOutput channel class.
var (
	PhidgetDigitalOutput_create               func(h *Handle) Code
	PhidgetDigitalOutput_delete               func(h *Handle) Code
	PhidgetDigitalOutput_getState             func(h Handle) (bool, Code)
	PhidgetDigitalOutput_setState             func(h Handle, state bool) Code
	PhidgetDigitalOutput_getDutyCycle         func(h Handle) (float64, Code)
	PhidgetDigitalOutput_setDutyCycle         func(h Handle, duty float64) Code
	PhidgetDigitalOutput_getMinDutyCycle      func(h Handle) (float64, Code)
	PhidgetDigitalOutput_getMaxDutyCycle      func(h Handle) (float64, Code)
	PhidgetDigitalOutput_getFrequency         func(h Handle) (float64, Code)
	PhidgetDigitalOutput_setFrequency         func(h Handle, freq float64) Code
	PhidgetDigitalOutput_getMinFrequency      func(h Handle) (float64, Code)
	PhidgetDigitalOutput_getMaxFrequency      func(h Handle) (float64, Code)
	PhidgetDigitalOutput_getLEDCurrentLimit   func(h Handle) (float64, Code)
	PhidgetDigitalOutput_setLEDCurrentLimit   func(h Handle, limit float64) Code
	PhidgetDigitalOutput_getLEDForwardVoltage func(h Handle) (uint32, Code)
	PhidgetDigitalOutput_setLEDForwardVoltage func(h Handle, voltage uint32) Code
	PhidgetDigitalOutput_enableFailsafe       func(h Handle, timeMs uint32) Code
	PhidgetDigitalOutput_resetFailsafe        func(h Handle) Code
	PhidgetDigitalOutput_getMinFailsafeTime   func(h Handle) (uint32, Code)
	PhidgetDigitalOutput_getMaxFailsafeTime   func(h Handle) (uint32, Code)
)

// VoltageInput channel class.
var (
	PhidgetVoltageInput_create     func(h *Handle) Code
	PhidgetVoltageInput_delete     func(h *Handle) Code
	PhidgetVoltageInput_getVoltage func(h Handle) (float64, Code)
	PhidgetVoltageInput_getMinVoltage func(h Handle) (float64, Code)
	PhidgetVoltageInput_getMaxVoltage func(h Handle) (float64, Code)

	PhidgetVoltageInput_setOnVoltageChangeHandler func(h Handle, fn func(Handle, float64)) Code
)

// VoltageOutput channel class.
var (
	PhidgetVoltageOutput_create     func(h *Handle) Code
	PhidgetVoltageOutput_delete     func(h *Handle) Code
	PhidgetVoltageOutput_getVoltage func(h Handle) (float64, Code)
	PhidgetVoltageOutput_setVoltage func(h Handle, voltage float64) Code
	PhidgetVoltageOutput_getMinVoltage func(h Handle) (float64, Code)
	PhidgetVoltageOutput_getMaxVoltage func(h Handle) (float64, Code)
	PhidgetVoltageOutput_getEnabled func(h Handle) (bool, Code)
	PhidgetVoltageOutput_setEnabled func(h Handle, on bool) Code
)

// VoltageRatioInput channel class.
var (
	PhidgetVoltageRatioInput_create          func(h *Handle) Code
	PhidgetVoltageRatioInput_delete          func(h *Handle) Code
	PhidgetVoltageRatioInput_getVoltageRatio func(h Handle) (float64, Code)

	PhidgetVoltageRatioInput_setOnVoltageRatioChangeHandler func(h Handle, fn func(Handle, float64)) Code
)

// Stepper channel class.
var (
	PhidgetStepper_create                 func(h *Handle) Code
	PhidgetStepper_delete                 func(h *Handle) Code
	PhidgetStepper_getAcceleration        func(h Handle) (float64, Code)
	PhidgetStepper_setAcceleration        func(h Handle, accel float64) Code
	PhidgetStepper_getMinAcceleration     func(h Handle) (float64, Code)
	PhidgetStepper_getMaxAcceleration     func(h Handle) (float64, Code)
	PhidgetStepper_getControlMode         func(h Handle) (uint32, Code)
	PhidgetStepper_setControlMode         func(h Handle, mode uint32) Code
	PhidgetStepper_getCurrentLimit        func(h Handle) (float64, Code)
	PhidgetStepper_setCurrentLimit        func(h Handle, limit float64) Code
	PhidgetStepper_getMinCurrentLimit     func(h Handle) (float64, Code)
	PhidgetStepper_getMaxCurrentLimit     func(h Handle) (float64, Code)
	PhidgetStepper_getDataInterval        func(h Handle) (uint32, Code)
	PhidgetStepper_setDataInterval        func(h Handle, ms uint32) Code
	PhidgetStepper_getMinDataInterval     func(h Handle) (uint32, Code)
	PhidgetStepper_getMaxDataInterval     func(h Handle) (uint32, Code)
	PhidgetStepper_getDataRate            func(h Handle) (float64, Code)
	PhidgetStepper_setDataRate            func(h Handle, rate float64) Code
	PhidgetStepper_getMinDataRate         func(h Handle) (float64, Code)
	PhidgetStepper_getMaxDataRate         func(h Handle) (float64, Code)
	PhidgetStepper_getEngaged             func(h Handle) (bool, Code)
	PhidgetStepper_setEngaged             func(h Handle, on bool) Code
	PhidgetStepper_enableFailsafe         func(h Handle, timeMs uint32) Code
	PhidgetStepper_resetFailsafe          func(h Handle) Code
	PhidgetStepper_getMinFailsafeTime     func(h Handle) (uint32, Code)
	PhidgetStepper_getMaxFailsafeTime     func(h Handle) (uint32, Code)
	PhidgetStepper_getHoldingCurrentLimit func(h Handle) (float64, Code)
	PhidgetStepper_setHoldingCurrentLimit func(h Handle, limit float64) Code
	PhidgetStepper_getIsMoving            func(h Handle) (bool, Code)
	PhidgetStepper_getPosition            func(h Handle) (float64, Code)
	PhidgetStepper_getMinPosition         func(h Handle) (float64, Code)
	PhidgetStepper_getMaxPosition         func(h Handle) (float64, Code)
	PhidgetStepper_addPositionOffset      func(h Handle, offset float64) Code
	PhidgetStepper_getRescaleFactor       func(h Handle) (float64, Code)
	PhidgetStepper_setRescaleFactor       func(h Handle, factor float64) Code
	PhidgetStepper_getTargetPosition      func(h Handle) (float64, Code)
	PhidgetStepper_setTargetPosition      func(h Handle, position float64) Code
	PhidgetStepper_getVelocity            func(h Handle) (float64, Code)
	PhidgetStepper_getVelocityLimit       func(h Handle) (float64, Code)
	PhidgetStepper_setVelocityLimit       func(h Handle, limit float64) Code
	PhidgetStepper_getMinVelocityLimit    func(h Handle) (float64, Code)
	PhidgetStepper_getMaxVelocityLimit    func(h Handle) (float64, Code)

	PhidgetStepper_setOnPositionChangeHandler func(h Handle, fn func(Handle, float64)) Code
	PhidgetStepper_setOnVelocityChangeHandler func(h Handle, fn func(Handle, float64)) Code
	PhidgetStepper_setOnStoppedHandler        func(h Handle, fn func(Handle)) Code
)

// Hub channel class. Port-indexed functions take the hub port number.
var (
	PhidgetHub_create                      func(h *Handle) Code
	PhidgetHub_delete                      func(h *Handle) Code
	PhidgetHub_getPortMode                 func(h Handle, port int32) (uint32, Code)
	PhidgetHub_setPortMode                 func(h Handle, port int32, mode uint32) Code
	PhidgetHub_getPortPower                func(h Handle, port int32) (bool, Code)
	PhidgetHub_setPortPower                func(h Handle, port int32, on bool) Code
	PhidgetHub_setPortAutoSetSpeed         func(h Handle, port int32, on bool) Code
	PhidgetHub_getPortSupportsAutoSetSpeed func(h Handle, port int32) (bool, Code)
	PhidgetHub_getPortSupportsSetSpeed     func(h Handle, port int32) (bool, Code)
)

package phidgettest

import (
	"fmt"
	"time"

	"github.com/Alia5/gophidget/phidget22"
)

// ServerRec records a network server registration made through the fake.
type ServerRec struct {
	Address  string
	Port     int32
	Password string
	Enabled  bool
}

// install assigns the simulator to the phidget22 function table.
func (s *Sim) install() {
	phidget22.Phidget_getLibraryVersion = func() (string, phidget22.Code) {
		return "Phidget22 - Version 1.22 (simulated)", codeOK
	}
	phidget22.Phidget_getLibraryVersionNumber = func() (string, phidget22.Code) {
		return "1.22", codeOK
	}
	phidget22.Phidget_getErrorDescription = func(code phidget22.Code) (string, phidget22.Code) {
		return fmt.Sprintf("simulated error %d", uint32(code)), codeOK
	}

	phidget22.Phidget_open = func(h phidget22.Handle) phidget22.Code {
		s.mu.Lock()
		defer s.mu.Unlock()
		o, code := s.get(h)
		if code != codeOK {
			return code
		}
		o.open = true
		s.tryMatchLocked(o)
		if o.dev != nil && o.attachFn != nil {
			h, fn := h, o.attachFn
			s.post(func() { fn(h) })
		}
		return codeOK
	}
	phidget22.Phidget_openWaitForAttachment = func(h phidget22.Handle, timeoutMs uint32) phidget22.Code {
		deadline := time.Now().Add(time.Duration(timeoutMs) * time.Millisecond)
		for {
			s.mu.Lock()
			o, code := s.get(h)
			if code != codeOK {
				s.mu.Unlock()
				return code
			}
			o.open = true
			s.tryMatchLocked(o)
			if o.dev != nil {
				if o.attachFn != nil {
					h, fn := h, o.attachFn
					s.post(func() { fn(h) })
				}
				s.mu.Unlock()
				return codeOK
			}
			s.mu.Unlock()
			if timeoutMs != 0 && time.Now().After(deadline) {
				return codeTimeout
			}
			time.Sleep(time.Millisecond)
		}
	}
	phidget22.Phidget_close = func(h phidget22.Handle) phidget22.Code {
		s.mu.Lock()
		defer s.mu.Unlock()
		o, code := s.get(h)
		if code != codeOK {
			return code
		}
		o.open = false
		o.dev = nil
		return codeOK
	}
	phidget22.Phidget_retain = func(h phidget22.Handle) phidget22.Code {
		s.mu.Lock()
		defer s.mu.Unlock()
		o, code := s.get(h)
		if code != codeOK {
			return code
		}
		o.refs++
		return codeOK
	}
	phidget22.Phidget_release = s.release

	phidget22.Phidget_getAttached = func(h phidget22.Handle) (bool, phidget22.Code) {
		s.mu.Lock()
		defer s.mu.Unlock()
		o, code := s.get(h)
		if code != codeOK {
			return false, code
		}
		return o.dev != nil, codeOK
	}
	phidget22.Phidget_getIsOpen = func(h phidget22.Handle) (bool, phidget22.Code) {
		s.mu.Lock()
		defer s.mu.Unlock()
		o, code := s.get(h)
		if code != codeOK {
			return false, code
		}
		return o.open, codeOK
	}

	phidget22.Phidget_getDeviceSerialNumber = func(h phidget22.Handle) (int32, phidget22.Code) {
		s.mu.Lock()
		defer s.mu.Unlock()
		o, code := s.attached(h)
		if code != codeOK {
			return 0, code
		}
		return o.dev.Serial, codeOK
	}
	phidget22.Phidget_setDeviceSerialNumber = func(h phidget22.Handle, serial int32) phidget22.Code {
		return s.setFilter(h, func(o *object) { o.serialFilter = serial })
	}
	phidget22.Phidget_getChannel = func(h phidget22.Handle) (int32, phidget22.Code) {
		s.mu.Lock()
		defer s.mu.Unlock()
		o, code := s.attached(h)
		if code != codeOK {
			return 0, code
		}
		return o.dev.Channel, codeOK
	}
	phidget22.Phidget_setChannel = func(h phidget22.Handle, channel int32) phidget22.Code {
		return s.setFilter(h, func(o *object) { o.channelFilter = channel })
	}
	phidget22.Phidget_getHubPort = func(h phidget22.Handle) (int32, phidget22.Code) {
		s.mu.Lock()
		defer s.mu.Unlock()
		o, code := s.attached(h)
		if code != codeOK {
			return 0, code
		}
		return o.dev.HubPort, codeOK
	}
	phidget22.Phidget_setHubPort = func(h phidget22.Handle, port int32) phidget22.Code {
		return s.setFilter(h, func(o *object) { o.hubPortFilter = port })
	}
	phidget22.Phidget_getIsHubPortDevice = func(h phidget22.Handle) (bool, phidget22.Code) {
		return false, codeOK
	}
	phidget22.Phidget_setIsHubPortDevice = func(h phidget22.Handle, on bool) phidget22.Code {
		return s.setFilter(h, func(o *object) {})
	}
	phidget22.Phidget_getIsLocal = func(h phidget22.Handle) (bool, phidget22.Code) {
		return true, codeOK
	}
	phidget22.Phidget_setIsLocal = func(h phidget22.Handle, on bool) phidget22.Code {
		return s.setFilter(h, func(o *object) {})
	}
	phidget22.Phidget_getIsRemote = func(h phidget22.Handle) (bool, phidget22.Code) {
		return false, codeOK
	}
	phidget22.Phidget_setIsRemote = func(h phidget22.Handle, on bool) phidget22.Code {
		return s.setFilter(h, func(o *object) {})
	}

	phidget22.Phidget_getDeviceClass = func(h phidget22.Handle) (uint32, phidget22.Code) {
		s.mu.Lock()
		defer s.mu.Unlock()
		o, code := s.attached(h)
		if code != codeOK {
			return 0, code
		}
		return o.dev.DeviceClass, codeOK
	}
	phidget22.Phidget_getDeviceClassName = func(h phidget22.Handle) (string, phidget22.Code) {
		return "simulated", codeOK
	}
	phidget22.Phidget_getChannelClass = func(h phidget22.Handle) (uint32, phidget22.Code) {
		s.mu.Lock()
		defer s.mu.Unlock()
		o, code := s.attached(h)
		if code != codeOK {
			return 0, code
		}
		return o.dev.ChannelClass, codeOK
	}
	phidget22.Phidget_getChannelClassName = func(h phidget22.Handle) (string, phidget22.Code) {
		return "simulated", codeOK
	}
	phidget22.Phidget_getDeviceID = func(h phidget22.Handle) (int32, phidget22.Code) {
		s.mu.Lock()
		defer s.mu.Unlock()
		o, code := s.attached(h)
		if code != codeOK {
			return 0, code
		}
		return o.dev.DeviceID, codeOK
	}
	phidget22.Phidget_getDeviceName = func(h phidget22.Handle) (string, phidget22.Code) {
		return s.getStr(h, func(o *object) string { return o.dev.Name })
	}
	phidget22.Phidget_getDeviceSKU = func(h phidget22.Handle) (string, phidget22.Code) {
		return s.getStr(h, func(o *object) string { return o.dev.SKU })
	}
	phidget22.Phidget_getChannelName = func(h phidget22.Handle) (string, phidget22.Code) {
		return s.getStr(h, func(o *object) string { return o.dev.ChannelName })
	}
	phidget22.Phidget_getDeviceLabel = func(h phidget22.Handle) (string, phidget22.Code) {
		return s.getStr(h, func(o *object) string { return o.dev.Label })
	}
	phidget22.Phidget_setDeviceLabel = func(h phidget22.Handle, label string) phidget22.Code {
		s.mu.Lock()
		defer s.mu.Unlock()
		o, code := s.attached(h)
		if code != codeOK {
			return code
		}
		o.dev.Label = label
		return codeOK
	}

	phidget22.Phidget_setOnAttachHandler = func(h phidget22.Handle, fn func(phidget22.Handle)) phidget22.Code {
		s.mu.Lock()
		defer s.mu.Unlock()
		o, code := s.get(h)
		if code != codeOK {
			return code
		}
		o.attachFn = fn
		return codeOK
	}
	phidget22.Phidget_setOnDetachHandler = func(h phidget22.Handle, fn func(phidget22.Handle)) phidget22.Code {
		s.mu.Lock()
		defer s.mu.Unlock()
		o, code := s.get(h)
		if code != codeOK {
			return code
		}
		o.detachFn = fn
		return codeOK
	}

	s.installManager()
	s.installNet()
	s.installClasses()
}

func (s *Sim) setFilter(h phidget22.Handle, apply func(*object)) phidget22.Code {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, code := s.get(h)
	if code != codeOK {
		return code
	}
	apply(o)
	return codeOK
}

func (s *Sim) getStr(h phidget22.Handle, read func(*object) string) (string, phidget22.Code) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, code := s.attached(h)
	if code != codeOK {
		return "", code
	}
	return read(o), codeOK
}

func (s *Sim) installManager() {
	var nextManager uintptr = 1

	phidget22.PhidgetManager_create = func(m *phidget22.ManagerHandle) phidget22.Code {
		s.mu.Lock()
		defer s.mu.Unlock()
		*m = phidget22.ManagerHandle(nextManager)
		nextManager++
		s.managers[*m] = &managerObj{}
		return codeOK
	}
	phidget22.PhidgetManager_delete = func(m *phidget22.ManagerHandle) phidget22.Code {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.managers, *m)
		return codeOK
	}
	phidget22.PhidgetManager_open = func(m phidget22.ManagerHandle) phidget22.Code {
		s.mu.Lock()
		defer s.mu.Unlock()
		mo, ok := s.managers[m]
		if !ok {
			return codeClosed
		}
		mo.open = true
		// Already-attached devices are announced on open, like the native
		// library does.
		for _, d := range s.devices {
			if mo.attach != nil {
				s.postManagerEvent(d, mo.attach)
			}
		}
		return codeOK
	}
	phidget22.PhidgetManager_close = func(m phidget22.ManagerHandle) phidget22.Code {
		s.mu.Lock()
		defer s.mu.Unlock()
		mo, ok := s.managers[m]
		if !ok {
			return codeClosed
		}
		mo.open = false
		return codeOK
	}
	phidget22.PhidgetManager_setOnAttachHandler = func(m phidget22.ManagerHandle, fn func(phidget22.Handle)) phidget22.Code {
		s.mu.Lock()
		defer s.mu.Unlock()
		mo, ok := s.managers[m]
		if !ok {
			return codeClosed
		}
		mo.attach = fn
		return codeOK
	}
	phidget22.PhidgetManager_setOnDetachHandler = func(m phidget22.ManagerHandle, fn func(phidget22.Handle)) phidget22.Code {
		s.mu.Lock()
		defer s.mu.Unlock()
		mo, ok := s.managers[m]
		if !ok {
			return codeClosed
		}
		mo.detach = fn
		return codeOK
	}
}

func (s *Sim) installNet() {
	servers := map[string]*ServerRec{}
	s.serversRef = servers

	phidget22.PhidgetNet_addServer = func(name, address string, port int32, password string, flags int32) phidget22.Code {
		s.mu.Lock()
		defer s.mu.Unlock()
		servers[name] = &ServerRec{Address: address, Port: port, Password: password, Enabled: true}
		return codeOK
	}
	phidget22.PhidgetNet_removeServer = func(name string) phidget22.Code {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := servers[name]; !ok {
			return codeInvalidArg
		}
		delete(servers, name)
		return codeOK
	}
	phidget22.PhidgetNet_removeAllServers = func() phidget22.Code {
		s.mu.Lock()
		defer s.mu.Unlock()
		for name := range servers {
			delete(servers, name)
		}
		return codeOK
	}
	phidget22.PhidgetNet_enableServer = func(name string) phidget22.Code {
		return s.setServer(servers, name, func(r *ServerRec) { r.Enabled = true })
	}
	phidget22.PhidgetNet_disableServer = func(name string, flags int32) phidget22.Code {
		return s.setServer(servers, name, func(r *ServerRec) { r.Enabled = false })
	}
	phidget22.PhidgetNet_setServerPassword = func(name, password string) phidget22.Code {
		s.mu.Lock()
		defer s.mu.Unlock()
		r, ok := servers[name]
		if !ok {
			r = &ServerRec{}
			servers[name] = r
		}
		r.Password = password
		return codeOK
	}
	phidget22.PhidgetNet_enableServerDiscovery = func(serverType uint32) phidget22.Code {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.discovery = true
		return codeOK
	}
	phidget22.PhidgetNet_disableServerDiscovery = func(serverType uint32) phidget22.Code {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.discovery = false
		return codeOK
	}
}

func (s *Sim) setServer(servers map[string]*ServerRec, name string, apply func(*ServerRec)) phidget22.Code {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := servers[name]
	if !ok {
		return codeInvalidArg
	}
	apply(r)
	return codeOK
}

// Server returns a copy of a registered server record for assertions.
func (s *Sim) Server(name string) (ServerRec, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.serversRef[name]
	if !ok {
		return ServerRec{}, false
	}
	return *r, true
}

// DiscoveryEnabled reports whether server discovery is currently on.
func (s *Sim) DiscoveryEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discovery
}

// uninstall clears the function table so Ready reports false again.
func uninstall() {
	phidget22.Phidget_getLibraryVersion = nil
	phidget22.Phidget_getLibraryVersionNumber = nil
	phidget22.Phidget_getErrorDescription = nil
	phidget22.Phidget_open = nil
	phidget22.Phidget_openWaitForAttachment = nil
	phidget22.Phidget_close = nil
	phidget22.Phidget_retain = nil
	phidget22.Phidget_release = nil
	phidget22.Phidget_getAttached = nil
	phidget22.Phidget_getIsOpen = nil
	phidget22.Phidget_getDeviceSerialNumber = nil
	phidget22.Phidget_setDeviceSerialNumber = nil
	phidget22.Phidget_getChannel = nil
	phidget22.Phidget_setChannel = nil
	phidget22.Phidget_getHubPort = nil
	phidget22.Phidget_setHubPort = nil
	phidget22.Phidget_getIsHubPortDevice = nil
	phidget22.Phidget_setIsHubPortDevice = nil
	phidget22.Phidget_getIsLocal = nil
	phidget22.Phidget_setIsLocal = nil
	phidget22.Phidget_getIsRemote = nil
	phidget22.Phidget_setIsRemote = nil
	phidget22.Phidget_getDeviceClass = nil
	phidget22.Phidget_getDeviceClassName = nil
	phidget22.Phidget_getChannelClass = nil
	phidget22.Phidget_getChannelClassName = nil
	phidget22.Phidget_getDeviceID = nil
	phidget22.Phidget_getDeviceName = nil
	phidget22.Phidget_getDeviceSKU = nil
	phidget22.Phidget_getChannelName = nil
	phidget22.Phidget_getDeviceLabel = nil
	phidget22.Phidget_setDeviceLabel = nil
	phidget22.Phidget_setOnAttachHandler = nil
	phidget22.Phidget_setOnDetachHandler = nil
	phidget22.PhidgetManager_create = nil
	phidget22.PhidgetManager_delete = nil
	phidget22.PhidgetManager_open = nil
	phidget22.PhidgetManager_close = nil
	phidget22.PhidgetManager_setOnAttachHandler = nil
	phidget22.PhidgetManager_setOnDetachHandler = nil
	phidget22.PhidgetNet_addServer = nil
	phidget22.PhidgetNet_removeServer = nil
	phidget22.PhidgetNet_removeAllServers = nil
	phidget22.PhidgetNet_enableServer = nil
	phidget22.PhidgetNet_disableServer = nil
	phidget22.PhidgetNet_setServerPassword = nil
	phidget22.PhidgetNet_enableServerDiscovery = nil
	phidget22.PhidgetNet_disableServerDiscovery = nil
	phidget22.PhidgetTemperatureSensor_create = nil
	phidget22.PhidgetTemperatureSensor_delete = nil
	phidget22.PhidgetTemperatureSensor_getTemperature = nil
	phidget22.PhidgetTemperatureSensor_setOnTemperatureChangeHandler = nil
	phidget22.PhidgetHumiditySensor_create = nil
	phidget22.PhidgetHumiditySensor_delete = nil
	phidget22.PhidgetHumiditySensor_getHumidity = nil
	phidget22.PhidgetHumiditySensor_setOnHumidityChangeHandler = nil
	phidget22.PhidgetDigitalOutput_create = nil
	phidget22.PhidgetDigitalOutput_delete = nil
	phidget22.PhidgetDigitalOutput_getState = nil
	phidget22.PhidgetDigitalOutput_setState = nil
	phidget22.PhidgetDigitalOutput_getDutyCycle = nil
	phidget22.PhidgetDigitalOutput_setDutyCycle = nil
	phidget22.PhidgetPressureSensor_create = nil
	phidget22.PhidgetPressureSensor_delete = nil
	phidget22.PhidgetPressureSensor_getPressure = nil
	phidget22.PhidgetPressureSensor_getMinPressure = nil
	phidget22.PhidgetPressureSensor_getMaxPressure = nil
	phidget22.PhidgetPressureSensor_getPressureChangeTrigger = nil
	phidget22.PhidgetPressureSensor_setPressureChangeTrigger = nil
	phidget22.PhidgetPressureSensor_getMinPressureChangeTrigger = nil
	phidget22.PhidgetPressureSensor_getMaxPressureChangeTrigger = nil
	phidget22.PhidgetPressureSensor_setOnPressureChangeHandler = nil
	phidget22.PhidgetCurrentInput_create = nil
	phidget22.PhidgetCurrentInput_delete = nil
	phidget22.PhidgetCurrentInput_getCurrent = nil
	phidget22.PhidgetCurrentInput_getMinCurrent = nil
	phidget22.PhidgetCurrentInput_getMaxCurrent = nil
	phidget22.PhidgetCurrentInput_getCurrentChangeTrigger = nil
	phidget22.PhidgetCurrentInput_setCurrentChangeTrigger = nil
	phidget22.PhidgetCurrentInput_getMinCurrentChangeTrigger = nil
	phidget22.PhidgetCurrentInput_getMaxCurrentChangeTrigger = nil
	phidget22.PhidgetCurrentInput_setOnCurrentChangeHandler = nil
	phidget22.PhidgetDigitalInput_create = nil
	phidget22.PhidgetDigitalInput_delete = nil
	phidget22.PhidgetDigitalInput_getState = nil
	phidget22.PhidgetDigitalInput_getInputMode = nil
	phidget22.PhidgetDigitalInput_setInputMode = nil
	phidget22.PhidgetDigitalInput_getPowerSupply = nil
	phidget22.PhidgetDigitalInput_setPowerSupply = nil
	phidget22.PhidgetDigitalInput_setOnStateChangeHandler = nil
	phidget22.PhidgetVoltageInput_create = nil
	phidget22.PhidgetVoltageInput_delete = nil
	phidget22.PhidgetVoltageInput_getVoltage = nil
	phidget22.PhidgetVoltageInput_getMinVoltage = nil
	phidget22.PhidgetVoltageInput_getMaxVoltage = nil
	phidget22.PhidgetVoltageInput_setOnVoltageChangeHandler = nil
	phidget22.PhidgetVoltageOutput_create = nil
	phidget22.PhidgetVoltageOutput_delete = nil
	phidget22.PhidgetVoltageOutput_getVoltage = nil
	phidget22.PhidgetVoltageOutput_setVoltage = nil
	phidget22.PhidgetVoltageOutput_getMinVoltage = nil
	phidget22.PhidgetVoltageOutput_getMaxVoltage = nil
	phidget22.PhidgetVoltageOutput_getEnabled = nil
	phidget22.PhidgetVoltageOutput_setEnabled = nil
	phidget22.PhidgetVoltageRatioInput_create = nil
	phidget22.PhidgetVoltageRatioInput_delete = nil
	phidget22.PhidgetVoltageRatioInput_getVoltageRatio = nil
	phidget22.PhidgetVoltageRatioInput_setOnVoltageRatioChangeHandler = nil
	phidget22.PhidgetHub_create = nil
	phidget22.PhidgetHub_delete = nil
	phidget22.PhidgetHub_getPortMode = nil
	phidget22.PhidgetHub_setPortMode = nil
	phidget22.PhidgetHub_getPortPower = nil
	phidget22.PhidgetHub_setPortPower = nil
	phidget22.PhidgetHub_setPortAutoSetSpeed = nil
	phidget22.PhidgetHub_getPortSupportsAutoSetSpeed = nil
	phidget22.PhidgetHub_getPortSupportsSetSpeed = nil
	phidget22.PhidgetStepper_create = nil
	phidget22.PhidgetStepper_delete = nil
	phidget22.PhidgetStepper_getPosition = nil
	phidget22.PhidgetStepper_setTargetPosition = nil
	phidget22.PhidgetStepper_getTargetPosition = nil
	phidget22.PhidgetStepper_getEngaged = nil
	phidget22.PhidgetStepper_setEngaged = nil
	phidget22.PhidgetStepper_setOnPositionChangeHandler = nil
	phidget22.PhidgetStepper_setOnStoppedHandler = nil
}

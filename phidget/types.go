package phidget

import (
	"fmt"
	"strings"
)

// DeviceClass identifies the family a physical device belongs to
// (Phidget_DeviceClass in the native header).
type DeviceClass uint32

const (
	DeviceClassNothing           DeviceClass = 0
	DeviceClassAccelerometer     DeviceClass = 1
	DeviceClassAdvancedServo     DeviceClass = 2
	DeviceClassAnalog            DeviceClass = 3
	DeviceClassBridge            DeviceClass = 4
	DeviceClassEncoder           DeviceClass = 5
	DeviceClassFrequencyCounter  DeviceClass = 6
	DeviceClassGPS               DeviceClass = 7
	DeviceClassHub               DeviceClass = 8
	DeviceClassInterfaceKit      DeviceClass = 9
	DeviceClassIR                DeviceClass = 10
	DeviceClassLED               DeviceClass = 11
	DeviceClassMeshDongle        DeviceClass = 12
	DeviceClassMotorControl      DeviceClass = 13
	DeviceClassPHSensor          DeviceClass = 14
	DeviceClassRFID              DeviceClass = 15
	DeviceClassServo             DeviceClass = 16
	DeviceClassSpatial           DeviceClass = 17
	DeviceClassStepper           DeviceClass = 18
	DeviceClassTemperatureSensor DeviceClass = 19
	DeviceClassTextLCD           DeviceClass = 20
	DeviceClassVINT              DeviceClass = 21
	DeviceClassGeneric           DeviceClass = 22
	DeviceClassFirmwareUpgrade   DeviceClass = 23
	DeviceClassDictionary        DeviceClass = 24
	DeviceClassSoundSensor       DeviceClass = 25
)

var deviceClassNames = map[DeviceClass]string{
	DeviceClassNothing:           "Nothing",
	DeviceClassAccelerometer:     "Accelerometer",
	DeviceClassAdvancedServo:     "AdvancedServo",
	DeviceClassAnalog:            "Analog",
	DeviceClassBridge:            "Bridge",
	DeviceClassEncoder:           "Encoder",
	DeviceClassFrequencyCounter:  "FrequencyCounter",
	DeviceClassGPS:               "GPS",
	DeviceClassHub:               "Hub",
	DeviceClassInterfaceKit:      "InterfaceKit",
	DeviceClassIR:                "IR",
	DeviceClassLED:               "LED",
	DeviceClassMeshDongle:        "MeshDongle",
	DeviceClassMotorControl:      "MotorControl",
	DeviceClassPHSensor:          "PHSensor",
	DeviceClassRFID:              "RFID",
	DeviceClassServo:             "Servo",
	DeviceClassSpatial:           "Spatial",
	DeviceClassStepper:           "Stepper",
	DeviceClassTemperatureSensor: "TemperatureSensor",
	DeviceClassTextLCD:           "TextLCD",
	DeviceClassVINT:              "VINT",
	DeviceClassGeneric:           "Generic",
	DeviceClassFirmwareUpgrade:   "FirmwareUpgrade",
	DeviceClassDictionary:        "Dictionary",
	DeviceClassSoundSensor:       "SoundSensor",
}

func (c DeviceClass) String() string {
	if name, ok := deviceClassNames[c]; ok {
		return name
	}
	return fmt.Sprintf("DeviceClass(%d)", uint32(c))
}

// MarshalText encodes the class by name so it reads well in yaml/json output.
func (c DeviceClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *DeviceClass) UnmarshalText(text []byte) error {
	parsed, err := ParseDeviceClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseDeviceClass resolves a class name (case-insensitive) to its value.
func ParseDeviceClass(s string) (DeviceClass, error) {
	for c, name := range deviceClassNames {
		if strings.EqualFold(name, s) {
			return c, nil
		}
	}
	return DeviceClassNothing, fmt.Errorf("unknown device class %q", s)
}

// ChannelClass identifies the capability class of a single channel
// (Phidget_ChannelClass in the native header).
type ChannelClass uint32

const (
	ChannelClassNothing                 ChannelClass = 0
	ChannelClassAccelerometer           ChannelClass = 1
	ChannelClassCurrentInput            ChannelClass = 2
	ChannelClassDataAdapter             ChannelClass = 3
	ChannelClassDCMotor                 ChannelClass = 4
	ChannelClassDigitalInput            ChannelClass = 5
	ChannelClassDigitalOutput           ChannelClass = 6
	ChannelClassDistanceSensor          ChannelClass = 7
	ChannelClassEncoder                 ChannelClass = 8
	ChannelClassFrequencyCounter        ChannelClass = 9
	ChannelClassGPS                     ChannelClass = 10
	ChannelClassLCD                     ChannelClass = 11
	ChannelClassGyroscope               ChannelClass = 12
	ChannelClassHub                     ChannelClass = 13
	ChannelClassCapacitiveTouch         ChannelClass = 14
	ChannelClassHumiditySensor          ChannelClass = 15
	ChannelClassIR                      ChannelClass = 16
	ChannelClassLightSensor             ChannelClass = 17
	ChannelClassMagnetometer            ChannelClass = 18
	ChannelClassMeshDongle              ChannelClass = 19
	ChannelClassPowerGuard              ChannelClass = 20
	ChannelClassPressureSensor          ChannelClass = 21
	ChannelClassRCServo                 ChannelClass = 22
	ChannelClassResistanceInput         ChannelClass = 23
	ChannelClassRFID                    ChannelClass = 24
	ChannelClassSoundSensor             ChannelClass = 25
	ChannelClassSpatial                 ChannelClass = 26
	ChannelClassStepper                 ChannelClass = 27
	ChannelClassTemperatureSensor       ChannelClass = 28
	ChannelClassVoltageInput            ChannelClass = 29
	ChannelClassVoltageOutput           ChannelClass = 30
	ChannelClassVoltageRatioInput       ChannelClass = 31
	ChannelClassFirmwareUpgrade         ChannelClass = 32
	ChannelClassGeneric                 ChannelClass = 33
	ChannelClassMotorPositionController ChannelClass = 34
	ChannelClassBLDCMotor               ChannelClass = 35
	ChannelClassDictionary              ChannelClass = 36
	ChannelClassPHSensor                ChannelClass = 37
	ChannelClassMotorVelocityController ChannelClass = 38
	ChannelClassCurrentOutput           ChannelClass = 39
)

var channelClassNames = map[ChannelClass]string{
	ChannelClassNothing:                 "Nothing",
	ChannelClassAccelerometer:           "Accelerometer",
	ChannelClassCurrentInput:            "CurrentInput",
	ChannelClassDataAdapter:             "DataAdapter",
	ChannelClassDCMotor:                 "DCMotor",
	ChannelClassDigitalInput:            "DigitalInput",
	ChannelClassDigitalOutput:           "DigitalOutput",
	ChannelClassDistanceSensor:          "DistanceSensor",
	ChannelClassEncoder:                 "Encoder",
	ChannelClassFrequencyCounter:        "FrequencyCounter",
	ChannelClassGPS:                     "GPS",
	ChannelClassLCD:                     "LCD",
	ChannelClassGyroscope:               "Gyroscope",
	ChannelClassHub:                     "Hub",
	ChannelClassCapacitiveTouch:         "CapacitiveTouch",
	ChannelClassHumiditySensor:          "HumiditySensor",
	ChannelClassIR:                      "IR",
	ChannelClassLightSensor:             "LightSensor",
	ChannelClassMagnetometer:            "Magnetometer",
	ChannelClassMeshDongle:              "MeshDongle",
	ChannelClassPowerGuard:              "PowerGuard",
	ChannelClassPressureSensor:          "PressureSensor",
	ChannelClassRCServo:                 "RCServo",
	ChannelClassResistanceInput:         "ResistanceInput",
	ChannelClassRFID:                    "RFID",
	ChannelClassSoundSensor:             "SoundSensor",
	ChannelClassSpatial:                 "Spatial",
	ChannelClassStepper:                 "Stepper",
	ChannelClassTemperatureSensor:       "TemperatureSensor",
	ChannelClassVoltageInput:            "VoltageInput",
	ChannelClassVoltageOutput:           "VoltageOutput",
	ChannelClassVoltageRatioInput:       "VoltageRatioInput",
	ChannelClassFirmwareUpgrade:         "FirmwareUpgrade",
	ChannelClassGeneric:                 "Generic",
	ChannelClassMotorPositionController: "MotorPositionController",
	ChannelClassBLDCMotor:               "BLDCMotor",
	ChannelClassDictionary:              "Dictionary",
	ChannelClassPHSensor:                "PHSensor",
	ChannelClassMotorVelocityController: "MotorVelocityController",
	ChannelClassCurrentOutput:           "CurrentOutput",
}

func (c ChannelClass) String() string {
	if name, ok := channelClassNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ChannelClass(%d)", uint32(c))
}

func (c ChannelClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ChannelClass) UnmarshalText(text []byte) error {
	parsed, err := ParseChannelClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseChannelClass resolves a class name (case-insensitive) to its value.
func ParseChannelClass(s string) (ChannelClass, error) {
	for c, name := range channelClassNames {
		if strings.EqualFold(name, s) {
			return c, nil
		}
	}
	return ChannelClassNothing, fmt.Errorf("unknown channel class %q", s)
}

// DeviceID identifies the exact device model (Phidget_DeviceID). The value
// space is large and grows with every hardware release, so it is kept
// numeric here; Phidget.DeviceName resolves the human-readable model name
// through the library.
type DeviceID int32

func (id DeviceID) String() string {
	return fmt.Sprintf("DeviceID(%d)", int32(id))
}

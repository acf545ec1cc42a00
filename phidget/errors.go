// Package phidget is the ownership and capability layer over the phidget22
// native binding. It defines the typed error codes, the Phidget capability
// interface shared by every device type, and the two views over a native
// handle: Ref (borrowed, valid only inside the producing callback) and
// Generic (owned, reference-counted, safe to hand to another goroutine).
package phidget

import (
	"fmt"

	"github.com/Alia5/gophidget/phidget22"
)

// ReturnCode is a nonzero phidget22 return code surfaced as a Go error.
// The numeric values are the library's own; unknown values are normalized
// to ErrUnexpected.
type ReturnCode uint32

const (
	ErrPerm             ReturnCode = 1
	ErrNoEnt            ReturnCode = 2
	ErrTimeout          ReturnCode = 3
	ErrInterrupted      ReturnCode = 4
	ErrIO               ReturnCode = 5
	ErrNoMemory         ReturnCode = 6
	ErrAccess           ReturnCode = 7
	ErrFault            ReturnCode = 8
	ErrBusy             ReturnCode = 9
	ErrExist            ReturnCode = 10
	ErrNotDir           ReturnCode = 11
	ErrIsDir            ReturnCode = 12
	ErrInvalid          ReturnCode = 13
	ErrNFile            ReturnCode = 14
	ErrMFile            ReturnCode = 15
	ErrNoSpace          ReturnCode = 16
	ErrFileTooBig       ReturnCode = 17
	ErrReadOnlyFS       ReturnCode = 18
	ErrReadOnly         ReturnCode = 19
	ErrUnsupported      ReturnCode = 20
	ErrInvalidArg       ReturnCode = 21
	ErrAgain            ReturnCode = 22
	ErrNotEmpty         ReturnCode = 26
	ErrDuplicate        ReturnCode = 27
	ErrUnexpected       ReturnCode = 28
	ErrEOF              ReturnCode = 31
	ErrConnRefused      ReturnCode = 35
	ErrBadPassword      ReturnCode = 37
	ErrNoDevice         ReturnCode = 40
	ErrPipe             ReturnCode = 41
	ErrResolve          ReturnCode = 44
	ErrNetUnavailable   ReturnCode = 45
	ErrConnReset        ReturnCode = 46
	ErrHostUnreachable  ReturnCode = 48
	ErrWrongDevice      ReturnCode = 50
	ErrUnknownValue     ReturnCode = 51
	ErrNotAttached      ReturnCode = 52
	ErrInvalidPacket    ReturnCode = 53
	ErrTooBig           ReturnCode = 54
	ErrBadVersion       ReturnCode = 55
	ErrClosed           ReturnCode = 56
	ErrNotConfigured    ReturnCode = 57
	ErrKeepAlive        ReturnCode = 58
	ErrFailsafe         ReturnCode = 59
	ErrUnknownValueHigh ReturnCode = 60
	ErrUnknownValueLow  ReturnCode = 61
	ErrBadPower         ReturnCode = 62
	ErrPowerCycle       ReturnCode = 63
	ErrHallSensor       ReturnCode = 64
	ErrBadCurrent       ReturnCode = 65
	ErrBadConnection    ReturnCode = 66
	ErrNACK             ReturnCode = 67
)

var codeNames = map[ReturnCode]string{
	ErrPerm:             "not permitted",
	ErrNoEnt:            "no such entity",
	ErrTimeout:          "timed out",
	ErrInterrupted:      "interrupted",
	ErrIO:               "I/O error",
	ErrNoMemory:         "out of memory",
	ErrAccess:           "access denied",
	ErrFault:            "address fault",
	ErrBusy:             "resource busy",
	ErrExist:            "object exists",
	ErrNotDir:           "not a directory",
	ErrIsDir:            "is a directory",
	ErrInvalid:          "invalid",
	ErrNFile:            "too many open files in system",
	ErrMFile:            "too many open files",
	ErrNoSpace:          "no space left",
	ErrFileTooBig:       "file too big",
	ErrReadOnlyFS:       "read-only filesystem",
	ErrReadOnly:         "read-only object",
	ErrUnsupported:      "operation not supported",
	ErrInvalidArg:       "invalid argument",
	ErrAgain:            "try again",
	ErrNotEmpty:         "not empty",
	ErrDuplicate:        "duplicate request",
	ErrUnexpected:       "unexpected error",
	ErrEOF:              "end of file",
	ErrConnRefused:      "connection refused",
	ErrBadPassword:      "bad password",
	ErrNoDevice:         "no such device",
	ErrPipe:             "broken pipe",
	ErrResolve:          "name resolution failed",
	ErrNetUnavailable:   "network unavailable",
	ErrConnReset:        "connection reset",
	ErrHostUnreachable:  "host unreachable",
	ErrWrongDevice:      "wrong device",
	ErrUnknownValue:     "value unknown",
	ErrNotAttached:      "device not attached",
	ErrInvalidPacket:    "invalid packet",
	ErrTooBig:           "argument list too long",
	ErrBadVersion:       "bad version",
	ErrClosed:           "closed",
	ErrNotConfigured:    "not configured",
	ErrKeepAlive:        "keep-alive failure",
	ErrFailsafe:         "failsafe triggered",
	ErrUnknownValueHigh: "value above valid range",
	ErrUnknownValueLow:  "value below valid range",
	ErrBadPower:         "bad power supply",
	ErrPowerCycle:       "power cycle required",
	ErrHallSensor:       "hall sensor out of range",
	ErrBadCurrent:       "bad current reading",
	ErrBadConnection:    "bad connection",
	ErrNACK:             "NACK received",
}

// Error implements error. When the native library is available its own
// description text is appended.
func (rc ReturnCode) Error() string {
	name, ok := codeNames[rc]
	if !ok {
		name = "unexpected error"
	}
	if phidget22.Ready() && phidget22.Phidget_getErrorDescription != nil {
		if descr, code := phidget22.Phidget_getErrorDescription(phidget22.Code(rc)); code == phidget22.CodeOK && descr != "" {
			return fmt.Sprintf("phidget: %s (code %d: %s)", name, uint32(rc), descr)
		}
	}
	return fmt.Sprintf("phidget: %s (code %d)", name, uint32(rc))
}

// Result maps a raw native return code to a Go error: zero becomes nil,
// anything else the corresponding ReturnCode. Unknown codes map to
// ErrUnexpected so callers can always match against the named values.
func Result(code phidget22.Code) error {
	if code == phidget22.CodeOK {
		return nil
	}
	rc := ReturnCode(code)
	if _, ok := codeNames[rc]; !ok {
		rc = ErrUnexpected
	}
	return rc
}

package xopdesc

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ConnectivityState is the state of the local radio as reported by
// the platform manager.  It describes as its symbolic name.
type ConnectivityState int32

const (
	StateUnknown      ConnectivityState = iota // unknown
	StateResetting                             // resetting
	StateUnsupported                           // unsupported
	StateUnauthorized                          // unauthorized
	StatePoweredOff                            // poweredOff
	StatePoweredOn                             // poweredOn
)

var _ConnectivityStateNames = [...]string{
	StateUnknown:      "unknown",
	StateResetting:    "resetting",
	StateUnsupported:  "unsupported",
	StateUnauthorized: "unauthorized",
	StatePoweredOff:   "poweredOff",
	StatePoweredOn:    "poweredOn",
}

func (i ConnectivityState) String() string {
	if !i.IsAConnectivityState() {
		return fmt.Sprintf("ConnectivityState(%d)", i)
	}
	return _ConnectivityStateNames[i]
}

func (i ConnectivityState) Describe() string { return i.String() }

// IsAConnectivityState returns "true" if the value is listed in the enum definition. "false" otherwise
func (i ConnectivityState) IsAConnectivityState() bool {
	return i >= StateUnknown && int(i) < len(_ConnectivityStateNames)
}

// ConnectivityStateValues returns all values of the enum
func ConnectivityStateValues() []ConnectivityState {
	values := make([]ConnectivityState, len(_ConnectivityStateNames))
	for i := range values {
		values[i] = ConnectivityState(i)
	}
	return values
}

// ConnectivityStateString retrieves an enum value from its name, ignoring case
func ConnectivityStateString(s string) (ConnectivityState, error) {
	for i, name := range _ConnectivityStateNames {
		if strings.EqualFold(name, s) {
			return ConnectivityState(i), nil
		}
	}
	return 0, errors.Errorf("%q does not belong to ConnectivityState values", s)
}

package xopnum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const _SeverityName = "verbosedebuginfowarningerrornone"

var _SeverityIndex = [...]uint8{0, 7, 12, 16, 23, 28, 32}

const _SeverityLowerName = "verbosedebuginfowarningerrornone"

func (i Severity) String() string {
	if i < 0 || i >= Severity(len(_SeverityIndex)-1) {
		return fmt.Sprintf("Severity(%d)", i)
	}
	return _SeverityName[_SeverityIndex[i]:_SeverityIndex[i+1]]
}

var _SeverityValues = []Severity{Verbose, Debug, Info, Warning, Error, None}

var _SeverityNameToValueMap = map[string]Severity{
	_SeverityName[0:7]:        Verbose,
	_SeverityLowerName[0:7]:   Verbose,
	_SeverityName[7:12]:       Debug,
	_SeverityLowerName[7:12]:  Debug,
	_SeverityName[12:16]:      Info,
	_SeverityLowerName[12:16]: Info,
	_SeverityName[16:23]:      Warning,
	_SeverityLowerName[16:23]: Warning,
	_SeverityName[23:28]:      Error,
	_SeverityLowerName[23:28]: Error,
	_SeverityName[28:32]:      None,
	_SeverityLowerName[28:32]: None,
}

var _SeverityNames = []string{
	_SeverityName[0:7],
	_SeverityName[7:12],
	_SeverityName[12:16],
	_SeverityName[16:23],
	_SeverityName[23:28],
	_SeverityName[28:32],
}

// SeverityString retrieves an enum value from the enum constants string name.
// Mnemonics (VERB, DEBG, ...) are accepted too. Throws an error if the param
// is not part of the enum.
func SeverityString(s string) (Severity, error) {
	if val, ok := _SeverityNameToValueMap[s]; ok {
		return val, nil
	}
	lower := strings.ToLower(s)
	if val, ok := _SeverityNameToValueMap[lower]; ok {
		return val, nil
	}
	for i, m := range mnemonics {
		if strings.EqualFold(m, s) {
			return Severity(i), nil
		}
	}
	return 0, errors.Errorf("%q does not belong to Severity values", s)
}

// SeverityValues returns all values of the enum
func SeverityValues() []Severity {
	return _SeverityValues
}

// SeverityStrings returns a slice of all String values of the enum
func SeverityStrings() []string {
	strs := make([]string, len(_SeverityNames))
	copy(strs, _SeverityNames)
	return strs
}

// IsASeverity returns "true" if the value is listed in the enum definition. "false" otherwise
func (i Severity) IsASeverity() bool {
	for _, v := range _SeverityValues {
		if i == v {
			return true
		}
	}
	return false
}

// MarshalJSON implements the json.Marshaler interface for Severity
func (i Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Severity
func (i *Severity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrapf(err, "Severity should be a string, got %s", data)
	}

	var err error
	*i, err = SeverityString(s)
	return err
}

// MarshalText implements the encoding.TextMarshaler interface for Severity
func (i Severity) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface for Severity
func (i *Severity) UnmarshalText(text []byte) error {
	var err error
	*i, err = SeverityString(string(text))
	return err
}

func (i Severity) Value() (driver.Value, error) {
	return i.String(), nil
}

func (i *Severity) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	case fmt.Stringer:
		str = v.String()
	default:
		return errors.Errorf("invalid value of Severity: %[1]T(%[1]v)", value)
	}

	val, err := SeverityString(str)
	if err != nil {
		return err
	}

	*i = val
	return nil
}

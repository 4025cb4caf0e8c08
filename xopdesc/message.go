package xopdesc

import "fmt"

// Message returns a deferred log message.  Describable and []byte
// arguments are replaced by their descriptions, and the format is
// applied, only when the returned function is called.
func Message(format string, args ...interface{}) func() string {
	return func() string {
		rendered := make([]interface{}, len(args))
		for i, arg := range args {
			switch arg.(type) {
			case Describable, []byte:
				rendered[i] = Of(arg)
			default:
				rendered[i] = arg
			}
		}
		return fmt.Sprintf(format, rendered...)
	}
}

/*
Package xopdesc lets values render a diagnostic description of
themselves.  Descriptions are meant for log messages: they never fail
and never panic, falling back to a coarser placeholder when the data
for a richer one is missing.

Built-in types gain the capability through named wrappers such as
Bytes and Text.  Slices of describable values compose with List.
*/
package xopdesc

import (
	"fmt"
	"strings"

	"github.com/muir/list"
)

type Describable interface {
	Describe() string
}

// List describes as "[" + each element's description joined by ", " + "]"
type List[T Describable] []T

// ListOf copies items so that a description built later, for example
// inside a deferred log message, sees the values as they were now.
func ListOf[T Describable](items ...T) List[T] {
	return List[T](list.Copy(items))
}

func (l List[T]) Describe() string { return Join([]T(l)) }

// Join is the composition rule behind List
func Join[T Describable](items []T) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(describeOne(item))
	}
	b.WriteByte(']')
	return b.String()
}

// Text is a string that describes as itself
type Text string

func (t Text) Describe() string { return string(t) }

// Error describes err.Error(), or <nil>
func Error(err error) Describable { return errorDesc{err: err} }

type errorDesc struct{ err error }

func (e errorDesc) Describe() string {
	if e.err == nil {
		return nilPlaceholder
	}
	return Of(e.err)
}

const nilPlaceholder = "<nil>"

// Of renders any value.  Describable values use Describe, []byte
// renders as hex, errors and fmt.Stringers use their own text, and
// anything else becomes a <type> placeholder.
func Of(v interface{}) (s string) {
	if v == nil {
		return nilPlaceholder
	}
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("<%T: describe panicked>", v)
		}
	}()
	switch x := v.(type) {
	case Describable:
		return x.Describe()
	case []byte:
		return Bytes(x).Describe()
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	case string:
		return x
	default:
		return fmt.Sprintf("<%T>", v)
	}
}

// describeOne guards a single element so that one bad element does
// not take down the description of the whole list.
func describeOne(d Describable) (s string) {
	if interface{}(d) == nil {
		return nilPlaceholder
	}
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("<%T: describe panicked>", d)
		}
	}()
	return d.Describe()
}

package xopdesc

import (
	"fmt"
	"strconv"

	"github.com/xoplog/xopdiag/xoputil"
)

// Kind is the sort of platform object a Handle stands for
type Kind int32

const (
	KindManager        Kind = iota // Manager
	KindPeripheral                 // Peripheral
	KindCentral                    // Central
	KindService                    // Service
	KindCharacteristic             // Characteristic
	KindDescriptor                 // Descriptor
	KindRequest                    // Request
	KindL2CAPChannel               // L2CAPChannel
)

var kindNames = [...]string{
	KindManager:        "Manager",
	KindPeripheral:     "Peripheral",
	KindCentral:        "Central",
	KindService:        "Service",
	KindCharacteristic: "Characteristic",
	KindDescriptor:     "Descriptor",
	KindRequest:        "Request",
	KindL2CAPChannel:   "L2CAPChannel",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

var instances = xoputil.NewInstanceCounter[Kind]()

// Handle gives an opaque platform object a stable diagnostic identity.
// The instance number is assigned once, per kind, when the handle is
// created; it is not derived from the object's address.
type Handle struct {
	kind       Kind
	instance   uint64
	identifier Identifier
	hasID      bool
	label      string
}

type HandleOption func(*Handle)

// WithIdentifier attaches the object's type identifier, such as a
// service or characteristic UUID.
func WithIdentifier(id Identifier) HandleOption {
	return func(h *Handle) {
		h.identifier = id
		h.hasID = true
	}
}

// WithLabel attaches a short free-form discriminator, such as a
// request's attribute offset or a channel's PSM.
func WithLabel(label string) HandleOption {
	return func(h *Handle) {
		h.label = label
	}
}

func NewHandle(kind Kind, opts ...HandleOption) *Handle {
	h := &Handle{
		kind:     kind,
		instance: instances.Next(kind),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handle) Kind() Kind { return h.kind }

func (h *Handle) Instance() uint64 { return h.instance }

// Identifier returns the attached identifier, if any
func (h *Handle) Identifier() (Identifier, bool) { return h.identifier, h.hasID }

// Describe renders Kind(#n), Kind(#n, <uuid>), or with a label
// Kind(#n, <uuid>, label).
func (h *Handle) Describe() string {
	if h == nil {
		return "Handle(" + nilPlaceholder + ")"
	}
	s := fmt.Sprintf("%s(#%d", h.kind, h.instance)
	if h.hasID {
		s += ", " + h.identifier.Describe()
	}
	if h.label != "" {
		s += ", " + h.label
	}
	return s + ")"
}

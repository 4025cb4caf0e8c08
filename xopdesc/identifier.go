package xopdesc

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Identifier is a device, service, or characteristic UUID.  It
// describes in canonical lowercase 8-4-4-4-12 form.
type Identifier uuid.UUID

func (id Identifier) Describe() string { return uuid.UUID(id).String() }

func (id Identifier) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// ParseIdentifier accepts any form google/uuid accepts, including
// braces and the urn:uuid: prefix.
func ParseIdentifier(s string) (Identifier, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Identifier{}, errors.Wrapf(err, "parse identifier %q", s)
	}
	return Identifier(u), nil
}

// MustParseIdentifier is for package level vars of well-known identifiers
func MustParseIdentifier(s string) Identifier {
	id, err := ParseIdentifier(s)
	if err != nil {
		panic(err.Error())
	}
	return id
}

// NewIdentifier returns a random identifier
func NewIdentifier() Identifier { return Identifier(uuid.New()) }

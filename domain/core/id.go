package core

import (
	"github.com/google/uuid"
)

// SpaceID identifies a primitive sample space. Two spaces with identical size
// and measure but different SpaceIDs are distinct: rolling the same kind of
// die twice yields two spaces, referencing one die twice yields one. Identity
// comparison is therefore the dependence-detection mechanism for the whole
// algebra.
type SpaceID string

// NewSpaceID generates a fresh unique identifier using UUID v7 for
// time-ordered generation, falling back to v4 if v7 is unavailable.
func NewSpaceID() SpaceID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return SpaceID(id.String())
}

// String returns the string representation.
func (id SpaceID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty.
func (id SpaceID) IsEmpty() bool {
	return id == ""
}

// MangleToken seeds a deterministic re-identification of a whole family of
// SpaceIDs. Cloning a derived random variable mangles every primitive space
// it reaches with one shared token, so primitives shared inside the clone
// stay shared with each other while the clone as a whole shares nothing with
// the original.
type MangleToken uuid.UUID

// NewMangleToken generates a fresh random token.
func NewMangleToken() MangleToken {
	return MangleToken(uuid.New())
}

// Mangled derives a new SpaceID as a pure function of (id, token) via a
// name-based UUID. The same (id, token) pair always maps to the same result,
// which keeps shared primitives consistent across one clone pass.
func (id SpaceID) Mangled(token MangleToken) SpaceID {
	return SpaceID(uuid.NewSHA1(uuid.UUID(token), []byte(id)).String())
}

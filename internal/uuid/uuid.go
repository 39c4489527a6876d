// Package uuid wraps google/uuid for binding IDs from URI parameters.
//
// gin binds custom URI types through UnmarshalParam, which the
// upstream type does not implement.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID embeds the upstream UUID type.
type UUID struct {
	google_uuid.UUID
}

// Nil is the zero UUID.
var Nil UUID

// UnmarshalParam implements gin's binding.BindUnmarshaler. An empty
// parameter yields Nil, everything else must parse as a UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}

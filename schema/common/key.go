package common

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// NewKey returns a fresh base64 encoded key in the form Universal API uses
// for Key and *Ref attributes.
func NewKey() TypeRef {
	id := uuid.New()
	return TypeRef(base64.StdEncoding.EncodeToString(id[:]))
}

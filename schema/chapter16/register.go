package chapter16

import (
	"errors"

	"github.com/jacoelho/gdsxml"
)

func Register(r *gdsxml.Registry) error {
	return errors.Join(
		gdsxml.Register[Items](r),
		gdsxml.Register[Product](r),
		gdsxml.Register[Shirt](r),
		gdsxml.Register[Hat](r),
	)
}

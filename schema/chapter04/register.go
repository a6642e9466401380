package chapter04

import (
	"errors"

	"github.com/jacoelho/gdsxml"
)

func Register(r *gdsxml.Registry) error {
	return errors.Join(
		gdsxml.Register[Order](r),
		gdsxml.Register[Product](r),
	)
}

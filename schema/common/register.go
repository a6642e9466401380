package common

import (
	"errors"

	"github.com/jacoelho/gdsxml"
)

// Register binds the common elements that travel as standalone documents.
func Register(r *gdsxml.Registry) error {
	return errors.Join(
		gdsxml.Register[BillingPointOfSaleInfo](r),
		gdsxml.Register[FormOfPayment](r),
		gdsxml.Register[ResponseMessage](r),
		gdsxml.Register[SearchPassenger](r),
		gdsxml.Register[HostToken](r),
	)
}

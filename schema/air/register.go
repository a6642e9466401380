package air

import (
	"errors"

	"github.com/jacoelho/gdsxml"
)

// Register binds the air request and response roots, plus the standalone
// documents providers exchange outside of a request envelope.
func Register(r *gdsxml.Registry) error {
	return errors.Join(
		gdsxml.Register[LowFareSearchReq](r),
		gdsxml.Register[LowFareSearchRsp](r),
		gdsxml.Register[AirPriceReq](r),
		gdsxml.Register[AirPriceRsp](r),
		gdsxml.Register[AirTicketingReq](r),
		gdsxml.Register[AirTicketingRsp](r),
		gdsxml.Register[SeatMapReq](r),
		gdsxml.Register[SeatMapRsp](r),
		gdsxml.Register[EMDIssuanceReq](r),
		gdsxml.Register[EMDIssuanceRsp](r),
		gdsxml.Register[AirFareRulesReq](r),
		gdsxml.Register[AirFareRulesRsp](r),
		gdsxml.Register[AirItinerary](r),
		gdsxml.Register[AirPricingSolution](r),
		gdsxml.Register[AirReservationLocatorCode](r),
		gdsxml.Register[ETR](r),
		gdsxml.Register[EMDSummaryInfo](r),
		gdsxml.Register[BaggageAllowanceInfo](r),
		gdsxml.Register[FareRule](r),
	)
}

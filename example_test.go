package gdsxml_test

import (
	"fmt"
	"strings"

	"github.com/jacoelho/gdsxml"
	"github.com/jacoelho/gdsxml/catalog"
	"github.com/jacoelho/gdsxml/errors"
	"github.com/jacoelho/gdsxml/schema/air"
)

func ExampleMarshal() {
	locator := &air.AirReservationLocatorCode{Value: "ABC123"}

	out, err := gdsxml.Marshal(locator)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(string(out))
	// Output: <AirReservationLocatorCode xmlns="http://www.travelport.com/schema/air_v48_0">ABC123</AirReservationLocatorCode>
}

func ExampleValidate() {
	err := gdsxml.Validate(&air.AirReservationLocatorCode{Value: "ABC"})

	violations, ok := errors.AsValidations(err)
	if !ok {
		fmt.Printf("Error: %v\n", err)
		return
	}
	for _, v := range violations {
		fmt.Println(v.Code, v.Path)
	}
	// Output: cvc-minLength-valid AirReservationLocatorCode
}

func ExampleRegistry_Decode() {
	doc := `<AirItinerary xmlns="http://www.travelport.com/schema/air_v48_0"/>`

	_, err := catalog.Default().Decode(strings.NewReader(doc))
	if violations, ok := errors.AsValidations(err); ok {
		for _, v := range violations {
			fmt.Printf("%s at %s\n", v.Code, v.Path)
		}
	}
	// Output: cvc-complex-type.2.4.b at AirItinerary/AirSegment
}

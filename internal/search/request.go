package search

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultFlightAdults = 1
	defaultHotelAdults  = 2
	defaultMaxResults   = 20
)

// Values translates the caller vocabulary into the provider's flight-offers
// query parameters. Optional counts are emitted only when strictly positive:
// the provider treats a zero count differently from an absent one.
func (q FlightQuery) Values() (url.Values, error) {
	required := []struct{ name, value string }{
		{"origin", q.Origin},
		{"destination", q.Destination},
		{"departureDate", q.DepartureDate},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, &InvalidQueryError{Field: f.name}
		}
	}

	v := url.Values{}
	v.Set("originLocationCode", q.Origin)
	v.Set("destinationLocationCode", q.Destination)
	v.Set("departureDate", q.DepartureDate)
	if q.ReturnDate != "" {
		v.Set("returnDate", q.ReturnDate)
	}

	adults := q.Adults
	if adults <= 0 {
		adults = defaultFlightAdults
	}
	v.Set("adults", strconv.Itoa(adults))

	if q.Children > 0 {
		v.Set("children", strconv.Itoa(q.Children))
	}
	if q.Infants > 0 {
		v.Set("infants", strconv.Itoa(q.Infants))
	}
	if q.TravelClass != "" {
		v.Set("travelClass", q.TravelClass)
	}
	if q.CurrencyCode != "" {
		v.Set("currencyCode", q.CurrencyCode)
	}

	max := q.MaxResults
	if max <= 0 {
		max = defaultMaxResults
	}
	v.Set("max", strconv.Itoa(max))

	return v, nil
}

// Values translates the caller vocabulary into the provider's hotel-offers
// query parameters. Note the provider expects "currency" here, not
// "currencyCode".
func (q HotelQuery) Values() (url.Values, error) {
	required := []struct{ name, value string }{
		{"cityCode", q.CityCode},
		{"checkInDate", q.CheckInDate},
		{"checkOutDate", q.CheckOutDate},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, &InvalidQueryError{Field: f.name}
		}
	}

	v := url.Values{}
	v.Set("cityCode", q.CityCode)
	v.Set("checkInDate", q.CheckInDate)
	v.Set("checkOutDate", q.CheckOutDate)

	adults := q.Adults
	if adults <= 0 {
		adults = defaultHotelAdults
	}
	v.Set("adults", strconv.Itoa(adults))

	if q.RoomQuantity > 0 {
		v.Set("roomQuantity", strconv.Itoa(q.RoomQuantity))
	}
	if q.CurrencyCode != "" {
		v.Set("currency", q.CurrencyCode)
	}
	v.Set("bestRateOnly", "true")

	return v, nil
}

package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlightQueryValues_RequiredFields(t *testing.T) {
	base := FlightQuery{Origin: "ARN", Destination: "ATH", DepartureDate: "2025-06-01"}

	cases := []struct {
		name   string
		mutate func(*FlightQuery)
		field  string
	}{
		{"missing origin", func(q *FlightQuery) { q.Origin = "" }, "origin"},
		{"blank origin", func(q *FlightQuery) { q.Origin = "   " }, "origin"},
		{"missing destination", func(q *FlightQuery) { q.Destination = "" }, "destination"},
		{"missing departure date", func(q *FlightQuery) { q.DepartureDate = "" }, "departureDate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := base
			tc.mutate(&q)
			_, err := q.Values()

			var invalidErr *InvalidQueryError
			require.ErrorAs(t, err, &invalidErr)
			require.Equal(t, tc.field, invalidErr.Field)
		})
	}
}

func TestFlightQueryValues_DefaultsAndOmissions(t *testing.T) {
	q := FlightQuery{Origin: "ARN", Destination: "ATH", DepartureDate: "2025-06-01"}

	v, err := q.Values()
	require.NoError(t, err)

	require.Equal(t, "ARN", v.Get("originLocationCode"))
	require.Equal(t, "ATH", v.Get("destinationLocationCode"))
	require.Equal(t, "2025-06-01", v.Get("departureDate"))
	require.Equal(t, "1", v.Get("adults"), "adults defaults to 1")
	require.Equal(t, "20", v.Get("max"))

	for _, absent := range []string{"returnDate", "children", "infants", "travelClass", "currencyCode"} {
		require.False(t, v.Has(absent), "%s must be omitted when unset", absent)
	}
}

func TestFlightQueryValues_OptionalFields(t *testing.T) {
	q := FlightQuery{
		Origin:        "ARN",
		Destination:   "ATH",
		DepartureDate: "2025-06-01",
		ReturnDate:    "2025-06-10",
		Adults:        2,
		Children:      1,
		TravelClass:   "BUSINESS",
		CurrencyCode:  "EUR",
		MaxResults:    5,
	}

	v, err := q.Values()
	require.NoError(t, err)

	require.Equal(t, "2025-06-10", v.Get("returnDate"))
	require.Equal(t, "2", v.Get("adults"))
	require.Equal(t, "1", v.Get("children"))
	require.False(t, v.Has("infants"), "zero infants must be omitted, not sent as 0")
	require.Equal(t, "BUSINESS", v.Get("travelClass"))
	require.Equal(t, "EUR", v.Get("currencyCode"))
	require.Equal(t, "5", v.Get("max"))
}

func TestHotelQueryValues_RequiredFields(t *testing.T) {
	cases := []struct {
		name  string
		q     HotelQuery
		field string
	}{
		{"missing city", HotelQuery{CheckInDate: "2025-06-01", CheckOutDate: "2025-06-03"}, "cityCode"},
		{"missing check-in", HotelQuery{CityCode: "ATH", CheckOutDate: "2025-06-03"}, "checkInDate"},
		{"missing check-out", HotelQuery{CityCode: "ATH", CheckInDate: "2025-06-01"}, "checkOutDate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.q.Values()

			var invalidErr *InvalidQueryError
			require.ErrorAs(t, err, &invalidErr)
			require.Equal(t, tc.field, invalidErr.Field)
		})
	}
}

func TestHotelQueryValues_Defaults(t *testing.T) {
	q := HotelQuery{CityCode: "ATH", CheckInDate: "2025-06-01", CheckOutDate: "2025-06-03"}

	v, err := q.Values()
	require.NoError(t, err)

	require.Equal(t, "2", v.Get("adults"), "hotel adults defaults to 2")
	require.Equal(t, "true", v.Get("bestRateOnly"))
	require.False(t, v.Has("roomQuantity"))
	require.False(t, v.Has("currency"))
}

func TestHotelQueryValues_CurrencyVocabulary(t *testing.T) {
	q := HotelQuery{
		CityCode:     "ATH",
		CheckInDate:  "2025-06-01",
		CheckOutDate: "2025-06-03",
		RoomQuantity: 2,
		CurrencyCode: "SEK",
	}

	v, err := q.Values()
	require.NoError(t, err)

	require.Equal(t, "2", v.Get("roomQuantity"))
	require.Equal(t, "SEK", v.Get("currency"), "hotel search uses 'currency', not 'currencyCode'")
	require.False(t, v.Has("currencyCode"))
}

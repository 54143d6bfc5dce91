package search

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleFlightOffer = `{
	"id": "42",
	"price": {"currency": "EUR", "total": "460.00", "grandTotal": "450.00"},
	"itineraries": [{
		"segments": [
			{
				"departure": {"iataCode": "ARN", "at": "2025-06-01T08:00"},
				"arrival": {"iataCode": "CPH", "at": "2025-06-01T09:10"},
				"carrierCode": "SK",
				"number": "123",
				"operating": {"carrierCode": "WF"}
			},
			{
				"departure": {"iataCode": "CPH", "at": "2025-06-01T10:30"},
				"arrival": {"iataCode": "ATH", "at": "2025-06-01T12:30"},
				"carrierCode": "SK",
				"number": "777"
			}
		]
	}],
	"travelerPricings": [{"fareDetailsBySegment": [{"cabin": "ECONOMY"}]}]
}`

func TestNormalizeFlightOffers_FullOffer(t *testing.T) {
	offers := NormalizeFlightOffers([]json.RawMessage{json.RawMessage(sampleFlightOffer)}, "")
	require.Len(t, offers, 1)

	off := offers[0]
	require.Equal(t, "42", off.ID)
	require.Equal(t, "EUR", off.Price.Currency)
	require.Equal(t, "450.00", off.Price.Total, "grandTotal wins over total")
	require.Equal(t, "ECONOMY", off.Cabin)
	require.JSONEq(t, sampleFlightOffer, string(off.Raw))
	require.NotEmpty(t, off.Itineraries)

	require.Len(t, off.Segments, 1)
	seg := off.Segments[0]
	require.Equal(t, "ARN", seg.Origin, "origin from first segment of first itinerary")
	require.Equal(t, "ATH", seg.Destination, "destination from last segment of first itinerary")
	require.Equal(t, "2025-06-01T08:00", seg.DepTime)
	require.Equal(t, "2025-06-01T12:30", seg.ArrTime)
	require.Equal(t, "SK", seg.Carrier)
	require.Equal(t, "WF", seg.OperatingCarrier)
	require.Equal(t, "SK123", seg.FlightNumber)
}

func TestNormalizeFlightOffers_TotalFallback(t *testing.T) {
	raw := json.RawMessage(`{"id":"1","price":{"currency":"EUR","total":"99.00"}}`)

	offers := NormalizeFlightOffers([]json.RawMessage{raw}, "")
	require.Equal(t, "99.00", offers[0].Price.Total)
}

func TestNormalizeFlightOffers_CabinFallsBackToRequestedClass(t *testing.T) {
	raw := json.RawMessage(`{"id":"1"}`)

	offers := NormalizeFlightOffers([]json.RawMessage{raw}, "BUSINESS")
	require.Equal(t, "BUSINESS", offers[0].Cabin)
}

func TestNormalizeFlightOffers_TotalOnPartialInput(t *testing.T) {
	cases := []json.RawMessage{
		json.RawMessage(`{}`),
		json.RawMessage(`{"id":"no-itineraries","price":{"currency":"EUR"}}`),
		json.RawMessage(`{"itineraries":[{"segments":[]}]}`),
		json.RawMessage(`"not even an object"`),
	}

	offers := NormalizeFlightOffers(cases, "")
	require.Len(t, offers, len(cases), "partial entries are kept, not dropped")

	for i, off := range offers {
		require.Len(t, off.Segments, 1)
		require.Empty(t, off.Segments[0].Origin)
		require.Empty(t, off.Segments[0].FlightNumber)
		require.JSONEq(t, string(cases[i]), string(off.Raw), "raw payload survives even when nothing decodes")
	}
}

func TestNormalizeFlightOffers_OrderPreserved(t *testing.T) {
	var raws []json.RawMessage
	for i := 0; i < 7; i++ {
		raws = append(raws, json.RawMessage(fmt.Sprintf(`{"id":"offer-%d"}`, i)))
	}

	offers := NormalizeFlightOffers(raws, "")
	require.Len(t, offers, 7)
	for i, off := range offers {
		require.Equal(t, fmt.Sprintf("offer-%d", i), off.ID)
	}
}

const sampleHotelEntry = `{
	"hotel": {
		"hotelId": "HLATH123",
		"name": "Acropolis View",
		"cityCode": "ATH",
		"address": {"cityName": "Athens", "lines": ["Rovertou Galli 10"]}
	},
	"offers": [{
		"id": "offer-1",
		"price": {"currency": "EUR", "total": "310.00"},
		"checkInDate": "2025-06-01",
		"checkOutDate": "2025-06-03",
		"room": {"type": "DBL", "description": {"text": "Double room"}},
		"boardType": "BREAKFAST"
	}]
}`

func TestNormalizeHotelOffers_FullEntry(t *testing.T) {
	offers := NormalizeHotelOffers([]json.RawMessage{json.RawMessage(sampleHotelEntry)})
	require.Len(t, offers, 1)

	off := offers[0]
	require.Equal(t, "HLATH123", off.HotelID)
	require.Equal(t, "Acropolis View", off.Name)
	require.Equal(t, "ATH", off.CityCode)
	require.Contains(t, string(off.Address), "Athens")
	require.Equal(t, "offer-1", off.OfferID)
	require.Equal(t, "310.00", off.Price.Total)
	require.Equal(t, "2025-06-01", off.CheckInDate)
	require.Equal(t, "2025-06-03", off.CheckOutDate)
	require.Equal(t, "BREAKFAST", off.BoardType)
	require.JSONEq(t, sampleHotelEntry, string(off.Raw))
}

func TestNormalizeHotelOffers_TotalOnPartialInput(t *testing.T) {
	raws := []json.RawMessage{
		json.RawMessage(`{}`),
		json.RawMessage(`{"hotel":{"hotelId":"H1"}}`),
		json.RawMessage(`{"hotel":{"hotelId":"H2"},"offers":[]}`),
	}

	offers := NormalizeHotelOffers(raws)
	require.Len(t, offers, 3)
	require.Empty(t, offers[0].HotelID)
	require.Equal(t, "H1", offers[1].HotelID)
	require.Empty(t, offers[2].OfferID)
}

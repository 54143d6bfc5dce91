package search

import "encoding/json"

// Raw provider shapes. Every nested field is optional: the provider omits
// whole branches on partial offers and normalization must never fail on
// that.

type rawLocation struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

type rawOperating struct {
	CarrierCode string `json:"carrierCode"`
}

type rawSegment struct {
	Departure   rawLocation  `json:"departure"`
	Arrival     rawLocation  `json:"arrival"`
	CarrierCode string       `json:"carrierCode"`
	Number      string       `json:"number"`
	Operating   rawOperating `json:"operating"`
}

type rawItinerary struct {
	Segments []rawSegment `json:"segments"`
}

type rawPrice struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	GrandTotal string `json:"grandTotal"`
}

type rawFareDetails struct {
	Cabin string `json:"cabin"`
}

type rawTravelerPricing struct {
	FareDetailsBySegment []rawFareDetails `json:"fareDetailsBySegment"`
}

type rawFlightOffer struct {
	ID               string               `json:"id"`
	Price            rawPrice             `json:"price"`
	Itineraries      json.RawMessage      `json:"itineraries"`
	TravelerPricings []rawTravelerPricing `json:"travelerPricings"`
}

type rawHotel struct {
	HotelID  string          `json:"hotelId"`
	Name     string          `json:"name"`
	CityCode string          `json:"cityCode"`
	Address  json.RawMessage `json:"address"`
}

type rawHotelRate struct {
	ID           string          `json:"id"`
	Price        rawPrice        `json:"price"`
	CheckInDate  string          `json:"checkInDate"`
	CheckOutDate string          `json:"checkOutDate"`
	Room         json.RawMessage `json:"room"`
	BoardType    string          `json:"boardType"`
}

type rawHotelEntry struct {
	Hotel  rawHotel       `json:"hotel"`
	Offers []rawHotelRate `json:"offers"`
}

// NormalizeFlightOffers maps raw provider flight offers to the minimal
// caller-facing shape. Output order matches input order; the provider's
// ranking is not altered. An entry that fails to decode still yields an
// offer carrying its raw payload.
func NormalizeFlightOffers(raws []json.RawMessage, travelClass string) []FlightOffer {
	offers := make([]FlightOffer, 0, len(raws))
	for _, raw := range raws {
		offers = append(offers, normalizeFlightOffer(raw, travelClass))
	}
	return offers
}

func normalizeFlightOffer(raw json.RawMessage, travelClass string) FlightOffer {
	var off rawFlightOffer
	// decode errors leave the zero value, which normalizes to an offer
	// with absent fields
	_ = json.Unmarshal(raw, &off)

	total := off.Price.GrandTotal
	if total == "" {
		total = off.Price.Total
	}

	cabin := travelClass
	if len(off.TravelerPricings) > 0 && len(off.TravelerPricings[0].FareDetailsBySegment) > 0 {
		if c := off.TravelerPricings[0].FareDetailsBySegment[0].Cabin; c != "" {
			cabin = c
		}
	}

	return FlightOffer{
		ID:          off.ID,
		Price:       Price{Currency: off.Price.Currency, Total: total},
		Cabin:       cabin,
		Itineraries: off.Itineraries,
		Segments:    []Segment{summarizeFirstItinerary(off.Itineraries)},
		Raw:         raw,
	}
}

// summarizeFirstItinerary collapses the first itinerary into one segment:
// origin and departure from its first leg, destination and arrival from its
// last. This is a one-way display of a possibly multi-leg journey.
func summarizeFirstItinerary(itineraries json.RawMessage) Segment {
	var its []rawItinerary
	_ = json.Unmarshal(itineraries, &its)

	if len(its) == 0 || len(its[0].Segments) == 0 {
		return Segment{}
	}

	first := its[0].Segments[0]
	last := its[0].Segments[len(its[0].Segments)-1]

	flightNumber := ""
	if first.CarrierCode != "" || first.Number != "" {
		flightNumber = first.CarrierCode + first.Number
	}

	return Segment{
		Origin:           first.Departure.IATACode,
		Destination:      last.Arrival.IATACode,
		DepTime:          first.Departure.At,
		ArrTime:          last.Arrival.At,
		Carrier:          first.CarrierCode,
		OperatingCarrier: first.Operating.CarrierCode,
		FlightNumber:     flightNumber,
	}
}

// NormalizeHotelOffers maps raw provider hotel entries to the caller-facing
// shape, promoting the first (best-rate) offer of each hotel.
func NormalizeHotelOffers(raws []json.RawMessage) []HotelOffer {
	offers := make([]HotelOffer, 0, len(raws))
	for _, raw := range raws {
		offers = append(offers, normalizeHotelOffer(raw))
	}
	return offers
}

func normalizeHotelOffer(raw json.RawMessage) HotelOffer {
	var entry rawHotelEntry
	_ = json.Unmarshal(raw, &entry)

	out := HotelOffer{
		HotelID:  entry.Hotel.HotelID,
		Name:     entry.Hotel.Name,
		CityCode: entry.Hotel.CityCode,
		Address:  entry.Hotel.Address,
		Raw:      raw,
	}

	if len(entry.Offers) > 0 {
		rate := entry.Offers[0]
		out.OfferID = rate.ID
		out.Price = Price{Currency: rate.Price.Currency, Total: rate.Price.Total}
		out.CheckInDate = rate.CheckInDate
		out.CheckOutDate = rate.CheckOutDate
		out.Room = rate.Room
		out.BoardType = rate.BoardType
	}

	return out
}

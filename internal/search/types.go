package search

import "encoding/json"

// FlightQuery is the caller-facing flight search input. Field names follow
// the frontend contract; translation to provider vocabulary happens in
// Values().
type FlightQuery struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`
	Adults        int    `json:"adults,omitempty"`
	Children      int    `json:"children,omitempty"`
	Infants       int    `json:"infants,omitempty"`
	TravelClass   string `json:"travelClass,omitempty"`
	CurrencyCode  string `json:"currencyCode,omitempty"`
	MaxResults    int    `json:"max,omitempty"`
}

type HotelQuery struct {
	CityCode     string `json:"cityCode"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Adults       int    `json:"adults,omitempty"`
	RoomQuantity int    `json:"roomQuantity,omitempty"`
	CurrencyCode string `json:"currencyCode,omitempty"`
}

type Price struct {
	Currency string `json:"currency,omitempty"`
	Total    string `json:"total,omitempty"`
}

// Segment summarizes the first itinerary of an offer: origin from its first
// segment, destination from its last. Multi-leg detail stays available in
// the offer's itineraries and raw payload.
type Segment struct {
	Origin           string `json:"origin,omitempty"`
	Destination      string `json:"destination,omitempty"`
	DepTime          string `json:"depTime,omitempty"`
	ArrTime          string `json:"arrTime,omitempty"`
	Carrier          string `json:"carrier,omitempty"`
	OperatingCarrier string `json:"operatingCarrier,omitempty"`
	FlightNumber     string `json:"flightNumber,omitempty"`
}

type FlightOffer struct {
	ID          string          `json:"id,omitempty"`
	Price       Price           `json:"price"`
	Cabin       string          `json:"cabin,omitempty"`
	Itineraries json.RawMessage `json:"itineraries,omitempty"`
	Segments    []Segment       `json:"segments"`
	Raw         json.RawMessage `json:"raw"`
}

type HotelOffer struct {
	HotelID      string          `json:"hotelId,omitempty"`
	Name         string          `json:"name,omitempty"`
	CityCode     string          `json:"cityCode,omitempty"`
	Address      json.RawMessage `json:"address,omitempty"`
	OfferID      string          `json:"offerId,omitempty"`
	Price        Price           `json:"price"`
	CheckInDate  string          `json:"checkInDate,omitempty"`
	CheckOutDate string          `json:"checkOutDate,omitempty"`
	Room         json.RawMessage `json:"room,omitempty"`
	BoardType    string          `json:"boardType,omitempty"`
	Raw          json.RawMessage `json:"raw"`
}

type Metadata struct {
	TotalResults uint32 `json:"total_results"`
	SearchTimeMs uint32 `json:"search_time_ms,omitempty"`
	CacheHit     bool   `json:"cache_hit"`
	CacheKey     string `json:"cache_key,omitempty"`
}

type FlightSearchResult struct {
	Metadata     Metadata        `json:"metadata"`
	FlightOffers []FlightOffer   `json:"flightOffers"`
	Raw          json.RawMessage `json:"raw,omitempty"`
}

type HotelSearchResult struct {
	Metadata Metadata        `json:"metadata"`
	Hotels   []HotelOffer    `json:"hotels"`
	Raw      json.RawMessage `json:"raw,omitempty"`
}

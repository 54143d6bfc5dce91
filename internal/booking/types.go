package booking

import "encoding/json"

// Passenger is the loose frontend passenger shape; mapping to the provider's
// traveler shape (with its defaults) happens in buildTravelers.
type Passenger struct {
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	DateOfBirth     string   `json:"dob,omitempty"`
	Gender          string   `json:"gender,omitempty"`
	Email           string   `json:"email,omitempty"`
	PassportNumber  string   `json:"passportNumber,omitempty"`
	PassportExpiry  string   `json:"passportExpiry,omitempty"`
	PassportCountry string   `json:"passportCountry,omitempty"`
	Nationality     string   `json:"nationality,omitempty"`
	SSRs            []string `json:"ssrs,omitempty"`
}

type SeatSelection struct {
	TravelerID   string `json:"travelerId"`
	SegmentIndex int    `json:"segmentIndex"`
	SeatNumber   string `json:"seatNumber"`
}

type Request struct {
	// Offer is the untouched provider payload from a search result's
	// pass-through field.
	Offer          json.RawMessage `json:"offer"`
	Passengers     []Passenger     `json:"passengers"`
	SeatSelections []SeatSelection `json:"seatSelections,omitempty"`
	ContactEmail   string          `json:"contactEmail,omitempty"`
}

type Confirmation struct {
	BookingRef    string          `json:"bookingRef"`
	ProviderOrder json.RawMessage `json:"providerOrder"`
	EmailSent     bool            `json:"emailSent"`
}

// Provider traveler shape for flight-order creation.

type travelerName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type travelerContact struct {
	EmailAddress string `json:"emailAddress"`
}

type travelerDocument struct {
	DocumentType    string `json:"documentType"`
	Number          string `json:"number"`
	ExpiryDate      string `json:"expiryDate"`
	Nationality     string `json:"nationality"`
	Holder          bool   `json:"holder"`
	IssuanceCountry string `json:"issuanceCountry"`
}

type traveler struct {
	ID          string             `json:"id"`
	DateOfBirth string             `json:"dateOfBirth"`
	Gender      string             `json:"gender"`
	Name        travelerName       `json:"name"`
	Contact     *travelerContact   `json:"contact,omitempty"`
	Documents   []travelerDocument `json:"documents"`
}

type generalRemark struct {
	SubType string `json:"subType"`
	Text    string `json:"text"`
}

type orderRemarks struct {
	General []generalRemark `json:"general"`
}

type orderData struct {
	Type         string            `json:"type"`
	FlightOffers []json.RawMessage `json:"flightOffers"`
	Travelers    []traveler        `json:"travelers"`
	Remarks      *orderRemarks     `json:"remarks,omitempty"`
}

type orderEnvelope struct {
	Data orderData `json:"data"`
}

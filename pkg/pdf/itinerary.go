package pdf

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

type SegmentLine struct {
	Origin       string
	Destination  string
	FlightNumber string
	Carrier      string
	DepTime      string
	ArrTime      string
}

type Itinerary struct {
	BookingRef    string
	LeadPassenger string
	Email         string
	Segments      []SegmentLine
}

// RenderItinerary produces the booking-confirmation PDF as bytes.
func RenderItinerary(it Itinerary) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(20, 20, 20)
	doc.AddPage()

	doc.SetTextColor(2, 46, 100)
	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 12, "SKANDI Travels - Flight Confirmation", "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 12)
	doc.CellFormat(0, 8, "Booking Reference: "+orDefault(it.BookingRef, "Pending"), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 8, "Passenger: "+orDefault(it.LeadPassenger, "N/A"), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 8, "Email: "+orDefault(it.Email, "N/A"), "", 1, "L", false, 0, "")
	doc.Ln(6)

	for _, seg := range it.Segments {
		doc.SetFont("Helvetica", "B", 12)
		doc.CellFormat(0, 8, seg.Origin+" - "+seg.Destination, "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		doc.CellFormat(0, 7, "Flight: "+seg.FlightNumber+" ("+seg.Carrier+")", "", 1, "L", false, 0, "")
		doc.CellFormat(0, 7, "Departure: "+seg.DepTime, "", 1, "L", false, 0, "")
		doc.CellFormat(0, 7, "Arrival: "+seg.ArrTime, "", 1, "L", false, 0, "")
		doc.Ln(4)
	}

	doc.Ln(6)
	doc.SetFont("Helvetica", "I", 11)
	doc.CellFormat(0, 8, "Thank you for choosing SKANDI Travels.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"travelbroker/internal/search"
	"travelbroker/pkg/idgen"
	"travelbroker/pkg/logger"
	"travelbroker/pkg/mailer"
	"travelbroker/pkg/pdf"
)

// InvalidBookingError reports unusable caller input, raised before any
// provider call.
type InvalidBookingError struct {
	Reason string
}

func (e *InvalidBookingError) Error() string {
	return "booking: " + e.Reason
}

// OrderClient is the slice of the provider client this service needs.
type OrderClient interface {
	CreateFlightOrder(ctx context.Context, order any) (json.RawMessage, error)
}

type Service struct {
	orders OrderClient
	ids    idgen.Generator
	mail   mailer.Sender
	logger logger.Client
}

func NewService(orders OrderClient, ids idgen.Generator, mail mailer.Sender, log logger.Client) *Service {
	return &Service{
		orders: orders,
		ids:    ids,
		mail:   mail,
		logger: log,
	}
}

// Book posts a flight order for the selected raw offer, assigns a booking
// reference, and sends the confirmation mail. Mail delivery is best-effort:
// a booked order is never failed because the confirmation could not be sent.
func (s *Service) Book(ctx context.Context, req Request) (*Confirmation, error) {
	if len(req.Offer) == 0 {
		return nil, &InvalidBookingError{Reason: "missing offer"}
	}
	if len(req.Passengers) == 0 {
		return nil, &InvalidBookingError{Reason: "at least one passenger required"}
	}

	order := orderEnvelope{
		Data: orderData{
			Type:         "flight-order",
			FlightOffers: []json.RawMessage{req.Offer},
			Travelers:    buildTravelers(req.Passengers),
		},
	}

	remarks := buildSSRRemarks(req.Passengers)
	remarks = append(remarks, buildSeatRemarks(req.SeatSelections)...)
	if len(remarks) > 0 {
		general := make([]generalRemark, 0, len(remarks))
		for _, text := range remarks {
			general = append(general, generalRemark{SubType: "GENERAL_MISCELLANEOUS", Text: text})
		}
		order.Data.Remarks = &orderRemarks{General: general}
	}

	providerOrder, err := s.orders.CreateFlightOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	ref := s.ids.BookingRef()
	emailSent := s.sendConfirmation(req, ref)

	s.logger.Info("flight order booked",
		logger.Field{Key: "booking_ref", Value: ref},
		logger.Field{Key: "passengers", Value: len(req.Passengers)},
		logger.Field{Key: "email_sent", Value: emailSent},
	)

	return &Confirmation{
		BookingRef:    ref,
		ProviderOrder: providerOrder,
		EmailSent:     emailSent,
	}, nil
}

// buildTravelers maps frontend passengers to provider travelers, applying
// the document defaults the provider test environment expects.
func buildTravelers(passengers []Passenger) []traveler {
	travelers := make([]traveler, 0, len(passengers))
	for idx, p := range passengers {
		tr := traveler{
			ID:          strconv.Itoa(idx + 1),
			DateOfBirth: orDefault(p.DateOfBirth, "1990-01-01"),
			Gender:      orDefault(p.Gender, "UNSPECIFIED"),
			Name: travelerName{
				FirstName: strings.ToUpper(p.FirstName),
				LastName:  strings.ToUpper(p.LastName),
			},
			Documents: []travelerDocument{
				{
					DocumentType:    "PASSPORT",
					Number:          orDefault(p.PassportNumber, "TBD"),
					ExpiryDate:      orDefault(p.PassportExpiry, "2030-01-01"),
					Nationality:     orDefault(p.Nationality, "US"),
					Holder:          true,
					IssuanceCountry: orDefault(p.PassportCountry, orDefault(p.Nationality, "US")),
				},
			},
		}
		if p.Email != "" {
			tr.Contact = &travelerContact{EmailAddress: p.Email}
		}
		travelers = append(travelers, tr)
	}
	return travelers
}

func buildSSRRemarks(passengers []Passenger) []string {
	var lines []string
	for idx, p := range passengers {
		if len(p.SSRs) == 0 {
			continue
		}
		label := strings.ToUpper(p.FirstName) + " " + strings.ToUpper(p.LastName)
		lines = append(lines, fmt.Sprintf("SSR for PAX %d (%s): %s", idx+1, label, strings.Join(p.SSRs, ", ")))
	}
	return lines
}

func buildSeatRemarks(selections []SeatSelection) []string {
	var lines []string
	for _, sel := range selections {
		lines = append(lines, fmt.Sprintf("Seat selection: PAX %s - Segment %d - Seat %s",
			sel.TravelerID, sel.SegmentIndex, sel.SeatNumber))
	}
	return lines
}

func (s *Service) sendConfirmation(req Request, ref string) bool {
	if s.mail == nil {
		return false
	}

	lead := req.Passengers[0]
	to := req.ContactEmail
	if to == "" {
		to = lead.Email
	}
	if to == "" {
		s.logger.Warn("no contact email, skipping confirmation mail",
			logger.Field{Key: "booking_ref", Value: ref})
		return false
	}

	offers := search.NormalizeFlightOffers([]json.RawMessage{req.Offer}, "")
	itinerary := pdf.Itinerary{
		BookingRef:    ref,
		LeadPassenger: strings.TrimSpace(lead.FirstName + " " + lead.LastName),
		Email:         to,
	}
	for _, seg := range offers[0].Segments {
		itinerary.Segments = append(itinerary.Segments, pdf.SegmentLine{
			Origin:       seg.Origin,
			Destination:  seg.Destination,
			FlightNumber: seg.FlightNumber,
			Carrier:      seg.Carrier,
			DepTime:      seg.DepTime,
			ArrTime:      seg.ArrTime,
		})
	}

	attachment, err := pdf.RenderItinerary(itinerary)
	if err != nil {
		s.logger.Error("failed to render itinerary pdf",
			logger.Field{Key: "err", Value: err},
			logger.Field{Key: "booking_ref", Value: ref},
		)
		return false
	}

	msg := mailer.Message{
		To:      []string{to},
		Subject: "Your SKANDI Travels booking " + ref,
		HTMLBody: "<p>Your booking <b>" + ref + "</b> is confirmed.</p>" +
			"<p>The itinerary is attached as PDF.</p>",
		Attachment: &mailer.Attachment{
			Filename: "itinerary-" + ref + ".pdf",
			Content:  attachment,
		},
	}
	if err := s.mail.Send(msg); err != nil {
		s.logger.Error("failed to send confirmation mail",
			logger.Field{Key: "err", Value: err},
			logger.Field{Key: "booking_ref", Value: ref},
		)
		return false
	}
	return true
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

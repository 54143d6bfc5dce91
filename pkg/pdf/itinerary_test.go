package pdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderItinerary(t *testing.T) {
	out, err := RenderItinerary(Itinerary{
		BookingRef:    "SKD-1ABC",
		LeadPassenger: "ANNA LIND",
		Email:         "anna@example.com",
		Segments: []SegmentLine{
			{Origin: "ARN", Destination: "ATH", FlightNumber: "SK123", Carrier: "SK",
				DepTime: "2025-06-01T08:00", ArrTime: "2025-06-01T12:30"},
		},
	})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output must be a PDF document")
}

func TestRenderItinerary_EmptyFieldsGetPlaceholders(t *testing.T) {
	out, err := RenderItinerary(Itinerary{})
	require.NoError(t, err)
	require.NotEmpty(t, out)
}

package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelbroker/pkg/amadeus"
)

type BookingHandler struct {
	service *Service
}

func NewBookingHandler(s *Service) *BookingHandler {
	return &BookingHandler{service: s}
}

func (h *BookingHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/amadeus/flights/book", h.BookFlightHandler)
}

// BookFlightHandler godoc
// @Summary      Book a flight offer
// @Description  Creates a provider flight order for a previously searched offer and emails the itinerary
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body Request true "Booking Request"
// @Success      200 {object} Confirmation
// @Failure      400 {object} map[string]interface{}
// @Router       /api/amadeus/flights/book [post]
func (h *BookingHandler) BookFlightHandler(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	confirmation, err := h.service.Book(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, confirmation)
}

func sendError(c *gin.Context, err error) {
	var invalidErr *InvalidBookingError
	if errors.As(err, &invalidErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidErr.Error()})
		return
	}

	var apiErr *amadeus.APIError
	if errors.As(err, &apiErr) {
		c.Data(apiErr.Status, "application/json", apiErr.Body)
		return
	}

	var authErr *amadeus.AuthError
	if errors.As(err, &authErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "provider authentication failed"})
		return
	}

	if errors.Is(err, amadeus.ErrProviderTimeout) {
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "provider did not answer in time"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
}

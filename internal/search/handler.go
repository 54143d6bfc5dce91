package search

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelbroker/pkg/amadeus"
)

type SearchHandler struct {
	service *Service
}

func NewSearchHandler(s *Service) *SearchHandler {
	return &SearchHandler{service: s}
}

func (h *SearchHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/amadeus/flights/search", h.SearchFlightsHandler)
	router.POST("/api/amadeus/hotels/search", h.SearchHotelsHandler)
}

// SearchFlightsHandler godoc
// @Summary      Search flight offers
// @Description  Proxies the provider flight-offers search and returns normalized offers
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body FlightQuery true "Search Criteria"
// @Success      200 {object} FlightSearchResult
// @Failure      400 {object} map[string]interface{}
// @Router       /api/amadeus/flights/search [post]
func (h *SearchHandler) SearchFlightsHandler(c *gin.Context) {
	var q FlightQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  ErrorCodeValidation,
		})
		return
	}

	result, err := h.service.SearchFlights(c.Request.Context(), q)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchHotelsHandler godoc
// @Summary      Search hotel offers
// @Description  Proxies the provider hotel-offers search and returns normalized offers
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Param        request body HotelQuery true "Search Criteria"
// @Success      200 {object} HotelSearchResult
// @Failure      400 {object} map[string]interface{}
// @Router       /api/amadeus/hotels/search [post]
func (h *SearchHandler) SearchHotelsHandler(c *gin.Context) {
	var q HotelQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  ErrorCodeValidation,
		})
		return
	}

	result, err := h.service.SearchHotels(c.Request.Context(), q)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// sendError maps error kinds to HTTP statuses. Provider search errors keep
// their original status and body so the client sees provider diagnostics
// unchanged.
func sendError(c *gin.Context, err error) {
	var invalidErr *InvalidQueryError
	if errors.As(err, &invalidErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": invalidErr.Error(),
			"code":  ErrorCodeValidation,
			"field": invalidErr.Field,
		})
		return
	}

	var apiErr *amadeus.APIError
	if errors.As(err, &apiErr) {
		c.Data(apiErr.Status, "application/json", apiErr.Body)
		return
	}

	var authErr *amadeus.AuthError
	if errors.As(err, &authErr) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "provider authentication failed",
			"code":  ErrorCodeAuthFailure,
		})
		return
	}

	if errors.Is(err, amadeus.ErrProviderTimeout) {
		c.JSON(http.StatusGatewayTimeout, gin.H{
			"error": "provider did not answer in time",
			"code":  ErrorCodeProviderTimeout,
		})
		return
	}

	if errors.Is(err, amadeus.ErrMalformedResponse) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "provider returned an unexpected payload",
			"code":  ErrorCodeMalformedResponse,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"code":    ErrorCodeInternalFailure,
		"details": err.Error(),
	})
}

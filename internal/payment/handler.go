package payment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelbroker/pkg/logger"
)

type PaymentHandler struct {
	checkout CheckoutClient
	logger   logger.Client
}

func NewPaymentHandler(checkout CheckoutClient, log logger.Client) *PaymentHandler {
	return &PaymentHandler{checkout: checkout, logger: log}
}

func (h *PaymentHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/checkout/session", h.CreateSessionHandler)
}

// CreateSessionHandler godoc
// @Summary      Create a checkout session
// @Description  Creates a hosted payment session and returns its URL
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body SessionRequest true "Checkout Request"
// @Success      200 {object} Session
// @Failure      400 {object} map[string]interface{}
// @Router       /api/checkout/session [post]
func (h *PaymentHandler) CreateSessionHandler(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	}
	if req.Currency == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currency is required"})
		return
	}

	sess, err := h.checkout.CreateSession(req)
	if err != nil {
		h.logger.Error("failed to create checkout session", logger.Field{Key: "err", Value: err})
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment provider unavailable"})
		return
	}

	c.JSON(http.StatusOK, sess)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/housebroker/listing-api/internal/api/metrics"
	"github.com/housebroker/listing-api/internal/core/ports"
)

type CommissionHandler struct {
	commissionService ports.CommissionService
}

func NewCommissionHandler(commissionService ports.CommissionService) *CommissionHandler {
	return &CommissionHandler{commissionService: commissionService}
}

type commissionQuoteResponse struct {
	Price           string `json:"price"`
	Rate            string `json:"rate"`
	Amount          string `json:"amount"`
	TierDescription string `json:"tier_description"`
}

// Quote resolves the commission for a transaction price.
//
// @Summary      Quote a broker commission
// @Tags         commission
// @Produce      json
// @Param        price  query     string  true  "Transaction price (decimal)"
// @Success      200    {object}  commissionQuoteResponse
// @Failure      400    {object}  map[string]string
// @Failure      422    {object}  map[string]string
// @Security     BearerAuth
// @Router       /commission/quote [get]
func (h *CommissionHandler) Quote(c echo.Context) error {
	raw := c.QueryParam("price")
	if raw == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "price is required"})
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "price must be a decimal number"})
	}

	quote, err := h.commissionService.Resolve(c.Request().Context(), price)
	if err != nil {
		metrics.CommissionQuotesTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.CommissionQuotesTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, commissionQuoteResponse{
		Price:           price.String(),
		Rate:            quote.Rate.String(),
		Amount:          quote.Amount.String(),
		TierDescription: quote.TierDescription,
	})
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/housebroker/listing-api/internal/core/ports"
)

type PropertyHandler struct {
	propertyService ports.PropertyService
}

func NewPropertyHandler(propertyService ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// Create publishes a new listing owned by the calling broker.
//
// @Summary      Create a property listing
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        body  body      createPropertyRequest  true  "Listing details"
// @Success      201   {object}  propertyResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Security     BearerAuth
// @Router       /properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "price must be a decimal number"})
	}

	brokerID, _ := c.Get("sub").(string)
	created, err := h.propertyService.CreateProperty(c.Request().Context(), toCreatePropertyInput(req, price, brokerID))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toPropertyResponse(created))
}

// Get returns a single listing.
//
// @Summary      Get a property listing
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  propertyResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	p, err := h.propertyService.GetProperty(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyResponse(p))
}

// List returns one page of listings.
//
// @Summary      List property listings
// @Tags         properties
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  propertyListResponse
// @Security     BearerAuth
// @Router       /properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.propertyService.ListProperties(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyListResponse(result))
}

// Commission computes the broker fee for a listing's price.
//
// @Summary      Quote the commission for a listing
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  commissionQuoteResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/commission [get]
func (h *PropertyHandler) Commission(c echo.Context) error {
	p, quote, err := h.propertyService.QuoteCommission(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, commissionQuoteResponse{
		Price:           p.Price.String(),
		Rate:            quote.Rate.String(),
		Amount:          quote.Amount.String(),
		TierDescription: quote.TierDescription,
	})
}

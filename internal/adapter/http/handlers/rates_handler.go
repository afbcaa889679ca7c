package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "paint_quote/internal/adapter/http/dto/request"
	response "paint_quote/internal/adapter/http/dto/response"
	"paint_quote/internal/usecase"
	"paint_quote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRatesPayload = pkg.NewDomainErrorSimple("INVALID_RATES_INPUT", "Invalid rates payload", http.StatusBadRequest)
)

// RatesHandler serves the published rate set.

type RatesHandler struct {
	usecase usecase.IRatesUseCase
}

func NewRatesHandler(uc usecase.IRatesUseCase) *RatesHandler {
	return &RatesHandler{usecase: uc}
}

// GetRates godoc
// @Summary      Get the published rates
// @Tags         rates
// @Produce      json
// @Success      200  {object}  response.RatesResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /rates [get]
func (h *RatesHandler) GetRates(c *gin.Context) {
	rates, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		log.Printf("[rates][handler] get failed err=%v", err)
		appErr := mapRatesError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRates(rates))
}

// ReplaceRates godoc
// @Summary      Replace the published rates
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        rates  body      request.RatesRequest  true  "Rates"
// @Success      200    {object}  response.RatesResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /rates [put]
func (h *RatesHandler) ReplaceRates(c *gin.Context) {
	var payload request.RatesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRatesPayload.HTTPStatus, errInvalidRatesPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.Replace(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapRatesError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRates(saved))
}

func mapRatesError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRatesNotConfigured):
		return pkg.NewDomainErrorSimple("RATES_NOT_CONFIGURED", "Rates have not been configured", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidRates):
		return pkg.NewDomainErrorSimple("INVALID_RATES", "Invalid rates: "+ratesReason(err), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// ratesReason extracts the validation detail wrapped under ErrInvalidRates.
func ratesReason(err error) string {
	return strings.TrimPrefix(err.Error(), usecase.ErrInvalidRates.Error()+": ")
}

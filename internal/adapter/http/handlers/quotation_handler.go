package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "paint_quote/internal/adapter/http/dto/request"
	response "paint_quote/internal/adapter/http/dto/response"
	"paint_quote/internal/domain/entities"
	"paint_quote/internal/usecase"
	"paint_quote/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
)

// QuotationHandler serves the saved quotation collection.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// ListQuotations godoc
// @Summary      List saved quotations
// @Tags         quotations
// @Produce      json
// @Success      200  {array}   response.QuotationResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /quotations [get]
func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	quotations, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[quotation][handler] list failed err=%v", err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotations(quotations))
}

// CreateQuotation godoc
// @Summary      Save a new quotation
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        quotation  body      request.QuotationRequest  true  "Quotation"
// @Success      201        {object}  response.QuotationResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /quotations [post]
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.QuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[quotation][handler] create failed err=%v", err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quotation][handler] create success id=%s grand_total=%.2f", created.ID, created.GrandTotal)

	c.JSON(http.StatusCreated, response.FromQuotation(created))
}

// UpdateQuotation godoc
// @Summary      Replace a saved quotation
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        id         path      string                    true  "Quotation ID"
// @Param        quotation  body      request.QuotationRequest  true  "Quotation"
// @Success      200        {object}  response.QuotationResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Router       /quotations/{id} [put]
func (h *QuotationHandler) UpdateQuotation(c *gin.Context) {
	id := c.Param("id")
	var payload request.QuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		log.Printf("[quotation][handler] update failed id=%s err=%v", id, err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quotation][handler] update success id=%s", updated.ID)

	c.JSON(http.StatusOK, response.FromQuotation(updated))
}

// DeleteQuotation godoc
// @Summary      Delete a saved quotation
// @Tags         quotations
// @Param        id   path      string  true  "Quotation ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotations/{id} [delete]
func (h *QuotationHandler) DeleteQuotation(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[quotation][handler] delete failed id=%s err=%v", id, err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quotation][handler] delete success id=%s", id)
	c.Status(http.StatusNoContent)
}

// bindError reports the offending JSON fields when the body parsed but failed its
// binding rules, and a generic payload error otherwise.
func bindError(err error) *pkg.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errInvalidQuotationPayload
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, lowerFirst(fe.Field()))
	}
	return invalidQuotation(fields)
}

func invalidQuotation(fields []string) *pkg.AppError {
	return pkg.NewDomainErrorSimple("INVALID_QUOTATION", "Invalid quotation: "+strings.Join(fields, ", "), http.StatusBadRequest)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func mapQuotationError(err error) *pkg.AppError {
	var verr *entities.ValidationError
	switch {
	case errors.As(err, &verr):
		return invalidQuotation(verr.Fields)
	case errors.Is(err, usecase.ErrNegativeAmount):
		return pkg.NewDomainErrorSimple("INVALID_QUOTATION", "Invalid quotation: cost amounts must not be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuotationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

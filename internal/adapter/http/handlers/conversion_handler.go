package handlers

import (
	"net/http"

	"order_core/internal/adapter/http/dto/response"
	"order_core/internal/adapter/http/middleware"
	"order_core/internal/domain/domainerr"
	"order_core/internal/infrastructure/metrics"
	"order_core/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
)

const opConvert = "convert_quotation"

type ConversionHandler struct {
	usecase usecase.IOrderConversionUseCase
}

func NewConversionHandler(uc usecase.IOrderConversionUseCase) *ConversionHandler {
	return &ConversionHandler{usecase: uc}
}

// ConvertQuotation godoc
// @Summary      Convert an approved quotation into an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Quotation ID"
// @Success      201  {object}  response.ConvertResponse
// @Success      200  {object}  response.ConvertResponse  "already converted"
// @Failure      400  {object}  response.ConvertFailureResponse
// @Failure      409  {object}  response.ConvertFailureResponse
// @Security     Bearer
// @Router       /quotations/{id}/convert [post]
func (h *ConversionHandler) ConvertQuotation(c *gin.Context) {
	res, err := h.usecase.ConvertQuotationToOrder(c.Request.Context(), c.Param("id"), middleware.CallerFrom(c))
	if err != nil {
		appErr := mapDomainError(err)
		body := response.ConvertFailureResponse{Success: false, Error: appErr.Message, Code: appErr.Code}

		var stockErr *domainerr.InsufficientStockError
		if errors.As(err, &stockErr) {
			body.InsufficientStock = response.FromShortages(stockErr.Shortages)
			metrics.RecordStockShortages(len(stockErr.Shortages))
		}
		metrics.RecordOperation(opConvert, outcome(err))
		c.JSON(appErr.HTTPStatus, body)
		return
	}

	if res.AlreadyConverted {
		metrics.RecordOperation(opConvert, metrics.StatusIdempotent)
		c.JSON(http.StatusOK, response.FromConversion(res))
		return
	}
	metrics.RecordOperation(opConvert, metrics.StatusSuccess)
	c.JSON(http.StatusCreated, response.FromConversion(res))
}

// CheckConversion godoc
// @Summary      Check whether a quotation can be converted now
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Quotation ID"
// @Success      200  {object}  response.EligibilityResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotations/{id}/convert [get]
func (h *ConversionHandler) CheckConversion(c *gin.Context) {
	e, err := h.usecase.CheckEligibility(c.Request.Context(), c.Param("id"), middleware.CallerFrom(c))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEligibility(e))
}

package handlers

import (
	"net/http"

	"order_core/internal/adapter/http/dto/request"
	"order_core/internal/adapter/http/dto/response"
	"order_core/internal/adapter/http/middleware"
	"order_core/internal/infrastructure/metrics"
	"order_core/internal/usecase"

	"github.com/gin-gonic/gin"
)

const opSubmitSample = "submit_sample_request"

type SampleRequestHandler struct {
	usecase usecase.ISampleRequestUseCase
}

func NewSampleRequestHandler(uc usecase.ISampleRequestUseCase) *SampleRequestHandler {
	return &SampleRequestHandler{usecase: uc}
}

// CreateSampleRequest godoc
// @Summary      Submit a sample request
// @Description  Guests must send customerInfo; authenticated callers may omit it.
// @Tags         samples
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SampleRequestRequest  true  "Sample request"
// @Success      201      {object}  response.SampleRequestResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /samples/requests [post]
func (h *SampleRequestHandler) CreateSampleRequest(c *gin.Context) {
	var payload request.SampleRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Submit(c.Request.Context(), payload.ToCommand(middleware.CallerFrom(c)))
	metrics.RecordOperation(opSubmitSample, outcome(err))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSampleRequest(res))
}

// GetSampleRequest godoc
// @Summary      Get a sample request by its request number
// @Tags         samples
// @Produce      json
// @Param        number  path      string  true  "Request number"
// @Success      200     {object}  response.SampleRequestDetailsResponse
// @Failure      403     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /samples/requests/{number} [get]
func (h *SampleRequestHandler) GetSampleRequest(c *gin.Context) {
	req, err := h.usecase.Get(c.Request.Context(), c.Param("number"), middleware.CallerFrom(c))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSampleRequestDetails(req))
}

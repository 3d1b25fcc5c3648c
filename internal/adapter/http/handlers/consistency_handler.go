package handlers

import (
	"net/http"

	"order_core/internal/adapter/http/dto/response"
	"order_core/internal/infrastructure/metrics"
	"order_core/internal/usecase"

	"github.com/gin-gonic/gin"
)

const opConsistency = "consistency_check"

type ConsistencyHandler struct {
	usecase usecase.IConsistencyUseCase
}

func NewConsistencyHandler(uc usecase.IConsistencyUseCase) *ConsistencyHandler {
	return &ConsistencyHandler{usecase: uc}
}

// RunConsistencyCheck godoc
// @Summary      Scan committed data for invariant violations
// @Tags         admin
// @Produce      json
// @Param        check     query     string  false  "all, order_items, negative_stock, order_integrity or orphaned_records"
// @Param        order_id  query     string  false  "Scope order_integrity to one order"
// @Success      200       {object}  response.ConsistencyResponse
// @Failure      400       {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/consistency [get]
func (h *ConsistencyHandler) RunConsistencyCheck(c *gin.Context) {
	report, err := h.usecase.RunCheck(c.Request.Context(), c.Query("check"), c.Query("order_id"))
	metrics.RecordOperation(opConsistency, outcome(err))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	for _, check := range report.Checks {
		metrics.SetConsistencyIssues(check.CheckName, check.IssueCount)
	}
	c.JSON(http.StatusOK, response.FromConsistencyReport(report))
}

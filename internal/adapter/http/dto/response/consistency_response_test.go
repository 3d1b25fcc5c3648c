package response

import (
	"encoding/json"
	"strings"
	"testing"

	"order_core/internal/usecase"
)

func TestFromConsistencyReport(t *testing.T) {
	report := usecase.ConsistencyReport{
		IsValid: false,
		Checks: []usecase.CheckResult{
			{CheckName: usecase.CheckNameNegativeStock, IsValid: true},
			{CheckName: usecase.CheckNameOrderTotals, IssueCount: 1, Issues: []usecase.Issue{{
				Check: usecase.CheckNameOrderTotals, Severity: usecase.SeverityError, EntityType: "order", EntityID: "o-1",
			}}},
		},
	}

	res := FromConsistencyReport(report)
	if res.IsValid || len(res.Issues) != 1 || len(res.Checks) != 2 {
		t.Fatalf("unexpected response: %+v", res)
	}
	if report.Checks[0].Issues != nil {
		t.Fatalf("input report was modified")
	}

	body, _ := json.Marshal(res)
	if !strings.Contains(string(body), `"checkName":"products_negative_stock","isValid":true,"issueCount":0,"issues":[]`) {
		t.Fatalf("empty issue list should render as []: %s", body)
	}
}

package response

import "order_core/internal/usecase"

type ConsistencyResponse struct {
	IsValid bool                  `json:"isValid"`
	Issues  []usecase.Issue       `json:"issues"`
	Checks  []usecase.CheckResult `json:"checks"`
}

func FromConsistencyReport(r usecase.ConsistencyReport) ConsistencyResponse {
	issues := r.Issues()
	if issues == nil {
		issues = []usecase.Issue{}
	}
	checks := append([]usecase.CheckResult(nil), r.Checks...)
	for i := range checks {
		if checks[i].Issues == nil {
			checks[i].Issues = []usecase.Issue{}
		}
	}
	return ConsistencyResponse{IsValid: r.IsValid, Issues: issues, Checks: checks}
}

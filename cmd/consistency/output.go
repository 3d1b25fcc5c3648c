package main

import (
	"encoding/json"
	"fmt"
	"io"

	"order_core/internal/usecase"
)

func writeJSON(w io.Writer, report usecase.ConsistencyReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func writeText(w io.Writer, report usecase.ConsistencyReport) error {
	for _, c := range report.Checks {
		status := "ok"
		if !c.IsValid {
			status = fmt.Sprintf("%d issue(s)", c.IssueCount)
		}
		if _, err := fmt.Fprintf(w, "%-26s %s\n", c.CheckName, status); err != nil {
			return err
		}
		for _, is := range c.Issues {
			if _, err := fmt.Fprintf(w, "  [%s] %s %s: %s\n", is.Severity, is.EntityType, is.EntityID, is.Message); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "valid: %t\n", report.IsValid)
	return err
}

package main

import (
	"order_core/internal/usecase"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
)

const (
	formatJSON = "json"
	formatText = "text"
)

func newCheckCmd(open opener) *cobra.Command {
	var (
		checkType string
		orderID   string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run one consistency check, or all of them",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatJSON && format != formatText {
				return errors.Errorf("invalid --format %q, want json or text", format)
			}

			uc, err := open(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "open store")
			}
			report, err := uc.RunCheck(cmd.Context(), checkType, orderID)
			if err != nil {
				return err
			}

			if format == formatJSON {
				err = writeJSON(cmd.OutOrStdout(), report)
			} else {
				err = writeText(cmd.OutOrStdout(), report)
			}
			if err != nil {
				return err
			}
			if !report.IsValid {
				return errIssuesFound
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&checkType, "type", usecase.CheckAll, "all, order_items, negative_stock, order_integrity or orphaned_records")
	cmd.Flags().StringVar(&orderID, "order-id", "", "Scope order_integrity to one order")
	cmd.Flags().StringVar(&format, "format", formatText, "Output format: json or text")
	return cmd
}

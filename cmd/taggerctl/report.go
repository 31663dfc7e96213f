package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func reportCommand(rt *runtime) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the daily activity report",
		Long: "Counts labels per operator for one calendar day in the configured report\n" +
			"time zone and writes daily_activity_report_<date>.txt to the report directory.\n" +
			"Defaults to the current day.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := rt.cfg.Report.Location

			day := time.Now().In(loc)
			if date != "" {
				parsed, err := time.ParseInLocation(dateLayout, date, loc)
				if err != nil {
					return fmt.Errorf("--date: expected YYYY-MM-DD: %w", err)
				}
				day = parsed
			}

			path, err := rt.svcs.Report.Run(cmd.Context(), day)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "report day as YYYY-MM-DD (default today)")
	return cmd
}

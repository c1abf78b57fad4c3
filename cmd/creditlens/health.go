package main

import (
	"fmt"

	"github.com/nathadriele/creditlens/internal/service/ui"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check retrieval backend health",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		a := newApp(ctx)

		health, err := a.explorer.Health(ctx)
		if err != nil {
			return fmt.Errorf("backend unreachable: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.TitleStyle.Render("Backend: "+health.Status))
		for name, status := range health.Services {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", name, status)
		}

		if health.Status != "healthy" {
			return fmt.Errorf("backend status %q", health.Status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

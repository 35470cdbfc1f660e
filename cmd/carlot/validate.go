package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [scenario]",
		Short: "Validate a scenario file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, path, err := a.loadScenario(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			errs := s.Validate()
			if len(errs) == 0 {
				fmt.Fprintf(out, "✅ Scenario '%s' is valid.\n", path)
				return nil
			}

			fmt.Fprintf(out, "❌ Scenario '%s' has %d problems:\n", path, len(errs))
			for i, e := range errs {
				fmt.Fprintf(out, "%d. %s\n", i+1, e)
			}
			return fmt.Errorf("validation failed")
		},
	}
}

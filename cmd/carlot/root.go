package main

import (
	"github.com/jason-s-yu/carlot/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs.
type app struct {
	env          config.Env
	logger       *logrus.Logger
	scenarioPath string
}

func newRootCmd() *cobra.Command {
	a := &app{env: config.FromEnv()}
	a.logger = a.env.NewLogger()

	root := &cobra.Command{
		Use:   "carlot",
		Short: "Rules engine for the car trading card game",
		Long: `carlot checks and exercises the card rules of the car trading game:
selling and buying cars, free insurance and attacks on opponents.

Tables are described by TOML scenario files. Without --scenario (or
CARLOT_SCENARIO) a built-in showroom table is used.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&a.scenarioPath, "scenario", "s", a.env.Scenario, "scenario file to load")

	root.AddCommand(newValidateCmd(a), newCardsCmd(a), newSimulateCmd(a))
	return root
}

// loadScenario reads the configured scenario, or the built-in one when none is set.
func (a *app) loadScenario(args []string) (*config.Scenario, string, error) {
	path := a.scenarioPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return config.DefaultScenario(), "built-in", nil
	}
	s, err := config.LoadScenario(path)
	if err != nil {
		return nil, path, err
	}
	return s, path, nil
}

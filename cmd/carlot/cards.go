package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jason-s-yu/carlot/internal/cards"
	"github.com/spf13/cobra"
)

func newCardsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cards [scenario]",
		Short: "List the cards in a scenario and who can play them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := a.loadScenario(args)
			if err != nil {
				return err
			}
			setup, err := s.Build(a.env.Seed)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			yes := color.New(color.FgGreen).SprintFunc()
			no := color.New(color.FgRed).SprintFunc()
			bold := color.New(color.Bold).SprintFunc()

			fmt.Fprintf(out, "%s: %d cars in the exchange, %d insurances\n\n",
				bold(s.Name), setup.State.CarsRemaining(), setup.State.InsurancesRemaining())

			roster := setup.State.Roster()
			for i, c := range setup.Hand {
				fmt.Fprintf(out, "%d. %s: %s\n", i+1, bold(c.Kind()), cards.Describe(c))
				for _, p := range roster {
					mark := no("no")
					if c.CanPlay(p, setup.State) {
						mark = yes("yes")
					}
					fmt.Fprintf(out, "     %-10s money=%-5d cars=%d  %s\n", p.Name, p.Money(), len(p.Cars()), mark)
				}
			}
			return nil
		},
	}
}

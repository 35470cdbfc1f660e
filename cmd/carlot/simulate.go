package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/jason-s-yu/carlot/internal/cards"
	"github.com/jason-s-yu/carlot/internal/choice"
	"github.com/jason-s-yu/carlot/internal/game"
	"github.com/jason-s-yu/carlot/internal/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type simulateOptions struct {
	rounds      int
	seed        int64
	interactive bool
	blockChance float64
}

func newSimulateCmd(a *app) *cobra.Command {
	opts := simulateOptions{}
	cmd := &cobra.Command{
		Use:   "simulate [scenario]",
		Short: "Play a few rounds of random legal cards",
		Long: `Simulate seats the scenario's players and, round by round, has each of
them play a random legal card from the scenario's hand. Choices are made by a
seeded bot, or by you at the terminal with --interactive.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = a.env.Seed
			}
			return a.simulate(cmd, args, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.rounds, "rounds", "r", 3, "number of rounds to play")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (0 = time based)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "answer choices at the terminal")
	cmd.Flags().Float64Var(&opts.blockChance, "block-chance", 0.3, "probability the bot blocks an attack")
	return cmd
}

func (a *app) simulate(cmd *cobra.Command, args []string, opts simulateOptions) error {
	s, _, err := a.loadScenario(args)
	if err != nil {
		return err
	}
	setup, err := s.Build(opts.seed)
	if err != nil {
		return err
	}

	bot := choice.NewRandom(opts.seed, opts.blockChance)
	var provider cards.ChoiceProvider = bot
	if opts.interactive {
		if !choice.IsInteractive(os.Stdin) {
			return errors.New("--interactive needs a terminal on stdin")
		}
		provider = choice.NewPrompt(os.Stdin, cmd.OutOrStdout())
	}

	logPlays := middleware.LogPlays(a.logger)
	hand := make([]cards.Card, len(setup.Hand))
	for i, c := range setup.Hand {
		hand[i] = logPlays(c)
	}

	ref := game.NewReferee(setup.State, a.logger)
	ref.ChoiceTimeout = a.env.ChoiceTimeout

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	for round := 1; round <= opts.rounds; round++ {
		for _, p := range setup.State.Roster() {
			playable := ref.Playable(p, hand)
			if len(playable) == 0 {
				a.logger.WithFields(logrus.Fields{"round": round, "player": p.Name}).Info("No legal card, passing")
				continue
			}
			c := playable[bot.Intn(len(playable))]
			fmt.Fprintf(cmd.OutOrStdout(), "round %d: %s plays %s\n", round, p.Name, cards.Describe(middleware.Unwrap(c)))
			// failures are logged by the LogPlays wrapper
			if err := ref.Play(ctx, p, c, provider); err != nil && ctx.Err() != nil {
				return fmt.Errorf("simulation interrupted: %w", ctx.Err())
			}
		}
	}

	printStandings(cmd, setup.State, len(ref.History()))
	return nil
}

func printStandings(cmd *cobra.Command, state *game.State, plays int) {
	out := cmd.OutOrStdout()
	header := color.New(color.Bold, color.FgCyan)
	header.Fprintf(out, "\nStandings after %d plays\n", plays)
	for _, p := range state.Roster() {
		var worth int
		for _, c := range p.Cars() {
			worth += c.Value
		}
		fmt.Fprintf(out, "  %-10s money=%-6d cars=%-2d (value %d) insurances=%d\n",
			p.Name, p.Money(), len(p.Cars()), worth, len(p.Insurances()))
	}
	fmt.Fprintf(out, "  exchange: %d cars, insurance deck: %d\n", state.CarsRemaining(), state.InsurancesRemaining())
}


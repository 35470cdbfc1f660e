// internal/config/scenario.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jason-s-yu/carlot/internal/cards"
	"github.com/jason-s-yu/carlot/internal/deck"
	"github.com/jason-s-yu/carlot/internal/game"
	"github.com/jason-s-yu/carlot/internal/models"
)

// Scenario describes a table to set up: the cards in play, the auto exchange
// (car deck), the insurance deck and the starting players.
type Scenario struct {
	Name      string           `toml:"name"`
	Cards     []CardSection    `toml:"cards"`
	Cars      []CarSection     `toml:"cars"`
	Insurance InsuranceSection `toml:"insurance"`
	Players   []PlayerSection  `toml:"players"`
}

type CardSection struct {
	Kind   cards.Kind `toml:"kind"`
	Amount int        `toml:"amount"` // n for sell cards, cost for buy cards
	Count  int        `toml:"count"`  // copies in the hand; 0 means 1
}

type CarSection struct {
	Name      string `toml:"name"`
	ListPrice int    `toml:"list_price"`
	Value     int    `toml:"value"`
	Count     int    `toml:"count"` // copies in the car deck; 0 means 1
}

type InsuranceSection struct {
	Name  string `toml:"name"`
	Count int    `toml:"count"`
}

type PlayerSection struct {
	Name  string   `toml:"name"`
	Money int      `toml:"money"`
	Cars  []string `toml:"cars"` // names from [[cars]]; each takes one copy out of the deck
}

// Setup is a scenario turned into live objects.
type Setup struct {
	Hand  []cards.Card
	State *game.State
}

// LoadScenario decodes a scenario file. It does not validate it.
func LoadScenario(path string) (*Scenario, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("scenario file not found: %s", path)
	}
	var s Scenario
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("error decoding scenario %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("scenario %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return &s, nil
}

// DefaultScenario is used when no scenario file is configured.
func DefaultScenario() *Scenario {
	return &Scenario{
		Name: "showroom",
		Cards: []CardSection{
			{Kind: cards.KindSellForListPlusN, Amount: 50, Count: 2},
			{Kind: cards.KindBuyFromAutoExchangeForN, Amount: 100, Count: 2},
			{Kind: cards.KindFree, Count: 1},
			{Kind: cards.KindAttack, Count: 1},
		},
		Cars: []CarSection{
			{Name: "Edsel", ListPrice: 120, Value: 60, Count: 2},
			{Name: "Lincoln", ListPrice: 300, Value: 240, Count: 2},
			{Name: "Pinto", ListPrice: 80, Value: 20, Count: 3},
		},
		Insurance: InsuranceSection{Name: "Collision", Count: 4},
		Players: []PlayerSection{
			{Name: "alice", Money: 250, Cars: []string{"Edsel"}},
			{Name: "bob", Money: 150},
			{Name: "carol", Money: 100, Cars: []string{"Pinto"}},
		},
	}
}

// Validate returns every problem found in the scenario.
func (s *Scenario) Validate() []error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if len(s.Players) == 0 {
		add("scenario needs at least one player")
	}
	if len(s.Cards) == 0 {
		add("scenario needs at least one card")
	}

	known := make(map[cards.Kind]bool)
	for _, k := range cards.Kinds() {
		known[k] = true
	}
	for i, c := range s.Cards {
		if !known[c.Kind] {
			add("cards[%d]: unknown kind %q", i, c.Kind)
		}
		if c.Amount < 0 {
			add("cards[%d]: amount must be non-negative", i)
		} else if c.Amount != 0 && known[c.Kind] && !cards.TakesAmount(c.Kind) {
			add("cards[%d]: %s takes no amount, got %d", i, c.Kind, c.Amount)
		}
		if c.Count < 0 {
			add("cards[%d]: count must be non-negative", i)
		}
	}

	supply := make(map[string]int)
	for i, c := range s.Cars {
		if c.Name == "" {
			add("cars[%d]: name is required", i)
		}
		if c.ListPrice < 0 || c.Value < 0 {
			add("cars[%d]: prices must be non-negative", i)
		}
		if c.Count < 0 {
			add("cars[%d]: count must be non-negative", i)
		}
		supply[c.Name] += max(c.Count, 1)
	}

	if s.Insurance.Count < 0 {
		add("insurance: count must be non-negative")
	}

	seen := make(map[string]bool)
	for i, p := range s.Players {
		if p.Name == "" {
			add("players[%d]: name is required", i)
		} else if seen[p.Name] {
			add("players[%d]: duplicate name %q", i, p.Name)
		}
		seen[p.Name] = true
		if p.Money < 0 {
			add("players[%d]: money must be non-negative", i)
		}
		for _, name := range p.Cars {
			if _, ok := supply[name]; !ok {
				add("players[%d]: unknown car %q", i, name)
				continue
			}
			supply[name]--
			if supply[name] < 0 {
				add("players[%d]: not enough %q cars in the deck", i, name)
			}
		}
	}
	return errs
}

// Build validates the scenario and creates the hand and table. The car deck
// is shuffled with seed after the starting cars are dealt; a zero seed keeps
// file order.
func (s *Scenario) Build(seed int64) (*Setup, error) {
	if errs := s.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid scenario: %w", errors.Join(errs...))
	}

	var hand []cards.Card
	for _, section := range s.Cards {
		for i := 0; i < max(section.Count, 1); i++ {
			c, err := cards.New(section.Kind, section.Amount)
			if err != nil {
				return nil, err
			}
			hand = append(hand, c)
		}
	}

	var carList []*models.Car
	for _, section := range s.Cars {
		for i := 0; i < max(section.Count, 1); i++ {
			carList = append(carList, models.NewCar(section.Name, section.ListPrice, section.Value))
		}
	}

	players := make([]*models.Player, 0, len(s.Players))
	for _, section := range s.Players {
		p := models.NewPlayer(section.Name, section.Money)
		for _, name := range section.Cars {
			for i, c := range carList {
				if c.Name == name {
					p.GainCar(c)
					carList = append(carList[:i], carList[i+1:]...)
					break
				}
			}
		}
		players = append(players, p)
	}

	carDeck := deck.New(carList...)
	if seed != 0 {
		carDeck.Shuffle(seed)
	}

	name := s.Insurance.Name
	if name == "" {
		name = "insurance"
	}
	insurances := make([]*models.Insurance, s.Insurance.Count)
	for i := range insurances {
		insurances[i] = models.NewInsurance(name)
	}

	return &Setup{
		Hand:  hand,
		State: game.NewState(players, carDeck, deck.New(insurances...)),
	}, nil
}

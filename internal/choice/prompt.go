// internal/choice/prompt.go
package choice

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/jason-s-yu/carlot/internal/cards"
	"github.com/jason-s-yu/carlot/internal/models"
)

// ErrInputClosed is returned when the prompt's input ends before an answer is read.
var ErrInputClosed = errors.New("choice: input closed")

var (
	promptColor = color.New(color.FgCyan, color.Bold)
	optionColor = color.New(color.FgYellow)
	warnColor   = color.New(color.FgRed)
)

// Prompt asks a human at a terminal. Input is read line by line on a
// background goroutine. Each question gets a generation; once a question is
// abandoned through its ctx, lines typed before the next question starts are
// dropped so a late answer never lands on a different question.
type Prompt struct {
	in  io.Reader
	out io.Writer

	once  sync.Once
	lines chan answer

	mu        sync.Mutex
	asked     uint64 // generations handed out so far
	current   uint64 // generation accepting lines, 0 after an abandoned question
	abandoned uint64 // newest generation whose ctx ended first
}

type answer struct {
	gen  uint64
	text string
}

// NewPrompt reads answers from in and writes questions to out. The reader
// goroutine starts on the first question and runs until in is exhausted; a
// Prompt that stops being asked leaves it parked on its next line, so use one
// Prompt per input stream for the life of the process.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: in, out: out}
}

func (pr *Prompt) ChooseOwnCar(ctx context.Context, _ cards.GameState, p cards.Player) (*models.Car, error) {
	return pr.chooseCar(ctx, fmt.Sprintf("%v, pick one of your cars", p), p.Cars())
}

func (pr *Prompt) ChooseOpponentCar(ctx context.Context, gs cards.GameState, p cards.Player) (*models.Car, error) {
	return pr.chooseCar(ctx, fmt.Sprintf("%v, pick an opponent's car", p), OpponentCars(gs, p))
}

func (pr *Prompt) AllowBlockAttack(ctx context.Context, _ cards.GameState, victim cards.Player) (bool, error) {
	gen := pr.begin()
	for {
		promptColor.Fprintf(pr.out, "%v, your car is under attack. Block it? [y/n] ", victim)
		line, err := pr.readLine(ctx, gen)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		warnColor.Fprintln(pr.out, "please answer y or n")
	}
}

func (pr *Prompt) chooseCar(ctx context.Context, question string, candidates []*models.Car) (*models.Car, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	gen := pr.begin()
	for {
		promptColor.Fprintln(pr.out, question+":")
		for i, c := range candidates {
			optionColor.Fprintf(pr.out, "  %d) %s (list %d, value %d)\n", i+1, c.Name, c.ListPrice, c.Value)
		}
		fmt.Fprint(pr.out, "> ")

		line, err := pr.readLine(ctx, gen)
		if err != nil {
			return nil, err
		}
		idx, err := strconv.Atoi(line)
		if err == nil && idx >= 1 && idx <= len(candidates) {
			return candidates[idx-1], nil
		}
		warnColor.Fprintf(pr.out, "enter a number between 1 and %d\n", len(candidates))
	}
}

// begin opens a new question and starts the reader on first use.
func (pr *Prompt) begin() uint64 {
	pr.mu.Lock()
	pr.asked++
	pr.current = pr.asked
	gen := pr.current
	pr.mu.Unlock()

	pr.once.Do(func() {
		pr.lines = make(chan answer)
		go pr.scan()
	})
	return gen
}

func (pr *Prompt) scan() {
	defer close(pr.lines)
	scanner := bufio.NewScanner(pr.in)
	for scanner.Scan() {
		pr.mu.Lock()
		gen := pr.current
		pr.mu.Unlock()
		if gen == 0 {
			continue
		}
		pr.lines <- answer{gen: gen, text: strings.TrimSpace(scanner.Text())}
	}
}

func (pr *Prompt) readLine(ctx context.Context, gen uint64) (string, error) {
	for {
		select {
		case <-ctx.Done():
			pr.mu.Lock()
			pr.abandoned = max(pr.abandoned, gen)
			if pr.current == gen {
				pr.current = 0
			}
			pr.mu.Unlock()
			return "", ctx.Err()
		case a, ok := <-pr.lines:
			if !ok {
				return "", ErrInputClosed
			}
			pr.mu.Lock()
			stale := a.gen <= pr.abandoned
			pr.mu.Unlock()
			if stale {
				continue
			}
			return a.text, nil
		}
	}
}

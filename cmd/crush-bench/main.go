// crush-bench plays seeded games headless, always taking the first hinted
// swap, and reports how often the greedy line reaches the target.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-crush/board"
	"github.com/lixenwraith/vi-crush/config"
	"github.com/lixenwraith/vi-crush/constants"
	"github.com/lixenwraith/vi-crush/engine"
)

type benchConfig struct {
	games  int
	seed   uint64
	target int
	moves  int
}

func parseFlags(args []string) (benchConfig, error) {
	def := config.Default()
	cfg := benchConfig{games: 100, target: def.Target, moves: def.Moves}

	fs := flag.NewFlagSet("crush-bench", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&cfg.games, "games", cfg.games, "number of games to play")
	fs.Uint64Var(&cfg.seed, "seed", cfg.seed, "seed of the first game, later games use seed+i (0 = random)")
	fs.IntVar(&cfg.target, "target", cfg.target, "score needed to win")
	fs.IntVar(&cfg.moves, "moves", cfg.moves, "committed swaps per game")
	if err := fs.Parse(args); err != nil {
		return benchConfig{}, errors.Wrap(err, "parse flags")
	}

	if cfg.games <= 0 {
		return benchConfig{}, errors.Errorf("games must be positive, got %d", cfg.games)
	}
	check := config.Default()
	check.Target, check.Moves = cfg.target, cfg.moves
	if err := check.Validate(); err != nil {
		return benchConfig{}, err
	}
	if cfg.seed == 0 {
		cfg.seed = board.NewSeed()
	}
	return cfg, nil
}

// GameResult summarizes one self-played game
type GameResult struct {
	State engine.State
	Score int
	// Cascades holds the pass count of every committed swap
	Cascades []int
	// Stalled is set when the board ran out of legal swaps before the game ended
	Stalled bool
}

// playGame runs one game to completion, taking the first hinted swap each turn
func playGame(seed uint64, target, moves int) GameResult {
	s := engine.New(
		engine.WithTarget(target),
		engine.WithMoveBudget(moves),
		engine.WithSource(board.NewRandSource(seed, constants.TokenKinds)),
	)

	var res GameResult
	for s.State() == engine.StatePlaying {
		a, b, ok := s.Hint()
		if !ok {
			res.Stalled = true
			break
		}
		s.OnGesture(a.Row, a.Col)
		g := s.OnGesture(b.Row, b.Col)
		if g.Outcome != engine.OutcomeCommitted {
			panic(errors.Errorf("hinted swap %v-%v was %v", a, b, g.Outcome))
		}
		res.Cascades = append(res.Cascades, len(g.Passes))
	}

	res.State = s.State()
	res.Score = s.Score()
	return res
}

// Stats accumulates results across games
type Stats struct {
	Games      int
	Wins       int
	Stalled    int
	TotalScore int
	Swaps      int
	Passes     int
	MaxCascade int
}

// Add folds one game into the totals
func (s *Stats) Add(r GameResult) {
	s.Games++
	if r.State == engine.StateWon {
		s.Wins++
	}
	if r.Stalled {
		s.Stalled++
	}
	s.TotalScore += r.Score
	for _, n := range r.Cascades {
		s.Swaps++
		s.Passes += n
		if n > s.MaxCascade {
			s.MaxCascade = n
		}
	}
}

func (s Stats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

func (s Stats) MeanScore() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.Games)
}

// MeanCascade is the average number of passes per committed swap
func (s Stats) MeanCascade() float64 {
	if s.Swaps == 0 {
		return 0
	}
	return float64(s.Passes) / float64(s.Swaps)
}

// Report writes the summary table
func (s Stats) Report(w io.Writer) {
	fmt.Fprintf(w, "games         %d\n", s.Games)
	fmt.Fprintf(w, "win rate      %.1f%%\n", s.WinRate()*100)
	fmt.Fprintf(w, "mean score    %.1f\n", s.MeanScore())
	fmt.Fprintf(w, "mean cascade  %.2f passes\n", s.MeanCascade())
	fmt.Fprintf(w, "max cascade   %d passes\n", s.MaxCascade)
	if s.Stalled > 0 {
		fmt.Fprintf(w, "stalled       %d\n", s.Stalled)
	}
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "crush-bench: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("seed %d, target %d, moves %d\n\n", cfg.seed, cfg.target, cfg.moves)

	var stats Stats
	for i := 0; i < cfg.games; i++ {
		stats.Add(playGame(cfg.seed+uint64(i), cfg.target, cfg.moves))
	}
	stats.Report(os.Stdout)
}

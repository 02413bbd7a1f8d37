// Command letterfreq counts character frequencies of its arguments in parallel.
// Each positional argument is one input line. Worker count, strategy and
// output size are read from LETTERFREQ_* environment variables.
//
// Usage: letterfreq "first line" "second line" ...
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/seantiz/letterfreq/internal/config"
	"github.com/seantiz/letterfreq/internal/engine"
)

// report is the JSON document written to stdout.
type report struct {
	RunID    string         `json:"run_id"`
	Strategy string         `json:"strategy"`
	Workers  int            `json:"workers"`
	Lines    int            `json:"lines"`
	Total    int            `json:"total"`
	Distinct int            `json:"distinct"`
	Entries  []engine.Entry `json:"entries"`
}

func main() {
	cfg := config.Load()
	logger := config.NewLogger(os.Stderr, cfg.LogLevel)

	for _, w := range cfg.Warnings {
		logger.Warn("letterfreq: config", "warning", w)
	}

	if err := run(os.Args[1:], cfg, os.Stdout, logger); err != nil {
		log.Fatalf("letterfreq: %v", err)
	}
}

// run counts lines with the configured engine and writes the report to w.
func run(lines []string, cfg config.Config, w io.Writer, logger *slog.Logger) error {
	strategy, err := engine.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	eng := engine.NewEngine(logger, engine.WithStrategy(strategy))
	r, hist, err := eng.Run(lines, cfg.Workers)
	if err != nil {
		return err
	}

	entries := hist.Entries()
	if cfg.Top > 0 {
		entries = hist.Top(cfg.Top)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report{
		RunID:    r.ID,
		Strategy: r.Strategy,
		Workers:  r.Workers,
		Lines:    r.Lines,
		Total:    r.Runes,
		Distinct: r.Distinct,
		Entries:  entries,
	}); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

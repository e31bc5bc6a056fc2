// Package batch validates many citations at once: one per line of a text
// stream, checked in parallel with results kept in input order.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"bluecheck/internal/citation"
)

// Input is one citation read from a source.
type Input struct {
	Line int    // 1-based line number, 0 for citations not read from a file
	Text string // NFC-normalized, untrimmed
}

// Item pairs an Input with its result.
type Item struct {
	Input  Input
	Result citation.Result
}

// Options configures Run.
type Options struct {
	Jobs     int          // max parallel workers, 0 means GOMAXPROCS
	Logger   *zap.Logger  // nil means no logging
	Progress ProgressSink // nil means no progress events
}

// maxLine bounds a single citation line.
const maxLine = 1 << 20

// Read returns one Input per non-blank line of r. Lines whose first
// non-space character is '#' are comments.
func Read(r io.Reader) ([]Input, error) {
	var inputs []Input
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		inputs = append(inputs, Input{Line: line, Text: norm.NFC.String(text)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read citations: %w", err)
	}
	return inputs, nil
}

// FromArgs wraps command-line citations as inputs.
func FromArgs(args []string) []Input {
	inputs := make([]Input, 0, len(args))
	for _, a := range args {
		inputs = append(inputs, Input{Text: norm.NFC.String(a)})
	}
	return inputs
}

// Run validates inputs with v using up to opts.Jobs workers. Items are
// returned in input order. Run stops early and returns ctx.Err() when ctx is
// cancelled.
func Run(ctx context.Context, v *citation.Validator, inputs []Input, opts Options) ([]Item, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sink := opts.Progress
	if sink == nil {
		sink = nopSink{}
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// each goroutine owns its own index, no locking needed
	items := make([]Item, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(inputs)))

	for i, in := range inputs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			sink.OnEvent(Event{Index: i, Status: StatusChecking})
			res := v.Validate(in.Text)
			items[i] = Item{Input: in, Result: res}
			status := StatusValid
			if !res.IsValid() {
				status = StatusInvalid
			}
			sink.OnEvent(Event{Index: i, Status: status})
			logger.Debug("citation checked",
				zap.Int("line", in.Line),
				zap.Bool("valid", res.IsValid()),
				zap.Int("diagnostics", res.Diagnostics.Len()))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// Summary counts results by outcome.
type Summary struct {
	Total        int
	Valid        int
	WithWarnings int
}

func Summarize(items []Item) Summary {
	s := Summary{Total: len(items)}
	for _, it := range items {
		if it.Result.IsValid() {
			s.Valid++
		}
		if it.Result.Diagnostics.HasWarnings() && it.Result.IsValid() {
			s.WithWarnings++
		}
	}
	return s
}

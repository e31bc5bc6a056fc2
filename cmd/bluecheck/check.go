package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"bluecheck/internal/batch"
	"bluecheck/internal/citation"
	"bluecheck/internal/observ"
	"bluecheck/internal/refdata"
	"bluecheck/internal/ui"
	"bluecheck/internal/watch"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [citation...]",
	Short: "Validate case citations",
	Long: `Validate one or more case citations given as arguments, or one per line
from --file (use - for standard input). Blank lines and lines starting with #
are skipped.`,
	RunE: runCheck,
}

func init() {
	registerCheckFlags(checkCmd.Flags())
}

func registerCheckFlags(fs *pflag.FlagSet) {
	fs.StringP("file", "f", "", "read citations from a file, one per line (- for stdin)")
	fs.String("format", "pretty", "output format (pretty|json|short|msgpack)")
	fs.Int("year", 0, "reference year for the year range check (0=current year, -1=no upper bound)")
	fs.Int("jobs", 0, "max parallel workers (0=auto)")
	fs.Bool("no-warnings", false, "hide warnings")
	fs.Bool("warnings-as-errors", false, "exit with status 1 when any citation has warnings")
	fs.Bool("codes", false, "show diagnostic codes")
	fs.Bool("preview", false, "underline the offending part of each citation")
	fs.Bool("watch", false, "re-check --file whenever it changes")
	fs.String("ui", "auto", "show batch progress (auto|on|off)")
}

// checkRun holds everything needed to check and print one batch, so watch
// mode can repeat it.
type checkRun struct {
	settings  checkSettings
	validator *citation.Validator
	file      string
	args      []string
	ui        switchMode
	timings   bool
	in        io.Reader
	out       io.Writer
	errOut    io.Writer
}

func runCheck(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd.Flags(), activeConfig(), time.Now)
	if err != nil {
		return err
	}
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}
	watchFile, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("failed to get watch flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	uiMode, err := readMode("ui", uiValue)
	if err != nil {
		return err
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	if file == "" && len(args) == 0 {
		return fmt.Errorf("no citations given (pass them as arguments or use --file)")
	}
	if watchFile && (file == "" || file == "-") {
		return fmt.Errorf("--watch requires --file with a path")
	}

	run := &checkRun{
		settings: settings,
		validator: citation.New(citation.Options{
			Tables:      activeConfig().ApplyTables(refdata.Default()),
			CurrentYear: settings.currentYear,
		}),
		file:    file,
		args:    args,
		ui:      uiMode,
		timings: timings,
		in:      cmd.InOrStdin(),
		out:     cmd.OutOrStdout(),
		errOut:  cmd.ErrOrStderr(),
	}
	logger.Debug("check started",
		zap.String("format", settings.format),
		zap.Int("year", settings.currentYear),
		zap.Int("jobs", settings.jobs))

	stopProfiling, err := startProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	bad, err := run.once(cmd.Context())
	if err != nil {
		return err
	}
	if watchFile {
		return run.watch(cmd.Context())
	}
	if bad {
		// Suppress cobra usage output on citation errors
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("") // Silent error - results already printed
	}
	return nil
}

// once reads, checks and prints every citation. It reports whether any
// citation failed under the current settings.
func (r *checkRun) once(ctx context.Context) (bool, error) {
	timer := observ.NewTimer()

	phase := timer.Begin("read")
	inputs, err := r.inputs()
	if err != nil {
		return false, err
	}
	timer.End(phase, len(inputs))

	phase = timer.Begin("check")
	items, err := r.check(ctx, inputs)
	if err != nil {
		return false, err
	}
	timer.End(phase, len(items))

	phase = timer.Begin("render")
	source := r.file
	if source == "-" {
		source = "<stdin>"
	}
	entries := filterEntries(entriesOf(items, source), r.settings)
	labels := r.file != "" || len(entries) > 1
	if err := render(r.out, entries, r.settings, labels); err != nil {
		return false, err
	}
	timer.End(phase, len(entries))

	if r.timings {
		fmt.Fprint(r.errOut, timer.Summary())
	}
	return failed(entries, r.settings), nil
}

func (r *checkRun) inputs() ([]batch.Input, error) {
	inputs := batch.FromArgs(r.args)
	switch r.file {
	case "":
		return inputs, nil
	case "-":
		fromStdin, err := batch.Read(r.in)
		if err != nil {
			return nil, err
		}
		return append(inputs, fromStdin...), nil
	default:
		f, err := os.Open(r.file)
		if err != nil {
			return nil, fmt.Errorf("failed to open citations file: %w", err)
		}
		defer f.Close()
		fromFile, err := batch.Read(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.file, err)
		}
		return append(inputs, fromFile...), nil
	}
}

func (r *checkRun) check(ctx context.Context, inputs []batch.Input) ([]batch.Item, error) {
	opts := batch.Options{Jobs: r.settings.jobs, Logger: logger}
	showProgress := r.file != "" && r.settings.format == "pretty" && len(inputs) > 1 && r.ui.enabled(os.Stdout)
	if !showProgress {
		return batch.Run(ctx, r.validator, inputs, opts)
	}

	labels := make([]string, len(inputs))
	for i, in := range inputs {
		labels[i] = in.Text
	}
	events := make(chan batch.Event, 256)
	opts.Progress = batch.ChannelSink{Ch: events}

	type outcome struct {
		items []batch.Item
		err   error
	}
	outcomeCh := make(chan outcome, 1)
	go func() {
		items, err := batch.Run(ctx, r.validator, inputs, opts)
		close(events)
		outcomeCh <- outcome{items: items, err: err}
	}()

	program := tea.NewProgram(ui.NewProgressModel("checking citations", labels, events), tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// drain in case the program quit early
	for range events {
	}
	res := <-outcomeCh
	if uiErr != nil {
		return res.items, uiErr
	}
	return res.items, res.err
}

func (r *checkRun) watch(ctx context.Context) error {
	w, err := watch.New(r.file, 0, logger)
	if err != nil {
		return err
	}
	defer w.Close()
	fmt.Fprintf(r.errOut, "watching %s (Ctrl+C to stop)\n", r.file)
	return w.Run(ctx, func(ctx context.Context) error {
		fmt.Fprintln(r.out)
		_, err := r.once(ctx)
		return err
	})
}

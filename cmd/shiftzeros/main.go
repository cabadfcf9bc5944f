package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/shiftzeros/internal/algo"
	"github.com/san-kum/shiftzeros/internal/codeview"
	"github.com/san-kum/shiftzeros/internal/config"
	"github.com/san-kum/shiftzeros/internal/logging"
	"github.com/san-kum/shiftzeros/internal/present"
	"github.com/san-kum/shiftzeros/internal/trace"
	"github.com/san-kum/shiftzeros/internal/tui"
)

var (
	configFile string
	seed       int64
	preset     string
	list       string
	theme      string
	codeStyle  string
	logFile    string
	verbose    bool
	noColor    bool
	automated  bool
	// trace
	format   string
	plot     bool
	scenario string
	maxSteps int
	runs     int
	summary  bool
	// source
	stateName string
)

// main registers the commands and flags, runs the widget when no subcommand
// is given, and exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "shiftzeros",
		Short:         "step through moving every zero of a list to the front",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
		},
		RunE: runWidget,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pf.StringVar(&preset, "preset", "", "use a named list preset")
	pf.StringVar(&list, "list", "", "fixed list of 8 numbers, e.g. 0,3,0,5,0,0,2,1")
	pf.StringVar(&theme, "theme", "", "color theme ("+strings.Join(tui.ThemeNames(), ", ")+")")
	pf.StringVar(&codeStyle, "style", "", "code highlighting style")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&noColor, "no-color", false, "disable colors")

	rootCmd.Flags().BoolVar(&automated, "auto", false, "start in automated mode")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "run the algorithm headless and print every transition",
		Args:  cobra.NoArgs,
		RunE:  runTrace,
	}
	traceCmd.Flags().StringVar(&format, "format", "csv", "output format (csv, json)")
	traceCmd.Flags().BoolVar(&plot, "plot", false, "plot current, zeros and target instead")
	traceCmd.Flags().StringVar(&scenario, "scenario", "", "run a scenario file (yaml)")
	traceCmd.Flags().IntVar(&maxSteps, "max-steps", trace.DefaultMaxSteps, "step limit per run")
	traceCmd.Flags().IntVar(&runs, "runs", 1, "number of random runs, seeded from --seed upward")
	traceCmd.Flags().BoolVar(&summary, "summary", false, "print metric summary instead of transitions")

	sourceCmd := &cobra.Command{
		Use:   "source",
		Short: "print the algorithm listing",
		Args:  cobra.NoArgs,
		RunE:  showSource,
	}
	sourceCmd.Flags().StringVar(&stateName, "state", "", "highlight the lines of this state")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list the named presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(traceCmd, sourceCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, if any, and applies the flags the user
// set on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("preset") {
		cfg.Preset = preset
		cfg.List = nil
	}
	if flags.Changed("list") {
		nums, err := config.ParseList(list)
		if err != nil {
			return nil, err
		}
		cfg.List = nums
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("style") {
		cfg.CodeStyle = codeStyle
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if f := flags.Lookup("auto"); f != nil && f.Changed {
		cfg.Automated = automated
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.Log, verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}
	return cfg, log, nil
}

func runWidget(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	src, err := cfg.Source()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	log.Info("starting widget",
		zap.String("theme", cfg.Theme),
		zap.Bool("automated", cfg.Automated),
		zap.Ints("list", cfg.Numbers()))

	return tui.Run(ctx, algo.New(src, log), tui.Options{
		Automated: cfg.Automated,
		Theme:     cfg.Theme,
		CodeStyle: cfg.CodeStyle,
		Logger:    log,
	})
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runner := trace.New(log)
	out := cmd.OutOrStdout()

	var results []*trace.Result
	if scenario != "" {
		sc, err := trace.LoadScenario(scenario)
		if err != nil {
			return fmt.Errorf("load scenario: %w", err)
		}
		results, err = trace.RunScenario(ctx, sc, runner, trace.Config{MaxSteps: maxSteps})
		if err != nil {
			return err
		}
	} else if runs > 1 {
		start := cfg.Seed
		if start == 0 {
			start = time.Now().UnixNano()
		}
		results, err = trace.NewEnsemble(runner, runs, start).Run(ctx, trace.Config{MaxSteps: maxSteps})
		if err != nil {
			return err
		}
	} else {
		src, err := cfg.Source()
		if err != nil {
			return err
		}
		res, err := runner.Run(ctx, src, trace.Config{Name: "trace", MaxSteps: maxSteps})
		if err != nil {
			return err
		}
		results = []*trace.Result{res}
	}

	if summary {
		return writeSummary(out, trace.Summarize(results), len(results))
	}

	for _, res := range results {
		if err := writeResult(out, res, len(results) > 1); err != nil {
			return err
		}
	}
	return nil
}

func writeResult(out io.Writer, res *trace.Result, titled bool) error {
	if titled {
		fmt.Fprintf(out, "# %s\n", res.Name)
	}
	if plot {
		fmt.Fprintln(out, trace.Plot(res, 60))
		return nil
	}
	switch format {
	case "csv":
		return trace.WriteCSV(out, res)
	case "json":
		return trace.WriteJSON(out, res)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeSummary(out io.Writer, sums []trace.Summary, n int) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%d runs\n", n)
	fmt.Fprintln(w, "METRIC\tMIN\tMAX\tMEAN")
	for _, s := range sums {
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.2f\n", s.Metric, s.Min, s.Max, s.Mean)
	}
	return w.Flush()
}

func showSource(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	var lines []int
	if stateName != "" {
		name := algo.StateName(stateName)
		if algo.Accepts(name) == nil {
			return fmt.Errorf("unknown state %q", stateName)
		}
		lines = present.HighlightedLines(name)
	}

	r := codeview.NewRenderer(codeview.ChromaTokenizer{}, cfg.CodeStyle)
	fmt.Fprintln(cmd.OutOrStdout(), r.Render(present.Source, present.Language, lines))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLIST\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%v\t%s\n", name, p.List, p.Description)
	}
	return w.Flush()
}

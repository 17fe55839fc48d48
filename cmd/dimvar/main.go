package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/dimvar/internal/config"
	"github.com/san-kum/dimvar/internal/dimvar"
	"github.com/san-kum/dimvar/internal/logging"
	"github.com/san-kum/dimvar/internal/sheet"
	"github.com/san-kum/dimvar/internal/store"
	"github.com/san-kum/dimvar/internal/tui"
	"github.com/san-kum/dimvar/internal/units"
	"github.com/san-kum/dimvar/internal/viz"
)

var (
	configFile string
	dataDir    string
	logLevel   string
	output     string
	save       bool

	preset    string
	sweepMin  float64
	sweepMax  float64
	sweepPts  int
	precision int

	cfg    *config.Config
	logger *slog.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "dimvar",
		Short:             "dimensional analysis and unit conversion",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cfg.Theme, cfg.Precision)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "history directory")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVarP(&output, "output", "o", config.DefaultOutput, "output format (text, table, json)")
	pf.BoolVar(&save, "save", false, "record the result in history")
	pf.IntVar(&precision, "precision", config.DefaultPrecision, "decimals to print (-1 = shortest)")

	convertCmd := &cobra.Command{
		Use:   "convert [value] [from] [to]",
		Short: "convert a value between compatible units",
		Args: func(cmd *cobra.Command, args []string) error {
			if preset != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(3)(cmd, args)
		},
		RunE: runConvert,
	}
	convertCmd.Flags().StringVar(&preset, "preset", "", "use a preset conversion (category/name)")

	parseCmd := &cobra.Command{
		Use:   "parse [unit]",
		Short: "show the SI factor and dimension of a unit expression",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}

	unitsCmd := &cobra.Command{
		Use:   "units",
		Short: "list known unit symbols",
		Args:  cobra.NoArgs,
		RunE:  listUnits,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [category]",
		Short: "list preset conversions",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	sheetCmd := &cobra.Command{
		Use:   "sheet [file.yaml]...",
		Short: "evaluate one or more worksheets",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSheet,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [from] [to]",
		Short: "plot a conversion over a value range",
		Args:  cobra.ExactArgs(2),
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0, "first input value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 100, "last input value")
	sweepCmd.Flags().IntVar(&sweepPts, "points", 0, "samples (default from config)")

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "list saved results",
		Args:  cobra.NoArgs,
		RunE:  listHistory,
	}

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "show a saved result",
		Args:  cobra.ExactArgs(1),
		RunE:  showRecord,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive converter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cfg.Theme, cfg.Precision)
		},
	}

	rootCmd.AddCommand(convertCmd, parseCmd, unitsCmd, presetsCmd, sheetCmd, sweepCmd, historyCmd, showCmd, tuiCmd)
	return rootCmd
}

// setup loads the config file and applies explicitly set flags over it.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("output") {
		cfg.Output = output
	}
	if flags.Changed("precision") {
		cfg.Precision = precision
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var err error
	logger, err = logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', cfg.Precision, 64)
}

func record(cmd *cobra.Command, kind, input string, entries []store.Entry) error {
	if !save {
		return nil
	}
	s := store.New(cfg.DataDir)
	if err := s.Init(); err != nil {
		return err
	}
	id, err := s.Save(kind, input, entries)
	if err != nil {
		return err
	}
	logger.Debug("result saved", "id", id, "kind", kind)
	fmt.Fprintf(cmd.OutOrStdout(), "saved: %s\n", id)
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	var conv config.Conversion
	if preset != "" {
		cat, name, _ := strings.Cut(preset, "/")
		p := config.GetPreset(cat, name)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.Categories())
		}
		conv = *p
	} else {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[0], err)
		}
		conv = config.Conversion{Value: value, From: args[1], To: args[2]}
	}

	v, err := dimvar.New(conv.Value, conv.From)
	if err != nil {
		return err
	}
	out, err := v.ValueIn(conv.To)
	if err != nil {
		return err
	}
	logger.Debug("converted", "from", conv.From, "to", conv.To, "si", v.String())

	entries := []store.Entry{
		{Name: "input", Value: conv.Value, Unit: conv.From},
		{Name: "result", Value: out, Unit: conv.To},
	}

	w := cmd.OutOrStdout()
	switch cfg.Output {
	case "json":
		if err := writeJSON(w, entries); err != nil {
			return err
		}
	case "table":
		viz.RenderEntries(w, entries)
	default:
		fmt.Fprintf(w, "%s %s = %s %s\n", formatValue(conv.Value), conv.From, formatValue(out), conv.To)
	}

	input := fmt.Sprintf("%g %s -> %s", conv.Value, conv.From, conv.To)
	return record(cmd, "convert", input, entries)
}

type parseResult struct {
	Unit      string    `json:"unit"`
	Factor    float64   `json:"factor"`
	Exponents []float64 `json:"exponents"`
	SI        string    `json:"si"`
}

func runParse(cmd *cobra.Command, args []string) error {
	vec, factor, err := units.Parse(args[0])
	if err != nil {
		return err
	}

	res := parseResult{
		Unit:      args[0],
		Factor:    factor,
		Exponents: vec[:],
		SI:        dimvar.UnitString(vec),
	}

	w := cmd.OutOrStdout()
	if cfg.Output == "json" {
		return writeJSON(w, res)
	}

	styles := viz.NewStyles(viz.GetTheme(cfg.Theme))
	fmt.Fprintf(w, "unit:   %s\n", res.Unit)
	fmt.Fprintf(w, "factor: %s\n", strconv.FormatFloat(factor, 'g', -1, 64))
	fmt.Fprintf(w, "si:     %s\n", res.SI)
	fmt.Fprintf(w, "dims:   %s\n", styles.ExponentBar(vec))
	return nil
}

func listUnits(cmd *cobra.Command, args []string) error {
	all := units.All()
	w := cmd.OutOrStdout()
	if cfg.Output == "json" {
		return writeJSON(w, all)
	}
	viz.RenderUnits(w, all)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	categories := config.Categories()
	if len(args) == 1 {
		if config.ListPresets(args[0]) == nil {
			return fmt.Errorf("unknown preset category: %s (available: %v)", args[0], categories)
		}
		categories = args[:1]
	}

	w := cmd.OutOrStdout()
	if cfg.Output == "json" {
		out := make(map[string]map[string]*config.Conversion, len(categories))
		for _, c := range categories {
			out[c] = config.Presets[c]
		}
		return writeJSON(w, out)
	}

	for _, c := range categories {
		fmt.Fprintf(w, "%s:\n", c)
		for _, name := range config.ListPresets(c) {
			p := config.GetPreset(c, name)
			fmt.Fprintf(w, "  %-14s %g %s -> %s\n", name, p.Value, p.From, p.To)
		}
	}
	return nil
}

func runSheet(cmd *cobra.Command, args []string) error {
	sheets := make([]*sheet.Sheet, len(args))
	for i, path := range args {
		s, err := sheet.Load(path)
		if err != nil {
			return err
		}
		sheets[i] = s
	}

	ev := sheet.NewEvaluator(
		sheet.WithLogger(logger),
		sheet.WithPrecision(cfg.Precision),
	)
	batch, err := ev.RunAll(cmd.Context(), sheets)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i, results := range batch {
		if len(args) > 1 && cfg.Output != "json" {
			fmt.Fprintf(w, "# %s\n", args[i])
		}
		switch cfg.Output {
		case "json":
			if err := writeJSON(w, results); err != nil {
				return err
			}
		case "table":
			viz.RenderResults(w, results)
		default:
			for _, r := range results {
				fmt.Fprintf(w, "%s = %s\n", r.Name, r.Rendered)
			}
		}

		entries := make([]store.Entry, len(results))
		for j, r := range results {
			entries[j] = store.Entry{Name: r.Name, Value: r.Value, Unit: r.Unit}
		}
		if err := record(cmd, "sheet", args[i], entries); err != nil {
			return err
		}
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	points := sweepPts
	if points == 0 {
		points = cfg.Plot.Points
	}
	sw := viz.Sweep{From: args[0], To: args[1], Min: sweepMin, Max: sweepMax, Points: points}

	w := cmd.OutOrStdout()
	if cfg.Output == "json" {
		xs, ys, err := sw.Run()
		if err != nil {
			return err
		}
		return writeJSON(w, map[string][]float64{"input": xs, "output": ys})
	}

	plot, err := sw.Plot(cfg.Plot.Width, cfg.Plot.Height)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, plot)
	return nil
}

func listHistory(cmd *cobra.Command, args []string) error {
	records, err := store.New(cfg.DataDir).List()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if cfg.Output == "json" {
		return writeJSON(w, records)
	}
	viz.RenderHistory(w, records)
	return nil
}

func showRecord(cmd *cobra.Command, args []string) error {
	s := store.New(cfg.DataDir)
	rec, err := s.Load(args[0])
	if err != nil {
		return err
	}
	entries, err := s.LoadEntries(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if cfg.Output == "json" {
		return writeJSON(w, struct {
			*store.Record
			Entries []store.Entry `json:"entries"`
		}{rec, entries})
	}

	fmt.Fprintf(w, "%s  %s  %s\n", rec.ID, rec.Timestamp.Format("2006-01-02 15:04:05"), rec.Input)
	viz.RenderEntries(w, entries)
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/IJOL/greedypacker/internal/engine"
	"github.com/IJOL/greedypacker/internal/model"
	"github.com/IJOL/greedypacker/internal/project"
)

// compareOpts holds the command-line flags for the compare command.
type compareOpts struct {
	binWidth   int
	binHeight  int
	rotation   bool
	merge      bool
	splits     bool
	heuristic  string
	selection  string
	configPath string
}

func newCompareCmd() *cobra.Command {
	opts := compareOpts{}

	cmd := &cobra.Command{
		Use:   "compare [file]",
		Short: "Compare packing strategies on the same item list",
		Long: `Compare packs the same item list once per placement heuristic (or, with
--splits, once per split policy) and prints a side-by-side table of bins
used, efficiency, and unplaced items.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.Context(), args[0], cmd, &opts)
		},
	}

	cmd.Flags().IntVar(&opts.binWidth, "bin-width", 0, "bin width (default from config)")
	cmd.Flags().IntVar(&opts.binHeight, "bin-height", 0, "bin height (default from config)")
	cmd.Flags().BoolVar(&opts.rotation, "rotation", true, "allow 90 degree item rotation")
	cmd.Flags().BoolVar(&opts.merge, "merge", false, "recombine adjacent free rectangles after each placement")
	cmd.Flags().BoolVar(&opts.splits, "splits", false, "compare split policies instead of heuristics")
	cmd.Flags().StringVar(&opts.heuristic, "heuristic", "", "heuristic to hold fixed when comparing splits")
	cmd.Flags().StringVar(&opts.selection, "bin-selection", "", "bin selection: first_fit, best_fit")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file path (default ~/.greedypacker/config.json)")

	return cmd
}

func runCompare(ctx context.Context, inputPath string, cmd *cobra.Command, opts *compareOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := resolveCompareConfig(cmd, opts)
	if err != nil {
		return err
	}

	selection, err := engine.ParseBinSelection(cfg.BinSelection)
	if err != nil {
		return err
	}

	items, err := loadItems(inputPath, logger)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("no items to pack in %s", inputPath)
	}

	engineCfg := engine.Config{Rotation: cfg.Rotation, Merge: cfg.Merge}

	var scenarios []engine.Scenario
	if opts.splits {
		heuristic, err := engine.ParseHeuristic(cfg.Heuristic)
		if err != nil {
			return err
		}
		scenarios = engine.BuildSplitScenarios(engineCfg, heuristic, selection)
	} else {
		scenarios = engine.BuildHeuristicScenarios(engineCfg, selection)
	}

	prog := newProgress(logger)
	results := engine.CompareScenarios(cfg.BinWidth, cfg.BinHeight, scenarios, engine.ExpandQuantities(items))
	prog.done(fmt.Sprintf("Compared %d scenarios", len(results)))

	printCompareTable(results)
	return nil
}

func resolveCompareConfig(cmd *cobra.Command, opts *compareOpts) (model.AppConfig, error) {
	path := opts.configPath
	if path == "" {
		path = project.DefaultConfigPath()
	}
	cfg, err := project.LoadAppConfig(path)
	if err != nil {
		return model.AppConfig{}, fmt.Errorf("cannot load config: %w", err)
	}

	if opts.binWidth > 0 {
		cfg.BinWidth = opts.binWidth
	}
	if opts.binHeight > 0 {
		cfg.BinHeight = opts.binHeight
	}
	if opts.heuristic != "" {
		cfg.Heuristic = opts.heuristic
	}
	if opts.selection != "" {
		cfg.BinSelection = opts.selection
	}
	if cmd.Flags().Changed("rotation") {
		cfg.Rotation = opts.rotation
	}
	if cmd.Flags().Changed("merge") {
		cfg.Merge = opts.merge
	}

	if cfg.BinWidth <= 0 || cfg.BinHeight <= 0 {
		return model.AppConfig{}, fmt.Errorf("bin dimensions must be positive, got %dx%d", cfg.BinWidth, cfg.BinHeight)
	}
	return cfg, nil
}

func printCompareTable(results []engine.ScenarioResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tBINS\tEFFICIENCY\tWASTE\tUNPLACED")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%.1f%%\t%.1f%%\t%d\n",
			r.Scenario.Name, r.BinsUsed,
			r.Result.TotalEfficiency()*100, r.WastePercent, r.UnplacedCount)
	}
	w.Flush()
}

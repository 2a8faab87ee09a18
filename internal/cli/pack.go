package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/IJOL/greedypacker/internal/engine"
	"github.com/IJOL/greedypacker/internal/export"
	"github.com/IJOL/greedypacker/internal/importer"
	"github.com/IJOL/greedypacker/internal/model"
	"github.com/IJOL/greedypacker/internal/project"
)

// packOpts holds the command-line flags for the pack command. Zero-valued
// dimension and empty string flags fall back to the persisted AppConfig.
type packOpts struct {
	binWidth    int
	binHeight   int
	heuristic   string
	splitPolicy string
	selection   string
	rotation    bool
	merge       bool
	genetic     bool
	seed        int64
	pdfOut      string
	labelsOut   string
	xlsxOut     string
	dxfOut      string
	projectOut  string
	offcuts     bool
	configPath  string
}

func newPackCmd() *cobra.Command {
	opts := packOpts{}

	cmd := &cobra.Command{
		Use:   "pack [file]",
		Short: "Pack an item list into bins",
		Long: `Pack reads an item list (CSV, XLSX, or a saved project JSON), places the
items into bins using the configured guillotine heuristic, and prints a
per-bin summary. Layout diagrams, QR labels, cut lists, and DXF drawings
can be exported with the corresponding flags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(cmd.Context(), args[0], cmd, &opts)
		},
	}

	cmd.Flags().IntVar(&opts.binWidth, "bin-width", 0, "bin width (default from config)")
	cmd.Flags().IntVar(&opts.binHeight, "bin-height", 0, "bin height (default from config)")
	cmd.Flags().StringVar(&opts.heuristic, "heuristic", "", "placement heuristic: first_fit, best_width_fit, best_height_fit, best_area_fit, worst_width_fit, worst_height_fit, worst_area_fit")
	cmd.Flags().StringVar(&opts.splitPolicy, "split", "", "split policy: default, shorter_leftover_axis, longer_leftover_axis, minimize_area, maximize_area, shorter_axis, longer_axis")
	cmd.Flags().StringVar(&opts.selection, "bin-selection", "", "bin selection: first_fit, best_fit")
	cmd.Flags().BoolVar(&opts.rotation, "rotation", true, "allow 90 degree item rotation")
	cmd.Flags().BoolVar(&opts.merge, "merge", false, "recombine adjacent free rectangles after each placement")
	cmd.Flags().BoolVar(&opts.genetic, "genetic", false, "search item orderings with the genetic optimizer")
	cmd.Flags().Int64Var(&opts.seed, "seed", 42, "random seed for the genetic optimizer")
	cmd.Flags().StringVar(&opts.pdfOut, "pdf", "", "write layout diagrams to a PDF file")
	cmd.Flags().StringVar(&opts.labelsOut, "labels", "", "write QR-coded item labels to a PDF file")
	cmd.Flags().StringVar(&opts.xlsxOut, "xlsx", "", "write the cut list to an Excel workbook")
	cmd.Flags().StringVar(&opts.dxfOut, "dxf", "", "write the layout to a DXF drawing")
	cmd.Flags().StringVar(&opts.projectOut, "save-project", "", "save inputs and result as a project JSON file")
	cmd.Flags().BoolVar(&opts.offcuts, "offcuts", false, "add usable offcuts to the inventory")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file path (default ~/.greedypacker/config.json)")

	return cmd
}

func runPack(ctx context.Context, inputPath string, cmd *cobra.Command, opts *packOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	heuristic, err := engine.ParseHeuristic(cfg.Heuristic)
	if err != nil {
		return err
	}
	splitPolicy, err := engine.ParseSplitPolicy(cfg.SplitPolicy)
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
	logger.Debugf("Loaded %d item definitions from %s", len(items), inputPath)

	engineCfg := engine.Config{
		Rotation:    cfg.Rotation,
		Merge:       cfg.Merge,
		SplitPolicy: splitPolicy,
	}

	// Packing mutates the items in place; keep pristine copies so a saved
	// project stores the inputs, not the placements.
	sourceItems := snapshotItems(items)

	prog := newProgress(logger)
	var result model.PackResult
	var stats []engine.BinStats

	if opts.genetic {
		gc := engine.DefaultGeneticConfig()
		gc.Seed = opts.seed
		result = engine.OptimizeGenetic(cfg.BinWidth, cfg.BinHeight, engineCfg, heuristic, items, gc)
	} else {
		mgr := engine.NewManager(cfg.BinWidth, cfg.BinHeight, engineCfg, heuristic, selection)
		result = mgr.Pack(items)
		stats = mgr.Stats()
	}
	prog.done(fmt.Sprintf("Packed %d items into %d bins", result.PlacedCount(), len(result.Bins)))

	printPackSummary(logger, result)

	if len(result.Unplaced) > 0 {
		logger.Warnf("%d items could not be placed", len(result.Unplaced))
		for _, it := range result.Unplaced {
			logger.Warnf("  unplaced: %s (%dx%d)", it.Label, it.Width, it.Height)
		}
	}

	return runExports(logger, cfg, result, stats, sourceItems, opts)
}

// snapshotItems returns independent copies of the items with their
// quantities intact.
func snapshotItems(items []*model.Item) []*model.Item {
	copies := make([]*model.Item, len(items))
	for i, it := range items {
		cp := *it
		copies[i] = &cp
	}
	return copies
}

// resolveConfig loads the persisted AppConfig and overlays any flags the
// user set explicitly on this invocation.
func resolveConfig(cmd *cobra.Command, opts *packOpts) (model.AppConfig, error) {
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
	if opts.splitPolicy != "" {
		cfg.SplitPolicy = opts.splitPolicy
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

// loadItems reads an item list from CSV, XLSX, or a project JSON file,
// dispatching on the file extension.
func loadItems(path string, logger *log.Logger) ([]*model.Item, error) {
	var result importer.ImportResult

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		result = importer.ImportCSV(path)
	case ".xlsx":
		result = importer.ImportExcel(path)
	case ".json":
		p, err := project.LoadProject(path)
		if err != nil {
			return nil, err
		}
		return p.Items, nil
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .csv, .xlsx, or .json)", filepath.Ext(path))
	}

	for _, w := range result.Warnings {
		logger.Warnf("import: %s", w)
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("import failed: %s", strings.Join(result.Errors, "; "))
	}
	return result.Items, nil
}

func printPackSummary(logger *log.Logger, result model.PackResult) {
	for _, bin := range result.Bins {
		logger.Infof("Bin %d (%dx%d): %d items, %.1f%% efficiency",
			bin.Index+1, bin.Width, bin.Height, len(bin.Items), bin.Efficiency()*100)
	}
	logger.Infof("Overall efficiency: %.1f%%", result.TotalEfficiency()*100)
}

func runExports(logger *log.Logger, cfg model.AppConfig, result model.PackResult, stats []engine.BinStats, sourceItems []*model.Item, opts *packOpts) error {
	if opts.pdfOut != "" {
		if err := export.ExportPDF(opts.pdfOut, result, stats, cfg); err != nil {
			return fmt.Errorf("pdf export failed: %w", err)
		}
		logger.Infof("Wrote layout PDF to %s", opts.pdfOut)
	}
	if opts.labelsOut != "" {
		if err := export.ExportLabels(opts.labelsOut, result); err != nil {
			return fmt.Errorf("label export failed: %w", err)
		}
		logger.Infof("Wrote labels to %s", opts.labelsOut)
	}
	if opts.xlsxOut != "" {
		if err := export.ExportXLSX(opts.xlsxOut, result); err != nil {
			return fmt.Errorf("xlsx export failed: %w", err)
		}
		logger.Infof("Wrote cut list to %s", opts.xlsxOut)
	}
	if opts.dxfOut != "" {
		if err := export.ExportDXF(opts.dxfOut, result); err != nil {
			return fmt.Errorf("dxf export failed: %w", err)
		}
		logger.Infof("Wrote DXF drawing to %s", opts.dxfOut)
	}
	if opts.projectOut != "" {
		p := project.Project{
			Name:   strings.TrimSuffix(filepath.Base(opts.projectOut), filepath.Ext(opts.projectOut)),
			Config: cfg,
			Items:  sourceItems,
			Result: &result,
		}
		if err := project.SaveProject(opts.projectOut, p); err != nil {
			return fmt.Errorf("project save failed: %w", err)
		}
		logger.Infof("Saved project to %s", opts.projectOut)
	}
	if opts.offcuts && len(stats) > 0 {
		path, err := project.DefaultInventoryPath()
		if err != nil {
			return fmt.Errorf("cannot locate inventory: %w", err)
		}
		inv, err := project.LoadInventory(path)
		if err != nil {
			return fmt.Errorf("cannot load inventory: %w", err)
		}
		found := engine.DetectAllOffcuts(stats)
		inv.MergeOffcuts(found)
		if err := project.SaveInventory(path, inv); err != nil {
			return fmt.Errorf("cannot save inventory: %w", err)
		}
		logger.Infof("Added %d offcuts to inventory (%s)", len(found), path)
	}
	return nil
}

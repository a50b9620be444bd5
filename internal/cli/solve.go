package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/planwise/roomplan/internal/config"
	"github.com/planwise/roomplan/internal/export"
	"github.com/planwise/roomplan/internal/project"
	"github.com/planwise/roomplan/internal/solver"
	"github.com/planwise/roomplan/internal/systems"
)

// solveFormats lists the export formats the solve command understands.
var solveFormats = []string{"json", "dxf", "pdf", "labels", "boq"}

type solveOptions struct {
	output  string
	formats string
}

// newSolveCmd creates the solve command: load a YAML request, run the
// placement pipeline and write the selected exports.
func newSolveCmd() *cobra.Command {
	opts := solveOptions{formats: "json"}

	cmd := &cobra.Command{
		Use:   "solve <request.yaml>",
		Short: "Compute a furniture layout for a room request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (defaults to the request file's directory)")
	cmd.Flags().StringVarP(&opts.formats, "formats", "f", opts.formats, "comma-separated formats: json, dxf, pdf, labels, boq, all")
	return cmd
}

func runSolve(cmd *cobra.Command, requestPath string, opts solveOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	formats, err := parseFormats(opts.formats)
	if err != nil {
		return err
	}

	req, err := config.LoadRequest(requestPath)
	if err != nil {
		return err
	}
	room := req.RoomModel()
	logger.Debug("loaded request", "room", fmt.Sprintf("%.0fx%.0f", room.Width, room.Depth), "openings", len(req.Openings))

	prog := newProgress(logger)
	s := solver.New(req.SettingsOrDefault())
	layout, err := s.Solve(room, req.OpeningModels(), req.SelectionOrDefault())
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Placed %d items with %d issues", len(layout.Items), len(layout.Issues)))

	for _, issue := range layout.Issues {
		logger.Warn("placement issue", "item", issue.Kind, "rule", issue.Rule, "detail", issue.Detail)
	}

	plan := systems.Derive(layout)
	logger.Debug("derived systems", "sockets", len(plan.Sockets), "lights", len(plan.Lights), "tv_inches", plan.TVInches)

	outDir := opts.output
	if outDir == "" {
		outDir = filepath.Dir(requestPath)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(requestPath), filepath.Ext(requestPath))

	var layoutPath string
	for _, format := range formats {
		path := filepath.Join(outDir, base+exportSuffix(format))
		var err error
		switch format {
		case "json":
			err = project.SaveLayout(path, layout)
			layoutPath = path
		case "dxf":
			err = export.ExportDXF(path, *layout)
		case "pdf":
			err = export.ExportPDF(path, *layout)
		case "labels":
			err = export.ExportLabels(path, *layout)
		case "boq":
			err = export.ExportBOQ(path, *layout, plan)
		}
		if err != nil {
			return fmt.Errorf("failed to export %s: %w", format, err)
		}
		logger.Info("wrote " + path)
	}

	if layoutPath != "" {
		rememberLayout(logger, layoutPath)
	}
	return nil
}

// rememberLayout records the saved layout in the recent-layouts list.
// Failures only cost the recents entry, so they are logged and ignored.
func rememberLayout(logger *log.Logger, path string) {
	cfgPath := project.DefaultConfigPath()
	cfg, err := project.LoadAppConfig(cfgPath)
	if err != nil {
		logger.Debug("could not load app config", "err", err)
		return
	}
	cfg.AddRecentLayout(path)
	if err := project.SaveAppConfig(cfgPath, cfg); err != nil {
		logger.Debug("could not save app config", "err", err)
	}
}

// parseFormats expands and validates the --formats flag value.
func parseFormats(s string) ([]string, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return solveFormats, nil
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		valid := false
		for _, known := range solveFormats {
			if f == known {
				valid = true
				break
			}
		}
		if !valid {
			return nil, fmt.Errorf("unknown format %q (valid: %s, all)", f, strings.Join(solveFormats, ", "))
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no output formats selected")
	}
	return out, nil
}

// exportSuffix returns the file suffix for an export format.
func exportSuffix(format string) string {
	switch format {
	case "json":
		return ".layout.json"
	case "labels":
		return ".labels.pdf"
	case "boq":
		return ".boq.xlsx"
	default:
		return "." + format
	}
}

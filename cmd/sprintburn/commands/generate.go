package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sprintburn/sprintburn/internal/burndown"
	"github.com/sprintburn/sprintburn/internal/chart"
	"github.com/sprintburn/sprintburn/internal/config"
	"github.com/sprintburn/sprintburn/internal/report"
	"github.com/sprintburn/sprintburn/internal/sprint"
)

const (
	generateCmdUse   = "generate [sprint-files...]"
	generateCmdShort = "Render burndown charts and status tables for sprint files"

	defaultSprintsDir = "dev/sprints"
	sprintFileGlob    = "sprint-*.yaml"

	outputDirPerm  = 0o750
	outputFilePerm = 0o600

	suffixSVGChart  = "-burndown.svg"
	suffixHTMLChart = "-burndown.html"
	suffixMarkdown  = "-status.md"
	suffixPDF       = "-status.pdf"
)

// ErrNoSprintFiles is returned when neither file arguments nor --all
// selected any sprint files.
var ErrNoSprintFiles = errors.New("no sprint files specified (use --all or provide file paths)")

// ErrSprintsDirNotFound is returned when --all points at a missing directory.
var ErrSprintsDirNotFound = errors.New("sprints directory not found")

// ErrAllSprintsFailed is returned when every selected sprint file failed to
// process. Individual failures only skip the affected sprint.
var ErrAllSprintsFailed = errors.New("all sprint files failed to process")

type generateOptions struct {
	all        bool
	sprintsDir string
	outputDir  string
	format     string
	toStdout   bool
	configPath string
}

// NewGenerateCommand creates the generate subcommand.
func NewGenerateCommand() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   generateCmdUse,
		Short: generateCmdShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.all, "all", false, "process every sprint file in the sprints directory")
	cmd.Flags().StringVar(&opts.sprintsDir, "sprints-dir", defaultSprintsDir, "directory searched by --all")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "output directory for generated files")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg, md, html, pdf, or all")
	cmd.Flags().BoolVar(&opts.toStdout, "stdout", false, "print to stdout instead of files")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to config file")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, opts generateOptions) error {
	logger := newLogger(cmd)

	cfg, cfgErr := config.Load(opts.configPath)
	if cfgErr != nil {
		return cfgErr
	}

	format := opts.format
	if format == "" {
		format = cfg.Output.Format
	}

	formats, formatsErr := expandFormats(format)
	if formatsErr != nil {
		return formatsErr
	}

	outputDir := opts.outputDir
	if outputDir == "" {
		outputDir = cfg.Output.Dir
	}

	files, filesErr := resolveFiles(args, opts)
	if filesErr != nil {
		return filesErr
	}

	if len(files) == 0 {
		return ErrNoSprintFiles
	}

	if !opts.toStdout {
		mkErr := os.MkdirAll(outputDir, outputDirPerm)
		if mkErr != nil {
			return fmt.Errorf("create output dir: %w", mkErr)
		}
	}

	gen := generator{
		canvas:    cfg.Chart.Canvas(),
		formats:   formats,
		outputDir: outputDir,
		toStdout:  opts.toStdout,
		stdout:    cmd.OutOrStdout(),
		reference: time.Now(),
		logger:    logger,
	}

	failed := 0

	for _, path := range files {
		processErr := gen.processFile(path)
		if processErr != nil {
			// A bad sprint file never aborts the batch.
			logger.Error("skipping sprint file", "file", path, "err", processErr)

			failed++

			continue
		}
	}

	if failed == len(files) {
		return ErrAllSprintsFailed
	}

	return nil
}

func resolveFiles(args []string, opts generateOptions) ([]string, error) {
	if !opts.all {
		return args, nil
	}

	info, statErr := os.Stat(opts.sprintsDir)
	if statErr != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrSprintsDirNotFound, opts.sprintsDir)
	}

	files, globErr := filepath.Glob(filepath.Join(opts.sprintsDir, sprintFileGlob))
	if globErr != nil {
		return nil, fmt.Errorf("glob sprint files: %w", globErr)
	}

	slices.Sort(files)

	return files, nil
}

// expandFormats resolves a format selector into the list of concrete
// formats to render.
func expandFormats(format string) ([]string, error) {
	switch format {
	case config.FormatAll:
		return []string{config.FormatSVG, config.FormatMarkdown, config.FormatHTML, config.FormatPDF}, nil
	case config.FormatSVG, config.FormatMarkdown, config.FormatHTML, config.FormatPDF:
		return []string{format}, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrBadFormat, format)
	}
}

// generator renders all requested artifacts for one sprint file.
type generator struct {
	canvas    chart.Canvas
	formats   []string
	outputDir string
	toStdout  bool
	stdout    io.Writer
	reference time.Time
	logger    *slog.Logger
}

func (g generator) processFile(path string) error {
	s, loadErr := sprint.Load(path)
	if loadErr != nil {
		return loadErr
	}

	ideal := burndown.Ideal(s)
	actual := burndown.Actual(s)

	g.reportUnaccounted(s, actual)

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	for _, format := range g.formats {
		renderErr := g.renderFormat(format, stem, s, ideal, actual)
		if renderErr != nil {
			return renderErr
		}
	}

	return nil
}

// reportUnaccounted surfaces completed points whose dates never matched a
// sprint day. The curve intentionally ignores them; the log makes the data
// problem visible.
func (g generator) reportUnaccounted(s *sprint.Sprint, actual []burndown.Point) {
	if len(actual) == 0 {
		return
	}

	burned := float64(s.TotalPoints()) - actual[len(actual)-1].Remaining

	unaccounted := float64(s.CompletedPoints()) - burned
	if unaccounted > 0 {
		g.logger.Debug("completed points never matched a sprint day",
			"sprint", s.ID, "points", unaccounted)
	}
}

func (g generator) renderFormat(format, stem string, s *sprint.Sprint, ideal, actual []burndown.Point) error {
	var (
		buf    bytes.Buffer
		suffix string
		err    error
	)

	switch format {
	case config.FormatSVG:
		suffix = suffixSVGChart
		err = chart.NewSVGRenderer(g.canvas).Render(&buf, s, ideal, actual, g.reference)
	case config.FormatMarkdown:
		suffix = suffixMarkdown
		err = report.MarkdownRenderer{}.Render(&buf, s, ideal, actual, g.reference)
	case config.FormatHTML:
		suffix = suffixHTMLChart
		err = chart.RenderHTML(&buf, s, ideal, actual, g.reference)
	case config.FormatPDF:
		suffix = suffixPDF
		err = report.PDFRenderer{}.Render(&buf, s, ideal, actual, g.reference)
	default:
		return fmt.Errorf("%w: %q", config.ErrBadFormat, format)
	}

	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	if g.toStdout {
		_, writeErr := g.stdout.Write(buf.Bytes())
		if writeErr != nil {
			return fmt.Errorf("write %s to stdout: %w", format, writeErr)
		}

		return nil
	}

	outPath := filepath.Join(g.outputDir, stem+suffix)

	writeErr := os.WriteFile(outPath, buf.Bytes(), outputFilePerm)
	if writeErr != nil {
		return fmt.Errorf("write %s: %w", outPath, writeErr)
	}

	fmt.Fprintf(g.stdout, "Generated: %s\n", outPath)

	return nil
}

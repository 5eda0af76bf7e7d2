// Package preprocess compresses source images for the site and keeps
// works.json in step with them.
package preprocess

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/nfrund/folio/internal/datastore"
	"github.com/nfrund/folio/internal/domain"
	"github.com/spf13/afero"
)

// Mode selects which source images are processed.
type Mode string

const (
	// ModeNew processes only images whose output is not listed in works.json yet.
	ModeNew Mode = "new"
	// ModeAll reprocesses every image and rebuilds the list.
	ModeAll Mode = "all"
)

// OutputExt is the extension of every compressed image.
const OutputExt = ".jpg"

// SupportedExts are the source image extensions, lower case.
var SupportedExts = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp"}

// Options configures a run.
type Options struct {
	SrcDir    string
	ImagesDir string
	DataDir   string
	MaxWidth  int
	MaxHeight int
	Quality   int
	Mode      Mode
	Category  domain.Category
	Price     float64
}

// DefaultOptions returns the standard directories and compression settings.
func DefaultOptions() Options {
	return Options{
		SrcDir:    "src",
		ImagesDir: "images",
		DataDir:   "data",
		MaxWidth:  1920,
		MaxHeight: 1080,
		Quality:   85,
		Mode:      ModeNew,
		Category:  domain.CategoryPhotography,
	}
}

// FileResult is the outcome for one source image.
type FileResult struct {
	Source         string
	Output         string
	OriginalSize   int64
	CompressedSize int64
	Err            error
}

// Saved returns the size reduction in percent.
func (r FileResult) Saved() float64 {
	if r.OriginalSize == 0 {
		return 0
	}
	return (1 - float64(r.CompressedSize)/float64(r.OriginalSize)) * 100
}

// Report summarizes a run.
type Report struct {
	Found     int
	Skipped   []string
	Files     []FileResult
	Processed int
	Total     int
	TotalSize int64
}

// Summary renders the closing statistics line.
func (r *Report) Summary() string {
	return fmt.Sprintf("processed %d of %d images, %d works listed, %s on disk",
		r.Processed, r.Found, r.Total, humanize.Bytes(uint64(r.TotalSize)))
}

// Processor runs the preprocessing pipeline over a filesystem.
type Processor struct {
	fs     afero.Fs
	opts   Options
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Processor.
func New(fs afero.Fs, opts Options, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{fs: fs, opts: opts, logger: logger, now: time.Now}
}

// OutputName maps a source filename to its compressed image name.
func OutputName(source string) string {
	return strings.TrimSuffix(source, filepath.Ext(source)) + OutputExt
}

func supported(name string) bool {
	return slices.Contains(SupportedExts, strings.ToLower(filepath.Ext(name)))
}

// scan lists supported source images in name order.
func (p *Processor) scan() ([]string, error) {
	entries, err := afero.ReadDir(p.fs, p.opts.SrcDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && supported(e.Name()) {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

func (p *Processor) worksPath() string {
	return filepath.Join(p.opts.DataDir, datastore.WorksFile)
}

// loadWorks reads works.json; a missing file is an empty list.
func (p *Processor) loadWorks() ([]domain.Work, error) {
	data, err := afero.ReadFile(p.fs, p.worksPath())
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.Work{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p.worksPath(), err)
	}
	var file domain.WorksFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", p.worksPath(), err)
	}
	if file.Works == nil {
		file.Works = []domain.Work{}
	}
	return file.Works, nil
}

// saveWorks writes works.json sorted by filename, newest name first, with a
// two-space indent and unescaped non-ASCII text.
func (p *Processor) saveWorks(works []domain.Work) error {
	slices.SortStableFunc(works, func(a, b domain.Work) int {
		return strings.Compare(b.Filename, a.Filename)
	})

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(domain.WorksFile{Works: works}); err != nil {
		return fmt.Errorf("failed to encode works: %w", err)
	}
	if err := p.fs.MkdirAll(p.opts.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return afero.WriteFile(p.fs, p.worksPath(), buf.Bytes(), 0o644)
}

func nextID(works []domain.Work) int {
	id := 0
	for _, w := range works {
		id = max(id, w.ID)
	}
	return id + 1
}

// compress converts one source image into the images directory.
func (p *Processor) compress(source string) FileResult {
	res := FileResult{Source: source, Output: OutputName(source)}
	srcPath := filepath.Join(p.opts.SrcDir, source)
	dstPath := filepath.Join(p.opts.ImagesDir, res.Output)

	in, err := p.fs.Open(srcPath)
	if err != nil {
		res.Err = fmt.Errorf("failed to open %s: %w", srcPath, err)
		return res
	}
	defer in.Close()
	if fi, err := in.Stat(); err == nil {
		res.OriginalSize = fi.Size()
	}

	var out bytes.Buffer
	if _, err := Compress(in, &out, p.opts.MaxWidth, p.opts.MaxHeight, p.opts.Quality); err != nil {
		res.Err = fmt.Errorf("%s: %w", source, err)
		return res
	}
	if err := afero.WriteFile(p.fs, dstPath, out.Bytes(), 0o644); err != nil {
		res.Err = fmt.Errorf("failed to write %s: %w", dstPath, err)
		return res
	}
	res.CompressedSize = int64(out.Len())
	return res
}

// Run compresses the selected images and merges them into works.json. Images
// that fail to convert are reported and left out of the list.
func (p *Processor) Run(ctx context.Context) (*Report, error) {
	for _, dir := range []string{p.opts.SrcDir, p.opts.ImagesDir, p.opts.DataDir} {
		if err := p.fs.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	sources, err := p.scan()
	if err != nil {
		return nil, err
	}
	report := &Report{Found: len(sources)}
	if len(sources) == 0 {
		p.logger.Warn("No source images found", "dir", p.opts.SrcDir)
	}

	works, err := p.loadWorks()
	if err != nil {
		return nil, err
	}
	if p.opts.Mode == ModeAll {
		works = []domain.Work{}
	}
	listed := make(map[string]bool, len(works))
	for _, w := range works {
		listed[w.Filename] = true
	}

	date := p.now().Format("2006-01")
	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if listed[OutputName(source)] {
			report.Skipped = append(report.Skipped, source)
			continue
		}

		res := p.compress(source)
		report.Files = append(report.Files, res)
		if res.Err != nil {
			p.logger.Error("Failed to compress image", "source", source, "error", res.Err)
			continue
		}
		p.logger.Info("Compressed image",
			"source", source,
			"from", humanize.Bytes(uint64(res.OriginalSize)),
			"to", humanize.Bytes(uint64(res.CompressedSize)),
			"saved", fmt.Sprintf("%.1f%%", res.Saved()),
		)

		works = append(works, domain.Work{
			ID:       nextID(works),
			Filename: res.Output,
			Title:    strings.TrimSuffix(source, filepath.Ext(source)),
			Category: p.opts.Category,
			Date:     date,
			Price:    domain.Price(p.opts.Price),
		})
		listed[res.Output] = true
		report.Processed++
	}

	if report.Processed > 0 || p.opts.Mode == ModeAll {
		if err := p.saveWorks(works); err != nil {
			return nil, err
		}
	}

	report.Total = len(works)
	for _, w := range works {
		if fi, err := p.fs.Stat(filepath.Join(p.opts.ImagesDir, w.Filename)); err == nil {
			report.TotalSize += fi.Size()
		}
	}
	return report, nil
}

package cmd

import (
	"fmt"
	"io"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/preprocess"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var preprocessOpts = preprocess.DefaultOptions()

var (
	preprocessMode     string
	preprocessCategory string
	preprocessWatch    bool
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess",
	Short: "Compress source images and update works.json",
	Long: `Scans the source directory for .jpg .jpeg .png .gif .bmp .webp files,
writes a compressed JPEG for each into the images directory and lists it in
works.json with default metadata (title from the file name, current month).

Modes:
  new   process only images not listed in works.json yet (default)
  all   reprocess every image and rebuild works.json

Examples:
  folio preprocess
  folio preprocess --mode all --category painting
  folio preprocess --watch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger := setup()
		opts := preprocessOpts
		if !cmd.Flags().Changed("images") {
			opts.ImagesDir = cfg.GetImagesDir()
		}
		if !cmd.Flags().Changed("data") {
			opts.DataDir = cfg.GetDataDir()
		}

		switch preprocess.Mode(preprocessMode) {
		case preprocess.ModeNew, preprocess.ModeAll:
			opts.Mode = preprocess.Mode(preprocessMode)
		default:
			return fmt.Errorf("unknown mode %q (want new or all)", preprocessMode)
		}

		opts.Category = domain.Category(preprocessCategory)
		if !slices.Contains(domain.Categories, opts.Category) {
			return fmt.Errorf("unknown category %q", preprocessCategory)
		}

		processor := preprocess.New(afero.NewOsFs(), opts, logger)
		out := cmd.OutOrStdout()
		if preprocessWatch {
			if opts.Mode != preprocess.ModeNew {
				return fmt.Errorf("--watch only works with --mode new")
			}
			return processor.Watch(cmd.Context(), preprocess.DefaultSettle, func(report *preprocess.Report, err error) {
				if err != nil {
					fmt.Fprintf(out, "❌ %v\n", err)
					return
				}
				printReport(out, report)
			})
		}

		report, err := processor.Run(cmd.Context())
		if err != nil {
			return err
		}
		printReport(out, report)
		return nil
	},
}

func printReport(out io.Writer, report *preprocess.Report) {
	for _, f := range report.Files {
		if f.Err != nil {
			fmt.Fprintf(out, "❌ %s: %v\n", f.Source, f.Err)
			continue
		}
		fmt.Fprintf(out, "✅ %s -> %s (%s -> %s, saved %.1f%%)\n", f.Source, f.Output,
			humanize.Bytes(uint64(f.OriginalSize)), humanize.Bytes(uint64(f.CompressedSize)), f.Saved())
	}
	if len(report.Skipped) > 0 {
		fmt.Fprintf(out, "⚠️  %d already listed, skipped\n", len(report.Skipped))
	}
	fmt.Fprintln(out, report.Summary())
}

func init() {
	f := preprocessCmd.Flags()
	f.StringVar(&preprocessOpts.SrcDir, "src", preprocessOpts.SrcDir, "source image directory")
	f.StringVar(&preprocessOpts.ImagesDir, "images", preprocessOpts.ImagesDir, "output image directory (default IMAGES_DIR)")
	f.StringVar(&preprocessOpts.DataDir, "data", preprocessOpts.DataDir, "data directory holding works.json (default DATA_DIR)")
	f.IntVar(&preprocessOpts.MaxWidth, "max-width", preprocessOpts.MaxWidth, "maximum output width")
	f.IntVar(&preprocessOpts.MaxHeight, "max-height", preprocessOpts.MaxHeight, "maximum output height")
	f.IntVar(&preprocessOpts.Quality, "quality", preprocessOpts.Quality, "JPEG quality (1-100)")
	f.Float64Var(&preprocessOpts.Price, "price", 0, "price for new works (0 means on request)")
	f.StringVar(&preprocessMode, "mode", string(preprocess.ModeNew), "new or all")
	f.StringVar(&preprocessCategory, "category", string(domain.CategoryPhotography), "category for new works")
	f.BoolVar(&preprocessWatch, "watch", false, "keep running and process new images as they are added")
	rootCmd.AddCommand(preprocessCmd)
}

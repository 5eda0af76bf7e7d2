package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/datastore"
	"github.com/nfrund/folio/internal/domain"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the site data and report what the pages will show",
	Long: `Loads works.json and profile.json the same way the server does and
prints per-category counts, invalid works and whether the default profile is
in use. Exits non-zero when works.json cannot be loaded or a work is invalid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger := setup()
		source := datastore.NewSource(afero.NewOsFs(), cfg.GetDataDir(), cfg.GetDataBaseURL(), cfg.GetHTTPTimeout())
		return validateData(cmd.Context(), cmd.OutOrStdout(), datastore.NewLoader(source, logger), cfg)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateData(ctx context.Context, out io.Writer, loader *datastore.Loader, cfg config.Provider) error {
	store, ok := loader.LoadWithStatus(ctx)
	if !ok {
		return errors.New("works.json could not be loaded")
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tWORKS")
	for _, cat := range append([]domain.Category{domain.CategoryAll}, domain.Categories...) {
		fmt.Fprintf(w, "%s\t%d\n", cat, len(store.WorksByCategory(cat)))
	}
	w.Flush()

	invalid := 0
	for _, work := range store.Works() {
		if err := work.Validate(); err != nil {
			invalid++
			fmt.Fprintf(out, "❌ work %d (%s): %v\n", work.ID, work.Filename, err)
		}
	}

	fmt.Fprintf(out, "featured on home: %d\n", len(store.FeaturedWorks(cfg.GetFeaturedCount())))
	profile := store.Profile()
	if store.UsingDefaultProfile() {
		fmt.Fprintln(out, "⚠️  profile.json missing or malformed, using the default profile")
	} else {
		fmt.Fprintf(out, "profile: %s\n", profile.Name)
	}
	switch {
	case !profile.EmailJS.WidgetEnabled():
		fmt.Fprintln(out, "⚠️  EmailJS public key not set, the contact form is disabled")
	case !profile.EmailJS.CanSend():
		fmt.Fprintln(out, "⚠️  EmailJS service id not set, messages cannot be sent")
	}

	if invalid > 0 {
		return fmt.Errorf("%d invalid works", invalid)
	}
	return nil
}

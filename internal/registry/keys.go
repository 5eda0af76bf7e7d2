package registry

import (
	"log/slog"

	"github.com/nfrund/folio/internal/datastore"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/format"
	"github.com/nfrund/folio/internal/iplookup"
	"github.com/spf13/afero"
)

// Service keys for dependency injection. Using constants prevents typos.
const (
	LoggerKey    Key[*slog.Logger]      = "core.Logger"
	FsKey        Key[afero.Fs]          = "core.Fs"
	LoaderKey    Key[*datastore.Loader] = "datastore.Loader"
	FormatterKey Key[*format.Formatter] = "format.Formatter"
	MailerKey    Key[domain.Mailer]     = "email.Mailer"
	IPLookupKey  Key[*iplookup.Client]  = "iplookup.Client"
)

package datastore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/spf13/afero"
)

const (
	WorksFile   = "works.json"
	ProfileFile = "profile.json"
)

// Source provides the raw JSON of the two data resources.
type Source interface {
	Works(ctx context.Context) ([]byte, error)
	Profile(ctx context.Context) ([]byte, error)
}

// FileSource reads the resources from a directory on an afero filesystem.
type FileSource struct {
	fs  afero.Fs
	dir string
}

// NewFileSource creates a FileSource reading dir on fs.
func NewFileSource(fs afero.Fs, dir string) *FileSource {
	return &FileSource{fs: fs, dir: dir}
}

func (s *FileSource) Works(ctx context.Context) ([]byte, error) {
	return s.read(ctx, WorksFile)
}

func (s *FileSource) Profile(ctx context.Context) ([]byte, error) {
	return s.read(ctx, ProfileFile)
}

func (s *FileSource) read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, path.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// HTTPSource fetches the resources from <base>/data/<name>.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates an HTTPSource. A zero timeout leaves the client
// bounded only by the request context.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Works(ctx context.Context) ([]byte, error) {
	return s.fetch(ctx, WorksFile)
}

func (s *HTTPSource) Profile(ctx context.Context) ([]byte, error) {
	return s.fetch(ctx, ProfileFile)
}

func (s *HTTPSource) fetch(ctx context.Context, name string) ([]byte, error) {
	target, err := url.JoinPath(s.baseURL, "data", name)
	if err != nil {
		return nil, fmt.Errorf("failed to build url for %s: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", name, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s: %s", name, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s body: %w", name, err)
	}
	return data, nil
}

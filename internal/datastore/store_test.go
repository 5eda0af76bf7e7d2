package datastore_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/nfrund/folio/internal/datastore"
	"github.com/nfrund/folio/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const worksJSON = `{
  "works": [
    {"id": 1, "filename": "sea.jpg", "title": "Sea", "category": "photography", "description": "Morning tide", "date": "2024-05", "price": 1500},
    {"id": 2, "filename": "field.jpg", "title": "Field", "category": "painting", "description": "", "date": "2024-06", "price": null},
    {"id": 3, "filename": "city.jpg", "title": "City", "category": "photography", "description": "", "date": "2024-07", "price": 0},
    {"id": 4, "filename": "lake.jpg", "title": "Lake", "category": "painting", "description": "Still water", "date": "2024-08", "price": 3200}
  ]
}`

const profileJSON = `{
  "name": "Lin Qiu",
  "title": "Landscape photographer",
  "email": "lin@example.com",
  "social": {"weibo": {"enabled": true, "url": "https://weibo.com/lin"}},
  "emailjs": {"publicKey": "pk", "serviceId": "svc", "adminTemplateId": "tpl"}
}`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func memSource(t *testing.T, files map[string]string) *datastore.FileSource {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, "data/"+name, []byte(content), 0o644))
	}
	return datastore.NewFileSource(fs, "data")
}

func initializedStore(t *testing.T) *datastore.Store {
	t.Helper()
	store := datastore.NewStore(memSource(t, map[string]string{
		datastore.WorksFile:   worksJSON,
		datastore.ProfileFile: profileJSON,
	}), quietLogger())
	require.True(t, store.Initialize(context.Background()))
	return store
}

func ids(works []domain.Work) []int {
	out := make([]int, 0, len(works))
	for _, w := range works {
		out = append(out, w.ID)
	}
	return out
}

func TestStore_Initialize(t *testing.T) {
	t.Run("loads works and profile", func(t *testing.T) {
		store := initializedStore(t)

		assert.Len(t, store.Works(), 4)
		assert.Equal(t, "Lin Qiu", store.Profile().Name)
		assert.False(t, store.UsingDefaultProfile())
	})

	t.Run("missing works file leaves empty list and default profile", func(t *testing.T) {
		store := datastore.NewStore(memSource(t, map[string]string{
			datastore.ProfileFile: profileJSON,
		}), quietLogger())

		ok := store.Initialize(context.Background())

		assert.False(t, ok)
		assert.NotNil(t, store.Works())
		assert.Empty(t, store.Works())
		assert.Equal(t, datastore.DefaultProfile(), store.Profile())
	})

	t.Run("malformed works file fails initialization", func(t *testing.T) {
		store := datastore.NewStore(memSource(t, map[string]string{
			datastore.WorksFile:   `{"works": [`,
			datastore.ProfileFile: profileJSON,
		}), quietLogger())

		assert.False(t, store.Initialize(context.Background()))
		assert.Empty(t, store.Works())
		assert.True(t, store.UsingDefaultProfile())
	})

	t.Run("missing profile still succeeds", func(t *testing.T) {
		store := datastore.NewStore(memSource(t, map[string]string{
			datastore.WorksFile: worksJSON,
		}), quietLogger())

		ok := store.Initialize(context.Background())

		assert.True(t, ok)
		assert.Len(t, store.Works(), 4)
		assert.Equal(t, datastore.DefaultProfile(), store.Profile())
		assert.True(t, store.UsingDefaultProfile())
	})

	t.Run("malformed profile falls back to default", func(t *testing.T) {
		store := datastore.NewStore(memSource(t, map[string]string{
			datastore.WorksFile:   worksJSON,
			datastore.ProfileFile: `not json`,
		}), quietLogger())

		assert.True(t, store.Initialize(context.Background()))
		assert.Equal(t, datastore.DefaultProfile().Name, store.Profile().Name)
	})

	t.Run("null works list is empty", func(t *testing.T) {
		store := datastore.NewStore(memSource(t, map[string]string{
			datastore.WorksFile: `{"works": null}`,
		}), quietLogger())

		assert.True(t, store.Initialize(context.Background()))
		assert.NotNil(t, store.Works())
		assert.Empty(t, store.Works())
	})
}

func TestStore_Accessors(t *testing.T) {
	store := initializedStore(t)

	t.Run("featured works are a prefix in source order", func(t *testing.T) {
		featured := store.FeaturedWorks(1)
		require.Len(t, featured, 1)
		assert.Equal(t, 1, featured[0].ID)

		assert.Empty(t, store.FeaturedWorks(0))
		assert.Empty(t, store.FeaturedWorks(-1))
		assert.Len(t, store.FeaturedWorks(10), 4)
	})

	t.Run("all is a pass-through", func(t *testing.T) {
		if diff := cmp.Diff(store.Works(), store.WorksByCategory(domain.CategoryAll)); diff != "" {
			t.Errorf("WorksByCategory(all) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("category filter keeps only matching works", func(t *testing.T) {
		assert.Equal(t, []int{2, 4}, ids(store.WorksByCategory(domain.CategoryPainting)))
		assert.Equal(t, []int{1, 3}, ids(store.WorksByCategory(domain.CategoryPhotography)))
		assert.Empty(t, store.WorksByCategory("sculpture"))
	})

	t.Run("lookup by id and filename", func(t *testing.T) {
		w, ok := store.WorkByID(4)
		require.True(t, ok)
		assert.Equal(t, "lake.jpg", w.Filename)

		w, ok = store.WorkByFilename("field.jpg")
		require.True(t, ok)
		assert.Equal(t, 2, w.ID)
		assert.Nil(t, w.Price)

		_, ok = store.WorkByID(99)
		assert.False(t, ok)
		_, ok = store.WorkByFilename("missing.jpg")
		assert.False(t, ok)
	})
}

func TestStore_BeforeInitialize(t *testing.T) {
	store := datastore.NewStore(memSource(t, nil), quietLogger())

	assert.Empty(t, store.Works())
	assert.Empty(t, store.FeaturedWorks(3))
	assert.Equal(t, datastore.DefaultProfile(), store.Profile())
}

func TestDefaultProfile_IsACopy(t *testing.T) {
	p := datastore.DefaultProfile()
	p.Social["weibo"] = domain.SocialLink{Enabled: true}

	assert.False(t, datastore.DefaultProfile().Social["weibo"].Enabled)
}

func TestHTTPSource(t *testing.T) {
	newServer := func(profileStatus int) *httptest.Server {
		mux := http.NewServeMux()
		mux.HandleFunc("/data/works.json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, worksJSON)
		})
		mux.HandleFunc("/data/profile.json", func(w http.ResponseWriter, r *http.Request) {
			if profileStatus != http.StatusOK {
				http.Error(w, "nope", profileStatus)
				return
			}
			_, _ = io.WriteString(w, profileJSON)
		})
		return httptest.NewServer(mux)
	}

	t.Run("fetches both resources", func(t *testing.T) {
		srv := newServer(http.StatusOK)
		defer srv.Close()

		store := datastore.NewStore(datastore.NewHTTPSource(srv.URL, time.Second), quietLogger())

		assert.True(t, store.Initialize(context.Background()))
		assert.Len(t, store.Works(), 4)
		assert.Equal(t, "Lin Qiu", store.Profile().Name)
	})

	t.Run("non-2xx profile uses default", func(t *testing.T) {
		srv := newServer(http.StatusNotFound)
		defer srv.Close()

		store := datastore.NewStore(datastore.NewHTTPSource(srv.URL, time.Second), quietLogger())

		assert.True(t, store.Initialize(context.Background()))
		assert.Len(t, store.Works(), 4)
		assert.True(t, store.UsingDefaultProfile())
	})

	t.Run("works 404 fails initialization", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		store := datastore.NewStore(datastore.NewHTTPSource(srv.URL, time.Second), quietLogger())

		assert.False(t, store.Initialize(context.Background()))
		assert.Empty(t, store.Works())
		assert.Equal(t, datastore.DefaultProfile(), store.Profile())
	})

	t.Run("profile is fetched only after works resolve", func(t *testing.T) {
		var order []string
		mux := http.NewServeMux()
		mux.HandleFunc("/data/works.json", func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "works")
			_, _ = io.WriteString(w, worksJSON)
		})
		mux.HandleFunc("/data/profile.json", func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "profile")
			_, _ = io.WriteString(w, profileJSON)
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		store := datastore.NewStore(datastore.NewHTTPSource(srv.URL, time.Second), quietLogger())
		require.True(t, store.Initialize(context.Background()))

		assert.Equal(t, []string{"works", "profile"}, order)
	})
}

func TestLoader(t *testing.T) {
	loader := datastore.NewLoader(memSource(t, map[string]string{
		datastore.WorksFile: worksJSON,
	}), quietLogger())

	first := loader.Load(context.Background())
	second, ok := loader.LoadWithStatus(context.Background())

	assert.True(t, ok)
	assert.NotSame(t, first, second, "each render gets its own store")
	assert.Len(t, second.Works(), 4)
}

func TestNewSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.IsType(t, &datastore.FileSource{}, datastore.NewSource(fs, "data", "", time.Second))
	assert.IsType(t, &datastore.HTTPSource{}, datastore.NewSource(fs, "data", "https://cdn.example.com", time.Second))
}

package partials

import (
	"bytes"
	"context"
	"testing"

	"github.com/nfrund/folio/internal/view"
	"github.com/nfrund/folio/internal/view/dto/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToasts(t *testing.T) {
	var buf bytes.Buffer
	flash := view.FlashData{Success: []string{"Sent"}, Error: []string{"<b>bad</b>"}}

	require.NoError(t, Toasts(flash, ToastTitles{Success: "Success", Error: "Error"}).Render(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, `<div class="toast success"`)
	assert.Contains(t, out, `<div class="toast error"`)
	assert.Contains(t, out, "&lt;b&gt;bad&lt;/b&gt;")
}

func TestWorkGrid(t *testing.T) {
	t.Run("empty state", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WorkGrid("gallery-grid", nil, "No works").Render(&buf))
		assert.Contains(t, buf.String(), "No works")
		assert.Contains(t, buf.String(), `id="gallery-grid"`)
	})

	t.Run("items link to the detail fragment", func(t *testing.T) {
		var buf bytes.Buffer
		cards := []pages.WorkCard{{Filename: "old town.jpg", Title: "Old Town", ImageURL: "/images/old%20town.jpg", Caption: "Photography"}}

		require.NoError(t, WorkGrid("featured-works", cards, "").Render(&buf))

		out := buf.String()
		assert.Contains(t, out, `hx-get="/gallery/works/old%20town.jpg"`)
		assert.Contains(t, out, `hx-target="#modal-root"`)
		assert.Contains(t, out, "Old Town")
	})
}

func TestWorkModal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WorkModal(pages.WorkDetail{Title: "Lake", Category: "Painting", Date: "2024-08", Price: "¥3,200", Description: "Still water"}).Render(&buf))

	out := buf.String()
	assert.Contains(t, out, `id="work-modal"`)
	assert.Contains(t, out, "¥3,200")
	assert.Contains(t, out, "data-modal-close")
}

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gittable/internal/core/domain"
)

func TestRenderCmd_Use(t *testing.T) {
	assert.Equal(t, "render [link]", renderCmd.Use)
}

func TestRenderCmd_RequiresLinkOrHistory(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute(t, "render")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidLink)
}

func TestRenderCmd_DefaultsToHTML(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, _, err := execute(t, "render", "https://github.com/acme/demo")

	require.NoError(t, err)
	assert.Contains(t, out, "html output")
	assert.Len(t, ts.Render.LastURLs, 3)
}

func TestRenderCmd_UsesGallerySettings(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.Settings.Settings.Gallery = domain.RenderConfig{Columns: 4, Title: "Shots"}

	_, _, err := execute(t, "render", "https://github.com/acme/demo")

	require.NoError(t, err)
	assert.Equal(t, domain.RenderConfig{Columns: 4, Title: "Shots"}, ts.Render.LastConfig)
}

func TestRenderCmd_FlagsOverrideSettings(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.Settings.Settings.Gallery = domain.RenderConfig{Columns: 4, Title: "Shots"}

	_, _, err := execute(t, "render", "-c", "2", "--title", "", "https://github.com/acme/demo")

	require.NoError(t, err)
	assert.Equal(t, domain.RenderConfig{Columns: 2, Title: ""}, ts.Render.LastConfig)
}

func TestRenderCmd_FormatIsNormalised(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, _, err := execute(t, "render", "--format", " LINKS ", "https://github.com/acme/demo")

	require.NoError(t, err)
	assert.Contains(t, out, "links output")
}

func TestRenderCmd_FromHistory(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute(t, "render", "--history", "rec-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"https://raw.githubusercontent.com/acme/demo/main/z.png"}, ts.Render.LastURLs)
	assert.Empty(t, ts.History.Recorded, "replaying history does not scan")
}

func TestRenderCmd_UnknownHistory(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute(t, "render", "--history", "nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRenderCmd_Copy(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, errOut, err := execute(t, "render", "--copy", "https://github.com/acme/demo")

	require.NoError(t, err)
	assert.Equal(t, "html output", ts.Actions.Copied)
	assert.Contains(t, errOut, "Copied html for 3 images to the clipboard.")
}

func TestRenderCmd_UnsupportedFormat(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.Render.RenderFunc = func(format domain.OutputFormat, _ []string, _ domain.RenderConfig) (string, error) {
		return "", domain.ErrUnsupportedFormat
	}

	_, _, err := execute(t, "render", "-f", "pdf", "https://github.com/acme/demo")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

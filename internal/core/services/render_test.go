package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gittable/internal/core/domain"
	"github.com/custodia-labs/gittable/internal/renderers"
)

func TestRenderService_Render(t *testing.T) {
	service := NewRenderService(renderers.Defaults())
	urls := []string{"u1", "u2", "u3"}

	links, err := service.Render(domain.FormatLinks, urls, domain.RenderConfig{})
	require.NoError(t, err)
	assert.Equal(t, "u1\nu2\nu3", links)

	html, err := service.Render(domain.FormatHTML, urls, domain.RenderConfig{Columns: 0})
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(html, "<tr>"), "columns are clamped to at least one")
}

func TestRenderService_UnknownFormat(t *testing.T) {
	service := NewRenderService(renderers.Defaults())

	_, err := service.Render("markdown", nil, domain.RenderConfig{})

	assert.True(t, errors.Is(err, domain.ErrUnsupportedFormat))
}

func TestRenderService_Formats(t *testing.T) {
	service := NewRenderService(renderers.Defaults())

	assert.ElementsMatch(t,
		[]domain.OutputFormat{domain.FormatHTML, domain.FormatLinks, domain.FormatPreview},
		service.Formats())
}

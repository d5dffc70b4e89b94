package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gittable/internal/core/domain"
)

func TestActionService_Copy(t *testing.T) {
	clip := &mockClipboard{}
	service := NewActionService(clip, nil)

	require.NoError(t, service.Copy("<table></table>"))
	assert.Equal(t, []string{"<table></table>"}, clip.copied)

	assert.True(t, errors.Is(service.Copy("  "), domain.ErrInvalidInput))
}

func TestActionService_Copy_ClipboardError(t *testing.T) {
	service := NewActionService(&mockClipboard{err: errors.New("no display")}, nil)

	assert.EqualError(t, service.Copy("x"), "no display")
}

func TestActionService_Copy_Unavailable(t *testing.T) {
	service := NewActionService(nil, nil)

	assert.Error(t, service.Copy("x"))
}

func TestActionService_Open(t *testing.T) {
	browser := &mockBrowser{}
	service := NewActionService(nil, browser)

	require.NoError(t, service.Open("https://raw.githubusercontent.com/acme/demo/main/a.png"))
	assert.Equal(t, []string{"https://raw.githubusercontent.com/acme/demo/main/a.png"}, browser.opened)
}

func TestActionService_Open_Blocked(t *testing.T) {
	tests := []string{
		"http://raw.githubusercontent.com/a.png",
		"https://evil.example.com/a.png",
		"file:///etc/passwd",
		"javascript:alert(1)",
	}
	for _, url := range tests {
		t.Run(url, func(t *testing.T) {
			browser := &mockBrowser{}
			service := NewActionService(nil, browser)

			err := service.Open(url)

			assert.True(t, errors.Is(err, domain.ErrBlockedURL))
			assert.Empty(t, browser.opened)
		})
	}
}

func TestPreviewService_Inspect(t *testing.T) {
	url := rawBase + "shots/home.png"
	fetcher := &mockImageFetcher{bodies: map[string][]byte{url: make([]byte, 2048)}}
	service := NewPreviewService(fetcher, &mockDecoder{format: "png", width: 640, height: 480})

	info, err := service.Inspect(context.Background(), url)

	require.NoError(t, err)
	assert.Equal(t, "home.png", info.Filename)
	assert.Equal(t, 2048, info.Bytes)
	assert.Equal(t, "png", info.Format)
	assert.Equal(t, 640, info.Width)
	assert.Equal(t, 480, info.Height)
	assert.True(t, info.Decoded())
}

func TestPreviewService_Inspect_Undecodable(t *testing.T) {
	url := rawBase + "icon.svg"
	service := NewPreviewService(&mockImageFetcher{}, &mockDecoder{err: errors.New("unknown format")})

	info, err := service.Inspect(context.Background(), url)

	require.NoError(t, err)
	assert.Equal(t, "svg", info.Format)
	assert.False(t, info.Decoded())
	assert.Positive(t, info.Bytes)
}

func TestPreviewService_Inspect_Blocked(t *testing.T) {
	fetcher := &mockImageFetcher{}
	service := NewPreviewService(fetcher, nil)

	_, err := service.Inspect(context.Background(), "https://example.org/a.png")

	assert.True(t, errors.Is(err, domain.ErrBlockedURL))
	assert.Empty(t, fetcher.fetched)
}

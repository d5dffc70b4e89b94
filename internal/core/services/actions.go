package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/gittable/internal/core/domain"
	"github.com/custodia-labs/gittable/internal/core/ports/driven"
	"github.com/custodia-labs/gittable/internal/core/ports/driving"
	"github.com/custodia-labs/gittable/internal/netguard"
)

// Ensure ActionService implements the interface.
var _ driving.ActionService = (*ActionService)(nil)

// ActionService provides clipboard and browser actions.
type ActionService struct {
	clipboard driven.Clipboard
	browser   driven.Browser
}

// NewActionService creates a new action service. Either port may be nil.
func NewActionService(clipboard driven.Clipboard, browser driven.Browser) *ActionService {
	return &ActionService{clipboard: clipboard, browser: browser}
}

// Copy places text on the clipboard.
func (s *ActionService) Copy(text string) error {
	if s.clipboard == nil {
		return errors.New("clipboard unavailable")
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: nothing to copy", domain.ErrInvalidInput)
	}
	return s.clipboard.Copy(text)
}

// Open opens url in the default browser. Disallowed URLs fail with
// domain.ErrBlockedURL before anything is launched.
func (s *ActionService) Open(url string) error {
	safe, err := netguard.Check(url)
	if err != nil {
		return err
	}
	if s.browser == nil {
		return errors.New("browser unavailable")
	}
	return s.browser.Open(safe.String())
}

// Ensure PreviewService implements the interface.
var _ driving.PreviewService = (*PreviewService)(nil)

// PreviewService fetches an image and reports its size.
type PreviewService struct {
	fetcher driven.ImageFetcher
	decoder driven.ImageDecoder
}

// NewPreviewService creates a new preview service. decoder may be nil.
func NewPreviewService(fetcher driven.ImageFetcher, decoder driven.ImageDecoder) *PreviewService {
	return &PreviewService{fetcher: fetcher, decoder: decoder}
}

// Inspect downloads url into memory and decodes its dimensions when the
// format is supported. Undecodable images still report their byte size.
func (s *PreviewService) Inspect(ctx context.Context, url string) (domain.ImageInfo, error) {
	safe, err := netguard.Check(url)
	if err != nil {
		return domain.ImageInfo{}, err
	}

	data, err := s.fetcher.Fetch(ctx, safe.String())
	if err != nil {
		return domain.ImageInfo{}, err
	}

	info := domain.ImageInfo{
		URL:      safe.String(),
		Filename: domain.SanitizeFilename(domain.FilenameFromURL(url)),
		Bytes:    len(data),
		Format:   domain.Extension(url),
	}
	if s.decoder != nil {
		if format, w, h, err := s.decoder.Decode(data); err == nil {
			info.Format, info.Width, info.Height = format, w, h
		}
	}
	return info, nil
}

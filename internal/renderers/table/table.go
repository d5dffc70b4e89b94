// Package table renders the curated list as a centred HTML table.
package table

import (
	"fmt"
	"html"
	"strings"

	"github.com/custodia-labs/gittable/internal/core/domain"
	"github.com/custodia-labs/gittable/internal/core/ports/driven"
)

// Cell sizes in pixels.
const (
	PreviewSize   = 50
	GalleryWidth  = 250
	GalleryHeight = 150
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// cellFunc renders the inner markup of one cell. n is 1-based.
type cellFunc func(url string, n int) string

// Renderer is a table layout with a fixed cell body.
type Renderer struct {
	name string
	cell cellFunc
}

// NewPreview returns the renderer whose cells show a numbered placeholder
// thumbnail linking to the real image.
func NewPreview() *Renderer {
	return &Renderer{name: string(domain.FormatPreview), cell: previewCell}
}

// NewGallery returns the renderer whose cells embed the real image.
func NewGallery() *Renderer {
	return &Renderer{name: string(domain.FormatHTML), cell: galleryCell}
}

// Name returns the output format name.
func (r *Renderer) Name() string {
	return r.name
}

// Render lays urls out row-major in cfg.Columns columns.
func (r *Renderer) Render(urls []string, cfg domain.RenderConfig) string {
	return render(urls, cfg, r.cell)
}

// Preview is NewPreview().Render.
func Preview(urls []string, cfg domain.RenderConfig) string {
	return render(urls, cfg, previewCell)
}

// Gallery is NewGallery().Render.
func Gallery(urls []string, cfg domain.RenderConfig) string {
	return render(urls, cfg, galleryCell)
}

func render(urls []string, cfg domain.RenderConfig, cell cellFunc) string {
	cfg = cfg.Clamp()
	cols := cfg.Columns

	out := []string{
		`<div align="center">`,
		`  <table border="0" cellspacing="0" cellpadding="5">`,
	}

	if cfg.HasTitle() {
		out = append(out, fmt.Sprintf(
			`    <tr><td colspan="%d" align="center" style="padding: 6px 0 12px 0;"><strong>%s</strong></td></tr>`,
			cols, html.EscapeString(cfg.Title)))
	}

	for i := 0; i < len(urls); i += cols {
		out = append(out, "    <tr>")
		for c := 0; c < cols; c++ {
			idx := i + c
			if idx >= len(urls) {
				out = append(out, `      <td align="center"></td>`)
				continue
			}
			out = append(out,
				`      <td align="center">`,
				"        "+cell(html.EscapeString(urls[idx]), idx+1),
				"      </td>",
			)
		}
		out = append(out, "    </tr>")
	}

	out = append(out, "  </table>", "</div>")
	return strings.Join(out, "\n")
}

func previewCell(href string, n int) string {
	return fmt.Sprintf(
		`<a href="%s"><span class="git-table__thumb"><img src="%s" width="%d" height="%d" alt="Image %d" style="object-fit: cover;"><span class="git-table__thumbNum">%d</span></span></a>`,
		href, PlaceholderDataURI, PreviewSize, PreviewSize, n, n)
}

func galleryCell(src string, n int) string {
	return fmt.Sprintf(
		`<a href="%s"><img src="%s" width="%d" height="%d" alt="Image %d" style="object-fit: cover;"></a>`,
		src, src, GalleryWidth, GalleryHeight, n)
}

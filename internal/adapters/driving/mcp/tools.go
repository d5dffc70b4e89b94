package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gittable/internal/core/domain"
	"github.com/custodia-labs/gittable/internal/netguard"
)

// ScanInput is the input schema for the scan_images tool.
type ScanInput struct {
	Link string `json:"link" jsonschema:"a GitHub repository, tree or blob URL"`
}

// ScanOutput is the output schema for the scan_images tool.
type ScanOutput struct {
	Owner     string   `json:"owner"`
	Repo      string   `json:"repo"`
	Ref       string   `json:"ref"`
	URLs      []string `json:"urls"`
	Count     int      `json:"count"`
	Truncated bool     `json:"truncated"`
	Notice    string   `json:"notice,omitempty"`
}

// RenderInput is the input schema for the render_gallery tool.
type RenderInput struct {
	URLs    []string `json:"urls,omitempty" jsonschema:"image URLs in display order"`
	Link    string   `json:"link,omitempty" jsonschema:"GitHub link to scan when urls is empty"`
	Format  string   `json:"format,omitempty" jsonschema:"preview, html or links (default html)"`
	Columns int      `json:"columns,omitempty" jsonschema:"cells per row, 1 to 5 (default from settings)"`
	Title   string   `json:"title,omitempty" jsonschema:"optional table title"`
}

// RenderOutput is the output schema for the render_gallery tool.
type RenderOutput struct {
	Format string `json:"format"`
	Count  int    `json:"count"`
	Output string `json:"output"`
}

// DownloadInput is the input schema for the download_images tool.
type DownloadInput struct {
	URLs []string `json:"urls,omitempty" jsonschema:"image URLs to save"`
	Link string   `json:"link,omitempty" jsonschema:"GitHub link to scan when urls is empty"`
	Dir  string   `json:"dir,omitempty" jsonschema:"folder relative to the storage root (default from settings)"`
}

// DownloadOutput is the output schema for the download_images tool.
type DownloadOutput struct {
	OK      int      `json:"ok"`
	Failed  int      `json:"failed"`
	Dir     string   `json:"dir"`
	Paths   []string `json:"paths"`
	Message string   `json:"message"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "scan_images",
		Description: "List raw URLs of the image files under a GitHub repository, folder or file link",
	}, s.handleScan)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "render_gallery",
		Description: "Render image URLs as an HTML table or a plain link list",
	}, s.handleRender)

	if s.ports.Download != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "download_images",
			Description: "Download images from GitHub into a local folder",
		}, s.handleDownload)
	}
}

// handleScan handles the scan_images tool invocation.
func (s *Server) handleScan(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScanInput,
) (*mcp.CallToolResult, ScanOutput, error) {
	result, err := s.ports.Scan.Enumerate(ctx, input.Link, s.settings().GitHubToken)
	if err != nil {
		return nil, ScanOutput{}, err
	}

	output := ScanOutput{
		Owner:     result.Reference.Owner,
		Repo:      result.Reference.Repo,
		Ref:       result.Reference.Ref,
		URLs:      result.URLs,
		Count:     len(result.URLs),
		Truncated: result.Truncated,
	}
	if output.URLs == nil {
		output.URLs = []string{}
	}
	if result.Truncated {
		output.Notice = domain.TruncatedNotice
	}
	return nil, output, nil
}

// handleRender handles the render_gallery tool invocation.
func (s *Server) handleRender(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RenderInput,
) (*mcp.CallToolResult, RenderOutput, error) {
	urls, err := s.resolveURLs(ctx, input.URLs, input.Link)
	if err != nil {
		return nil, RenderOutput{}, err
	}

	format := domain.OutputFormat(input.Format)
	if format == "" {
		format = domain.FormatHTML
	}

	cfg := s.settings().Gallery
	if input.Columns > 0 {
		cfg.Columns = input.Columns
	}
	if input.Title != "" {
		cfg.Title = input.Title
	}

	out, err := s.ports.Render.Render(format, urls, cfg)
	if err != nil {
		return nil, RenderOutput{}, err
	}
	return nil, RenderOutput{Format: string(format), Count: len(urls), Output: out}, nil
}

// handleDownload handles the download_images tool invocation.
func (s *Server) handleDownload(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DownloadInput,
) (*mcp.CallToolResult, DownloadOutput, error) {
	urls, err := s.resolveURLs(ctx, input.URLs, input.Link)
	if err != nil {
		return nil, DownloadOutput{}, err
	}

	dir := input.Dir
	if dir == "" {
		dir = s.settings().DownloadDir
	}

	summary, err := s.ports.Download.DownloadAll(ctx, urls, dir, nil)
	if err != nil {
		return nil, DownloadOutput{}, err
	}

	paths := summary.Paths
	if paths == nil {
		paths = []string{}
	}
	return nil, DownloadOutput{
		OK:      summary.OK,
		Failed:  summary.Failed,
		Dir:     summary.Dir,
		Paths:   paths,
		Message: summary.Message(),
	}, nil
}

// resolveURLs returns urls, or scans link when urls is empty.
// Caller-supplied URLs must pass the host allow-list.
func (s *Server) resolveURLs(ctx context.Context, urls []string, link string) ([]string, error) {
	if len(urls) > 0 {
		checked := make([]string, 0, len(urls))
		for _, raw := range urls {
			u, err := netguard.Check(raw)
			if err != nil {
				return nil, err
			}
			checked = append(checked, u.String())
		}
		return checked, nil
	}
	if link == "" {
		return nil, fmt.Errorf("%w: provide urls or link", domain.ErrInvalidInput)
	}
	result, err := s.ports.Scan.Enumerate(ctx, link, s.settings().GitHubToken)
	if err != nil {
		return nil, err
	}
	if len(result.URLs) == 0 {
		return nil, errors.New("no images found")
	}
	return result.URLs, nil
}

// settings returns saved settings or defaults.
func (s *Server) settings() domain.Settings {
	if s.ports.Settings == nil {
		return domain.DefaultSettings()
	}
	cfg, err := s.ports.Settings.Get()
	if err != nil {
		return domain.DefaultSettings()
	}
	return cfg
}

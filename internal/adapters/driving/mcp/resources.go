package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gittable/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for gittable resources.
	uriScheme = "gittable://"

	// historyLimit caps the history listing.
	historyLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "formats",
		Name:        "formats",
		Description: "Output formats accepted by render_gallery",
		MIMEType:    "application/json",
	}, s.handleFormatsResource)

	if s.ports.History == nil {
		return
	}

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recent scans and saved image lists",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "history/{scanId}",
		Name:        "history-scan",
		Description: "Image URLs of one saved scan, one per line",
		MIMEType:    "text/plain",
	}, s.handleScanResource)
}

// handleFormatsResource lists the registered output formats.
func (s *Server) handleFormatsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := json.Marshal(s.ports.Render.Formats())
	if err != nil {
		return nil, fmt.Errorf("marshalling formats: %w", err)
	}
	return jsonResult(req.Params.URI, data), nil
}

// handleHistoryResource returns recent scan records without their URLs.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.History.List(ctx, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	type scanInfo struct {
		ID        string    `json:"id"`
		Link      string    `json:"link"`
		Ref       string    `json:"ref"`
		Images    int       `json:"images"`
		Truncated bool      `json:"truncated"`
		CreatedAt time.Time `json:"created_at"`
		URI       string    `json:"uri"`
	}

	infos := make([]scanInfo, len(records))
	for i := range records {
		infos[i] = scanInfo{
			ID:        records[i].ID,
			Link:      records[i].Link,
			Ref:       records[i].Ref,
			Images:    len(records[i].URLs),
			Truncated: records[i].Truncated,
			CreatedAt: records[i].CreatedAt,
			URI:       uriScheme + "history/" + records[i].ID,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}
	return jsonResult(req.Params.URI, data), nil
}

// handleScanResource returns the URLs of one scan record.
func (s *Server) handleScanResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractScanID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	record, err := s.ports.History.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting scan: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     strings.Join(record.URLs, "\n"),
		}},
	}, nil
}

func jsonResult(uri string, data []byte) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}
}

// extractScanID extracts the scan ID from a URI like gittable://history/{scanId}.
func extractScanID(uri string) string {
	const prefix = uriScheme + "history/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}

// Package mcp provides an MCP (Model Context Protocol) server adapter for gittable.
// It lets AI assistants scan GitHub repositories for images, render galleries
// and download images.
package mcp

import "errors"

// ErrMissingScanService is returned when the scan service is not provided.
var ErrMissingScanService = errors.New("mcp: scan service is required")

// ErrMissingRenderService is returned when the render service is not provided.
var ErrMissingRenderService = errors.New("mcp: render service is required")

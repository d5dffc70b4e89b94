// Package domain defines the core entities for gittable.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - GitHubReference: A parsed repository, folder or file link
//   - ImageList: The curated, ordered list of image URLs
//   - RenderConfig: Table layout for generated snippets
//   - Settings: Persisted user configuration
//   - ScanRecord: A saved scan
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

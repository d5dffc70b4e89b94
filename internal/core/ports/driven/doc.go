// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - RepositoryFetcher: GitHub repository metadata and recursive trees
//   - ImageFetcher: Raw image bytes from an allow-listed URL
//   - FileStore: Storage-root relative file persistence
//   - ConfigStore: Application configuration
//   - RendererRegistry: Output formats for the curated list
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ScanStore: Scan history. Without it, history commands report ErrNotFound.
//   - Clipboard: Without it, copy actions fail with a notice.
//   - Browser: Without it, open actions fail with a notice.
//   - ImageDecoder: Without it, inspect reports byte size only.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or renderer package
package driven

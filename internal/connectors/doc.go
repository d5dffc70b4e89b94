// Package connectors holds the adapters that read from remote hosts.
// The github subpackage is the only one: it lists repository trees and
// fetches raw file contents.
package connectors

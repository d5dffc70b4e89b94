// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO. Network access goes through driven
// ports, and every URL is checked against the host allow-list before it
// is handed to one.
package services

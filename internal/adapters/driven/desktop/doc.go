// Package desktop implements the clipboard and browser ports against the
// local operating system.
package desktop

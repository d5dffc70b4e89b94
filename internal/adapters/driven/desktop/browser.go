package desktop

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/custodia-labs/gittable/internal/core/ports/driven"
)

// Ensure Browser implements the interface.
var _ driven.Browser = (*Browser)(nil)

// Browser opens URLs with the platform's default handler.
// Callers are expected to validate the URL first.
type Browser struct {
	goos  string
	start func(name string, args ...string) error
}

// NewBrowser returns a browser for the running platform.
func NewBrowser() *Browser {
	return &Browser{goos: runtime.GOOS, start: startCommand}
}

// Open launches url without waiting for the handler to exit.
func (b *Browser) Open(url string) error {
	name, args, err := openCommand(b.goos, url)
	if err != nil {
		return err
	}
	if err := b.start(name, args...); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

func openCommand(goos, url string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{url}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{url}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

func startCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

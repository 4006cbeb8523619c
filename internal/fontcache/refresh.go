// Package fontcache rebuilds the OS font cache after new font files are
// installed, so applications can see them without a relogin.
package fontcache

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/JoshAyersSBT/Get-Nerd-Fonts/internal/platform"
)

// Refresher rebuilds the OS font cache.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// ExecRefresher runs the platform's cache-rebuild command (fc-cache on
// fontconfig systems, atsutil on macOS). On platforms without such a
// command the argv is empty and Refresh is a no-op.
type ExecRefresher struct {
	argv []string
}

// New creates a refresher for the detected platform.
func New(info *platform.Info) *ExecRefresher {
	return &ExecRefresher{argv: platform.CacheRefreshArgv(info)}
}

// Command returns the argv that Refresh would run, nil when there is
// none. Useful for logging and for the dry-run output.
func (r *ExecRefresher) Command() []string {
	return r.argv
}

// Refresh invokes the cache-rebuild command once. A failure is reported
// with the command's stderr folded into the error; callers treat it as a
// warning, never as a fatal condition.
func (r *ExecRefresher) Refresh(ctx context.Context) error {
	if len(r.argv) == 0 {
		return nil
	}

	bin, err := exec.LookPath(r.argv[0])
	if err != nil {
		return fmt.Errorf("%s not found in PATH: %w", r.argv[0], err)
	}

	cmd := exec.CommandContext(ctx, bin, r.argv[1:]...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return fmt.Errorf("%s: %w: %s", r.argv[0], err, detail)
		}
		return fmt.Errorf("%s: %w", r.argv[0], err)
	}

	return nil
}

package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/surfdoc/pkg/fsutil"
)

// Write persists every assembled page under dir, creating intermediate
// directories for nested routes. Each file is written atomically so a
// crashed build never leaves a half-written page behind. Pages whose
// content is unchanged since the last build are left alone, keeping
// their timestamps stable for downstream tooling.
func Write(ctx context.Context, out *Output, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	for _, page := range out.Pages {
		target := filepath.Join(dir, filepath.FromSlash(page.File))
		if parent := filepath.Dir(target); parent != dir {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return fmt.Errorf("creating dir for %s: %w", page.File, err)
			}
		}
		if _, err := fsutil.WriteAtomicIfChanged(ctx, target, []byte(page.HTML), 0); err != nil {
			return fmt.Errorf("writing %s: %w", page.File, err)
		}
	}
	return nil
}

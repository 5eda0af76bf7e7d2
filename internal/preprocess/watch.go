package preprocess

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettle is how long Watch waits after the last file event before
// running. Copying a batch of photos produces a burst of events.
const DefaultSettle = 2 * time.Second

// Watch runs the processor once, then again whenever supported images are
// created or written in the source directory. Runs follow the processor's
// mode, so in ModeNew an already listed image is skipped even when its file
// changed. Events closer together than settle trigger a single run. Every
// result is passed to onRun. Watch blocks until ctx is cancelled.
func (p *Processor) Watch(ctx context.Context, settle time.Duration, onRun func(*Report, error)) error {
	if err := p.fs.MkdirAll(p.opts.SrcDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", p.opts.SrcDir, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(p.opts.SrcDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", p.opts.SrcDir, err)
	}
	p.logger.Info("Watching for new images", "dir", p.opts.SrcDir)

	onRun(p.Run(ctx))

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			p.logger.Debug("File system watcher context cancelled")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 || !supported(event.Name) {
				continue
			}
			p.logger.Debug("Source image changed", "file", event.Name, "op", event.Op.String())
			fire = time.After(settle)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			p.logger.Error("File system watcher error", "error", err)
		case <-fire:
			fire = nil
			onRun(p.Run(ctx))
		}
	}
}

// SPDX-License-Identifier: MIT

package flatcfg

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/ManuGH/flatcfg/internal/log"
)

// Watch reloads the registry whenever the store file is rewritten on disk
// and signals each successful reload on the returned channel. The channel
// is closed when ctx is done. A reload that fails keeps the last good
// values and is only logged.
//
// The watcher loads concurrently with the caller; hosts combining Watch
// with Set or Save must serialize access to the Manager.
func (m *Manager) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory, not the file: atomic saves replace the file,
	// which would drop a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(m.path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch store directory: %w", err)
	}

	reloads := make(chan struct{}, 1)
	go func() {
		defer close(reloads)
		defer func() {
			if err := watcher.Close(); err != nil {
				m.log.Debug().Err(err).Msg("close watcher")
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(m.path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if err := m.reload(); err != nil {
					m.log.Error().Err(err).Str(log.FieldPath, m.path).Msg("reload after file change failed")
					continue
				}
				m.log.Info().Str(log.FieldPath, m.path).Msg("store file reloaded")
				select {
				case reloads <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				m.log.Error().Err(err).Msg("watcher error")
			}
		}
	}()

	return reloads, nil
}

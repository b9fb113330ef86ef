// Package fswatch delivers filesystem change events to Go listeners.
//
// The monitoring itself is done by an external watcher program, by default
// `node file-watcher.js`, which prints one record per change:
//
//	fileCreated - /abs/path/to/file
//
// A Watch spawns that program, polls its output on a fixed interval, parses
// the records and calls the listeners registered for each kind, followed by
// the catch-all listeners:
//
//	err := fswatch.Paths("/srv/app/config", "/srv/app/templates").
//		OnFileUpdated(func(path string) error {
//			return reload(path)
//		}).
//		OnAnyChange(func(kind fswatch.EventKind, path string) error {
//			log.Printf("%s %s", kind, path)
//			return nil
//		}).
//		Start(ctx)
//
// Start blocks until the ShouldContinue predicate returns false, ctx is
// cancelled, or the session fails. The watcher process is always terminated
// before Start returns.
//
// Display runs the same session and also renders every event, as styled
// lines, JSON lines or an interactive terminal UI.
package fswatch

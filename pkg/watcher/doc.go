// Package watcher reacts to filesystem changes by re-fingerprinting the
// affected files.
//
// It watches a directory tree recursively with fsnotify and debounces
// events: rapid bursts of writes to the same files settle into one batch,
// delivered to the caller's callback after a quiet period. Newly created
// directories are added to the watch as they appear.
package watcher

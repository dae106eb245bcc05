package fingerprint

import (
	"time"

	"imprint-hq/imprint/pkg/sniff"
)

// Summary is the content identity of a byte sequence, independent of any
// file it may have come from.
type Summary struct {
	// Digest is the uppercase SHA-256 hex digest of the content.
	Digest string

	// Kind is the heuristic content classification.
	Kind sniff.ContentKind

	// Size is the content length in bytes.
	Size int64
}

// Record is a persisted fingerprint of a file at a point in time.
type Record struct {
	// ID uniquely identifies this record (UUID).
	ID string

	// Path is the file path the content was read from.
	Path string

	// Digest is the uppercase SHA-256 hex digest of the file content.
	Digest string

	// Kind is the heuristic content classification.
	Kind sniff.ContentKind

	// MIME is the coarse MIME label derived from Kind.
	MIME string

	// Size is the file size in bytes at scan time.
	Size int64

	// ModTime is the file modification time at scan time.
	ModTime time.Time

	// ScannedAt is when the fingerprint was taken.
	ScannedAt time.Time
}

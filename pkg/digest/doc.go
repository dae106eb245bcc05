// Package digest computes hex-encoded SHA-256 fingerprints of byte and text
// content.
//
// The byte form is a thin wrapper over crypto/sha256. The text form first
// encodes the string under a caller-chosen character encoding (UTF-8 when
// nil) and digests the encoded bytes; its result is always identical to
// encoding the text yourself and calling SHA256Hex on the output.
//
// # Usage
//
//	sum := digest.SHA256Hex(data, true)
//
//	enc, err := digest.ResolveEncoding("ISO-8859-1")
//	if err != nil {
//		return err
//	}
//	sum, err = digest.SHA256HexText(text, enc, true)
//
// # Performance
//
// The text path selects a buffer strategy by input size: a stack buffer for
// small inputs, a pooled buffer for moderate ones, and incremental chunked
// hashing for large ones. The choice never affects the output. All functions
// are safe for unlimited concurrent use.
package digest

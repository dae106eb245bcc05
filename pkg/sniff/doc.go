// Package sniff provides heuristic content-shape classification for byte
// buffers.
//
// Classify inspects a bounded prefix of a buffer and reports whether its
// content looks like JSON, XML/HTML markup, plain text, or binary data,
// without parsing anything. It is used everywhere imprint needs a cheap
// answer to "what is this file, roughly?" before deciding how to record or
// display it.
//
// # Usage
//
//	kind := sniff.Classify(data)
//	if kind == sniff.KindBinary {
//		// skip preview rendering
//	}
//
// The classification is a heuristic, not a validation: a buffer starting
// with "{" classifies as JSON even if the rest is garbage. Callers that need
// real parsing must parse.
//
// # Performance
//
// Classify never allocates and touches at most the first 512 bytes plus any
// leading whitespace. It is safe for unlimited concurrent use.
package sniff

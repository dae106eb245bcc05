package sniff

// ContentKind is the heuristic classification of a buffer's content shape.
type ContentKind int

const (
	// KindUnknown means the buffer is empty or entirely whitespace.
	KindUnknown ContentKind = iota
	// KindJSON means the first significant byte is a legal JSON value start.
	KindJSON
	// KindXMLOrHTML means the first significant byte is '<'.
	KindXMLOrHTML
	// KindBinary means the inspected prefix contains a NUL byte or an
	// excessive share of C0 control bytes.
	KindBinary
	// KindText means printable content that matches none of the above.
	KindText
)

// String returns the kind's stable lowercase label.
func (k ContentKind) String() string {
	switch k {
	case KindJSON:
		return "json"
	case KindXMLOrHTML:
		return "xml-or-html"
	case KindBinary:
		return "binary"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseKind converts a label produced by ContentKind.String back into a
// ContentKind. It reports false for unrecognized labels.
func ParseKind(s string) (ContentKind, bool) {
	switch s {
	case "unknown":
		return KindUnknown, true
	case "json":
		return KindJSON, true
	case "xml-or-html":
		return KindXMLOrHTML, true
	case "binary":
		return KindBinary, true
	case "text":
		return KindText, true
	default:
		return KindUnknown, false
	}
}

// MIME returns a coarse MIME label for the kind. It distinguishes only the
// shapes Classify distinguishes; it is not a magic-number detector.
func (k ContentKind) MIME() string {
	switch k {
	case KindJSON:
		return "application/json"
	case KindXMLOrHTML:
		return "text/xml"
	case KindText:
		return "text/plain; charset=utf-8"
	case KindBinary:
		return "application/octet-stream"
	default:
		return "application/octet-stream"
	}
}

// binaryScanLimit bounds the prefix inspected by the binary heuristic.
const binaryScanLimit = 512

// Classify reports the likely content shape of data, which is assumed to be
// UTF-8 when textual. The input is only read, never retained.
//
// The checks run in a fixed order and the first match wins:
//
//  1. A leading UTF-8 byte-order mark is skipped.
//  2. An empty (or BOM-only) buffer is KindUnknown.
//  3. The first 512 bytes are scanned for binary signals: any NUL byte, or
//     C0 control bytes (excluding tab, LF, CR) exceeding 10% of the scanned
//     prefix, yield KindBinary.
//  4. Leading whitespace (space, tab, CR, LF) is skipped without bound; an
//     all-whitespace buffer is KindUnknown.
//  5. The first significant byte decides: a JSON value start ('{', '[',
//     '"', '-', a digit, or the first letter of true/false/null) is
//     KindJSON, '<' is KindXMLOrHTML, anything else is KindText.
func Classify(data []byte) ContentKind {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}
	if len(data) == 0 {
		return KindUnknown
	}

	limit := len(data)
	if limit > binaryScanLimit {
		limit = binaryScanLimit
	}
	controls := 0
	for _, b := range data[:limit] {
		if b == 0x00 {
			return KindBinary
		}
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' {
			controls++
		}
	}
	if controls > limit/10 {
		return KindBinary
	}

	i := 0
	for i < len(data) && isWhitespace(data[i]) {
		i++
	}
	if i == len(data) {
		return KindUnknown
	}

	switch c := data[i]; {
	case c == '{' || c == '[':
		return KindJSON
	case c == '"' || c == '-' || (c >= '0' && c <= '9'):
		return KindJSON
	case c == 't' || c == 'f' || c == 'n':
		// Candidate start of true/false/null. This is a sniff, not a
		// parse: the rest of the literal is not checked.
		return KindJSON
	case c == '<':
		return KindXMLOrHTML
	default:
		return KindText
	}
}

// LooksLikeJSON reports whether data classifies as KindJSON.
func LooksLikeJSON(data []byte) bool {
	return Classify(data) == KindJSON
}

// LooksLikeXMLOrHTML reports whether data classifies as KindXMLOrHTML.
func LooksLikeXMLOrHTML(data []byte) bool {
	return Classify(data) == KindXMLOrHTML
}

// LooksBinary reports whether data classifies as KindBinary.
func LooksBinary(data []byte) bool {
	return Classify(data) == KindBinary
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

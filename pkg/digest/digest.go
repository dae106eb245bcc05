package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidEncoding is returned when the caller supplies an unknown or
// unsupported text encoding name.
var ErrInvalidEncoding = errors.New("invalid or unsupported text encoding")

const (
	// smallTextLimit is the largest input handled entirely on the stack.
	smallTextLimit = 1024

	// pooledTextLimit is the largest input encoded into a pooled buffer.
	// Anything bigger is hashed incrementally in chunks.
	pooledTextLimit = 128 * 1024

	// streamChunkSize is the source chunk size for incremental encoding.
	streamChunkSize = 4096
)

// SHA256Hex returns the SHA-256 digest of data as 64 hex characters,
// uppercase unless upper is false.
func SHA256Hex(data []byte, upper bool) string {
	sum := sha256.Sum256(data)
	return encodeHex(sum[:], upper)
}

// SHA256HexText returns the SHA-256 digest of text encoded under enc,
// as 64 hex characters. A nil enc means UTF-8. The result is always equal to
// SHA256Hex over the encoded bytes; only the internal buffer strategy varies
// with input size.
func SHA256HexText(text string, enc encoding.Encoding, upper bool) (string, error) {
	if enc == nil || enc == unicode.UTF8 {
		// Go strings are UTF-8 already; hash directly without a
		// conversion buffer.
		h := sha256.New()
		io.WriteString(h, text)
		return encodeHex(h.Sum(nil), upper), nil
	}

	switch {
	case len(text) <= smallTextLimit:
		var arr [4 * smallTextLimit]byte
		out, _, err := transform.Append(enc.NewEncoder(), arr[:0], []byte(text))
		if err != nil {
			return "", fmt.Errorf("encode text: %w", err)
		}
		return SHA256Hex(out, upper), nil

	case len(text) <= pooledTextLimit:
		buf := encodeBufPool.Get().(*[]byte)
		defer encodeBufPool.Put(buf)
		out, _, err := transform.Append(enc.NewEncoder(), (*buf)[:0], []byte(text))
		if err != nil {
			return "", fmt.Errorf("encode text: %w", err)
		}
		return SHA256Hex(out, upper), nil

	default:
		return sha256HexTextStream(text, enc, upper)
	}
}

// sha256HexTextStream encodes and hashes text incrementally in fixed-size
// chunks, so large inputs never materialize as one encoded buffer. Source
// bytes the encoder leaves unconsumed at a chunk boundary (a split rune) are
// carried into the next chunk; the encoder is flushed only once, at end of
// input.
func sha256HexTextStream(text string, enc encoding.Encoding, upper bool) (string, error) {
	h := sha256.New()
	tr := enc.NewEncoder()

	var src [streamChunkSize]byte
	var dst [4 * streamChunkSize]byte
	pending := 0
	off := 0

	for {
		n := copy(src[pending:], text[off:])
		off += n
		pending += n
		atEOF := off == len(text)

		nDst, nSrc, err := tr.Transform(dst[:], src[:pending], atEOF)
		h.Write(dst[:nDst])
		copy(src[:], src[nSrc:pending])
		pending -= nSrc

		switch {
		case err == nil:
			if atEOF && pending == 0 {
				return encodeHex(h.Sum(nil), upper), nil
			}
		case errors.Is(err, transform.ErrShortSrc):
			if atEOF {
				// Truncated multi-byte sequence at end of input.
				return "", fmt.Errorf("encode text: %w", err)
			}
		case errors.Is(err, transform.ErrShortDst):
			// dst filled mid-chunk; hash what was produced and go again.
		default:
			return "", fmt.Errorf("encode text: %w", err)
		}

		if n == 0 && nDst == 0 && nSrc == 0 {
			return "", fmt.Errorf("encode text: encoder made no progress")
		}
	}
}

// SHA256HexReader streams r through SHA-256 using a pooled copy buffer and
// returns the hex digest.
func SHA256HexReader(r io.Reader, upper bool) (string, error) {
	h := sha256.New()
	buf := copyBufPool.Get().(*[]byte)
	defer copyBufPool.Put(buf)

	if _, err := io.CopyBuffer(h, r, *buf); err != nil {
		return "", fmt.Errorf("read content: %w", err)
	}
	return encodeHex(h.Sum(nil), upper), nil
}

// ResolveEncoding looks up a character encoding by its IANA name
// (e.g. "UTF-8", "ISO-8859-1", "windows-1252"). An empty name resolves to
// nil, which SHA256HexText treats as UTF-8. Unknown names fail with
// ErrInvalidEncoding.
func ResolveEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEncoding, name)
	}
	return enc, nil
}

func encodeHex(sum []byte, upper bool) string {
	s := hex.EncodeToString(sum)
	if upper {
		s = strings.ToUpper(s)
	}
	return s
}

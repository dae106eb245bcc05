package fingerprint

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"imprint-hq/imprint/pkg/digest"
	"imprint-hq/imprint/pkg/sniff"
)

// headWindow is how much of a stream is buffered for classification before
// the rest is hashed straight through. It comfortably covers the classifier's
// 512-byte binary scan plus typical leading whitespace.
const headWindow = 4096

// Bytes fingerprints an in-memory buffer.
func Bytes(data []byte) Summary {
	return Summary{
		Digest: digest.SHA256Hex(data, true),
		Kind:   sniff.Classify(data),
		Size:   int64(len(data)),
	}
}

// Reader fingerprints a stream in a single pass. The first few KiB are
// buffered so the content can be classified; everything, head included, is
// streamed through the digest. Classification of a stream therefore
// considers only the head window, which covers the classifier's bounded
// binary scan in full.
func Reader(r io.Reader) (Summary, error) {
	var head [headWindow]byte
	n, err := io.ReadFull(r, head[:])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Summary{}, fmt.Errorf("read content head: %w", err)
	}

	counter := &countingReader{r: r}
	sum, err := digest.SHA256HexReader(io.MultiReader(bytes.NewReader(head[:n]), counter), true)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Digest: sum,
		Kind:   sniff.Classify(head[:n]),
		Size:   int64(n) + counter.n,
	}, nil
}

// File fingerprints the file at path and returns a full record with a fresh
// UUID and scan timestamp.
func File(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("fingerprint %q: is a directory", path)
	}

	sum, err := Reader(f)
	if err != nil {
		return nil, fmt.Errorf("fingerprint %q: %w", path, err)
	}

	return &Record{
		ID:        uuid.New().String(),
		Path:      path,
		Digest:    sum.Digest,
		Kind:      sum.Kind,
		MIME:      sum.Kind.MIME(),
		Size:      sum.Size,
		ModTime:   info.ModTime(),
		ScannedAt: time.Now().UTC(),
	}, nil
}

// countingReader counts bytes read past the head window.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

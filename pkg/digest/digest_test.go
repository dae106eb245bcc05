package digest

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// emptySHA256Upper is the well-known SHA-256 digest of empty input.
const emptySHA256Upper = "E3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855"

func computeSHA256Lower(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

func TestSHA256Hex(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		upper bool
		want  string
	}{
		{
			name:  "empty uppercase",
			data:  []byte{},
			upper: true,
			want:  emptySHA256Upper,
		},
		{
			name:  "nil uppercase",
			data:  nil,
			upper: true,
			want:  emptySHA256Upper,
		},
		{
			name:  "empty lowercase",
			data:  []byte{},
			upper: false,
			want:  strings.ToLower(emptySHA256Upper),
		},
		{
			name:  "hello world lowercase",
			data:  []byte("hello world"),
			upper: false,
			want:  computeSHA256Lower([]byte("hello world")),
		},
		{
			name:  "hello world uppercase",
			data:  []byte("hello world"),
			upper: true,
			want:  strings.ToUpper(computeSHA256Lower([]byte("hello world"))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SHA256Hex(tt.data, tt.upper)
			if got != tt.want {
				t.Errorf("SHA256Hex() = %v, want %v", got, tt.want)
			}
			if len(got) != 64 {
				t.Errorf("SHA256Hex() returned %d characters, want 64", len(got))
			}
		})
	}
}

func TestSHA256Hex_Deterministic(t *testing.T) {
	data := []byte(`{"model":"test","payload":[1,2,3]}`)
	first := SHA256Hex(data, true)
	for i := 0; i < 5; i++ {
		if got := SHA256Hex(data, true); got != first {
			t.Fatalf("SHA256Hex not deterministic: %v != %v", got, first)
		}
	}
	if SHA256Hex(data, false) != strings.ToLower(first) {
		t.Errorf("lowercase output is not the lowercased uppercase output")
	}
}

func TestSHA256HexText_UTF8Default(t *testing.T) {
	inputs := []string{
		"",
		"hello world",
		"héllo wörld",
		"日本語テキスト",
		strings.Repeat("mixed ascii and 中文 ", 100),
	}
	for _, in := range inputs {
		want := SHA256Hex([]byte(in), true)
		got, err := SHA256HexText(in, nil, true)
		if err != nil {
			t.Fatalf("SHA256HexText(%q, nil) error: %v", in, err)
		}
		if got != want {
			t.Errorf("SHA256HexText(%q, nil) = %v, want %v", in, got, want)
		}
	}
}

func TestSHA256HexText_Latin1(t *testing.T) {
	// "héllo" under ISO-8859-1 is a different byte sequence than UTF-8,
	// so the digest must differ from the UTF-8 one.
	latin1Bytes := []byte{'h', 0xE9, 'l', 'l', 'o'}
	want := SHA256Hex(latin1Bytes, true)

	got, err := SHA256HexText("héllo", charmap.ISO8859_1, true)
	if err != nil {
		t.Fatalf("SHA256HexText error: %v", err)
	}
	if got != want {
		t.Errorf("SHA256HexText latin1 = %v, want %v", got, want)
	}

	utf8Digest, _ := SHA256HexText("héllo", nil, true)
	if got == utf8Digest {
		t.Error("latin1 and UTF-8 digests should differ for non-ASCII text")
	}
}

// TestSHA256HexText_BufferTiers verifies that the stack, pooled, and
// streamed strategies produce identical results. ASCII text under
// ISO-8859-1 encodes to the same bytes as UTF-8, which gives an independent
// expected value for every size.
func TestSHA256HexText_BufferTiers(t *testing.T) {
	sizes := []struct {
		name string
		n    int
	}{
		{"stack tier", 100},
		{"stack tier boundary", smallTextLimit},
		{"pooled tier", smallTextLimit + 1},
		{"pooled tier large", 50 * 1024},
		{"pooled tier boundary", pooledTextLimit},
		{"streamed tier", pooledTextLimit + 1},
		{"streamed tier large", 300 * 1024},
	}
	for _, tt := range sizes {
		t.Run(tt.name, func(t *testing.T) {
			text := strings.Repeat("a", tt.n)
			want := SHA256Hex([]byte(text), true)
			got, err := SHA256HexText(text, charmap.ISO8859_1, true)
			if err != nil {
				t.Fatalf("SHA256HexText error: %v", err)
			}
			if got != want {
				t.Errorf("size %d: got %v, want %v", tt.n, got, want)
			}
		})
	}
}

// TestSHA256HexText_StreamChunkBoundaries drives the streamed tier with
// three-byte UTF-8 runes so that chunk boundaries always split a rune, and
// checks the result against a one-shot encode of the same text.
func TestSHA256HexText_StreamChunkBoundaries(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

	// Large enough to force streaming and not rune-aligned with the
	// chunk size.
	text := strings.Repeat("世界和平", 20_000)
	if len(text) <= pooledTextLimit {
		t.Fatalf("test input too small to exercise the streamed tier")
	}

	encoded, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatalf("one-shot encode failed: %v", err)
	}
	want := SHA256Hex(encoded, true)

	got, err := SHA256HexText(text, enc, true)
	if err != nil {
		t.Fatalf("SHA256HexText error: %v", err)
	}
	if got != want {
		t.Errorf("streamed digest = %v, want %v", got, want)
	}
}

func TestSHA256HexText_UTF16SmallInput(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	want := SHA256Hex([]byte{'A', 0x00, 'B', 0x00}, true)
	got, err := SHA256HexText("AB", enc, true)
	if err != nil {
		t.Fatalf("SHA256HexText error: %v", err)
	}
	if got != want {
		t.Errorf("UTF-16LE digest = %v, want %v", got, want)
	}
}

func TestSHA256HexReader(t *testing.T) {
	t.Run("matches byte digest", func(t *testing.T) {
		data := bytes.Repeat([]byte("stream me "), 1000)
		want := SHA256Hex(data, true)
		got, err := SHA256HexReader(bytes.NewReader(data), true)
		if err != nil {
			t.Fatalf("SHA256HexReader error: %v", err)
		}
		if got != want {
			t.Errorf("SHA256HexReader = %v, want %v", got, want)
		}
	})

	t.Run("large input crosses copy buffer", func(t *testing.T) {
		data := bytes.Repeat([]byte{0xAB}, copyBufferSize*3+17)
		want := SHA256Hex(data, false)
		got, err := SHA256HexReader(bytes.NewReader(data), false)
		if err != nil {
			t.Fatalf("SHA256HexReader error: %v", err)
		}
		if got != want {
			t.Errorf("SHA256HexReader = %v, want %v", got, want)
		}
	})

	t.Run("read error propagates", func(t *testing.T) {
		if _, err := SHA256HexReader(&failingReader{}, true); err == nil {
			t.Error("expected error from failing reader")
		}
	})
}

type failingReader struct{}

func (*failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestResolveEncoding(t *testing.T) {
	t.Run("empty name means default", func(t *testing.T) {
		enc, err := ResolveEncoding("")
		if err != nil {
			t.Fatalf("ResolveEncoding(\"\") error: %v", err)
		}
		if enc != nil {
			t.Errorf("ResolveEncoding(\"\") = %v, want nil", enc)
		}
	})

	t.Run("known names resolve", func(t *testing.T) {
		for _, name := range []string{"UTF-8", "ISO-8859-1", "windows-1252", "UTF-16"} {
			enc, err := ResolveEncoding(name)
			if err != nil {
				t.Errorf("ResolveEncoding(%q) error: %v", name, err)
			}
			if enc == nil {
				t.Errorf("ResolveEncoding(%q) = nil", name)
			}
		}
	})

	t.Run("unknown name fails with ErrInvalidEncoding", func(t *testing.T) {
		_, err := ResolveEncoding("no-such-encoding")
		if !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("ResolveEncoding error = %v, want ErrInvalidEncoding", err)
		}
	})
}

func BenchmarkSHA256Hex(b *testing.B) {
	data := bytes.Repeat([]byte("benchmark payload "), 64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		SHA256Hex(data, true)
	}
}

func BenchmarkSHA256HexText_Pooled(b *testing.B) {
	text := strings.Repeat("a", 64*1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := SHA256HexText(text, charmap.ISO8859_1, true); err != nil {
			b.Fatal(err)
		}
	}
}

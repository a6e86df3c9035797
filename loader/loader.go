// Package loader reads a text document into the ordered line corpus that the
// pager works on.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrDecode reports input that cannot be decoded with the requested encoding.
var ErrDecode = errors.New("loader: cannot decode text")

// Encoding names the byte encoding of a document.
type Encoding string

const (
	// EncodingAuto sniffs a byte order mark, then accepts valid UTF-8 and
	// falls back to GB18030.
	EncodingAuto    Encoding = "auto"
	EncodingUTF8    Encoding = "utf-8"
	EncodingUTF16   Encoding = "utf-16"
	EncodingGB18030 Encoding = "gb18030"
)

// ParseEncoding maps a configuration value to an Encoding. "" means auto.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return EncodingAuto, nil
	case "utf-8", "utf8":
		return EncodingUTF8, nil
	case "utf-16", "utf16":
		return EncodingUTF16, nil
	case "gb18030", "gbk", "gb2312":
		return EncodingGB18030, nil
	default:
		return "", fmt.Errorf("loader: unknown encoding %q", s)
	}
}

// Options configures how a document is turned into lines.
type Options struct {
	Encoding Encoding

	// KeepBlank keeps whitespace-only lines. By default they are dropped.
	KeepBlank bool
}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Load reads the file at path and returns its lines.
func Load(path string, opt Options) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}
	lines, err := Parse(data, opt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

// Read reads r to the end and returns its lines.
func Read(r io.Reader, opt Options) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}
	return Parse(data, opt)
}

// Parse decodes data and splits it into lines.
func Parse(data []byte, opt Options) ([]string, error) {
	text, err := decode(data, opt.Encoding)
	if err != nil {
		return nil, err
	}
	return splitLines(text, opt.KeepBlank), nil
}

func decode(data []byte, enc Encoding) (string, error) {
	switch enc {
	case "", EncodingAuto:
		switch {
		case bytes.HasPrefix(data, utf8BOM):
			return decodeUTF8(data[len(utf8BOM):])
		case hasUTF16BOM(data):
			return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), data)
		case utf8.Valid(data):
			return string(data), nil
		default:
			return decodeWith(simplifiedchinese.GB18030, data)
		}
	case EncodingUTF8:
		return decodeUTF8(bytes.TrimPrefix(data, utf8BOM))
	case EncodingUTF16:
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), data)
	case EncodingGB18030:
		return decodeWith(simplifiedchinese.GB18030, data)
	default:
		return "", fmt.Errorf("%w: unknown encoding %q", ErrDecode, string(enc))
	}
}

func decodeUTF8(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	return "", fmt.Errorf("%w: invalid UTF-8 at byte %d", ErrDecode, firstInvalidUTF8(data))
}

func firstInvalidUTF8(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}

func hasUTF16BOM(data []byte) bool {
	return len(data) >= 2 &&
		((data[0] == 0xff && data[1] == 0xfe) || (data[0] == 0xfe && data[1] == 0xff))
}

func decodeWith(enc encoding.Encoding, data []byte) (string, error) {
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return string(out), nil
}

func splitLines(text string, keepBlank bool) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}

	parts := strings.Split(text, "\n")
	lines := make([]string, 0, len(parts))
	for _, s := range parts {
		s = strings.TrimSuffix(s, "\r")
		if !keepBlank && strings.TrimSpace(s) == "" {
			continue
		}
		lines = append(lines, s)
	}
	return lines
}

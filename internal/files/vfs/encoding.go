package vfs

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding represents a character encoding.
type Encoding string

const (
	// EncodingUTF8 is UTF-8 encoding (default).
	EncodingUTF8 Encoding = "utf-8"

	// EncodingUTF8BOM is UTF-8 encoding with BOM.
	EncodingUTF8BOM Encoding = "utf-8-bom"

	// EncodingUTF16LE is UTF-16 Little Endian with BOM.
	EncodingUTF16LE Encoding = "utf-16le"

	// EncodingUTF16BE is UTF-16 Big Endian with BOM.
	EncodingUTF16BE Encoding = "utf-16be"

	// EncodingLatin1 is ISO-8859-1 (Latin-1).
	EncodingLatin1 Encoding = "iso-8859-1"

	// EncodingASCII is ASCII encoding.
	EncodingASCII Encoding = "ascii"
)

// LineEnding represents the line ending style.
type LineEnding string

const (
	// LineEndingLF is Unix-style line ending (\n).
	LineEndingLF LineEnding = "lf"

	// LineEndingCRLF is Windows-style line ending (\r\n).
	LineEndingCRLF LineEnding = "crlf"

	// LineEndingCR is old Mac-style line ending (\r).
	LineEndingCR LineEnding = "cr"
)

// String returns the line ending sequence.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// BOM (Byte Order Mark) constants
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DetectEncoding attempts to detect the encoding of file content.
// It checks for BOM markers first, then validates UTF-8.
// Falls back to Latin-1 which accepts all byte sequences.
func DetectEncoding(content []byte) Encoding {
	if len(content) == 0 {
		return EncodingUTF8
	}

	// Check for BOM markers
	if bytes.HasPrefix(content, bomUTF8) {
		return EncodingUTF8BOM
	}
	if bytes.HasPrefix(content, bomUTF16LE) {
		return EncodingUTF16LE
	}
	if bytes.HasPrefix(content, bomUTF16BE) {
		return EncodingUTF16BE
	}

	if utf8.Valid(content) {
		if isASCII(content) {
			return EncodingASCII
		}
		return EncodingUTF8
	}

	// Fall back to Latin-1 (accepts all bytes)
	return EncodingLatin1
}

// DetectLineEnding returns the dominant line ending in text.
// Text without line breaks reports LF.
func DetectLineEnding(text string) LineEnding {
	var lf, crlf, cr int
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				crlf++
				i++
			} else {
				cr++
			}
		case '\n':
			lf++
		}
	}

	if crlf > lf && crlf >= cr {
		return LineEndingCRLF
	}
	if cr > lf && cr > crlf {
		return LineEndingCR
	}
	return LineEndingLF
}

// IsBinary attempts to detect if content is binary (not text).
// Uses heuristics: presence of null bytes, high ratio of non-printable characters.
// Content starting with a UTF-16 BOM is never binary.
func IsBinary(content []byte) bool {
	if len(content) == 0 {
		return false
	}
	if bytes.HasPrefix(content, bomUTF16LE) || bytes.HasPrefix(content, bomUTF16BE) {
		return false
	}

	// Check first 8KB at most
	sample := content[:min(len(content), 8192)]

	// Null bytes are a strong indicator of binary
	if bytes.IndexByte(sample, 0) >= 0 {
		return true
	}

	// Count non-text bytes (control characters except tab, newline, carriage return)
	nonText := 0
	for _, b := range sample {
		if b < 32 && b != '\t' && b != '\n' && b != '\r' {
			nonText++
		}
	}

	// If more than 10% are non-text, consider it binary
	return float64(nonText)/float64(len(sample)) > 0.1
}

// Decode converts file content to UTF-8 text using the detected encoding.
// BOMs are removed.
func Decode(content []byte) (string, Encoding, error) {
	enc := DetectEncoding(content)
	switch enc {
	case EncodingUTF8, EncodingASCII:
		return string(content), enc, nil
	case EncodingUTF8BOM:
		return string(content[len(bomUTF8):]), enc, nil
	}

	out, err := codec(enc).NewDecoder().Bytes(content)
	if err != nil {
		return "", enc, fmt.Errorf("decoding %s: %w", enc, err)
	}
	return string(out), enc, nil
}

// Encode converts UTF-8 text to bytes in the given encoding, writing a BOM
// for the BOM-carrying encodings. Characters Latin-1 cannot represent are
// an error.
func Encode(text string, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingUTF8, EncodingASCII, "":
		return []byte(text), nil
	case EncodingUTF8BOM:
		return append(bytes.Clone(bomUTF8), text...), nil
	}

	out, err := codec(enc).NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", enc, err)
	}
	return out, nil
}

func codec(enc Encoding) encoding.Encoding {
	switch enc {
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case EncodingLatin1:
		return charmap.ISO8859_1
	default:
		return encoding.Nop
	}
}

// SplitLines splits text on LF, CRLF and CR. A single trailing line
// break does not produce an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return []string{""}
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// JoinLines joins lines with the given ending and appends a final line
// break when trailing is set.
func JoinLines(lines []string, ending LineEnding, trailing bool) string {
	s := strings.Join(lines, ending.String())
	if trailing {
		s += ending.String()
	}
	return s
}

// isASCII returns true if all bytes are ASCII (< 128).
func isASCII(content []byte) bool {
	for _, b := range content {
		if b >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

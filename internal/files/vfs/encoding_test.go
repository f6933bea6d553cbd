package vfs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDetectEncoding(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    Encoding
	}{
		{"empty", nil, EncodingUTF8},
		{"ascii", []byte("hello"), EncodingASCII},
		{"utf8", []byte("héllo"), EncodingUTF8},
		{"utf8 bom", []byte("\xEF\xBB\xBFhi"), EncodingUTF8BOM},
		{"utf16le", []byte{0xFF, 0xFE, 'h', 0}, EncodingUTF16LE},
		{"utf16be", []byte{0xFE, 0xFF, 0, 'h'}, EncodingUTF16BE},
		{"latin1", []byte{'c', 'a', 'f', 0xE9}, EncodingLatin1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectEncoding(tt.content); got != tt.want {
				t.Errorf("DetectEncoding() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    string
		enc     Encoding
	}{
		{"utf8", []byte("naïve"), "naïve", EncodingUTF8},
		{"utf8 bom", []byte("\xEF\xBB\xBFok"), "ok", EncodingUTF8BOM},
		{"utf16le", []byte{0xFF, 0xFE, 'h', 0, 'i', 0}, "hi", EncodingUTF16LE},
		{"utf16be", []byte{0xFE, 0xFF, 0, 'h', 0, 'i'}, "hi", EncodingUTF16BE},
		{"latin1", []byte{'c', 'a', 'f', 0xE9}, "café", EncodingLatin1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, enc, err := Decode(tt.content)
			if err != nil {
				t.Fatalf("Decode error: %v", err)
			}
			if got != tt.want || enc != tt.enc {
				t.Errorf("Decode() = %q, %v; want %q, %v", got, enc, tt.want, tt.enc)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		text string
		enc  Encoding
		want []byte
	}{
		{"utf8", "hé", EncodingUTF8, []byte("hé")},
		{"utf8 bom", "ok", EncodingUTF8BOM, []byte("\xEF\xBB\xBFok")},
		{"utf16le", "hi", EncodingUTF16LE, []byte{0xFF, 0xFE, 'h', 0, 'i', 0}},
		{"latin1", "café", EncodingLatin1, []byte{'c', 'a', 'f', 0xE9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.text, tt.enc)
			if err != nil {
				t.Fatalf("Encode error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Encode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncode_Unrepresentable(t *testing.T) {
	if _, err := Encode("日本", EncodingLatin1); err == nil {
		t.Error("expected error encoding CJK as Latin-1")
	}
}

func TestDetectLineEnding(t *testing.T) {
	tests := []struct {
		text string
		want LineEnding
	}{
		{"", LineEndingLF},
		{"one line", LineEndingLF},
		{"a\nb\n", LineEndingLF},
		{"a\r\nb\r\n", LineEndingCRLF},
		{"a\rb\r", LineEndingCR},
		{"a\r\nb\nc\r\n", LineEndingCRLF},
	}
	for _, tt := range tests {
		if got := DetectLineEnding(tt.text); got != tt.want {
			t.Errorf("DetectLineEnding(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestSplitJoinLines(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"", []string{""}},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\r\nb", []string{"a", "b"}},
		{"a\rb\r", []string{"a", "b"}},
		{"a\n\n", []string{"a", ""}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, SplitLines(tt.text)); diff != "" {
			t.Errorf("SplitLines(%q) mismatch (-want +got):\n%s", tt.text, diff)
		}
	}

	if got := JoinLines([]string{"a", "b"}, LineEndingCRLF, true); got != "a\r\nb\r\n" {
		t.Errorf("JoinLines = %q", got)
	}
	if got := JoinLines([]string{"a"}, LineEndingLF, false); got != "a" {
		t.Errorf("JoinLines = %q", got)
	}
}

func TestIsBinary(t *testing.T) {
	if IsBinary([]byte("plain text\n")) {
		t.Error("text reported as binary")
	}
	if !IsBinary([]byte{'a', 0, 'b'}) {
		t.Error("NUL bytes should be binary")
	}
	if IsBinary([]byte{0xFF, 0xFE, 'a', 0}) {
		t.Error("UTF-16 with BOM should not be binary")
	}
}

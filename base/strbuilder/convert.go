package strbuilder

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// AppendUTF16LE decodes UTF-16LE text and appends it as UTF-8.
// An odd trailing byte is an error.
func (b *Builder) AppendUTF16LE(p []byte) error {
	if len(p)%2 != 0 {
		return fmt.Errorf("strbuilder: utf-16le input has odd length %d", len(p))
	}
	decoded, err := utf16le.NewDecoder().Bytes(p)
	if err != nil {
		return fmt.Errorf("strbuilder: decode utf-16le: %w", err)
	}
	b.AppendBytes(decoded)
	return nil
}

// UTF16LE returns the accumulated text encoded as UTF-16LE, without a BOM.
func (b *Builder) UTF16LE() ([]byte, error) {
	encoded, err := utf16le.NewEncoder().Bytes(b.buf)
	if err != nil {
		return nil, fmt.Errorf("strbuilder: encode utf-16le: %w", err)
	}
	return encoded, nil
}

// AppendMultiByte decodes Windows-1252 text and appends it as UTF-8.
func (b *Builder) AppendMultiByte(p []byte) error {
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(p)
	if err != nil {
		return fmt.Errorf("strbuilder: decode windows-1252: %w", err)
	}
	b.AppendBytes(decoded)
	return nil
}

// ReadFromMultiByte appends everything read from r, decoding it from
// Windows-1252.
func (b *Builder) ReadFromMultiByte(r io.Reader) (int64, error) {
	return b.ReadFrom(transform.NewReader(r, charmap.Windows1252.NewDecoder()))
}

package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// FileFormat represents the supported store encodings
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatJSON               // {"baa": ["巴", "爸"]}
	FormatMsgpack            // ordered array of Entry
)

var (
	// ErrUnknownFormat is returned when encoding or decoding an unsupported format.
	ErrUnknownFormat = errors.New("unknown store format")
	// ErrMalformed is returned when the document is not a syllable mapping.
	ErrMalformed = errors.New("malformed store")
)

// FormatInfo contains metadata about a store file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatJSON: {
		Format:      FormatJSON,
		Description: "JSON syllable mapping",
		Extensions:  []string{".json"},
	},
	FormatMsgpack: {
		Format:      FormatMsgpack,
		Description: "MessagePack syllable entries",
		Extensions:  []string{".msgpack", ".mpk", ".bin"},
	},
}

// DetectFormat picks a format from the file extension.
// Anything unrecognised is treated as JSON.
func DetectFormat(filename string) FileFormat {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, candidate := range info.Extensions {
			if ext == candidate {
				return format
			}
		}
	}
	return FormatJSON
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}

// Decode reads a store in the given format.
func Decode(r io.Reader, format FileFormat) (*Store, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(r)
	case FormatMsgpack:
		return decodeMsgpack(r)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
}

// Encode writes s in the given format, keeping store order.
func Encode(w io.Writer, s *Store, format FileFormat) error {
	switch format {
	case FormatJSON:
		return encodeJSON(w, s)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(s.Entries())
	}
	return fmt.Errorf("%w: %d", ErrUnknownFormat, format)
}

// decodeJSON walks the object token by token so key order survives.
func decodeJSON(r io.Reader) (*Store, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: expected an object, got %v", ErrMalformed, tok)
	}

	s := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected key %v", ErrMalformed, tok)
		}

		var chars []string
		if err := dec.Decode(&chars); err != nil {
			return nil, fmt.Errorf("%w: value of %q: %v", ErrMalformed, key, err)
		}
		s.Set(key, chars)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after object", ErrMalformed)
	}
	return s, nil
}

func encodeJSON(w io.Writer, s *Store) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("{")
	for i, entry := range s.Entries() {
		key, err := json.Marshal(entry.Key)
		if err != nil {
			return err
		}
		chars, err := json.Marshal(entry.Chars)
		if err != nil {
			return err
		}
		if i > 0 {
			bw.WriteString(",")
		}
		bw.WriteString("\n  ")
		bw.Write(key)
		bw.WriteString(": ")
		bw.Write(chars)
	}
	if s.Len() > 0 {
		bw.WriteString("\n")
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

func decodeMsgpack(r io.Reader) (*Store, error) {
	var entries []Entry
	if err := msgpack.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	s := New()
	for _, entry := range entries {
		s.Set(entry.Key, entry.Chars)
	}
	return s, nil
}

// Package entryfile reads key/value entries from files so they can be bulk
// imported into a map.
package entryfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/afero"

	"github.com/DerGut/bstmap/pkg/dict"
)

type Format string

const (
	// FormatText holds one entry per line, key and value split by the first
	// tab or, without a tab, by the first "=". Blank lines and lines
	// starting with "#" are skipped.
	FormatText Format = "text"

	// FormatCBOR holds either an array of [key, value] text pairs or a map
	// of text to text.
	FormatCBOR Format = "cbor"
)

var (
	ErrMalformed     = errors.New("malformed entry")
	ErrUnknownFormat = errors.New("unknown format")
)

type Entry = dict.Entry[string, string]

// ParseFormat maps a format name to a Format. An empty name selects the
// format from the file extension of name.
func ParseFormat(format, name string) (Format, error) {
	switch Format(strings.ToLower(format)) {
	case "":
		if strings.EqualFold(filepath.Ext(name), ".cbor") {
			return FormatCBOR, nil
		}

		return FormatText, nil
	case FormatText:
		return FormatText, nil
	case FormatCBOR:
		return FormatCBOR, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Read opens name on fs and decodes its entries in file order.
func Read(fs afero.Fs, name string, format Format) ([]Entry, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	entries, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	return entries, nil
}

func Decode(r io.Reader, format Format) ([]Entry, error) {
	switch format {
	case FormatText:
		return decodeText(r)
	case FormatCBOR:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}

		return decodeCBOR(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func decodeText(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}

		sep := "\t"
		if !strings.Contains(text, sep) {
			sep = "="
		}

		key, value, ok := strings.Cut(text, sep)
		if !ok {
			return nil, fmt.Errorf("line %d: %w: no separator", line, ErrMalformed)
		}

		entries = append(entries, Entry{Key: key, Value: value})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	return entries, nil
}

const (
	cborMajorArray = 4
	cborMajorMap   = 5
)

func decodeCBOR(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	switch data[0] >> 5 {
	case cborMajorArray:
		var pairs [][]string
		if err := cbor.Unmarshal(data, &pairs); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		entries := make([]Entry, 0, len(pairs))
		for i, p := range pairs {
			if len(p) != 2 {
				return nil, fmt.Errorf("pair %d: %w: got %d elements, want 2", i, ErrMalformed, len(p))
			}

			entries = append(entries, Entry{Key: p[0], Value: p[1]})
		}

		return entries, nil
	case cborMajorMap:
		var m map[string]string
		if err := cbor.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		entries := make([]Entry, 0, len(m))
		for k, v := range m {
			entries = append(entries, Entry{Key: k, Value: v})
		}

		return entries, nil
	default:
		return nil, fmt.Errorf("%w: top level item is neither an array nor a map", ErrMalformed)
	}
}

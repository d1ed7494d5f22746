// Package ingestion loads resume records from files, URLs and request bodies.
package ingestion

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/ats-resume/internal/fetch"
	"github.com/jonathan/ats-resume/internal/types"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load reads the records at source, which is a file path or an http(s) URL.
// With FormatAuto the format is taken from the extension, then the response
// content type, then the content itself.
func Load(ctx context.Context, source string, format Format) ([]types.Record, error) {
	return LoadWithOptions(ctx, source, format, nil)
}

// LoadWithOptions is Load with explicit fetch options for URL sources.
func LoadWithOptions(ctx context.Context, source string, format Format, opts *fetch.Options) ([]types.Record, error) {
	if format == FormatAuto {
		format = FormatFromExtension(source)
	}

	var data []byte
	if fetch.IsURL(source) {
		result, err := fetch.URL(ctx, source, opts)
		if err != nil {
			return nil, &InputReadError{Source: source, Message: "fetch failed", Cause: err}
		}
		if format == FormatAuto {
			format = FormatFromContentType(result.ContentType)
		}
		data = result.Body
	} else {
		content, err := os.ReadFile(source)
		if err != nil {
			return nil, &InputReadError{Source: source, Message: "failed to read file", Cause: err}
		}
		data = content
	}

	return Parse(source, data, format)
}

// Parse decodes data in the given format. source is used only in error messages.
func Parse(source string, data []byte, format Format) ([]types.Record, error) {
	if format == FormatAuto {
		format = sniff(data)
	}

	var (
		records []types.Record
		err     error
	)
	switch format {
	case FormatCSV:
		records, err = parseCSV(data)
	case FormatJSON:
		records, err = parseJSON(data)
	case FormatYAML:
		records, err = parseYAML(data)
	case FormatHTML:
		records, err = parseHTML(data)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, &InputReadError{Source: source, Message: fmt.Sprintf("invalid %s input", format), Cause: err}
	}

	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, &InputReadError{Source: source, Message: fmt.Sprintf("record %d is invalid", i+1), Cause: err}
		}
	}

	return records, nil
}

package ingestion

import (
	"bytes"
	"fmt"
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/jonathan/ats-resume/internal/fetch"
)

// Format identifies how a record source is encoded.
type Format string

// Supported formats.
const (
	FormatAuto Format = "auto"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHTML Format = "html"
)

// ParseFormat parses a user-supplied format name. The empty string means auto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "html", "htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want auto, csv, json, yaml or html)", s)
	}
}

// FormatFromExtension maps a file name or URL to a format. It returns FormatAuto when
// the extension is not recognized.
func FormatFromExtension(name string) Format {
	if fetch.IsURL(name) {
		if u, err := url.Parse(name); err == nil {
			name = u.Path
		}
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".csv":
		return FormatCSV
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatAuto
	}
}

// FormatFromContentType maps a MIME type to a format. It returns FormatAuto when the
// type is empty or not recognized.
func FormatFromContentType(contentType string) Format {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return FormatAuto
	}
	switch mediaType {
	case "text/csv", "application/csv":
		return FormatCSV
	case "application/json":
		return FormatJSON
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return FormatYAML
	case "text/html", "application/xhtml+xml":
		return FormatHTML
	default:
		return FormatAuto
	}
}

// sniff guesses the format from the first non-space bytes of data. CSV is the fallback.
func sniff(data []byte) Format {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM))
	switch {
	case bytes.HasPrefix(trimmed, []byte("[")):
		return FormatJSON
	case bytes.HasPrefix(trimmed, []byte("<")):
		return FormatHTML
	case bytes.HasPrefix(trimmed, []byte("- ")), bytes.HasPrefix(trimmed, []byte("---")):
		return FormatYAML
	default:
		return FormatCSV
	}
}

// Package reader loads raw data lines from a sales file, tolerating several
// text encodings. The header line and blank lines are excluded from the
// result; line order is preserved.
package reader

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"sales-analytics/internal/logging"
	"sales-analytics/internal/pipeerror"

	"golang.org/x/text/encoding/charmap"
)

// fileEncoding is one entry in the prioritized decode attempt list.
type fileEncoding struct {
	name   string
	decode func([]byte) (string, error)
}

// encodings are tried in order; the first one that decodes the file without
// error wins. ISO 8859-1 accepts any byte sequence, so it acts as the
// fallback for files that are not valid UTF-8.
var encodings = []fileEncoding{
	{
		name: "utf-8",
		decode: func(data []byte) (string, error) {
			if !utf8.Valid(data) {
				return "", fmt.Errorf("data is not valid UTF-8")
			}
			return string(data), nil
		},
	},
	{
		name: "iso-8859-1",
		decode: func(data []byte) (string, error) {
			decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
			if err != nil {
				return "", err
			}
			return string(decoded), nil
		},
	},
	{
		name: "windows-1252",
		decode: func(data []byte) (string, error) {
			decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
			if err != nil {
				return "", err
			}
			return string(decoded), nil
		},
	},
}

// encodingNames lists the attempted encodings for error reporting.
func encodingNames() []string {
	names := make([]string, len(encodings))
	for i, enc := range encodings {
		names[i] = enc.name
	}
	return names
}

// ReadLines reads the sales file at path and returns its data lines with the
// header line and blank lines removed.
//
// A missing file returns a *pipeerror.NotFoundError and a file that no
// attempted encoding can decode returns a *pipeerror.DecodeError. Both are
// recoverable: the caller logs them and continues with an empty line set.
func ReadLines(path string, logger logging.Logger) ([]string, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Info("Reading sales data file", logging.Field{Key: logging.FieldFile, Value: path})

	info, err := os.Stat(path)
	if os.IsNotExist(err) || (err == nil && info.IsDir()) {
		return nil, &pipeerror.NotFoundError{Path: path}
	}

	data, err := os.ReadFile(path) // #nosec G304 -- CLI tool reads user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", path, err)
	}

	for _, enc := range encodings {
		decoded, err := enc.decode(data)
		if err != nil {
			logger.Debug("Encoding attempt failed",
				logging.Field{Key: logging.FieldEncoding, Value: enc.name})
			continue
		}

		lines := splitDataLines(decoded)
		logger.Info("Successfully read sales data",
			logging.Field{Key: logging.FieldEncoding, Value: enc.name},
			logging.Field{Key: logging.FieldCount, Value: len(lines)})
		return lines, nil
	}

	return nil, &pipeerror.DecodeError{Path: path, Encodings: encodingNames()}
}

// splitDataLines splits decoded file content into trimmed data lines,
// dropping the header line and any blank lines.
func splitDataLines(content string) []string {
	rawLines := strings.Split(content, "\n")
	if len(rawLines) <= 1 {
		return nil
	}

	var lines []string
	for _, raw := range rawLines[1:] {
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

package ingestion

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-resume/internal/types"
)

// columns are the header names every tabular source must carry.
var columns = [...]string{"section", "subsection", "content"}

// columnIndex maps the required columns to their positions in header.
func columnIndex(header []string) ([3]int, error) {
	idx := [3]int{-1, -1, -1}
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		for c, want := range columns {
			if name == want && idx[c] < 0 {
				idx[c] = i
			}
		}
	}
	for c, i := range idx {
		if i < 0 {
			return idx, fmt.Errorf("missing column %q", columns[c])
		}
	}
	return idx, nil
}

// recordFromRow builds a record from a row, treating missing trailing cells as empty.
func recordFromRow(row []string, idx [3]int) types.Record {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return types.Record{
		Section:    types.Section(strings.TrimSpace(cell(idx[0]))),
		Subsection: strings.TrimSpace(cell(idx[1])),
		Content:    cell(idx[2]),
	}
}

func parseCSV(data []byte) ([]types.Record, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("missing header row")
	}
	if err != nil {
		return nil, err
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []types.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, recordFromRow(row, idx))
	}
	return records, nil
}

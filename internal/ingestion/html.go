package ingestion

import (
	"bytes"
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/ats-resume/internal/types"
)

// parseHTML reads the first <table> whose header row names all three columns.
// The header row is the first row of the table, whether it uses <th> or <td> cells.
func parseHTML(data []byte) ([]types.Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var (
		records []types.Record
		found   bool
	)
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		rows := table.Find("tr")
		if rows.Length() == 0 {
			return true
		}

		idx, err := columnIndex(cellTexts(rows.First()))
		if err != nil {
			return true
		}

		found = true
		rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
			cells := cellTexts(row)
			if len(cells) == 0 {
				return
			}
			records = append(records, recordFromRow(cells, idx))
		})
		return false
	})

	if !found {
		return nil, errors.New("no table has the required record columns")
	}
	return records, nil
}

func cellTexts(row *goquery.Selection) []string {
	var cells []string
	row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, strings.TrimSpace(cell.Text()))
	})
	return cells
}

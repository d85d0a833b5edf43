package tsv

import (
	"errors"
	"fmt"
	"io"
)

// ErrEmpty is returned by ParseRecords when the text has no header record.
var ErrEmpty = errors.New("file has no header row")

// ParseRecords reads tab-separated text whose first record names the columns
// and returns one map per following record. Short records are padded with
// empty values and extra cells are dropped.
func ParseRecords(text string) ([]map[string]string, error) {
	r := newReader(text)

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	records := []map[string]string{}
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record %d: %w", len(records)+1, err)
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			} else {
				row[name] = ""
			}
		}
		records = append(records, row)
	}

	return records, nil
}

package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// WriteRecordsCSV writes one CSV row per record. The header is the union of
// observed keys: requested columns first (in request order), any remaining
// keys after that, sorted. Records missing a column get an empty cell.
// An existing destination file is overwritten.
func WriteRecordsCSV(path string, records []map[string]any, columns []string) error {
	header := headerFor(records, columns)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return err
		}
	}

	row := make([]string, len(header))
	for _, rec := range records {
		for i, col := range header {
			v, ok := rec[col]
			if !ok {
				row[i] = ""
				continue
			}
			row[i] = cellString(v)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func headerFor(records []map[string]any, columns []string) []string {
	observed := make(map[string]bool)
	for _, rec := range records {
		for k := range rec {
			observed[k] = true
		}
	}

	header := make([]string, 0, len(observed))
	for _, col := range columns {
		if observed[col] {
			header = append(header, col)
			delete(observed, col)
		}
	}

	extra := make([]string, 0, len(observed))
	for k := range observed {
		extra = append(extra, k)
	}
	sort.Strings(extra)

	return append(header, extra...)
}

// cellString stringifies a decoded JSON value for a CSV cell. Nested values
// (objects, arrays) are written through as JSON.
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}

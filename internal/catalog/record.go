package catalog

import (
	"encoding/csv"
	"io"
	"os"
	"strings"
)

// Record is one raw row from the backing record source.
type Record struct {
	Parent string // category
	Name   string
	Object string // drag payload, may be empty
}

// LoadStats reports what the loader kept and dropped.
type LoadStats struct {
	Kept      int
	Skipped   int // rows missing a parent or name value
	Malformed int // rows the CSV reader could not parse
}

// Load reads records from the CSV file at path. A missing or unreadable
// source yields an empty result rather than an error: an empty palette is
// a valid startup state and must never block the host application.
func Load(path string) ([]Record, LoadStats) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader reads records from r. The first row is a header naming the
// parent, name, and object columns; column order is irrelevant. Rows with
// an empty parent or name are skipped silently, a missing object value
// defaults to the empty string, and a malformed row never aborts the rows
// that follow it.
func LoadReader(r io.Reader) ([]Record, LoadStats) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, LoadStats{}
	}
	cols := headerIndex(header)
	parentIdx, haveParent := cols["parent"]
	nameIdx, haveName := cols["name"]
	objectIdx, haveObject := cols["object"]
	if !haveParent || !haveName {
		return nil, LoadStats{}
	}

	var records []Record
	var stats LoadStats
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			stats.Malformed++
			continue
		}
		parent := fieldAt(row, parentIdx)
		name := fieldAt(row, nameIdx)
		if parent == "" || name == "" {
			stats.Skipped++
			continue
		}
		object := ""
		if haveObject {
			object = fieldAt(row, objectIdx)
		}
		records = append(records, Record{Parent: parent, Name: name, Object: object})
		stats.Kept++
	}
	return records, stats
}

func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, field := range header {
		cols[strings.ToLower(strings.TrimSpace(field))] = i
	}
	return cols
}

func fieldAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

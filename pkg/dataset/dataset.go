// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
)

// Dataset is a single CSV file held in memory: an ordered header and rows in
// file order. A zero-byte file loads as an empty dataset with no columns.
type Dataset struct {
	Path    string
	Columns []string
	Rows    [][]string
}

// ReadFile loads a CSV file. Column names are whitespace-trimmed and a
// leading UTF-8 byte order mark is stripped. A row whose field count differs
// from the header fails with a MalformedCSVError carrying the line number.
func ReadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, err
	}
	defer f.Close()
	return read(f, path)
}

func read(f io.Reader, path string) (*Dataset, error) {
	r := csv.NewReader(f)
	ds := &Dataset{Path: path}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &MalformedCSVError{Path: path, Line: pe.Line, Err: pe.Err}
			}
			return nil, err
		}
		if ds.Columns == nil {
			for i, name := range rec {
				name = strings.TrimSpace(name)
				if i == 0 {
					name = strings.TrimPrefix(name, "\ufeff")
				}
				rec[i] = name
			}
			ds.Columns = rec
			continue
		}
		ds.Rows = append(ds.Rows, rec)
	}
	return ds, nil
}

// ColIndex returns the position of the named column.
func (ds *Dataset) ColIndex(name string) (int, bool) {
	for i, s := range ds.Columns {
		if s == name {
			return i, true
		}
	}
	return 0, false
}

// Index maps each value of the key column to its row offset. It fails with a
// DuplicateKeyError on the first repeated key value.
func (ds *Dataset) Index(key string) (map[string]int, error) {
	j, ok := ds.ColIndex(key)
	if !ok {
		return nil, &MissingColumnError{Path: ds.Path, Column: key}
	}
	m := make(map[string]int, len(ds.Rows))
	for i, row := range ds.Rows {
		v := row[j]
		if _, ok := m[v]; ok {
			return nil, &DuplicateKeyError{Path: ds.Path, Column: key, Value: v}
		}
		m[v] = i
	}
	return m, nil
}

// Project returns a copy keeping only the named columns, in the given order.
// Names not present in the dataset are skipped.
func (ds *Dataset) Project(names ...string) *Dataset {
	out := &Dataset{Path: ds.Path}
	src := []int{}
	for _, name := range names {
		if j, ok := ds.ColIndex(name); ok {
			out.Columns = append(out.Columns, name)
			src = append(src, j)
		}
	}
	for _, row := range ds.Rows {
		r := make([]string, len(src))
		for i, j := range src {
			r[i] = row[j]
		}
		out.Rows = append(out.Rows, r)
	}
	return out
}

// RenameColumns renames columns in place according to m, skipping names that
// are not present.
func (ds *Dataset) RenameColumns(m map[string]string) {
	for i, name := range ds.Columns {
		if s, ok := m[name]; ok {
			ds.Columns[i] = s
		}
	}
}

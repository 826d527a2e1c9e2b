// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package dataset

import (
	"bufio"
	"encoding/csv"
	"os"
)

// WriteFile writes the dataset as UTF-8 CSV, truncating any existing file.
// When bom is true the file starts with a UTF-8 byte order mark, which some
// spreadsheet programs require to detect the encoding.
func WriteFile(path string, ds *Dataset, bom bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if bom {
		if _, err := w.WriteString("\ufeff"); err != nil {
			return err
		}
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(ds.Columns); err != nil {
		return err
	}
	for _, row := range ds.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package merge

import (
	"github.com/asvs-tools/asvsgen/pkg/conf"
	"github.com/asvs-tools/asvsgen/pkg/dataset"
	"github.com/asvs-tools/asvsgen/pkg/pbar"
)

type Options struct {
	// Key is the join column. It must appear in both datasets and its values
	// must be unique within each.
	Key string

	// PrimarySuffix and SecondarySuffix disambiguate non-key columns that
	// appear in both datasets.
	PrimarySuffix   string
	SecondarySuffix string

	// Unmatched decides what happens to primary rows without a secondary
	// counterpart.
	Unmatched conf.UnmatchedPolicy

	Bar pbar.Bar
}

type Result struct {
	Dataset *dataset.Dataset

	// UnmatchedPrimary counts primary rows whose key has no secondary match.
	UnmatchedPrimary int

	// DroppedSecondary counts secondary rows whose key never appears in the
	// primary dataset. They are not part of the output.
	DroppedSecondary int
}

// Merge left-outer joins secondary into primary on opts.Key. Output columns
// are all primary columns followed by all secondary columns except the key,
// output rows follow primary row order. Duplicate key values in either
// dataset abort the merge.
func Merge(primary, secondary *dataset.Dataset, opts Options) (*Result, error) {
	if opts.PrimarySuffix == "" {
		opts.PrimarySuffix = "_1"
	}
	if opts.SecondarySuffix == "" {
		opts.SecondarySuffix = "_2"
	}
	if opts.Unmatched == "" {
		opts.Unmatched = conf.UnmatchedEmit
	}
	bar := opts.Bar
	if bar == nil {
		bar = pbar.NewNoopBar()
	}

	// reject duplicate keys in primary up front
	if _, err := primary.Index(opts.Key); err != nil {
		return nil, err
	}
	pKey, _ := primary.ColIndex(opts.Key)

	res := &Result{}
	// a secondary file that never materialized (e.g. the generation step was
	// skipped) joins as if every key were unmatched
	if len(secondary.Columns) == 0 {
		res.Dataset = &dataset.Dataset{
			Columns: append([]string{}, primary.Columns...),
		}
		for _, row := range primary.Rows {
			bar.Incr()
			res.UnmatchedPrimary++
			if opts.Unmatched == conf.UnmatchedEmit {
				res.Dataset.Rows = append(res.Dataset.Rows, append([]string{}, row...))
			}
		}
		bar.Done()
		return res, nil
	}

	sIdx, err := secondary.Index(opts.Key)
	if err != nil {
		return nil, err
	}
	sKey, _ := secondary.ColIndex(opts.Key)

	collides := map[string]bool{}
	for _, name := range primary.Columns {
		if name == opts.Key {
			continue
		}
		if _, ok := secondary.ColIndex(name); ok {
			collides[name] = true
		}
	}
	columns := make([]string, 0, len(primary.Columns)+len(secondary.Columns)-1)
	for _, name := range primary.Columns {
		if collides[name] {
			name += opts.PrimarySuffix
		}
		columns = append(columns, name)
	}
	for i, name := range secondary.Columns {
		if i == sKey {
			continue
		}
		if collides[name] {
			name += opts.SecondarySuffix
		}
		columns = append(columns, name)
	}

	res.Dataset = &dataset.Dataset{Columns: columns}
	matched := make(map[int]struct{}, len(secondary.Rows))
	for _, row := range primary.Rows {
		bar.Incr()
		j, ok := sIdx[row[pKey]]
		if !ok {
			res.UnmatchedPrimary++
			if opts.Unmatched == conf.UnmatchedSkip {
				continue
			}
		}
		merged := make([]string, 0, len(columns))
		merged = append(merged, row...)
		for i := range secondary.Columns {
			if i == sKey {
				continue
			}
			if ok {
				merged = append(merged, secondary.Rows[j][i])
			} else {
				merged = append(merged, "")
			}
		}
		if ok {
			matched[j] = struct{}{}
		}
		res.Dataset.Rows = append(res.Dataset.Rows, merged)
	}
	res.DroppedSecondary = len(secondary.Rows) - len(matched)
	bar.Done()
	return res, nil
}

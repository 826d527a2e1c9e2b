// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package asvs

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/asvs-tools/asvsgen/pkg/dataset"
)

var reqIDPat = regexp.MustCompile(`^V?(\d+)\.(\d+)\.(\d+)$`)

// ReqID is a parsed ASVS requirement id such as "V1.2.3" or "1.2.3".
type ReqID struct {
	Chapter, Section, Req int
}

func ParseReqID(s string) (ReqID, bool) {
	m := reqIDPat.FindStringSubmatch(s)
	if m == nil {
		return ReqID{}, false
	}
	chapter, _ := strconv.Atoi(m[1])
	section, _ := strconv.Atoi(m[2])
	req, _ := strconv.Atoi(m[3])
	return ReqID{Chapter: chapter, Section: section, Req: req}, true
}

func (a ReqID) Less(b ReqID) bool {
	if a.Chapter != b.Chapter {
		return a.Chapter < b.Chapter
	}
	if a.Section != b.Section {
		return a.Section < b.Section
	}
	return a.Req < b.Req
}

// SortRows orders rows by numeric requirement id. Rows whose key does not
// parse keep their relative order and sort after all parseable ids. It
// returns the values that failed to parse.
func SortRows(ds *dataset.Dataset, key string) (unparseable []string) {
	j, ok := ds.ColIndex(key)
	if !ok {
		return nil
	}
	for _, row := range ds.Rows {
		if _, ok := ParseReqID(row[j]); !ok {
			unparseable = append(unparseable, row[j])
		}
	}
	sort.SliceStable(ds.Rows, func(k, l int) bool {
		a, aok := ParseReqID(ds.Rows[k][j])
		b, bok := ParseReqID(ds.Rows[l][j])
		if aok != bok {
			return aok
		}
		if !aok {
			return false
		}
		return a.Less(b)
	})
	return unparseable
}

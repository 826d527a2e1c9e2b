// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintTable(t *testing.T) {
	buf := bytes.NewBufferString("")
	PrintTable(buf, [][]string{
		{"req_id", "req_description_ja"},
		{"V1.1.1", "検証する"},
		{"V1.1.10", "x"},
	}, 2)
	assert.Equal(t, joinLines(
		"  req_id  req_description_ja",
		"  V1.1.1  検証する          ",
		"  V1.1.10 x                 ",
	), buf.String())
}

func joinLines(sl ...string) string {
	s := ""
	for _, line := range sl {
		s += line + "\n"
	}
	return s
}

// Copyright 2026 The Scapegoat Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Dump renders a tabular snapshot of every arena slot — occupied or free,
// in physical order — to w. Intended for interactive debugging only; never
// called from the hot insert/remove/get paths.
func Dump[K any, V any, Ix Index](t *Tree[K, V, Ix], w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"slot", "state", "key", "left", "right", "root", "min", "max"})

	rootIdx, hasRoot := t.RootIdx()
	minIdx, _ := t.MinIdx()
	maxIdx, _ := t.MaxIdx()

	for idx := 0; idx < t.arena.Len(); idx++ {
		row := make([]string, 8)
		row[0] = strconv.Itoa(idx)

		if !t.arena.IsOccupied(idx) {
			row[1] = "free"
			row[2], row[3], row[4] = "-", "-", "-"
		} else {
			node := t.arena.Node(idx)
			row[1] = "live"
			row[2] = fmt.Sprintf("%v", node.Key)
			if l, ok := node.Left(); ok {
				row[3] = strconv.Itoa(l)
			} else {
				row[3] = "-"
			}
			if r, ok := node.Right(); ok {
				row[4] = strconv.Itoa(r)
			} else {
				row[4] = "-"
			}
		}

		row[5] = marker(hasRoot && rootIdx == idx)
		row[6] = marker(hasRoot && minIdx == idx)
		row[7] = marker(hasRoot && maxIdx == idx)

		table.Append(row)
	}

	table.Render()
}

func marker(b bool) string {
	if b {
		return "*"
	}
	return ""
}

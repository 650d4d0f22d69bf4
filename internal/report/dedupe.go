package report

import "sort"

// Level is how many leading columns participate in sorting and leading-dupe
// removal: date, channel, user.
const Level = 3

// SortRows orders cells lexicographically by the first level columns as a
// composite key. The sort is stable, so rows sharing a full key keep their
// accumulation order.
func SortRows(cells [][]string, level int) {
	sort.SliceStable(cells, func(i, j int) bool {
		a, b := cells[i], cells[j]
		for k := 0; k < level && k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
}

// RemoveLeadingDupes blanks repeated contiguous values in the first level
// columns of already-sorted cells. A cell is blanked only when it repeats
// the running lead AND every column to its left in the same row is blanked,
// so a repeated user under a changed channel stays visible.
//
// Mutates cells in place and returns it. The transform is idempotent.
func RemoveLeadingDupes(cells [][]string, level int) [][]string {
	for col := 0; col < level; col++ {
		var lead string
		leadSet := false
		for _, row := range cells {
			if col >= len(row) {
				continue
			}
			if !leadSet || row[col] != lead {
				lead = row[col]
				leadSet = true
				continue
			}
			if col == 0 || row[col-1] == "" {
				row[col] = ""
			}
		}
	}
	return cells
}

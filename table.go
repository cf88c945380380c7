package md2slack

// renderTable shapes pre-tokenized table rows into a TableBlock under the
// table ceilings. The block compiler owns tokenizing and has already
// consumed the structural divider row; this stage only caps.
//
// Capping always drops from the end: rightmost cells beyond the column cap,
// bottommost rows beyond the row cap. Nothing is merged, re-wrapped, or
// reordered. The header row is capped independently of the data-row cap.
func renderTable(header []string, body [][]string, limits Limits) TableBlock {
	rows := make([][]string, 0, min(len(body), limits.MaxTableRows))
	for _, row := range body {
		if len(rows) == limits.MaxTableRows {
			break
		}
		rows = append(rows, capCells(row, limits.MaxTableCols))
	}
	return TableBlock{
		Header: capCells(header, limits.MaxTableCols),
		Rows:   rows,
	}
}

// capCells truncates a row to its first max cells.
func capCells(row []string, max int) []string {
	if len(row) <= max {
		return row
	}
	return row[:max]
}

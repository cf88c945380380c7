package md2slack

import (
	"fmt"
	"testing"
)

func TestRenderTableCaps(t *testing.T) {
	t.Parallel()

	limits := DefaultLimits()

	tests := []struct {
		name       string
		headerCols int
		bodyRows   int
		bodyCols   int
		wantRows   int
		wantCols   int
		wantHeader int
	}{
		{
			name:       "small table untouched",
			headerCols: 3,
			bodyRows:   2,
			bodyCols:   3,
			wantRows:   2,
			wantCols:   3,
			wantHeader: 3,
		},
		{
			name:       "wide table drops rightmost cells",
			headerCols: 25,
			bodyRows:   5,
			bodyCols:   25,
			wantRows:   5,
			wantCols:   20,
			wantHeader: 20,
		},
		{
			name:       "tall table drops bottommost rows",
			headerCols: 2,
			bodyRows:   120,
			bodyCols:   2,
			wantRows:   100,
			wantCols:   2,
			wantHeader: 2,
		},
		{
			name:       "exactly at both caps",
			headerCols: 20,
			bodyRows:   100,
			bodyCols:   20,
			wantRows:   100,
			wantCols:   20,
			wantHeader: 20,
		},
		{
			name:       "no data rows",
			headerCols: 4,
			bodyRows:   0,
			bodyCols:   0,
			wantRows:   0,
			wantCols:   0,
			wantHeader: 4,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			block := renderTable(makeRow("h", tt.headerCols), makeGrid(tt.bodyRows, tt.bodyCols), limits)

			if len(block.Header) != tt.wantHeader {
				t.Errorf("header has %d cells, want %d", len(block.Header), tt.wantHeader)
			}
			if len(block.Rows) != tt.wantRows {
				t.Fatalf("table has %d rows, want %d", len(block.Rows), tt.wantRows)
			}
			for i, row := range block.Rows {
				if len(row) != tt.wantCols {
					t.Errorf("row %d has %d cells, want %d", i, len(row), tt.wantCols)
				}
			}
		})
	}
}

func TestRenderTablePreservesOrder(t *testing.T) {
	t.Parallel()

	limits := Limits{
		HeaderLimit:  DefaultHeaderLimit,
		SectionLimit: DefaultSectionLimit,
		MaxBlocks:    DefaultMaxBlocks,
		MaxTableRows: 2,
		MaxTableCols: 2,
	}

	header := []string{"h0", "h1", "h2"}
	body := [][]string{
		{"r0c0", "r0c1", "r0c2"},
		{"r1c0", "r1c1", "r1c2"},
		{"r2c0", "r2c1", "r2c2"},
	}

	block := renderTable(header, body, limits)

	wantHeader := []string{"h0", "h1"}
	for i, cell := range wantHeader {
		if block.Header[i] != cell {
			t.Errorf("header[%d] = %q, want %q", i, block.Header[i], cell)
		}
	}

	wantRows := [][]string{{"r0c0", "r0c1"}, {"r1c0", "r1c1"}}
	if len(block.Rows) != len(wantRows) {
		t.Fatalf("got %d rows, want %d", len(block.Rows), len(wantRows))
	}
	for i, row := range wantRows {
		for j, cell := range row {
			if block.Rows[i][j] != cell {
				t.Errorf("rows[%d][%d] = %q, want %q", i, j, block.Rows[i][j], cell)
			}
		}
	}
}

// makeRow builds a row of n cells labeled prefix0..prefixN.
func makeRow(prefix string, n int) []string {
	row := make([]string, n)
	for i := range row {
		row[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return row
}

// makeGrid builds rows x cols cells.
func makeGrid(rows, cols int) [][]string {
	grid := make([][]string, rows)
	for i := range grid {
		grid[i] = makeRow(fmt.Sprintf("r%dc", i), cols)
	}
	return grid
}

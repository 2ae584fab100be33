// Package table projects filtered collections into display-ready rows.
package table

// Heading describes one column of a rendered table.
type Heading struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// Cell is one rendered value. Badge cells are drawn as coloured labels.
type Cell struct {
	Text  string `json:"text"`
	Tone  Tone   `json:"tone"`
	Badge bool   `json:"badge,omitempty"`
}

// Row is one rendered record. A placeholder row spans every column.
type Row struct {
	Key         string `json:"key,omitempty"`
	Cells       []Cell `json:"cells"`
	Span        int    `json:"span,omitempty"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

// Table is the display projection of a collection.
type Table struct {
	Columns []Heading `json:"columns"`
	Rows    []Row     `json:"rows"`
}

// Column projects one field of T into a cell.
type Column[T any] struct {
	Key   string
	Title string
	Cell  func(T) Cell
}

// Render produces one row per item in order. An empty input renders a single placeholder row
// spanning all columns.
func Render[T any](items []T, key func(T) string, columns []Column[T], placeholder string) Table {
	headings := make([]Heading, 0, len(columns))
	for _, col := range columns {
		headings = append(headings, Heading{Key: col.Key, Title: col.Title})
	}
	if len(items) == 0 {
		return Table{
			Columns: headings,
			Rows: []Row{{
				Cells:       []Cell{Text(placeholder)},
				Span:        len(columns),
				Placeholder: true,
			}},
		}
	}
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		row := Row{Cells: make([]Cell, 0, len(columns))}
		if key != nil {
			row.Key = key(item)
		}
		for _, col := range columns {
			if col.Cell == nil {
				row.Cells = append(row.Cells, Cell{})
				continue
			}
			row.Cells = append(row.Cells, col.Cell(item))
		}
		rows = append(rows, row)
	}
	return Table{Columns: headings, Rows: rows}
}

// Text is a plain cell.
func Text(s string) Cell {
	return Cell{Text: s}
}

// Badge is a coloured label cell.
func Badge(s string, tone Tone) Cell {
	return Cell{Text: s, Tone: tone, Badge: true}
}

// YesNo renders a boolean as a "Sí"/"No" badge.
func YesNo(v bool) Cell {
	if v {
		return Badge("Sí", TonePositive)
	}
	return Badge("No", ToneNeutral)
}

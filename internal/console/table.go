package console

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/ytget/list-manager/internal/store"
)

const emptyTableText = "(no items)"

type tableRow struct {
	label    string
	onRemove store.RemoveFunc
}

// TableRenderer keeps the rendered rows with their remove controls and
// prints them as a table.
type TableRenderer struct {
	out     io.Writer
	colored bool
	rows    []tableRow
}

// NewTableRenderer creates a renderer printing to out. A nil out leaves the
// renderer without a surface, which the store reports as a missing target.
func NewTableRenderer(out io.Writer, colored bool) *TableRenderer {
	return &TableRenderer{out: out, colored: colored}
}

// RenderEmpty implements store.Renderer
func (t *TableRenderer) RenderEmpty() error {
	if t.out == nil {
		return store.ErrTargetNotFound
	}
	t.rows = nil
	return nil
}

// AppendRow implements store.Renderer
func (t *TableRenderer) AppendRow(label string, index int, onRemove store.RemoveFunc) {
	if index != len(t.rows) {
		log.Printf("TableRenderer: row %d appended at position %d", index, len(t.rows))
	}
	t.rows = append(t.rows, tableRow{label: label, onRemove: onRemove})
}

// RemoveRow implements store.Renderer
func (t *TableRenderer) RemoveRow(index int) {
	if index < 0 || index >= len(t.rows) {
		log.Printf("TableRenderer: no row at index %d (%d rows)", index, len(t.rows))
		return
	}
	t.rows = append(t.rows[:index], t.rows[index+1:]...)
}

// RebindRow implements store.Renderer
func (t *TableRenderer) RebindRow(index int, onRemove store.RemoveFunc) {
	if index < 0 || index >= len(t.rows) {
		return
	}
	t.rows[index].onRemove = onRemove
}

// ClearRows implements store.Renderer
func (t *TableRenderer) ClearRows() {
	t.rows = nil
}

// Labels returns the rendered labels in order
func (t *TableRenderer) Labels() []string {
	labels := make([]string, len(t.rows))
	for i, r := range t.rows {
		labels[i] = r.label
	}
	return labels
}

// Press runs the remove control bound to the row at index, the way a click
// on that row's button would.
func (t *TableRenderer) Press(index int) error {
	if index < 0 || index >= len(t.rows) {
		return fmt.Errorf("press row %d of %d: %w", index, len(t.rows), store.ErrIndexOutOfRange)
	}
	if t.rows[index].onRemove == nil {
		return fmt.Errorf("press row %d: no control bound", index)
	}
	return t.rows[index].onRemove()
}

// Print writes the table
func (t *TableRenderer) Print() {
	if len(t.rows) == 0 {
		_, _ = newColor(t.colored, color.Faint, color.Italic).Fprintln(t.out, emptyTableText)
		return
	}

	bold := newColor(t.colored, color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Item"))
	for i, r := range t.rows {
		tbl.AddRow(i, r.label)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(t.out, tbl)
}

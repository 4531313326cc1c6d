package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/list-manager/internal/store"
)

// ListView renders the list as a vertical stack of ItemRow widgets. It is
// the store's Renderer for the desktop frontend.
type ListView struct {
	box    *fyne.Container
	rows   []*ItemRow
	mobile *MobileUI
}

// NewListView creates a list view with its own container
func NewListView(mobile *MobileUI) *ListView {
	return NewListViewOn(container.NewVBox(), mobile)
}

// NewListViewOn renders into box. A nil box makes RenderEmpty fail with
// store.ErrTargetNotFound.
func NewListViewOn(box *fyne.Container, mobile *MobileUI) *ListView {
	return &ListView{box: box, mobile: mobile}
}

// Container returns the container holding the rows
func (v *ListView) Container() *fyne.Container {
	return v.box
}

// RenderEmpty clears the surface and prepares an empty list
func (v *ListView) RenderEmpty() error {
	if v.box == nil {
		return store.ErrTargetNotFound
	}
	v.box.RemoveAll()
	v.rows = nil
	return nil
}

// AppendRow adds a row at the end
func (v *ListView) AppendRow(label string, index int, onRemove store.RemoveFunc) {
	if index != len(v.rows) {
		log.Printf("ListView: append at index %d but %d rows are shown", index, len(v.rows))
	}
	row := NewItemRow(label, onRemove, v.mobile)
	v.rows = append(v.rows, row)
	v.box.Add(row)
}

// RemoveRow removes the row at index
func (v *ListView) RemoveRow(index int) {
	if index < 0 || index >= len(v.rows) {
		log.Printf("ListView: no row at index %d (%d rows)", index, len(v.rows))
		return
	}
	row := v.rows[index]
	v.rows = append(v.rows[:index], v.rows[index+1:]...)
	v.box.Remove(row)
}

// RebindRow re-points the remove button of the row at index
func (v *ListView) RebindRow(index int, onRemove store.RemoveFunc) {
	if index < 0 || index >= len(v.rows) {
		log.Printf("ListView: cannot rebind missing row %d (%d rows)", index, len(v.rows))
		return
	}
	v.rows[index].SetOnRemove(onRemove)
}

// ClearRows removes every row
func (v *ListView) ClearRows() {
	v.rows = nil
	v.box.RemoveAll()
}

// Rows returns the rows in display order
func (v *ListView) Rows() []*ItemRow {
	out := make([]*ItemRow, len(v.rows))
	copy(out, v.rows)
	return out
}

// Labels returns the displayed texts in order
func (v *ListView) Labels() []string {
	out := make([]string, 0, len(v.rows))
	for _, row := range v.rows {
		out = append(out, row.Text())
	}
	return out
}

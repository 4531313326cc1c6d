package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/list-manager/internal/store"
)

// ItemRow is one list entry: the item text and a button that removes it
type ItemRow struct {
	widget.BaseWidget

	text   string
	mobile *MobileUI

	// UI components
	label     *widget.Label
	removeBtn *widget.Button

	onRemove store.RemoveFunc
}

// NewItemRow creates a row showing text and bound to onRemove
func NewItemRow(text string, onRemove store.RemoveFunc, mobile *MobileUI) *ItemRow {
	r := &ItemRow{
		text:     text,
		mobile:   mobile,
		onRemove: onRemove,
	}
	r.ExtendBaseWidget(r)
	r.createUI()
	return r
}

// createUI creates the UI components
func (r *ItemRow) createUI() {
	r.label = widget.NewLabel(r.text)
	r.label.Truncation = fyne.TextTruncateEllipsis
	r.label.Alignment = fyne.TextAlignLeading

	r.removeBtn = widget.NewButton(IconRemove, r.tapRemove)
	r.removeBtn.Importance = widget.DangerImportance
}

// Text returns the item shown by the row
func (r *ItemRow) Text() string {
	return r.text
}

// SetOnRemove re-points the remove button at a new callback
func (r *ItemRow) SetOnRemove(onRemove store.RemoveFunc) {
	r.onRemove = onRemove
}

// tapRemove runs the callback bound at tap time, never one captured when
// the button was built.
func (r *ItemRow) tapRemove() {
	if r.onRemove == nil {
		log.Printf("ItemRow: remove callback is nil for %q", r.text)
		return
	}
	if err := r.onRemove(); err != nil {
		log.Printf("ItemRow: remove %q failed: %v", r.text, err)
	}
}

// CreateRenderer creates the widget renderer
func (r *ItemRow) CreateRenderer() fyne.WidgetRenderer {
	return &itemRowRenderer{row: r}
}

// itemRowRenderer renders the item row widget
type itemRowRenderer struct {
	row    *ItemRow
	layout *fyne.Container
}

func (rr *itemRowRenderer) build() {
	if rr.layout != nil {
		return
	}
	rr.layout = container.NewBorder(nil, nil, nil, rr.row.mobile.TouchTarget(rr.row.removeBtn), rr.row.label)
}

// Layout positions the row content
func (rr *itemRowRenderer) Layout(size fyne.Size) {
	rr.build()
	rr.layout.Resize(size)
}

// MinSize returns the minimum size
func (rr *itemRowRenderer) MinSize() fyne.Size {
	rr.build()
	size := rr.layout.MinSize()
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}

// Refresh refreshes the renderer
func (rr *itemRowRenderer) Refresh() {
	rr.build()
	rr.layout.Refresh()
}

// Objects returns the renderer objects
func (rr *itemRowRenderer) Objects() []fyne.CanvasObject {
	rr.build()
	return []fyne.CanvasObject{rr.layout}
}

// Destroy releases renderer resources
func (rr *itemRowRenderer) Destroy() {}

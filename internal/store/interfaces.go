package store

import (
	"github.com/ytget/list-manager/internal/model"
)

// RemoveFunc is bound to one visual row and removes the item that row shows.
// It returns the store's hard error when the binding is stale.
type RemoveFunc func() error

// Renderer mirrors the list onto a visual surface.
type Renderer interface {
	// RenderEmpty clears the surface and prepares an empty list. It returns
	// ErrTargetNotFound when the surface is missing.
	RenderEmpty() error

	// AppendRow adds one row at the end, bound to a removal callback
	AppendRow(label string, index int, onRemove RemoveFunc)

	// RemoveRow removes the row at index
	RemoveRow(index int)

	// RebindRow re-points the removal callback of the row at index
	RebindRow(index int, onRemove RemoveFunc)

	// ClearRows removes every row
	ClearRows()
}

// Notifier surfaces transient user-facing messages. Implementations must
// not block.
type Notifier interface {
	Notify(message string, severity model.Severity)
}

// Focusable is an input handle that the store empties and refocuses after
// a successful add.
type Focusable interface {
	Clear()
	Focus()
}

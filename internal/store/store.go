package store

import (
	"errors"
	"fmt"
	"log"

	"github.com/ytget/list-manager/internal/model"
)

// ListStore holds the list state and is its only write path. It is not safe
// for concurrent use; every frontend drives it from a single goroutine.
type ListStore struct {
	list     *model.List
	view     Renderer
	notifier Notifier
}

// New binds a store to a renderer and performs the initial empty render.
// A nil notifier is replaced by LogNotifier.
func New(view Renderer, notifier Notifier) (*ListStore, error) {
	if view == nil {
		return nil, fmt.Errorf("create list store: %w", ErrTargetNotFound)
	}

	if err := view.RenderEmpty(); err != nil {
		if errors.Is(err, ErrTargetNotFound) {
			return nil, fmt.Errorf("create list store: %w", err)
		}
		return nil, fmt.Errorf("create list store: %w: %v", ErrTargetNotFound, err)
	}

	if notifier == nil {
		log.Printf("ListStore: no notifier supplied, falling back to log output")
		notifier = LogNotifier{}
	}

	return &ListStore{
		list:     model.NewList(),
		view:     view,
		notifier: notifier,
	}, nil
}

// AddItem validates raw and appends it. Rejections are reported through the
// notifier and leave the list unchanged. On success focus, when not nil, is
// emptied and focused again.
func (s *ListStore) AddItem(raw string, focus Focusable) {
	value := model.NormalizeItem(raw)

	switch err := model.ValidateItem(value); {
	case errors.Is(err, model.ErrEmptyItem):
		s.notifier.Notify(MsgEnterValue, model.SeverityWarning)
		return
	case errors.Is(err, model.ErrItemTooLong):
		s.notifier.Notify(MsgTooLong, model.SeverityWarning)
		return
	}

	if s.list.Contains(value) {
		s.notifier.Notify(MsgDuplicate(value), model.SeverityDanger)
		return
	}

	index := s.list.Append(value)
	s.view.AppendRow(value, index, s.removeAt(index))
	s.notifier.Notify(MsgAdded(value), model.SeveritySuccess)

	if focus != nil {
		focus.Clear()
		focus.Focus()
	}
}

// RemoveItem deletes the item at index. An index outside [0, Len()) is a
// caller defect and returns an error wrapping ErrIndexOutOfRange.
func (s *ListStore) RemoveItem(index int) error {
	name, ok := s.list.RemoveAt(index)
	if !ok {
		return indexOutOfRange(index, s.list.Len())
	}

	s.view.RemoveRow(index)

	// Every row after index moved up by one; point each control at the
	// position it now occupies.
	for i := 0; i < s.list.Len(); i++ {
		s.view.RebindRow(i, s.removeAt(i))
	}

	s.notifier.Notify(MsgRemoved(name), model.SeveritySuccess)
	return nil
}

// Items returns a copy of the current items in order
func (s *ListStore) Items() []string {
	return s.list.Items()
}

// Len returns the number of items
func (s *ListStore) Len() int {
	return s.list.Len()
}

// Clear removes every item. Clearing an empty list only notifies.
func (s *ListStore) Clear() {
	if s.list.Len() == 0 {
		s.notifier.Notify(MsgAlreadyEmpty, model.SeverityInfo)
		return
	}

	s.list.Reset()
	s.view.ClearRows()
	s.notifier.Notify(MsgCleared, model.SeveritySuccess)
}

// Seed adds each value in order as if typed by the user
func (s *ListStore) Seed(values []string) {
	for _, v := range values {
		s.AddItem(v, nil)
	}
}

func (s *ListStore) removeAt(index int) RemoveFunc {
	return func() error {
		return s.RemoveItem(index)
	}
}

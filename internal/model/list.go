package model

// List is the ordered state of a list widget. Items keep insertion order
// and are addressed by zero-based index. List itself does not validate;
// the store decides what may be appended.
type List struct {
	items []string
}

// NewList creates an empty list
func NewList() *List {
	return &List{items: make([]string, 0)}
}

// Len returns the number of items
func (l *List) Len() int {
	return len(l.items)
}

// InRange reports whether index addresses an existing item
func (l *List) InRange(index int) bool {
	return index >= 0 && index < len(l.items)
}

// IndexOf returns the position of the item equal to value under
// case-insensitive comparison, or -1
func (l *List) IndexOf(value string) int {
	key := ItemKey(value)
	for i, item := range l.items {
		if ItemKey(item) == key {
			return i
		}
	}
	return -1
}

// Contains reports whether an item equal to value exists, ignoring case
func (l *List) Contains(value string) bool {
	return l.IndexOf(value) >= 0
}

// Append adds an item at the end and returns its index
func (l *List) Append(item string) int {
	l.items = append(l.items, item)
	return len(l.items) - 1
}

// RemoveAt deletes the item at index, shifting later items left
func (l *List) RemoveAt(index int) (string, bool) {
	if !l.InRange(index) {
		return "", false
	}
	removed := l.items[index]
	l.items = append(l.items[:index], l.items[index+1:]...)
	return removed, true
}

// Reset removes every item
func (l *List) Reset() {
	l.items = make([]string, 0)
}

// Items returns a copy of the items in order
func (l *List) Items() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

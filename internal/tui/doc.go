package tui

// Package tui provides the terminal frontend: a bubbletea model that draws
// the list, reads new items from a text input and shows the latest notice.

package store

// Package store implements the list state engine. ListStore owns the item
// list, checks the item rules on every mutation, asks a Renderer to mirror
// each change and reports outcomes through a Notifier. Frontends supply both
// collaborators and drive the store from their own event loops.

package ui

// Package ui contains the Fyne-based desktop frontend. ListView and
// ToastPanel implement the store's Renderer and Notifier on Fyne widgets;
// RootUI composes them with the input row and routes user input to the store.

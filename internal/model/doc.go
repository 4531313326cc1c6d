package model

// Package model defines the domain data used across the app: validated list
// items, the ordered list state, notification severities and delivered
// notices. Types carry no UI dependencies so every frontend can share them.

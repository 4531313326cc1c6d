package console

// Package console provides a line-oriented frontend. Commands are read from
// a script or stdin, the list is printed as a table and notices are written
// as colored lines.

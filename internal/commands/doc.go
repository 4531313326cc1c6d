package commands

// Package commands defines the list-manager command line: the root command,
// one subcommand per frontend and the version command.

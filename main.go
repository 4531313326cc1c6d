package main

import (
	"log"

	"github.com/ytget/list-manager/internal/commands"
	"github.com/ytget/list-manager/internal/desktop"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := commands.New(version, desktop.Run).Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}

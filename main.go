package main

import (
	"github.com/Qankor386/BookApp/internal/config"
	"github.com/Qankor386/BookApp/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}

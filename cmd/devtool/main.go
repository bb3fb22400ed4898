package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	registry := NewRegistry()
	registry.Register(&HealthCheckCommand{})
	registry.Register(&WatchCommand{})
	registry.Register(&CheckCoverageCommand{})

	os.Exit(run(registry, os.Args[1:]))
}

func run(registry *Registry, args []string) int {
	if len(args) < 1 {
		registry.PrintHelp()
		return 1
	}

	cmd, ok := registry.Get(args[0])
	if !ok {
		PrintError("Unknown command: %s", args[0])
		registry.PrintHelp()
		return 1
	}

	if err := cmd.Run(args[1:]); err != nil {
		PrintError("%s failed: %v", cmd.Name(), err)
		return 1
	}
	return 0
}

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/roster-im/roster/cmd/cli/commands"
)

func main() {
	// Load .env if present so ROSTER_SERVER_ADDRESS can come from a file
	_ = godotenv.Load()

	if err := commands.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

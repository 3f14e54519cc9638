package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/weekledger/cmd/add"
	"fjacquet/weekledger/cmd/importcsv"
	"fjacquet/weekledger/cmd/list"
	"fjacquet/weekledger/cmd/remove"
	"fjacquet/weekledger/cmd/root"
	"fjacquet/weekledger/cmd/suggest"
	"fjacquet/weekledger/cmd/week"

	"github.com/joho/godotenv"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Initialize root command flags
	root.Init()

	// 3. Add all subcommands
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(week.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(importcsv.Cmd)
	root.Cmd.AddCommand(suggest.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	// Try to find .env file in current directory
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		// Try to find .env in parent directory (project root)
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	// Load .env file silently without logging
	_ = godotenv.Load(envFile)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

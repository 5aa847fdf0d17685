package main

import (
	"fmt"
	"os"

	"gxplorer/internal/cmd"
)

// Entry point for the application
func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

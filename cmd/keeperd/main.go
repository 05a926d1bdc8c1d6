// Package main is the entry point for the keeperd standalone runner
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "keeperd",
	Short: "Dungeon simulation core",
	Long:  `keeperd runs the dungeon simulation core standalone: it seeds the rule tables, loads map-authored objects, and ticks the player economies until interrupted.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}

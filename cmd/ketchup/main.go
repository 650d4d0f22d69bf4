// Package main provides the entry point for the ketchup CLI.
//
// ketchup queries the Slack search API for unhandled questions across
// channels, filters the matches, and renders them as a table with
// clickable permalinks.
//
// Usage:
//
//	ketchup --token xoxp-... --config queries.yaml
//
// See --help for all available options.
package main

import "github.com/joho/godotenv"

// main is the entry point for ketchup.
func main() {
	// A missing .env file is the normal case.
	_ = godotenv.Load()

	Execute()
}

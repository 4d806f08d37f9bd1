// Package main provides the CLI entrypoint for driftpaper.
package main

func main() {
	Execute()
}

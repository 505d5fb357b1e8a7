package main

import "aocsync/cmd/aoc-cli/cmd"

func main() {
	cmd.Execute()
}

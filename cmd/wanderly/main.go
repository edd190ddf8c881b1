package main

import "github.com/wanderly/wanderly-cli/internal/cmd"

func main() {
	cmd.Execute()
}

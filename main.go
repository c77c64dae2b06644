package main

import "github.com/dotcommander/copycheck/cmd"

func main() {
	cmd.Execute()
}

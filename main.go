package main

import "github.com/gerunddev/evned/internal/commands"

func main() {
	commands.Execute()
}

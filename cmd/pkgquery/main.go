package main

import "pkgquery/cmd/pkgquery/commands"

func main() {
	commands.Execute()
}

package main

import "ovenreader/internal/cli"

func main() {
	cli.Execute()
}

package main

import "mispimport/internal/cli"

func main() {
	cli.Execute()
}

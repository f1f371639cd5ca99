package main

import "github.com/sartorproj/stattools/internal/cli"

func main() {
	cli.Execute()
}

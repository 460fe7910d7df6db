package main

import "github.com/inicfg/go-inicfg/internal/cli"

func main() {
	cli.Execute()
}

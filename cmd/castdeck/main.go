package main

import "github.com/kpeters/castdeck/internal/cli"

func main() {
	cli.Execute()
}

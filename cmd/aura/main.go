package main

import "aura/internal/cli"

func main() {
	cli.Execute()
}

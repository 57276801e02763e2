package main

import "deskentry/internal/cli"

func main() {
	cli.Execute()
}

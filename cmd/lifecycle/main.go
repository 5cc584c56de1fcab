package main

import "lifecycle-ca/internal/cli"

func main() {
	cli.Execute()
}

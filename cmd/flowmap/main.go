package main

import "github.com/aalvaropc/flowmap/internal/cli"

func main() {
	cli.Execute()
}

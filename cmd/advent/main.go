package main

import "github.com/katalvlaran/advent2022/internal/cli"

func main() {
	cli.Execute()
}

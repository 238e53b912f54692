package main

import "github.com/trendlens/runway-color/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/forPelevin/segview/internal/cli"

func main() { cli.Main() }

package main

import "github.com/Joshuacru/train-routes/internal/cli"

func main() {
	cli.Execute()
}

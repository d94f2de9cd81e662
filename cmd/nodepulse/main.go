package main

import "github.com/vietddude/nodepulse/internal/cli"

func main() {
	cli.Execute()
}

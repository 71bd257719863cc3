package main

import "github.com/alexshd/tameshiwari/internal/cli"

func main() {
	cli.Execute()
}

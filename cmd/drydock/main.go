package main

import (
	"github.com/drydock-dev/drydock/internal/cli"
)

func main() {
	cli.Execute()
}

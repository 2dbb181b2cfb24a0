package main

import (
	"github.com/minivc/minivc/cmd/minivc/cmd"
)

func main() {
	cmd.Execute()
}

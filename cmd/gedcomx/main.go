package main

import (
	"os"

	"github.com/jonesej/gedcomx-java/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}

package main

import (
	"github.com/dasdy/gamecard/cmd/gamecard"
	"github.com/dasdy/gamecard/logging"
)

func main() {
	// Console logging until the root command re-applies --verbose and --log-file.
	logging.Setup(logging.Options{})

	gamecard.Execute()
}

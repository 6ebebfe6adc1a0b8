package main

import (
	"os"

	"github.com/abhisek/timedquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

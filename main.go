package main

import (
	"os"

	"github.com/appclacks/scorecard/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}

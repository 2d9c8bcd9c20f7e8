package main

import (
	"os"

	"github.com/abrokate/powerplant-coding-challenge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/cicd-demo/backend/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

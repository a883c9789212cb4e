package main

import (
	"os"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

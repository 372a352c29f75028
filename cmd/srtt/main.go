package main

import (
	"os"

	"github.com/srt-tools/srtt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

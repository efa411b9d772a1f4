package main

import (
	"os"

	"github.com/typedio/ioctl/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

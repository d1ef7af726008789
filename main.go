package main

import (
	"fmt"
	"os"

	"lovedays/cli"
	"lovedays/debug"
)

func main() {
	closeLog, err := debug.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	debug.Log("main %#v", os.Args)
	err = cli.RunCLI(os.Args[1:])
	closeLog()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

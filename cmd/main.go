package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/devutils/toolbelt/cli"
)

func main() {
	godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/vnykmshr/cronmatch/cmd/cronmatch/root"
)

func main() {
	if err := root.GetRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

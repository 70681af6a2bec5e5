package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/terrastrap/terrastrap/internal/commands"
	"github.com/terrastrap/terrastrap/menu"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}
	if errors.Is(err, menu.ErrCancelled) {
		fmt.Fprintln(os.Stderr, "Cancelled.")
		os.Exit(130)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

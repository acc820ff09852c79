package main

import (
	"fmt"
	"os"

	"github.com/dzavadindev/dbdm/pkg/ui"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List terminal backends",
	Long:  `Shows the terminal backends accepted by --backend.`,
	Args:  cobra.NoArgs,
	Run:   runBackends,
}

func runBackends(cmd *cobra.Command, args []string) {
	hosts := registry.List()

	if len(hosts) == 0 {
		fmt.Println("No backends available.")
		return
	}

	fmt.Println("Available backends:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, h := range hosts {
		if len(h.Name) > maxNameLen {
			maxNameLen = len(h.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, h := range hosts {
		marker := ""
		if h.Name == defaultBackend {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxNameLen, h.Name, h.Description, marker)
	}

	fmt.Println()
	fmt.Println("Run 'flappy --backend <name>' to use one.")
}

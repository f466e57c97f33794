package main

import (
	"fmt"
	"strings"

	"github.com/c360studio/ontograph/importer"
)

// printSummary prints the run report inside a box, one line per count.
func printSummary(report importer.Report) {
	lines := []string{
		"Summary:",
		fmt.Sprintf("Total statements generated: %d", report.Total),
		fmt.Sprintf("Successfully executed statements: %d", report.Succeeded),
		fmt.Sprintf("Failed statements: %d", report.Failed),
	}
	printBoxed(lines)
}

func printBoxed(lines []string) {
	maxLength := 0
	for _, line := range lines {
		if len(line) > maxLength {
			maxLength = len(line)
		}
	}

	fmt.Println("╭" + strings.Repeat("─", maxLength+2) + "╮")
	for _, line := range lines {
		fmt.Printf("│ %-*s │\n", maxLength, line)
	}
	fmt.Println("╰" + strings.Repeat("─", maxLength+2) + "╯")
}

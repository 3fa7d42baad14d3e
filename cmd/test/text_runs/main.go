// Manual test program for slide text run extraction.
//
// Usage:
//
//	go run ./cmd/test/text_runs/main.go <pptx-file> [<slide-part-name> ...]
//
// Without part names, every slide is dumped. Each run is printed on its own
// line in %q form so empty runs and whitespace stay visible.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mtakagi/pptx2text/internal/pptx"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./cmd/test/text_runs/main.go <pptx-file> (<slide-part-name> ...)")
		os.Exit(1)
	}

	reader, err := pptx.Open(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to open PPTX: %v", err)
	}
	defer reader.Close()

	names := os.Args[2:]
	if len(names) == 0 {
		for _, s := range reader.Slides() {
			names = append(names, s.Name)
		}
	}

	for _, name := range names {
		content, err := reader.ReadFile(name)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", name, err)
		}

		runs, err := pptx.ExtractTextRuns(content)
		if err != nil {
			log.Fatalf("Failed to extract runs from %s: %v", name, err)
		}

		fmt.Printf("%s: %d runs\n", name, len(runs))
		for i, run := range runs {
			fmt.Printf("  [%d] %q\n", i, run)
		}
		fmt.Println()
	}
}

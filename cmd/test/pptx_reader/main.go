// Manual test program for the PPTX package reader.
//
// Usage:
//
//	go run ./cmd/test/pptx_reader/main.go <pptx-file-path>
//
// This program exercises the following functionality:
// - Opening PPTX files (ZIP archive)
// - Validating the package marker parts
// - Listing slide entries in ascending ordinal order
// - Reading document properties
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mtakagi/pptx2text/internal/pptx"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./cmd/test/pptx_reader/main.go <pptx-file>")
		os.Exit(1)
	}

	path := os.Args[1]

	fmt.Printf("Opening PPTX file: %s\n", path)
	reader, err := pptx.Open(path)
	if err != nil {
		log.Fatalf("Failed to open PPTX: %v", err)
	}
	defer reader.Close()

	fmt.Printf("✓ PPTX opened successfully\n")
	fmt.Printf("Total parts: %d\n\n", len(reader.Files()))

	md, err := reader.ReadMetadata()
	if err != nil {
		log.Printf("Failed to read document properties: %v", err)
	} else {
		fmt.Printf("Title: %q\n", md.Title)
		fmt.Printf("Creator: %q\n", md.Creator)
		fmt.Printf("Application: %q\n", md.Application)
		fmt.Printf("Slide count (app.xml): %d\n\n", md.SlideCount)
	}

	slides := reader.Slides()
	fmt.Printf("Slide entries: %d\n", len(slides))
	for _, s := range slides {
		fmt.Printf("  %3d  %s  (%s)\n", s.Ordinal, s.Name, s.Label())
	}
}

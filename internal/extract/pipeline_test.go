package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testPart is one named entry of a fixture archive
type testPart struct {
	name    string
	content []byte
}

func writeTestPPTX(t *testing.T, dir string, extra ...testPart) string {
	t.Helper()

	parts := []testPart{
		{"[Content_Types].xml", []byte(`<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`)},
		{"ppt/presentation.xml", []byte(`<?xml version="1.0"?><p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"/>`)},
	}
	parts = append(parts, extra...)

	path := filepath.Join(dir, "test.pptx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create archive: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	defer w.Close()

	for _, p := range parts {
		pw, err := w.Create(p.name)
		if err != nil {
			t.Fatalf("failed to create part %s: %v", p.name, err)
		}
		if _, err := pw.Write(p.content); err != nil {
			t.Fatalf("failed to write part %s: %v", p.name, err)
		}
	}
	return path
}

func slidePart(name string, runs ...string) testPart {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)
	b.WriteString(`<p:cSld><p:spTree>`)
	for _, r := range runs {
		b.WriteString(`<p:sp><p:txBody><a:p><a:r><a:t>` + r + `</a:t></a:r></a:p></p:txBody></p:sp>`)
	}
	b.WriteString(`</p:spTree></p:cSld></p:sld>`)
	return testPart{name: name, content: []byte(b.String())}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestPipeline_Extract(t *testing.T) {
	// slides stored out of ordinal order
	path := writeTestPPTX(t, t.TempDir(),
		slidePart("ppt/slides/slide3.xml", "Third"),
		slidePart("ppt/slides/slide1.xml", "Hello", "", "World"),
		slidePart("ppt/slides/slide2.xml"),
	)

	p := NewPipeline(Options{InputPath: path, Logger: discardLogger()})
	deck, err := p.Extract()
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(deck.Slides) != 3 {
		t.Fatalf("len(Slides) = %d, want 3", len(deck.Slides))
	}
	for i, want := range []int{1, 2, 3} {
		if deck.Slides[i].Ordinal != want {
			t.Errorf("Slides[%d].Ordinal = %d, want %d", i, deck.Slides[i].Ordinal, want)
		}
	}
	if deck.Slides[0].Label != "SLIDE1" {
		t.Errorf("Slides[0].Label = %q, want %q", deck.Slides[0].Label, "SLIDE1")
	}
	if got := deck.Slides[0].Text(); got != "Hello  World" {
		t.Errorf("Slides[0].Text() = %q, want %q", got, "Hello  World")
	}
	if got := deck.Slides[1].Text(); got != "" {
		t.Errorf("Slides[1].Text() = %q, want empty", got)
	}
}

func TestPipeline_Extract_NoSlides(t *testing.T) {
	path := writeTestPPTX(t, t.TempDir())

	p := NewPipeline(Options{InputPath: path, Logger: discardLogger()})
	deck, err := p.Extract()
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(deck.Slides) != 0 {
		t.Errorf("len(Slides) = %d, want 0", len(deck.Slides))
	}
}

func TestPipeline_Extract_OpenError(t *testing.T) {
	p := NewPipeline(Options{
		InputPath: filepath.Join(t.TempDir(), "missing.pptx"),
		Logger:    discardLogger(),
	})

	_, err := p.Extract()
	var openErr *OpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("Extract() error = %T(%v), want *OpenError", err, err)
	}
	if openErr.Unwrap() == nil {
		t.Error("OpenError.Unwrap() = nil")
	}
}

func TestPipeline_Extract_DecodeError(t *testing.T) {
	path := writeTestPPTX(t, t.TempDir(),
		slidePart("ppt/slides/slide1.xml", "fine"),
		testPart{name: "ppt/slides/slide2.xml", content: []byte{'<', 0xff, 0xfe, '>'}},
	)

	p := NewPipeline(Options{InputPath: path, Logger: discardLogger()})
	_, err := p.Extract()

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("Extract() error = %T(%v), want *DecodeError", err, err)
	}
	if decodeErr.Entry != "ppt/slides/slide2.xml" {
		t.Errorf("DecodeError.Entry = %q", decodeErr.Entry)
	}
}

func TestPipeline_Run_WritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPPTX(t, dir,
		slidePart("ppt/slides/slide2.xml", "Later"),
		slidePart("ppt/slides/slide1.xml", "Hello", "World"),
	)

	outPath := filepath.Join(dir, "out.txt")
	p := NewPipeline(Options{InputPath: path, OutputPath: outPath, Logger: discardLogger()})
	if err := p.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	want := "--- SLIDE1 ---\nHello World\n\n--- SLIDE2 ---\nLater\n\n"
	if string(got) != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPipeline_Run_Deterministic(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPPTX(t, dir,
		slidePart("ppt/slides/slide1.xml", "same"),
		slidePart("ppt/slides/slide2.xml", "every", "time"),
	)

	read := func(out string) []byte {
		t.Helper()
		p := NewPipeline(Options{InputPath: path, OutputPath: out, Logger: discardLogger()})
		if err := p.Run(); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		got, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("failed to read output: %v", err)
		}
		return got
	}

	first := read(filepath.Join(dir, "a.txt"))
	second := read(filepath.Join(dir, "b.txt"))
	if !bytes.Equal(first, second) {
		t.Error("repeated runs produced different output")
	}
}

func TestPipeline_Render_UnknownFormat(t *testing.T) {
	p := NewPipeline(Options{Logger: discardLogger()})
	p.Options.Format = Format("yaml")

	var buf bytes.Buffer
	if err := p.Render(&buf, &Deck{}); err == nil {
		t.Fatal("Render() expected error for unknown format")
	}
}

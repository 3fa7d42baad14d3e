package pptx

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Reader provides access to the parts of a PPTX package
type Reader struct {
	zipReader *zip.ReadCloser
	files     map[string]*zip.File
}

var (
	ErrContentTypesMissing = errors.New("[Content_Types].xml not found: not an OOXML package")
	ErrPresentationMissing = errors.New("ppt/presentation.xml not found: not a PowerPoint package")
)

// Open opens a PPTX file and validates its package structure
func Open(path string) (*Reader, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPTX: %w", err)
	}

	reader := &Reader{
		zipReader: zr,
		files:     make(map[string]*zip.File),
	}

	// Build part map with normalized paths
	for _, f := range zr.File {
		name := normalizePath(f.Name)
		reader.files[name] = f
	}

	if err := reader.validatePackage(); err != nil {
		zr.Close()
		return nil, err
	}

	return reader, nil
}

// Close closes the PPTX reader
func (r *Reader) Close() error {
	return r.zipReader.Close()
}

// Files returns a map of all parts in the package
func (r *Reader) Files() map[string]*zip.File {
	return r.files
}

// ReadFile reads the contents of a part from the package
func (r *Reader) ReadFile(path string) ([]byte, error) {
	path = normalizePath(path)
	f, ok := r.files[path]
	if !ok {
		return nil, fmt.Errorf("part not found: %s", path)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open part %s: %w", path, err)
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// validatePackage checks that the marker parts of a PowerPoint package exist
func (r *Reader) validatePackage() error {
	if _, ok := r.files["[Content_Types].xml"]; !ok {
		return ErrContentTypesMissing
	}
	if _, ok := r.files["ppt/presentation.xml"]; !ok {
		return ErrPresentationMissing
	}
	return nil
}

// normalizePath normalizes part paths (removes ./ prefix)
func normalizePath(path string) string {
	path = strings.TrimPrefix(path, "./")
	return path
}

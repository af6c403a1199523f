// Package format provides input format detection for pdfmd.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a recognized input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
)

// magicWindow is how far into a file the PDF header may appear. Some
// producers write a few bytes of junk before "%PDF-" and viewers accept it.
const magicWindow = 1024

var pdfMagic = []byte("%PDF-")

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return PDF
	default:
		return Unknown
	}
}

// DetectFromMagic checks the leading bytes for a PDF header.
// Returns Unknown if no header appears in the first 1024 bytes.
func DetectFromMagic(data []byte) Format {
	if len(data) > magicWindow {
		data = data[:magicWindow]
	}
	if bytes.Contains(data, pdfMagic) {
		return PDF
	}
	return Unknown
}

// DetectFromReader reads the start of r and detects its format from
// content. This is more reliable than extension-based detection.
func DetectFromReader(r io.ReaderAt) (Format, error) {
	magic := make([]byte, magicWindow)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}

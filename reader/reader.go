package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/tsawler/pdfmd/format"
	"github.com/tsawler/pdfmd/model"
	"github.com/tsawler/pdfmd/text"
)

// DefaultMaxBytes is the largest input accepted by default (10 MiB)
const DefaultMaxBytes int64 = 10 << 20

// ErrNotPDF is returned when the input does not start with a PDF header
var ErrNotPDF = errors.New("input is not a PDF")

// SizeLimitError reports an input larger than the configured maximum
type SizeLimitError struct {
	Size int64
	Max  int64
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("input is %d bytes, maximum is %d", e.Size, e.Max)
}

// Config controls admission and glyph coalescing
type Config struct {
	// MaxBytes rejects larger inputs; zero or less disables the check
	MaxBytes int64 `yaml:"max_bytes" mapstructure:"max_bytes"`

	// JoinGapRatio is the horizontal gap, as a fraction of the font size,
	// up to which consecutive glyphs belong to the same word
	JoinGapRatio float64 `yaml:"join_gap_ratio" mapstructure:"join_gap_ratio"`

	// WordGapRatio is the gap, as a fraction of the font size, up to which
	// glyphs stay in the same run separated by a space. Wider gaps start a
	// new run and are left to line assembly.
	WordGapRatio float64 `yaml:"word_gap_ratio" mapstructure:"word_gap_ratio"`

	// BaselineTolerance is the largest baseline difference, in points,
	// for glyphs in the same run
	BaselineTolerance float64 `yaml:"baseline_tolerance" mapstructure:"baseline_tolerance"`
}

// DefaultConfig returns the default reader configuration
func DefaultConfig() Config {
	return Config{
		MaxBytes:          DefaultMaxBytes,
		JoinGapRatio:      0.15,
		WordGapRatio:      0.8,
		BaselineTolerance: 0.5,
	}
}

// Reader extracts positioned text runs from a PDF
type Reader struct {
	file   *os.File // nil when reading from memory
	pdf    *pdf.Reader
	size   int64
	config Config
}

// Open opens a PDF file with the default configuration
func Open(filename string) (*Reader, error) {
	return OpenWithConfig(filename, DefaultConfig())
}

// OpenWithConfig opens a PDF file with a custom configuration
func OpenWithConfig(filename string, config Config) (*Reader, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	r, err := NewReaderWithConfig(file, info.Size(), config)
	if err != nil {
		file.Close()
		return nil, err
	}
	r.file = file

	return r, nil
}

// NewReader creates a reader over size bytes of r
func NewReader(r io.ReaderAt, size int64) (*Reader, error) {
	return NewReaderWithConfig(r, size, DefaultConfig())
}

// NewReaderWithConfig creates a reader with a custom configuration. The
// size limit and PDF header are checked before any parsing.
func NewReaderWithConfig(r io.ReaderAt, size int64, config Config) (*Reader, error) {
	if config.MaxBytes > 0 && size > config.MaxBytes {
		return nil, &SizeLimitError{Size: size, Max: config.MaxBytes}
	}

	f, err := format.DetectFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if f != format.PDF {
		return nil, ErrNotPDF
	}

	doc, err := openPDF(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PDF: %w", err)
	}

	return &Reader{pdf: doc, size: size, config: config}, nil
}

func openPDF(r io.ReaderAt, size int64) (doc *pdf.Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			doc, err = nil, fmt.Errorf("malformed document: %v", p)
		}
	}()
	return pdf.NewReader(r, size)
}

// Close closes the underlying file, if any
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// Size returns the input size in bytes
func (r *Reader) Size() int64 {
	return r.size
}

// PageCount returns the number of pages in the document
func (r *Reader) PageCount() (n int, err error) {
	defer func() {
		if p := recover(); p != nil {
			n, err = 0, fmt.Errorf("failed to read page tree: %v", p)
		}
	}()
	return r.pdf.NumPage(), nil
}

// PageRuns returns the text runs of a page, numbered from 1, in content
// stream order. A page without content yields no runs.
func (r *Reader) PageRuns(n int) (runs []text.Run, err error) {
	count, err := r.PageCount()
	if err != nil {
		return nil, err
	}
	if n < 1 || n > count {
		return nil, fmt.Errorf("page %d out of range [1, %d]", n, count)
	}

	defer func() {
		if p := recover(); p != nil {
			runs, err = nil, fmt.Errorf("failed to decode content: %v", p)
		}
	}()

	page := r.pdf.Page(n)
	if page.V.IsNull() {
		return nil, nil
	}

	return coalesceGlyphs(page.Content().Text, r.config), nil
}

// Metadata returns the document information dictionary. Missing entries
// are left empty.
func (r *Reader) Metadata() (meta model.Metadata) {
	defer func() {
		if recover() != nil {
			meta = model.Metadata{}
		}
	}()

	info := r.pdf.Trailer().Key("Info")
	if info.IsNull() {
		return model.Metadata{}
	}

	return model.Metadata{
		Title:    info.Key("Title").Text(),
		Author:   info.Key("Author").Text(),
		Subject:  info.Key("Subject").Text(),
		Creator:  info.Key("Creator").Text(),
		Producer: info.Key("Producer").Text(),
	}
}

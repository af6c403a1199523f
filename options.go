package pdfmd

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/pdfmd/reader"
)

// DefaultMaxPages is the largest document converted by default
const DefaultMaxPages = 100

// convertOptions holds configuration for a conversion.
type convertOptions struct {
	// Page selection (1-indexed, stored as given)
	pages []int

	// maxPages rejects longer documents; zero or less disables the check
	maxPages int

	config Config
	reader reader.Config

	logger logrus.FieldLogger
}

// defaultOptions returns the default conversion options.
func defaultOptions() convertOptions {
	return convertOptions{
		pages:    nil, // nil means all pages
		maxPages: DefaultMaxPages,
		config:   DefaultConfig(),
		reader:   reader.DefaultConfig(),
		logger:   discardLogger(),
	}
}

// clone creates a deep copy of convertOptions.
func (o convertOptions) clone() convertOptions {
	newOpts := o
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	return newOpts
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

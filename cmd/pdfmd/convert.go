package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tsawler/pdfmd"
	"github.com/tsawler/pdfmd/cache"
	"github.com/tsawler/pdfmd/reader"
)

type convertFlags struct {
	outDir    string
	pages     string
	maxPages  int
	cachePath string
	strip     bool
}

func newConvertCmd(global *globalFlags) *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert FILE...",
		Short: "Convert PDF files to Markdown",
		Long: `Convert reconstructs Markdown from each PDF's text layer. With a single
input and no --out directory the Markdown is written to stdout; otherwise each
input produces NAME.md in --out, or next to the input when --out is empty.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, global, flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.outDir, "out", "o", "", "output directory")
	cmd.Flags().StringVar(&flags.pages, "pages", "", "pages to convert, e.g. 1,3,5-7 (default: all)")
	cmd.Flags().IntVar(&flags.maxPages, "max-pages", pdfmd.DefaultMaxPages, "reject documents with more pages (0 disables)")
	cmd.Flags().StringVar(&flags.cachePath, "cache", "", "SQLite database for caching conversions")
	cmd.Flags().BoolVar(&flags.strip, "strip-headers", false, "remove running headers, footers and page numbers")

	return cmd
}

// conversion is the resolved configuration for a convert run.
type conversion struct {
	cfg    fileConfig
	pages  []int
	store  *cache.Store
	logger logrus.FieldLogger
}

// cacheIdentity is everything that affects a file's output.
type cacheIdentity struct {
	Pages    []int        `yaml:"pages"`
	MaxPages int          `yaml:"max_pages"`
	Config   pdfmd.Config `yaml:"config"`
}

func runConvert(cmd *cobra.Command, global *globalFlags, flags *convertFlags, args []string) error {
	cfg, err := loadConfig(global.configFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("max-pages") {
		cfg.MaxPages = flags.maxPages
	}
	if flags.strip {
		cfg.HeaderFooter.Enabled = true
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}

	pages, err := parsePages(flags.pages)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), global.verbose)
	conv := &conversion{cfg: cfg, pages: pages, logger: logger}

	if flags.cachePath != "" {
		store, err := cache.Open(flags.cachePath)
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer store.Close()
		conv.store = store
	}

	toStdout := len(args) == 1 && flags.outDir == ""
	var sum summary

	for _, path := range args {
		md, cached, err := conv.file(cmd.Context(), path)
		if err != nil {
			sum.fail(path, err)
			continue
		}

		if toStdout {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), md); err != nil {
				return err
			}
			sum.ok(path, "stdout", cached)
			continue
		}

		dest := outputPath(path, flags.outDir)
		if err := writeMarkdown(dest, md); err != nil {
			sum.fail(path, err)
			continue
		}
		sum.ok(path, dest, cached)
	}

	sum.render(cmd.ErrOrStderr())

	if sum.failed > 0 {
		return fmt.Errorf("%d of %d files failed", sum.failed, len(args))
	}
	return nil
}

// file converts one PDF, consulting the cache when one is configured. The
// boolean reports a cache hit.
func (c *conversion) file(ctx context.Context, path string) (string, bool, error) {
	log := c.logger.WithField("file", path)

	if c.store == nil {
		md, err := c.converter(pdfmd.Open(path).WithReaderConfig(c.cfg.Reader), log).ToMarkdown()
		return md, false, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", false, err
	}
	if limit := c.cfg.Reader.MaxBytes; limit > 0 && info.Size() > limit {
		return "", false, &reader.SizeLimitError{Size: info.Size(), Max: limit}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, err
	}

	key, err := cache.Key(data, cacheIdentity{Pages: c.pages, MaxPages: c.cfg.MaxPages, Config: c.cfg.Config})
	if err != nil {
		return "", false, err
	}
	if md, ok, err := c.store.Get(ctx, key); err != nil {
		log.WithError(err).Warn("cache lookup failed")
	} else if ok {
		log.Debug("cache hit")
		return md, true, nil
	}

	r, err := reader.NewReaderWithConfig(bytes.NewReader(data), int64(len(data)), c.cfg.Reader)
	if err != nil {
		return "", false, &pdfmd.ExtractionError{Err: err}
	}
	defer r.Close()

	md, err := c.converter(pdfmd.FromSource(r), log).ToMarkdown()
	if err != nil {
		return "", false, err
	}

	if err := c.store.Put(ctx, key, md); err != nil {
		log.WithError(err).Warn("cache write failed")
	}
	return md, false, nil
}

func (c *conversion) converter(base *pdfmd.Converter, log logrus.FieldLogger) *pdfmd.Converter {
	return base.
		Pages(c.pages...).
		MaxPages(c.cfg.MaxPages).
		WithConfig(c.cfg.Config).
		WithLogger(log)
}

// outputPath returns NAME.md in dir, or next to the input when dir is empty.
func outputPath(input, dir string) string {
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".md"
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, name)
}

func writeMarkdown(dest, md string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return os.WriteFile(dest, []byte(md+"\n"), 0o644)
}

// parsePages parses a page list such as "1,3,5-7". An empty string selects
// all pages.
func parsePages(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var pages []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		lo, hi, isRange := strings.Cut(part, "-")

		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil || start < 1 {
			return nil, fmt.Errorf("invalid page %q", part)
		}
		end := start
		if isRange {
			end, err = strconv.Atoi(strings.TrimSpace(hi))
			if err != nil || end < start {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
		}
		for p := start; p <= end; p++ {
			pages = append(pages, p)
		}
	}
	return pages, nil
}

// hint returns advice for well-known failures.
func hint(err error) string {
	var sizeErr *reader.SizeLimitError
	switch {
	case errors.Is(err, pdfmd.ErrNoExtractableText):
		return "the PDF may be a scanned image without a text layer"
	case errors.Is(err, pdfmd.ErrPageLimitExceeded):
		return "raise the limit with --max-pages"
	case errors.Is(err, reader.ErrNotPDF):
		return "the file does not start with a PDF header"
	case errors.As(err, &sizeErr):
		return "raise reader.max_bytes in the config to allow larger files"
	default:
		return ""
	}
}

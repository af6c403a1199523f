package reader

import (
	"math"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/tsawler/pdfmd/text"
)

// glyphRun accumulates consecutive glyphs drawn with the same font on the
// same baseline.
type glyphRun struct {
	sb   strings.Builder
	font string
	size float64
	x, y float64
	end  float64
}

func newGlyphRun(g pdf.Text) *glyphRun {
	run := &glyphRun{
		font: g.Font,
		size: g.FontSize,
		x:    g.X,
		y:    g.Y,
		end:  g.X,
	}
	run.add(g)
	return run
}

func (r *glyphRun) add(g pdf.Text) {
	r.sb.WriteString(g.S)
	if end := g.X + g.W; end > r.end {
		r.end = end
	}
}

func (r *glyphRun) addSpace() {
	if !strings.HasSuffix(r.sb.String(), " ") {
		r.sb.WriteByte(' ')
	}
}

type joinKind int

const (
	joinNone joinKind = iota
	joinDirect
	joinWord
)

// join decides how g attaches to the run
func (r *glyphRun) join(g pdf.Text, config Config) joinKind {
	if g.Font != r.font || math.Abs(g.FontSize-r.size) > 0.01 {
		return joinNone
	}
	if math.Abs(g.Y-r.y) > config.BaselineTolerance {
		return joinNone
	}

	size := math.Abs(r.size)
	gap := g.X - r.end
	switch {
	case gap < -size*config.JoinGapRatio:
		return joinNone
	case gap <= size*config.JoinGapRatio:
		return joinDirect
	case gap <= size*config.WordGapRatio:
		return joinWord
	default:
		return joinNone
	}
}

func (r *glyphRun) run() text.Run {
	return text.NewRun(r.sb.String(), r.x, r.y, r.end-r.x, r.size)
}

// coalesceGlyphs merges per-glyph output into runs. Glyphs separated by a
// word-sized gap share a run with a space between them. A run never starts
// with a space glyph.
func coalesceGlyphs(glyphs []pdf.Text, config Config) []text.Run {
	var runs []text.Run
	var cur *glyphRun

	for _, g := range glyphs {
		if g.S == "" {
			continue
		}

		if cur != nil {
			switch cur.join(g, config) {
			case joinDirect:
				cur.add(g)
				continue
			case joinWord:
				cur.addSpace()
				cur.add(g)
				continue
			}
			runs = append(runs, cur.run())
			cur = nil
		}

		if strings.TrimSpace(g.S) == "" {
			continue
		}
		cur = newGlyphRun(g)
	}

	if cur != nil {
		runs = append(runs, cur.run())
	}
	return runs
}

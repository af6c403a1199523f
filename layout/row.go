package layout

import (
	"math"
	"sort"

	"github.com/tsawler/pdfmd/text"
)

// Row is a cluster of segments judged to share one visual text line.
type Row struct {
	// Y is the quantized baseline shared by every segment in the row
	Y float64

	// Segments are sorted left to right; equal x keeps extraction order
	Segments []text.Segment
}

// FontSize returns the arithmetic mean of the segments' font sizes.
func (r Row) FontSize() float64 {
	if len(r.Segments) == 0 {
		return 0
	}
	var sum float64
	for _, seg := range r.Segments {
		sum += seg.FontSize
	}
	return sum / float64(len(r.Segments))
}

// QuantizeY snaps y to the nearest multiple of bucket. Baseline jitter
// smaller than the bucket usually lands in the same row; two nearby values
// straddling a bucket midpoint can still split.
func QuantizeY(y, bucket float64) float64 {
	if bucket <= 0 {
		return y
	}
	return math.Round(y/bucket) * bucket
}

// ClusterRows groups a page's segments into rows by quantized y. Rows are
// returned top of page first (descending y) and segments within a row are
// stably sorted by x.
func ClusterRows(segments []text.Segment, config LineConfig) []Row {
	if len(segments) == 0 {
		return nil
	}

	index := make(map[float64]int)
	var rows []Row
	for _, seg := range segments {
		y := QuantizeY(seg.Y, config.RowBucket)
		i, ok := index[y]
		if !ok {
			i = len(rows)
			index[y] = i
			rows = append(rows, Row{Y: y})
		}
		rows[i].Segments = append(rows[i].Segments, seg)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Y > rows[j].Y
	})

	for i := range rows {
		segs := rows[i].Segments
		sort.SliceStable(segs, func(a, b int) bool {
			return segs[a].X < segs[b].X
		})
	}

	return rows
}

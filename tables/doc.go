// Package tables reconstructs Markdown tables from runs of tab-separated
// lines.
//
// Lines whose segments are separated by wide horizontal gaps carry tabs
// after assembly. A contiguous block of such lines is handed to
// [Reconstruct], which returns one of two results:
//
//   - [Table] when the block has at least two rows and its rows' cell counts
//     differ by at most one
//   - [FlattenedLines] otherwise, so a ragged block reads as plain lines
//     instead of a malformed table
//
// Example:
//
//	result := tables.Reconstruct(block, tables.DefaultConfig())
//	switch r := result.(type) {
//	case *tables.Table:
//	    fmt.Println(r.ColCount(), "columns")
//	case *tables.FlattenedLines:
//	    fmt.Println(len(r.Lines), "lines")
//	}
//	md := result.Markdown()
package tables

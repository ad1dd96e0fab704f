// Package matrixadapter reads a delimited adjacency matrix — a header
// row of target concept names, a header column of source concept
// names, and signed-integer polarity cells — into a stream of
// concept.Link values.
//
// CSVSource is the only MatrixSource implementation; the interface is
// the seam a future reader (a different delimiter, a spreadsheet
// format) would implement without the rest of the pipeline changing.
package matrixadapter

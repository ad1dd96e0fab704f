// Package reportadapter writes the four output artifacts of one
// analysis run: concept nodes, concept links, loop nodes, and the
// scores report. Each Write* function takes an io.Writer rather than a
// path, so analysis.Driver owns file creation and reportadapter owns
// only formatting.
package reportadapter

package analysis

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cldgraph/cldscore/concept"
	"github.com/cldgraph/cldscore/loopset"
	"github.com/cldgraph/cldscore/matrixadapter"
	"github.com/cldgraph/cldscore/network"
	"github.com/cldgraph/cldscore/reportadapter"
)

// Driver runs one end-to-end analysis: load, enumerate loops, score,
// write reports. Create one per run with New; Run must succeed before
// any other method is called.
type Driver struct {
	source matrixadapter.MatrixSource
	logger *slog.Logger

	registry *concept.Registry
	links    []concept.Link
	loops    *loopset.LoopSet
	scores   map[concept.ID]float64
	done     bool
}

// New returns a Driver that will load its matrix via source. A nil
// logger falls back to slog.Default().
func New(source matrixadapter.MatrixSource, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{source: source, logger: logger}
}

// Run loads the matrix, builds the network, enumerates loops, and
// scores every concept. It is safe to call at most once per Driver.
func (d *Driver) Run() error {
	d.registry = concept.NewRegistry()

	links, err := d.source.Load(d.registry, d.logger)
	if err != nil {
		return err
	}
	d.links = links
	d.logger.Info("loaded adjacency matrix", "links", len(links), "concepts", d.registry.Len())

	net := network.New()
	for _, link := range links {
		net.AddLink(link)
	}
	d.logger.Debug("built network", "nodes", net.Len())

	d.loops = net.FindLoops(d.logger)
	d.logger.Info("finished loop enumeration", "loops", d.loops.Len())

	d.scores = d.loops.Score()
	d.logger.Debug("finished scoring", "scored_concepts", len(d.scores))

	d.done = true
	return nil
}

// ConceptCount returns the number of distinct concepts seen. Valid only
// after a successful Run.
func (d *Driver) ConceptCount() int { return d.registry.Len() }

// LinkCount returns the number of links loaded. Valid only after a
// successful Run.
func (d *Driver) LinkCount() int { return len(d.links) }

// LoopCount returns the number of distinct loops found. Valid only
// after a successful Run.
func (d *Driver) LoopCount() int { return d.loops.Len() }

// Stats returns the loop set's classification/size breakdown.
func (d *Driver) Stats() (loopset.Stats, error) {
	if !d.done {
		return loopset.Stats{}, ErrNotRun
	}
	return d.loops.Stats(), nil
}

// WriteReports writes the four report artifacts, each named
// "<prefix>_concept_nodes.csv", "<prefix>_concept_links.csv",
// "<prefix>_loop_nodes.csv", and "<prefix>_scores.txt".
func (d *Driver) WriteReports(prefix string) error {
	if !d.done {
		return ErrNotRun
	}

	artifacts := []struct {
		suffix string
		write  func(f *os.File) error
	}{
		{"_concept_nodes.csv", func(f *os.File) error {
			return reportadapter.WriteConceptNodes(f, d.registry, d.loops, d.scores)
		}},
		{"_concept_links.csv", func(f *os.File) error {
			return reportadapter.WriteConceptLinks(f, d.links, d.loops)
		}},
		{"_loop_nodes.csv", func(f *os.File) error {
			return reportadapter.WriteLoopNodes(f, d.loops)
		}},
		{"_scores.txt", func(f *os.File) error {
			return reportadapter.WriteScores(f, d.registry, d.scores)
		}},
	}

	for _, a := range artifacts {
		path := prefix + a.suffix
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("analysis: creating %s: %w", path, err)
		}
		writeErr := a.write(f)
		closeErr := f.Close()
		if writeErr != nil {
			return fmt.Errorf("analysis: writing %s: %w", path, writeErr)
		}
		if closeErr != nil {
			return fmt.Errorf("analysis: closing %s: %w", path, closeErr)
		}
		d.logger.Debug("wrote report artifact", "path", path)
	}

	return nil
}

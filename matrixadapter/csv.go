package matrixadapter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cldgraph/cldscore/concept"
)

// MatrixSource produces the stream of links backing one analysis run.
// analysis.Driver depends only on this interface, never on CSVSource
// directly.
type MatrixSource interface {
	Load(r *concept.Registry, logger *slog.Logger) ([]concept.Link, error)
}

// CSVSource reads a comma-separated adjacency matrix from Path.
type CSVSource struct {
	Path string
}

// Load implements MatrixSource. A cell repeated across duplicate rows
// (or any other way the same Source/Influence/Target triple recurs)
// resolves to a single Link: links are deduplicated by value before
// being returned.
func (s CSVSource) Load(r *concept.Registry, logger *slog.Logger) ([]concept.Link, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, s.Path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header row: %v", ErrMalformedMatrix, err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: header row has no target columns", ErrMalformedMatrix)
	}

	targets := make([]string, len(header)-1)
	for i, h := range header[1:] {
		name := concept.Clean(h)
		if name == "" {
			return nil, fmt.Errorf("%w: target column %d has an empty name", ErrMalformedMatrix, i+1)
		}
		targets[i] = name
	}

	var links []concept.Link
	seen := make(map[concept.Link]struct{})
	rowNum := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedMatrix, rowNum+1, err)
		}
		rowNum++

		if len(row) == 0 {
			continue
		}
		sourceName := concept.Clean(row[0])
		if sourceName == "" {
			return nil, fmt.Errorf("%w: row %d has an empty source name", ErrMalformedMatrix, rowNum)
		}
		source, err := r.GetOrCreate(sourceName)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedMatrix, rowNum, err)
		}

		cells := row[1:]
		for i, target := range targets {
			if i >= len(cells) {
				break
			}
			polarity, isEdge, perr := parsePolarity(cells[i])
			if perr != nil {
				logger.Warn("skipping unparseable matrix cell",
					"source", sourceName, "target", target, "error", perr)
				continue
			}
			if !isEdge {
				continue
			}

			targetConcept, err := r.GetOrCreate(target)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedMatrix, rowNum, err)
			}
			influence, err := concept.InfluenceFromPolarity(polarity)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedMatrix, rowNum, err)
			}
			link := concept.Link{Source: source, Influence: influence, Target: targetConcept}
			if _, dup := seen[link]; dup {
				continue
			}
			seen[link] = struct{}{}
			links = append(links, link)
		}
	}

	logger.Debug("loaded adjacency matrix", "path", s.Path, "links", len(links), "concepts", r.Len())
	return links, nil
}

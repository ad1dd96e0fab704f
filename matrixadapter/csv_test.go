package matrixadapter_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/cldgraph/cldscore/concept"
	"github.com/cldgraph/cldscore/matrixadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matrix.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCSVSource_Load_BasicMatrix(t *testing.T) {
	path := writeFixture(t, ",A,B,C\n"+
		"A,0,1,0\n"+
		"B,0,0,-1\n"+
		"C,1,0,0\n")

	r := concept.NewRegistry()
	src := matrixadapter.CSVSource{Path: path}
	links, err := src.Load(r, discardLogger())
	require.NoError(t, err)
	require.Len(t, links, 3)

	a, _ := r.Lookup("A")
	b, _ := r.Lookup("B")
	c, _ := r.Lookup("C")

	assert.Contains(t, links, concept.Link{Source: a, Influence: concept.Increases, Target: b})
	assert.Contains(t, links, concept.Link{Source: b, Influence: concept.Decreases, Target: c})
	assert.Contains(t, links, concept.Link{Source: c, Influence: concept.Increases, Target: a})
}

func TestCSVSource_Load_AcceptsSpacedAndSignedCells(t *testing.T) {
	path := writeFixture(t, ",B\n"+
		"A,\"+ 1\"\n")

	r := concept.NewRegistry()
	src := matrixadapter.CSVSource{Path: path}
	links, err := src.Load(r, discardLogger())
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, concept.Increases, links[0].Influence)
}

func TestCSVSource_Load_SkipsOutOfDomainCellsWithoutFailing(t *testing.T) {
	path := writeFixture(t, ",B\n"+
		"A,2\n")

	r := concept.NewRegistry()
	src := matrixadapter.CSVSource{Path: path}
	links, err := src.Load(r, discardLogger())
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestCSVSource_Load_DuplicatedRowResolvesToASingleLink(t *testing.T) {
	path := writeFixture(t, ",B\n"+
		"A,1\n"+
		"A,1\n")

	r := concept.NewRegistry()
	src := matrixadapter.CSVSource{Path: path}
	links, err := src.Load(r, discardLogger())
	require.NoError(t, err)
	require.Len(t, links, 1)

	a, _ := r.Lookup("A")
	b, _ := r.Lookup("B")
	assert.Equal(t, concept.Link{Source: a, Influence: concept.Increases, Target: b}, links[0])
}

func TestCSVSource_Load_MissingFile(t *testing.T) {
	src := matrixadapter.CSVSource{Path: "/nonexistent/path.csv"}
	_, err := src.Load(concept.NewRegistry(), discardLogger())
	assert.ErrorIs(t, err, matrixadapter.ErrSourceNotFound)
}

func TestCSVSource_Load_EmptyHeaderColumnIsMalformed(t *testing.T) {
	path := writeFixture(t, "A\n")

	_, err := matrixadapter.CSVSource{Path: path}.Load(concept.NewRegistry(), discardLogger())
	assert.ErrorIs(t, err, matrixadapter.ErrMalformedMatrix)
}

func TestCSVSource_Load_EmptySourceNameIsMalformed(t *testing.T) {
	path := writeFixture(t, ",B\n"+
		",1\n")

	_, err := matrixadapter.CSVSource{Path: path}.Load(concept.NewRegistry(), discardLogger())
	assert.ErrorIs(t, err, matrixadapter.ErrMalformedMatrix)
}

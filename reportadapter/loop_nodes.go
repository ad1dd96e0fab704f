package reportadapter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/cldgraph/cldscore/loopset"
)

// WriteLoopNodes writes P_loop_nodes.csv: one row per stored loop,
// sorted by size descending, id rendered as "SEQ_<k>" for the
// sequential id Finalize assigned it.
func WriteLoopNodes(w io.Writer, loops *loopset.LoopSet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "size"}); err != nil {
		return fmt.Errorf("reportadapter: loop nodes header: %w", err)
	}

	all := loops.All()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Size() > all[j].Size()
	})

	for _, loop := range all {
		row := []string{
			fmt.Sprintf("SEQ_%d", loops.ID(loop)),
			fmt.Sprintf("%d", loop.Size()),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("reportadapter: loop nodes row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

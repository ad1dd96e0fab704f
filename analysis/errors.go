package analysis

import "errors"

// ErrNotRun indicates a result accessor (TopConcepts, Stats, WriteReports)
// was called before Run succeeded.
var ErrNotRun = errors.New("analysis: Run has not completed successfully")

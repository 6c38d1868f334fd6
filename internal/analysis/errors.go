package analysis

import "errors"

// ErrDependencyUnavailable marks failures of the storage or persistence
// collaborators during an analysis run.
var ErrDependencyUnavailable = errors.New("analysis dependency unavailable")

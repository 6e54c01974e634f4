package graph

import "time"

// nowFunc is indirected so tests can substitute a deterministic clock
// without touching the resolver itself.
var nowFunc = time.Now

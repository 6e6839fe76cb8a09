// Package lifecycle holds shared lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown operations (storage ping,
// index creation, graceful server shutdown).
const DefaultTimeout = 10 * time.Second

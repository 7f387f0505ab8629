// Package lifecycle holds shutdown settings shared by fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a single component.
const DefaultTimeout = 10 * time.Second

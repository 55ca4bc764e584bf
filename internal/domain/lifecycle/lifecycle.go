// Package lifecycle holds shared timeouts for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks (DB pings, server
// drain) so a hung dependency cannot stall the process forever.
const DefaultTimeout = 10 * time.Second

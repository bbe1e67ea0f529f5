// Package memzero wipes sensitive buffers.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites every buffer with zeros in a constant-time friendly way.
// It is best-effort: copies made elsewhere are not reached.
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		if len(b) == 0 {
			continue
		}
		subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	}
	runtime.KeepAlive(bufs)
}

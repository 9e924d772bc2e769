package dgram

import (
	"github.com/sounder/dgram/internal/dbg"
	"github.com/sounder/dgram/internal/wire"
)

// SetDebug sets the process-wide debug-verbosity level. It is intended
// to be configured once at process start, before any handle is opened.
// No locking is provided; callers treat it as immutable after
// initialization. At Verbose level it also emits a one-line startup
// banner naming the detected CPU vendor and whether the unaligned-load
// fast path is in play.
func SetDebug(level int) {
	dbg.SetLevel(dbg.Level(level))
	dbg.Notice("dgram: cpu=%s fastUnaligned=%v", wire.VendorString(), wire.HasFastUnaligned())
}

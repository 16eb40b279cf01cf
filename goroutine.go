package emitter

import (
	"runtime"
	"strconv"
	"strings"
)

// gid returns the current goroutine's id, parsed from the
// runtime.Stack header ("goroutine N [running]:"). The runtime does
// not expose goroutine ids; the header parse is the stable way to
// get one for a confinement check.
func gid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	if i := strings.IndexByte(s, ' '); i > 0 {
		s = s[:i]
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

package macrostate

import (
	"strconv"
	"sync"
	"time"
)

var (
	epochOnce  sync.Once
	epochValue string

	// test hook
	epochNow = time.Now
)

// ProcessEpoch returns the build-epoch identifier shared by every State in
// this process. The first call captures a nanosecond timestamp; every later
// call returns the identical value, so all state written during one build
// run resolves to the same storage names while separate runs stay disjoint.
func ProcessEpoch() string {
	epochOnce.Do(func() {
		epochValue = strconv.FormatInt(epochNow().UnixNano(), 10)
	})
	return epochValue
}

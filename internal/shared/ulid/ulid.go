package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewRunID generates the identifier attached to every log line of one
// invocation. ULIDs sort by creation time, so runs order naturally in log stores.
var NewRunID = func() string {
	return ulid.Make().String()
}

package shapegraph

import (
	"math/rand"
	"strconv"
	"time"
)

// NewID returns an identifier in the form found in shape kits: the current
// time in milliseconds as hex followed by the unpadded hex of a random
// integer below one million.
func NewID() string {
	return newID(time.Now(), rand.Intn(1000*1000))
}

func newID(now time.Time, r int) string {
	return strconv.FormatInt(now.UnixMilli(), 16) + strconv.FormatInt(int64(r), 16)
}

// GenerateIDs returns n distinct ids.
func GenerateIDs(n int) []string {
	ids := make([]string, 0, n)
	seen := make(map[string]bool, n)
	for len(ids) < n {
		id := NewID()
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

package okane

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// IDSource generates transaction ids of the form
// "<millisecond-timestamp>-<9 random alphanumerics>". The clock and
// randomness are injectable so tests can produce deterministic ids.
type IDSource struct {
	now  func() time.Time
	rand *rand.Rand
}

// NewIDSource returns an IDSource backed by the system clock and the
// given seed.
func NewIDSource(seed int64) *IDSource {
	return &IDSource{now: time.Now, rand: rand.New(rand.NewSource(seed))}
}

// DefaultIDSource returns an IDSource suitable for production use.
func DefaultIDSource() *IDSource {
	return NewIDSource(time.Now().UnixNano())
}

// NewID generates a fresh id. Uniqueness relies on the millisecond
// timestamp plus the random suffix; ids are never validated for global
// uniqueness beyond that.
func (s *IDSource) NewID() string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(s.now().UnixMilli(), 10))
	b.WriteByte('-')
	for range 9 {
		b.WriteByte(idAlphabet[s.rand.Intn(len(idAlphabet))])
	}
	return b.String()
}

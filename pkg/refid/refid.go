// Package refid generates and sanitizes broker order reference ids.
//
// Brokers constrain the client reference id to 8-20 characters, alphanumeric
// plus hyphen, with at most two hyphens. New synthesizes a compliant id;
// Sanitize coerces a caller-supplied one into compliance.
package refid

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	MinLen     = 8
	MaxLen     = 20
	maxHyphens = 2
)

var (
	mu   sync.Mutex
	mono io.Reader
)

func init() {
	// Seed a PRNG from crypto/rand so ULID entropy is unpredictable.
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	mono = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// New returns a fresh reference id of the form YYYYMMDD-xxxxxxxx, where the
// suffix is the tail of a ULID. The result always satisfies the broker
// constraint without further sanitization.
func New() string {
	mu.Lock()
	defer mu.Unlock()

	now := time.Now().UTC()
	id, err := ulid.New(ulid.Timestamp(now), mono)
	if err != nil {
		// Only possible if time goes backwards or entropy fails.
		panic(err)
	}

	suffix := strings.ToLower(id.String())
	suffix = suffix[len(suffix)-8:]
	return now.Format("20060102") + "-" + suffix
}

// Sanitize coerces raw into the broker constraint: illegal characters are
// stripped, hyphens beyond the second are removed, the result is right-padded
// with '0' to MinLen and truncated to MaxLen. An empty raw yields a fresh id.
func Sanitize(raw string) string {
	if raw == "" {
		return New()
	}

	var b strings.Builder
	hyphens := 0
	for _, c := range raw {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteRune(c)
		case c == '-':
			if hyphens < maxHyphens {
				b.WriteRune('-')
				hyphens++
			}
		}
	}

	id := b.String()
	if len(id) < MinLen {
		id += strings.Repeat("0", MinLen-len(id))
	}
	if len(id) > MaxLen {
		id = id[:MaxLen]
	}
	return id
}

// Valid reports whether id already satisfies the broker constraint.
func Valid(id string) bool {
	if len(id) < MinLen || len(id) > MaxLen {
		return false
	}
	hyphens := 0
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-':
			hyphens++
			if hyphens > maxHyphens {
				return false
			}
		default:
			return false
		}
	}
	return true
}

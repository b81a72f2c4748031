package measure

import (
	"fmt"
	"math/bits"
	"os"
	"sync"
)

var Enabled bool
var Global Counter

func init() {
	Enabled = os.Getenv("MEASURE_SIZES") == "1"
	Global = Counter{M: make(map[string]int64)}
}

// BytesField returns the bytes needed for one coefficient mod q.
func BytesField(q uint64) int {
	if q == 0 {
		return 0
	}
	return (bits.Len64(q-1) + 7) / 8
}

// BytesRing returns the bytes needed for one R_q element of dimension n.
func BytesRing(n int, q uint64) int {
	return n * BytesField(q)
}

// BytesKeyPair returns the public-key transport size: the pair (a, b).
func BytesKeyPair(n int, q uint64) int {
	return 2 * BytesRing(n, q)
}

func Human(n int64) string {
	const (
		KiB = 1024
		MiB = 1024 * KiB
	)
	switch {
	case n >= MiB:
		return fmt.Sprintf("%.1f MiB", float64(n)/float64(MiB))
	case n >= KiB:
		return fmt.Sprintf("%.1f KiB", float64(n)/float64(KiB))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

type Counter struct {
	mu sync.Mutex
	M  map[string]int64
}

func (c *Counter) Add(key string, n int64) {
	if !Enabled {
		return
	}
	c.mu.Lock()
	c.M[key] += n
	c.mu.Unlock()
}

func (c *Counter) Dump() {
	if !Enabled {
		return
	}
	fmt.Println("[measure] Size report:")
	for k, v := range c.M {
		fmt.Printf("[measure] %s = %s\n", k, Human(v))
	}
}

func Section(name string, f func()) {
	if !Enabled {
		f()
		return
	}
	fmt.Printf("[measure] Begin %s\n", name)
	f()
	fmt.Printf("[measure] End %s\n", name)
}

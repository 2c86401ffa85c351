package strmap

import (
	"strconv"
	"testing"
)

func makeKey(i int) string {
	return "key_" + strconv.Itoa(i)
}

func benchmarkInsert(b *testing.B, n int) {
	for i := 0; i < b.N; i++ {
		m := New()
		for k := 0; k < n; k++ {
			m.Insert(makeKey(k), "value")
		}
		if _, ok := m.Get(makeKey(n / 2)); !ok {
			b.Fatal("missing key")
		}
	}
}

func BenchmarkInsert1000(b *testing.B)  { benchmarkInsert(b, 1000) }
func BenchmarkInsert10000(b *testing.B) { benchmarkInsert(b, 10000) }

// BenchmarkHotKeyGet measures repeated lookups of a single key. After the
// first access the key sits at the root, so the steady state is the splay
// tree's best case.
func BenchmarkHotKeyGet(b *testing.B) {
	m := New()
	for k := 0; k < 2000; k++ {
		m.Insert(makeKey(k), "value_"+strconv.Itoa(k))
	}
	hot := makeKey(1000)
	m.Get(hot)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := m.Get(hot); !ok {
			b.Fatal("missing key")
		}
	}
}

func BenchmarkMixedAccess(b *testing.B) {
	const n = 5000
	m := New()
	for k := 0; k < n; k++ {
		m.Insert(makeKey(k), "value_"+strconv.Itoa(k))
	}
	b.ResetTimer()
	idx := 0
	for i := 0; i < b.N; i++ {
		// Deterministic pseudo-random walk over the key space.
		idx = (idx*37 + 23) % n
		if _, ok := m.Get(makeKey(idx)); !ok {
			b.Fatal("missing key")
		}
	}
}

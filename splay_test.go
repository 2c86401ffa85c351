package splay

import (
	"strings"
	"testing"
)

func Compare[T int | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	default:
		return 1
	}
}

func keysInOrder[K, V any](m *Map[K, V]) []K {
	var out []K
	it := m.t.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		out = append(out, it.Cur().key)
	}
	return out
}

func TestMap(t *testing.T) {
	assertEq := func(t *testing.T, exp, got int) {
		t.Helper()
		if exp != got {
			t.Fatalf("expected %d, got %d", exp, got)
		}
	}

	m := MakeMap[int, int](Compare[int])
	m.Upsert(2, 20)
	m.Upsert(12, 120)
	m.Upsert(1, 10)

	for _, exp := range []int{1, 2, 12} {
		v, ok := m.Get(exp)
		if !ok {
			t.Fatalf("expected to find %d", exp)
		}
		assertEq(t, exp*10, v)
	}
	assertEq(t, 3, m.Len())
}

func TestMapOrderInvariant(t *testing.T) {
	m := MakeMap[string, string](strings.Compare)
	for _, k := range []string{"mango", "apple", "banana", "grape", "cherry"} {
		m.Upsert(k, "")
	}
	m.Delete("banana")
	m.Upsert("apricot", "")
	got := keysInOrder(&m)
	exp := []string{"apple", "apricot", "cherry", "grape", "mango"}
	if len(got) != len(exp) {
		t.Fatalf("expected %v, got %v", exp, got)
	}
	for i := range exp {
		if got[i] != exp[i] {
			t.Fatalf("expected %v, got %v", exp, got)
		}
	}
}

func TestMapUpsertReturnsPrevious(t *testing.T) {
	m := MakeMap[string, int](strings.Compare)
	if _, overwrote := m.Upsert("a", 1); overwrote {
		t.Fatal("unexpected overwrite on first insert")
	}
	prev, overwrote := m.Upsert("a", 2)
	if !overwrote || prev != 1 {
		t.Fatalf("expected to overwrite 1, got %d (%t)", prev, overwrote)
	}
	if m.Len() != 1 {
		t.Fatalf("expected one entry, got %d", m.Len())
	}
}

func TestMapRoot(t *testing.T) {
	m := MakeMap[string, int](strings.Compare)
	for i, k := range []string{"d", "b", "f", "a", "c", "e", "g"} {
		m.Upsert(k, i)
	}
	for _, k := range []string{"a", "g", "c"} {
		if _, ok := m.Get(k); !ok {
			t.Fatalf("expected to find %q", k)
		}
		if root, ok := m.Root(); !ok || root != k {
			t.Fatalf("expected %q at root after lookup, got %q", k, root)
		}
	}
}

func TestMapDeleteMissIsNoop(t *testing.T) {
	m := MakeMap[string, string](strings.Compare)
	m.Upsert("user", "Brad")
	if _, ok := m.Delete("doesNotExist"); ok {
		t.Fatal("removed an absent key")
	}
	if v, ok := m.Get("user"); !ok || v != "Brad" {
		t.Fatalf("expected user to survive, got %q (%t)", v, ok)
	}
}

// Package strmap provides a string-keyed, string-valued ordered map backed
// by the splay tree, with keys compared lexicographically.
package strmap

import (
	"strings"

	"github.com/ajwerner/splay"
)

// Map is an ordered string-to-string map. Construct one with New.
type Map struct {
	m splay.Map[string, string]
}

// New returns an empty Map.
func New() *Map {
	return &Map{m: splay.MakeMap[string, string](strings.Compare)}
}

// Insert sets the value for key, creating the entry if the key is absent
// and overwriting the stored value otherwise.
func (m *Map) Insert(key, value string) {
	m.m.Upsert(key, value)
}

// Get returns the value stored for key. The second result distinguishes an
// absent key from a stored empty string.
func (m *Map) Get(key string) (string, bool) {
	return m.m.Get(key)
}

// Delete removes key, reporting whether it was present. Deleting an absent
// key has no observable effect on the remaining entries.
func (m *Map) Delete(key string) bool {
	_, ok := m.m.Delete(key)
	return ok
}

// Len returns the number of entries in the map.
func (m *Map) Len() int { return m.m.Len() }

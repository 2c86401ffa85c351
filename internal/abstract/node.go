// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

// index addresses a node inside a Tree's arena. Links between nodes are
// stored as indices rather than pointers so that the arena owns every node
// outright; the parent link is navigation only and never implies ownership.
type index = int32

// null marks an absent link.
const null index = -1

type node[T any] struct {
	item   T
	left   index
	right  index
	parent index
}

func (t *Tree[T]) at(i index) *node[T] {
	return &t.nodes[i]
}

// alloc places item in the arena and returns its index, preferring a
// previously freed slot over growing the backing slice.
func (t *Tree[T]) alloc(item T) index {
	if n := len(t.free); n > 0 {
		i := t.free[n-1]
		t.free = t.free[:n-1]
		*t.at(i) = node[T]{item: item, left: null, right: null, parent: null}
		return i
	}
	t.nodes = append(t.nodes, node[T]{
		item: item, left: null, right: null, parent: null,
	})
	return index(len(t.nodes) - 1)
}

// release returns a node's slot to the free list. The item is zeroed so the
// arena does not pin anything the item referenced.
func (t *Tree[T]) release(i index) {
	var zero T
	t.at(i).item = zero
	t.free = append(t.free, i)
}

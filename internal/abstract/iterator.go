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

// Iterator walks the tree in order. Unlike Get, iteration does not splay,
// so it leaves the tree's shape alone; the parent links make the successor
// walk possible without a stack.
//
// An Iterator is invalidated by any mutation of the tree.
type Iterator[T any] struct {
	t   *Tree[T]
	pos index
}

// MakeIter returns an Iterator positioned before the first item.
func (t *Tree[T]) MakeIter() Iterator[T] {
	return Iterator[T]{t: t, pos: null}
}

// First positions the iterator at the smallest item.
func (it *Iterator[T]) First() {
	if it.t.root == null {
		it.pos = null
		return
	}
	it.pos = it.t.min(it.t.root)
}

// Next advances to the in-order successor.
func (it *Iterator[T]) Next() {
	if it.pos == null {
		return
	}
	t := it.t
	if r := t.at(it.pos).right; r != null {
		it.pos = t.min(r)
		return
	}
	i, p := it.pos, t.at(it.pos).parent
	for p != null && t.at(p).right == i {
		i, p = p, t.at(p).parent
	}
	it.pos = p
}

// Valid returns whether the iterator is positioned at an item.
func (it *Iterator[T]) Valid() bool { return it.pos != null }

// Cur returns the item at the iterator's position. It is illegal to call
// Cur if the iterator is not valid.
func (it *Iterator[T]) Cur() T { return it.t.at(it.pos).item }

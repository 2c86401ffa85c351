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

// Package abstract implements a generic splay tree: a binary search tree
// with no balance metadata that restructures itself on every access,
// rotating the touched node to the root. Individual operations may take
// linear time but any sequence of operations is amortized logarithmic.
//
// Nodes live in an index-addressed arena owned by the Tree. Ordering comes
// from an explicit comparison function rather than from the item type.
package abstract

// Tree is a splay tree of items ordered by an explicit comparison function.
// Items comparing equal occupy a single node; inserting an equal item
// overwrites that node's payload in place.
//
// Not safe for concurrent use; every operation, reads included, may
// restructure the tree.
type Tree[T any] struct {
	cmp    func(T, T) int
	nodes  []node[T]
	free   []index
	root   index
	length int
}

// MakeTree constructs an empty Tree ordered by cmp, which must define a
// total order: negative if a sorts before b, zero if they are equal,
// positive otherwise.
func MakeTree[T any](cmp func(T, T) int) Tree[T] {
	return Tree[T]{cmp: cmp, root: null}
}

// Len returns the number of items in the tree.
func (t *Tree[T]) Len() int { return t.length }

// Root returns the item on the root node, if any. Every operation leaves
// the most recently touched item at the root, so this doubles as an
// inspection hook for the splay behavior.
func (t *Tree[T]) Root() (_ T, ok bool) {
	if t.root == null {
		var zero T
		return zero, false
	}
	return t.at(t.root).item, true
}

// Reset removes all items. The arena is dropped wholesale, so teardown cost
// does not depend on the tree's shape and no walk can exhaust the call
// stack on a degenerate (linear) tree.
func (t *Tree[T]) Reset() {
	t.nodes = nil
	t.free = nil
	t.root = null
	t.length = 0
}

// Upsert adds item to the tree. If an item comparing equal is already
// present, its payload is overwritten in place and the previous item is
// returned. Either way the touched node ends up at the root.
func (t *Tree[T]) Upsert(item T) (replaced T, overwrote bool) {
	if t.root == null {
		t.root = t.alloc(item)
		t.length++
		return replaced, false
	}
	i := t.root
	for {
		switch c := t.cmp(item, t.at(i).item); {
		case c < 0:
			if l := t.at(i).left; l != null {
				i = l
				continue
			}
			child := t.alloc(item)
			t.at(child).parent = i
			t.at(i).left = child
			t.length++
			t.splay(child)
			return replaced, false
		case c > 0:
			if r := t.at(i).right; r != null {
				i = r
				continue
			}
			child := t.alloc(item)
			t.at(child).parent = i
			t.at(i).right = child
			t.length++
			t.splay(child)
			return replaced, false
		default:
			replaced = t.at(i).item
			t.at(i).item = item
			t.splay(i)
			return replaced, true
		}
	}
}

// Get returns the item comparing equal to the given one, if present. The
// lookup splays, so the tree changes shape even on reads.
func (t *Tree[T]) Get(item T) (_ T, ok bool) {
	i, ok := t.find(item)
	if !ok {
		var zero T
		return zero, false
	}
	return t.at(i).item, true
}

// Delete removes the item comparing equal to the given one and returns it.
// Removing an absent item only splays the deepest node on the search path,
// the same as a failed Get.
func (t *Tree[T]) Delete(item T) (removed T, ok bool) {
	i, ok := t.find(item)
	if !ok {
		return removed, false
	}
	// find left the target at the root.
	removed = t.at(i).item
	left, right := t.at(i).left, t.at(i).right
	switch {
	case left == null:
		t.transplant(i, right)
	case right == null:
		t.transplant(i, left)
	default:
		succ := t.min(right)
		if t.at(succ).parent != i {
			t.transplant(succ, t.at(succ).right)
			t.at(succ).right = right
			t.at(right).parent = succ
		}
		t.transplant(i, succ)
		t.at(succ).left = left
		t.at(left).parent = succ
	}
	t.release(i)
	t.length--
	return removed, true
}

// find locates the node comparing equal to item and splays it to the root.
// On a miss it instead splays the last node visited before the descent fell
// off the tree, which preserves the amortized bound for failed lookups.
func (t *Tree[T]) find(item T) (index, bool) {
	i, last := t.root, null
	for i != null {
		last = i
		switch c := t.cmp(item, t.at(i).item); {
		case c < 0:
			i = t.at(i).left
		case c > 0:
			i = t.at(i).right
		default:
			t.splay(i)
			return i, true
		}
	}
	if last != null {
		t.splay(last)
	}
	return null, false
}

// transplant replaces the subtree rooted at u with the subtree rooted at v
// in u's parent (or at the tree root). u's own links are left untouched.
func (t *Tree[T]) transplant(u, v index) {
	p := t.at(u).parent
	switch {
	case p == null:
		t.root = v
	case t.at(p).left == u:
		t.at(p).left = v
	default:
		t.at(p).right = v
	}
	if v != null {
		t.at(v).parent = p
	}
}

// min returns the leftmost node of the subtree rooted at i, which must not
// be null.
func (t *Tree[T]) min(i index) index {
	for t.at(i).left != null {
		i = t.at(i).left
	}
	return i
}

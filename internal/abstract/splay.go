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

// rotateLeft promotes x's right child into x's position; x becomes the
// child's left child and the child's former left subtree becomes x's right
// subtree. The in-order sequence of items is unchanged. No-op if x has no
// right child.
func (t *Tree[T]) rotateLeft(x index) {
	y := t.at(x).right
	if y == null {
		return
	}
	t.at(x).right = t.at(y).left
	if l := t.at(y).left; l != null {
		t.at(l).parent = x
	}
	t.at(y).parent = t.at(x).parent
	switch p := t.at(x).parent; {
	case p == null:
		t.root = y
	case t.at(p).left == x:
		t.at(p).left = y
	default:
		t.at(p).right = y
	}
	t.at(y).left = x
	t.at(x).parent = y
}

// rotateRight is the mirror image of rotateLeft.
func (t *Tree[T]) rotateRight(x index) {
	y := t.at(x).left
	if y == null {
		return
	}
	t.at(x).left = t.at(y).right
	if r := t.at(y).right; r != null {
		t.at(r).parent = x
	}
	t.at(y).parent = t.at(x).parent
	switch p := t.at(x).parent; {
	case p == null:
		t.root = y
	case t.at(p).left == x:
		t.at(p).left = y
	default:
		t.at(p).right = y
	}
	t.at(y).right = x
	t.at(x).parent = y
}

// splay lifts x to the root one or two levels at a time. Each step strictly
// decreases x's depth, so the loop terminates. The zig-zig case rotates the
// grandparent before the parent; that ordering is what yields the amortized
// logarithmic bound.
func (t *Tree[T]) splay(x index) {
	for t.at(x).parent != null {
		p := t.at(x).parent
		g := t.at(p).parent
		xLeft := t.at(p).left == x
		switch {
		case g == null:
			// Zig.
			if xLeft {
				t.rotateRight(p)
			} else {
				t.rotateLeft(p)
			}
		case (t.at(g).left == p) == xLeft:
			// Zig-zig.
			if xLeft {
				t.rotateRight(g)
				t.rotateRight(p)
			} else {
				t.rotateLeft(g)
				t.rotateLeft(p)
			}
		default:
			// Zig-zag.
			if xLeft {
				t.rotateRight(p)
				t.rotateLeft(g)
			} else {
				t.rotateLeft(p)
				t.rotateRight(g)
			}
		}
	}
}

// Copyright 2021 The properties Authors.
// SPDX-License-Identifier: BSD-3-Clause

package properties

import "strings"

// A Tree is the nested view of a store: keys split on dots, interior
// nodes of type Tree, leaves of type Value. The tree returned by
// Store.Path aliases the store's internal state; see Path.
type Tree map[string]interface{}

// put stores v at the given path, creating or reusing interior nodes
// along the way. A leaf already present at an interior position is
// replaced by a subtree, and vice versa: the last write wins at every
// node.
func (t Tree) put(path []string, v Value) {
	for len(path) > 1 {
		sub, ok := t[path[0]].(Tree)
		if !ok {
			sub = make(Tree)
			t[path[0]] = sub
		}
		t = sub
		path = path[1:]
	}
	t[path[0]] = v
}

// Get walks key's dot segments from the root and returns the leaf
// value there. It returns ok == false if any segment is missing or if
// the path ends on a subtree rather than a leaf.
func (t Tree) Get(key string) (_ Value, ok bool) {
	path := strings.Split(key, ".")
	for _, seg := range path[:len(path)-1] {
		sub, ok := t[seg].(Tree)
		if !ok {
			return Value{}, false
		}
		t = sub
	}
	v, ok := t[path[len(path)-1]].(Value)
	return v, ok
}

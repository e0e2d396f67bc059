// Copyright 2021 The properties Authors.
// SPDX-License-Identifier: BSD-3-Clause

package properties

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// A Store is a collection of typed properties addressable by dotted
// key. The zero value is an empty store. A store may be read by
// multiple concurrent goroutines, but mutation (Read, Set) must be
// serialized by the caller.
type Store struct {
	flat map[string]Value
	tree Tree
}

// New returns an empty store.
func New() *Store {
	return new(Store)
}

// Load reads the file at path and parses its contents into a new
// store. The file is read whole; errors opening or reading it are
// returned wrapped.
func Load(path string) (*Store, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load properties file: %w", err)
	}
	return New().Read(string(text)), nil
}

// sectionName matches a section header: brackets around one or more
// ASCII letters or digits, nothing else on the line.
var sectionName = regexp.MustCompile(`^\[([0-9A-Za-z]+)\]$`)

// Read parses text line by line into the store and returns the store.
// Parsing starts outside any section regardless of earlier calls, and
// never fails: blank lines and lines without a usable key are skipped.
// Reading into a non-empty store merges, with later assignments of a
// key overwriting earlier ones.
func (s *Store) Read(text string) *Store {
	section := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := sectionName.FindStringSubmatch(line); m != nil {
			section = m[1]
			continue
		}
		key, value := splitProperty(line)
		if key == "" {
			continue
		}
		if section != "" {
			key = section + "." + key
		}
		s.Set(key, value)
	}
	return s
}

// splitProperty splits a trimmed non-empty line at its first '='. A
// line without '=' is a key with an empty value.
func splitProperty(line string) (key, value string) {
	i := strings.IndexByte(line, '=')
	if i == -1 {
		return line, ""
	}
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
}

// Set coerces raw with ParseValue, stores it under key, and returns
// the store. Any earlier value for key is overwritten in both the flat
// mapping and the nested tree.
func (s *Store) Set(key, raw string) *Store {
	s.put(key, ParseValue(raw))
	return s
}

func (s *Store) put(key string, v Value) {
	if s.flat == nil {
		s.flat = make(map[string]Value)
	}
	if s.tree == nil {
		s.tree = make(Tree)
	}
	s.flat[key] = v
	s.tree.put(strings.Split(key, "."), v)
}

// Get returns the value stored under the exact dotted key. It returns
// ok == false if the key was never set.
func (s *Store) Get(key string) (_ Value, ok bool) {
	if s == nil {
		return Value{}, false
	}
	v, ok := s.flat[key]
	return v, ok
}

// Each calls fn once for every stored key, in no particular order, and
// returns the store.
func (s *Store) Each(fn func(key string, value Value)) *Store {
	if s == nil {
		return nil
	}
	for k, v := range s.flat {
		fn(k, v)
	}
	return s
}

// Len returns the number of distinct keys in the store.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.flat)
}

// Path returns the live nested tree of the store. The tree is not a
// copy: callers may mutate it directly, mutations are visible to every
// later Path call, and mutations made through Set and Read appear in
// trees returned earlier. Changes made directly to the tree are not
// reflected back into the flat mapping.
func (s *Store) Path() Tree {
	if s == nil {
		return nil
	}
	if s.tree == nil {
		s.tree = make(Tree)
	}
	return s.tree
}

// Clone returns a new independent store by replaying every flat entry
// of s into it. The clone's nested tree is rebuilt from scratch, so
// mutating either store's tree does not affect the other.
func (s *Store) Clone() *Store {
	c := New()
	s.Each(func(key string, value Value) {
		c.put(key, value)
	})
	return c
}

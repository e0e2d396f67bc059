// Copyright 2021 The properties Authors.
// SPDX-License-Identifier: BSD-3-Clause

package properties

import (
	"context"
	"fmt"
	"os"

	"zombiezen.com/go/log"
)

// A StoreSet is a list of stores to obtain properties from in
// descending order of precedence.
type StoreSet []*Store

// LoadFiles parses the files at the given paths and returns a
// StoreSet. If the returned error is nil, the set's length will be the
// same as the number of arguments. LoadFiles stops on the first error,
// but ignores missing file errors, instead filling the corresponding
// element of the set with a nil *Store.
func LoadFiles(ctx context.Context, paths ...string) (StoreSet, error) {
	set := make(StoreSet, 0, len(paths))
	for _, p := range paths {
		text, err := os.ReadFile(p)
		if os.IsNotExist(err) {
			log.Debugf(ctx, "Skipping missing properties file %s", p)
			set = append(set, nil)
			continue
		}
		if err != nil {
			return set, fmt.Errorf("load properties files: %w", err)
		}
		set = append(set, New().Read(string(text)))
	}
	return set, nil
}

// Get returns the value for key from the first store in the set that
// has it. Nil stores are skipped. It returns ok == false if no store
// has the key.
func (set StoreSet) Get(key string) (_ Value, ok bool) {
	for _, s := range set {
		if v, ok := s.Get(key); ok {
			return v, true
		}
	}
	return Value{}, false
}

// Len returns the number of distinct keys across all stores in the
// set.
func (set StoreSet) Len() int {
	keys := make(map[string]struct{})
	for _, s := range set {
		s.Each(func(key string, _ Value) {
			keys[key] = struct{}{}
		})
	}
	return len(keys)
}

// Flatten merges the set into a single independent store. Stores are
// replayed from lowest to highest precedence, so for every key the
// merged store holds the same value Get would return.
func (set StoreSet) Flatten() *Store {
	merged := New()
	for i := len(set) - 1; i >= 0; i-- {
		set[i].Each(func(key string, value Value) {
			merged.put(key, value)
		})
	}
	return merged
}

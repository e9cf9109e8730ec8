// seehuhn.de/go/paint - a presence-layer paint surface
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package paint

// registry is an insertion-ordered association list.  Lookups scan the
// entries linearly, which is faster than hashing for the handful of colors a
// typical image uses.  Entries are never removed.
type registry[K comparable, V any] struct {
	keys []K
	vals []V
}

// index returns the position of key, or -1 if key is not present.
func (r *registry[K, V]) index(key K) int {
	for i, k := range r.keys {
		if k == key {
			return i
		}
	}
	return -1
}

// get returns the value stored for key.
func (r *registry[K, V]) get(key K) (V, bool) {
	if i := r.index(key); i >= 0 {
		return r.vals[i], true
	}
	var zero V
	return zero, false
}

// getOrInsert returns the index of key, calling newVal to create the value
// if the key is not yet present.  The second return value reports whether
// a new entry was added.
func (r *registry[K, V]) getOrInsert(key K, newVal func() V) (int, bool) {
	if i := r.index(key); i >= 0 {
		return i, false
	}
	r.keys = append(r.keys, key)
	r.vals = append(r.vals, newVal())
	return len(r.keys) - 1, true
}

func (r *registry[K, V]) len() int {
	return len(r.keys)
}

// clone returns a copy of the registry.  Values are copied with cp.
func (r *registry[K, V]) clone(cp func(V) V) registry[K, V] {
	res := registry[K, V]{
		keys: make([]K, len(r.keys)),
		vals: make([]V, len(r.vals)),
	}
	copy(res.keys, r.keys)
	for i, v := range r.vals {
		res.vals[i] = cp(v)
	}
	return res
}

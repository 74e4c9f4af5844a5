/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/store/hash.go
*/
package store

import (
	"strconv"
	"time"
)

func (ks *Keyspace) hashItem(key []byte, createIfAbsent bool) (*Item, error) {
	it, ok := ks.lookup(key, time.Now())
	if !ok {
		if !createIfAbsent {
			return nil, nil
		}
		it = &Item{Kind: KindHash, Hash: make(map[string][]byte)}
		ks.entries[string(key)] = it
		return it, nil
	}
	if it.Kind != KindHash {
		return nil, wrongType("expected HASH")
	}
	return it, nil
}

// HSet inserts or overwrites field/value pairs, returning the number of
// fields that were newly created. HSET/HMSET reply OK regardless, but
// the count is exposed for callers that want it.
func (ks *Keyspace) HSet(key []byte, pairs [][2][]byte) (int64, error) {
	it, err := ks.hashItem(key, true)
	if err != nil {
		return 0, err
	}
	var created int64
	for _, p := range pairs {
		field := string(p[0])
		if _, exists := it.Hash[field]; !exists {
			created++
		}
		it.Hash[field] = append([]byte(nil), p[1]...)
	}
	return created, nil
}

// HGet returns a field's value, or (nil, false) if the key or field is
// absent.
func (ks *Keyspace) HGet(key, field []byte) ([]byte, bool, error) {
	it, err := ks.hashItem(key, false)
	if err != nil {
		return nil, false, err
	}
	if it == nil {
		return nil, false, nil
	}
	v, ok := it.Hash[string(field)]
	return v, ok, nil
}

// HMGet returns each field's value (nil where absent), preserving
// request order.
func (ks *Keyspace) HMGet(key []byte, fields [][]byte) ([][]byte, error) {
	it, err := ks.hashItem(key, false)
	if err != nil {
		return nil, err
	}
	out := make([][]byte, len(fields))
	if it == nil {
		return out, nil
	}
	for i, f := range fields {
		if v, ok := it.Hash[string(f)]; ok {
			out[i] = v
		}
	}
	return out, nil
}

// HGetAll returns field,value pairs in Go's native (unspecified) map
// iteration order: self-consistent within a call, but not guaranteed
// stable across calls.
func (ks *Keyspace) HGetAll(key []byte) ([][2][]byte, error) {
	it, err := ks.hashItem(key, false)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, nil
	}
	out := make([][2][]byte, 0, len(it.Hash))
	for f, v := range it.Hash {
		out = append(out, [2][]byte{[]byte(f), v})
	}
	return out, nil
}

// HDel removes fields, returning the count actually removed.
func (ks *Keyspace) HDel(key []byte, fields [][]byte) (int64, error) {
	it, err := ks.hashItem(key, false)
	if err != nil {
		return 0, err
	}
	if it == nil {
		return 0, nil
	}
	var removed int64
	for _, f := range fields {
		if _, ok := it.Hash[string(f)]; ok {
			delete(it.Hash, string(f))
			removed++
		}
	}
	return removed, nil
}

// HLen returns the field count (0 if the key is absent).
func (ks *Keyspace) HLen(key []byte) (int64, error) {
	it, err := ks.hashItem(key, false)
	if err != nil {
		return 0, err
	}
	if it == nil {
		return 0, nil
	}
	return int64(len(it.Hash)), nil
}

// HExists reports whether field exists in the hash at key.
func (ks *Keyspace) HExists(key, field []byte) (bool, error) {
	it, err := ks.hashItem(key, false)
	if err != nil {
		return false, err
	}
	if it == nil {
		return false, nil
	}
	_, ok := it.Hash[string(field)]
	return ok, nil
}

// HKeys returns the hash's field names.
func (ks *Keyspace) HKeys(key []byte) ([][]byte, error) {
	it, err := ks.hashItem(key, false)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, nil
	}
	out := make([][]byte, 0, len(it.Hash))
	for f := range it.Hash {
		out = append(out, []byte(f))
	}
	return out, nil
}

// HIncrBy applies the signed-64-bit counter semantics to one field,
// treating a missing field as 0.
func (ks *Keyspace) HIncrBy(key, field []byte, delta int64) (int64, error) {
	it, err := ks.hashItem(key, true)
	if err != nil {
		return 0, err
	}
	var current int64
	if existing, ok := it.Hash[string(field)]; ok {
		n, perr := parseStrictInt64(existing)
		if perr != nil {
			return 0, wrongType("hash value is not an integer")
		}
		current = n
	}
	sum, overflowed := addOverflows(current, delta)
	if overflowed {
		return 0, wrongType("increment or decrement would overflow")
	}
	it.Hash[string(field)] = []byte(strconv.FormatInt(sum, 10))
	return sum, nil
}

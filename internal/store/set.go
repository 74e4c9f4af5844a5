/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/store/set.go
*/
package store

import (
	"math/rand"
	"time"
)

func (ks *Keyspace) setItem(key []byte, createIfAbsent bool) (*Item, error) {
	it, ok := ks.lookup(key, time.Now())
	if !ok {
		if !createIfAbsent {
			return nil, nil
		}
		it = &Item{Kind: KindSet, Set: make(map[string]struct{})}
		ks.entries[string(key)] = it
		return it, nil
	}
	if it.Kind != KindSet {
		return nil, wrongType("expected SET")
	}
	return it, nil
}

// SAdd inserts members, returning the count newly added.
func (ks *Keyspace) SAdd(key []byte, members [][]byte) (int64, error) {
	it, err := ks.setItem(key, true)
	if err != nil {
		return 0, err
	}
	var added int64
	for _, m := range members {
		k := string(m)
		if _, exists := it.Set[k]; !exists {
			it.Set[k] = struct{}{}
			added++
		}
	}
	return added, nil
}

// SRem removes members, returning the count actually removed.
func (ks *Keyspace) SRem(key []byte, members [][]byte) (int64, error) {
	it, err := ks.setItem(key, false)
	if err != nil {
		return 0, err
	}
	if it == nil {
		return 0, nil
	}
	var removed int64
	for _, m := range members {
		k := string(m)
		if _, exists := it.Set[k]; exists {
			delete(it.Set, k)
			removed++
		}
	}
	return removed, nil
}

// SIsMember reports whether member is present in the set at key.
func (ks *Keyspace) SIsMember(key, member []byte) (bool, error) {
	it, err := ks.setItem(key, false)
	if err != nil {
		return false, err
	}
	if it == nil {
		return false, nil
	}
	_, ok := it.Set[string(member)]
	return ok, nil
}

// SCard returns the member count (0 if the key is absent).
func (ks *Keyspace) SCard(key []byte) (int64, error) {
	it, err := ks.setItem(key, false)
	if err != nil {
		return 0, err
	}
	if it == nil {
		return 0, nil
	}
	return int64(len(it.Set)), nil
}

// SMembers returns every member in unspecified order.
func (ks *Keyspace) SMembers(key []byte) ([][]byte, error) {
	it, err := ks.setItem(key, false)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, nil
	}
	out := make([][]byte, 0, len(it.Set))
	for m := range it.Set {
		out = append(out, []byte(m))
	}
	return out, nil
}

// readSetMembers fetches a key's member set for cross-key set algebra,
// treating a missing key as an empty set and surfacing WRONGTYPE for any
// key holding a non-set value.
func (ks *Keyspace) readSetMembers(key []byte) (map[string]struct{}, error) {
	it, err := ks.setItem(key, false)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, nil
	}
	return it.Set, nil
}

// SInter intersects the sets at keys. A missing key makes the whole
// intersection empty.
func (ks *Keyspace) SInter(keys [][]byte) ([][]byte, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	first, err := ks.readSetMembers(keys[0])
	if err != nil {
		return nil, err
	}
	if len(first) == 0 {
		return nil, nil
	}
	result := make(map[string]struct{}, len(first))
	for m := range first {
		result[m] = struct{}{}
	}
	for _, key := range keys[1:] {
		members, err := ks.readSetMembers(key)
		if err != nil {
			return nil, err
		}
		if len(members) == 0 {
			return nil, nil
		}
		for m := range result {
			if _, ok := members[m]; !ok {
				delete(result, m)
			}
		}
		if len(result) == 0 {
			return nil, nil
		}
	}
	return setToSlice(result), nil
}

// SUnion unions the sets at keys; a missing key contributes nothing.
func (ks *Keyspace) SUnion(keys [][]byte) ([][]byte, error) {
	result := make(map[string]struct{})
	for _, key := range keys {
		members, err := ks.readSetMembers(key)
		if err != nil {
			return nil, err
		}
		for m := range members {
			result[m] = struct{}{}
		}
	}
	return setToSlice(result), nil
}

// SDiff subtracts every later set from the first, left to right. A
// missing first key yields an empty result; a missing later key
// subtracts nothing.
func (ks *Keyspace) SDiff(keys [][]byte) ([][]byte, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	first, err := ks.readSetMembers(keys[0])
	if err != nil {
		return nil, err
	}
	result := make(map[string]struct{}, len(first))
	for m := range first {
		result[m] = struct{}{}
	}
	for _, key := range keys[1:] {
		members, err := ks.readSetMembers(key)
		if err != nil {
			return nil, err
		}
		for m := range members {
			delete(result, m)
		}
	}
	return setToSlice(result), nil
}

// SRandMember returns up to count distinct random members. A nil count
// returns a single member (or nil if the key is absent); a negative
// count is treated as its absolute value, and any count is clamped to
// the set's size — the repeats-allowed variant of SRANDMEMBER is not
// supported.
func (ks *Keyspace) SRandMember(key []byte, count *int64) ([][]byte, error) {
	it, err := ks.setItem(key, false)
	if err != nil {
		return nil, err
	}
	if it == nil || len(it.Set) == 0 {
		return nil, nil
	}
	members := setToSlice(it.Set)
	if count == nil {
		return [][]byte{members[rand.Intn(len(members))]}, nil
	}
	n := *count
	if n < 0 {
		n = -n
	}
	if n > int64(len(members)) {
		n = int64(len(members))
	}
	rand.Shuffle(len(members), func(i, j int) { members[i], members[j] = members[j], members[i] })
	return members[:n], nil
}

func setToSlice(s map[string]struct{}) [][]byte {
	if len(s) == 0 {
		return nil
	}
	out := make([][]byte, 0, len(s))
	for m := range s {
		out = append(out, []byte(m))
	}
	return out
}

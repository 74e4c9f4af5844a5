/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/store/sortedset_ops.go
*/
package store

import "time"

// zsetItem locates (or creates) the ZSet-kind item at key, following the
// same create-on-write pattern as listItem/hashItem/setItem.
func (ks *Keyspace) zsetItem(key []byte, createIfAbsent bool) (*Item, error) {
	it, ok := ks.lookup(key, time.Now())
	if !ok {
		if !createIfAbsent {
			return nil, nil
		}
		it = &Item{Kind: KindSortedSet, ZSet: NewSortedSet()}
		ks.entries[string(key)] = it
		return it, nil
	}
	if it.Kind != KindSortedSet {
		return nil, wrongType("expected ZSET")
	}
	return it, nil
}

// ZAdd adds or updates (score, member) pairs, returning the count of
// members newly added (updating an existing member's score, changed or
// not, doesn't count toward ZADD's return value).
func (ks *Keyspace) ZAdd(key []byte, pairs []ScoredMember) (int64, error) {
	it, err := ks.zsetItem(key, true)
	if err != nil {
		return 0, err
	}
	var added int64
	for _, p := range pairs {
		if it.ZSet.Add(p.Score, p.Member) {
			added++
		}
	}
	return added, nil
}

// ZRem removes members, returning the count actually removed.
func (ks *Keyspace) ZRem(key []byte, members [][]byte) (int64, error) {
	it, err := ks.zsetItem(key, false)
	if err != nil {
		return 0, err
	}
	if it == nil {
		return 0, nil
	}
	var removed int64
	for _, m := range members {
		if it.ZSet.Remove(m) {
			removed++
		}
	}
	return removed, nil
}

// ZScore returns member's score, or (0, false) if absent.
func (ks *Keyspace) ZScore(key, member []byte) (int64, bool, error) {
	it, err := ks.zsetItem(key, false)
	if err != nil {
		return 0, false, err
	}
	if it == nil {
		return 0, false, nil
	}
	s, ok := it.ZSet.Score(member)
	return s, ok, nil
}

// ZCard returns the member count (0 if the key is absent).
func (ks *Keyspace) ZCard(key []byte) (int64, error) {
	it, err := ks.zsetItem(key, false)
	if err != nil {
		return 0, err
	}
	if it == nil {
		return 0, nil
	}
	return int64(it.ZSet.Len()), nil
}

// ZRange returns the ascending-order members within [start, stop].
func (ks *Keyspace) ZRange(key []byte, start, stop int64) ([]ScoredMember, error) {
	it, err := ks.zsetItem(key, false)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, nil
	}
	return it.ZSet.Range(int(start), int(stop)), nil
}

// ZRevRange returns the descending-order members within [start, stop].
func (ks *Keyspace) ZRevRange(key []byte, start, stop int64) ([]ScoredMember, error) {
	it, err := ks.zsetItem(key, false)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, nil
	}
	return it.ZSet.RevRange(int(start), int(stop)), nil
}

// ZRank returns member's 0-based ascending rank, or (0, false) if absent.
func (ks *Keyspace) ZRank(key, member []byte) (int64, bool, error) {
	it, err := ks.zsetItem(key, false)
	if err != nil {
		return 0, false, err
	}
	if it == nil {
		return 0, false, nil
	}
	r, ok := it.ZSet.Rank(member)
	return int64(r), ok, nil
}

// ZRevRank returns member's 0-based descending rank, or (0, false) if
// absent.
func (ks *Keyspace) ZRevRank(key, member []byte) (int64, bool, error) {
	it, err := ks.zsetItem(key, false)
	if err != nil {
		return 0, false, err
	}
	if it == nil {
		return 0, false, nil
	}
	r, ok := it.ZSet.RevRank(member)
	return int64(r), ok, nil
}

// ZRangeByScore returns ascending-order members with score in [min, max].
func (ks *Keyspace) ZRangeByScore(key []byte, min, max int64) ([]ScoredMember, error) {
	it, err := ks.zsetItem(key, false)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, nil
	}
	return it.ZSet.RangeByScore(min, max), nil
}

// ZIncrBy adds incr to member's score (0 if absent), creating the key if
// needed, and returns the new score.
func (ks *Keyspace) ZIncrBy(key []byte, incr int64, member []byte) (int64, error) {
	it, err := ks.zsetItem(key, true)
	if err != nil {
		return 0, err
	}
	old, _ := it.ZSet.Score(member)
	if _, overflowed := addOverflows(old, incr); overflowed {
		return 0, wrongType("increment or decrement would overflow")
	}
	return it.ZSet.IncrBy(incr, member), nil
}

/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/store/zset.go
*/
package store

import (
	"bytes"
	"sort"
)

// zentry is one (score, member) pair held in the ordered index.
type zentry struct {
	score  int64
	member []byte
}

// less orders entries ascending by score, ties broken by ascending
// member bytes.
func (e zentry) less(o zentry) bool {
	if e.score != o.score {
		return e.score < o.score
	}
	return bytes.Compare(e.member, o.member) < 0
}

// SortedSet pairs an ordered index over (score, member) for rank/range
// queries with a member→score map for O(1) score lookup and existence
// checks. The ordered index is a sorted slice with binary-search
// insertion rather than a tree or skiplist, matching this codebase's
// general preference for sort-based ordering over hand-rolled trees.
// Invariant: an entry is in the index iff scores maps member to that
// score.
type SortedSet struct {
	index  []zentry
	scores map[string]int64
}

// NewSortedSet returns an empty sorted set ready for ZADD.
func NewSortedSet() *SortedSet {
	return &SortedSet{scores: make(map[string]int64)}
}

func (z *SortedSet) search(e zentry) int {
	return sort.Search(len(z.index), func(i int) bool { return !z.index[i].less(e) })
}

func (z *SortedSet) removeEntry(score int64, member []byte) {
	e := zentry{score: score, member: member}
	i := z.search(e)
	if i < len(z.index) && z.index[i].score == score && bytes.Equal(z.index[i].member, member) {
		z.index = append(z.index[:i], z.index[i+1:]...)
	}
}

func (z *SortedSet) insertEntry(score int64, member []byte) {
	e := zentry{score: score, member: append([]byte(nil), member...)}
	i := z.search(e)
	z.index = append(z.index, zentry{})
	copy(z.index[i+1:], z.index[i:])
	z.index[i] = e
}

// Add inserts or updates member's score. Returns true if member is newly
// added (ZADD's return value counts additions, not updates).
func (z *SortedSet) Add(score int64, member []byte) (added bool) {
	key := string(member)
	if old, exists := z.scores[key]; exists {
		if old == score {
			return false
		}
		z.removeEntry(old, member)
		z.insertEntry(score, member)
		z.scores[key] = score
		return false
	}
	z.insertEntry(score, member)
	z.scores[key] = score
	return true
}

// IncrBy adds incr to member's current score (0 if absent) and returns the
// new score.
func (z *SortedSet) IncrBy(incr int64, member []byte) int64 {
	key := string(member)
	old := z.scores[key]
	newScore := old + incr
	if _, exists := z.scores[key]; exists {
		z.removeEntry(old, member)
	}
	z.insertEntry(newScore, member)
	z.scores[key] = newScore
	return newScore
}

// Remove deletes member if present, reporting whether it was present.
func (z *SortedSet) Remove(member []byte) bool {
	key := string(member)
	score, exists := z.scores[key]
	if !exists {
		return false
	}
	z.removeEntry(score, member)
	delete(z.scores, key)
	return true
}

// Score returns member's score and whether it exists.
func (z *SortedSet) Score(member []byte) (int64, bool) {
	s, ok := z.scores[string(member)]
	return s, ok
}

// Len returns the member count.
func (z *SortedSet) Len() int { return len(z.index) }

// Rank returns member's 0-based ascending rank, or false if absent.
func (z *SortedSet) Rank(member []byte) (int, bool) {
	score, ok := z.Score(member)
	if !ok {
		return 0, false
	}
	return z.search(zentry{score: score, member: member}), true
}

// RevRank returns member's 0-based descending rank, or false if absent.
func (z *SortedSet) RevRank(member []byte) (int, bool) {
	rank, ok := z.Rank(member)
	if !ok {
		return 0, false
	}
	return z.Len() - 1 - rank, true
}

// clampRange normalizes Redis-style negative indices, shared by list and
// sorted-set range queries. Returns ok=false for an empty range.
func clampRange(length, start, stop int) (lo, hi int, ok bool) {
	if length == 0 {
		return 0, 0, false
	}
	if start < 0 {
		start = length + start
		if start < 0 {
			start = 0
		}
	}
	if stop < 0 {
		stop = length + stop
		if stop < 0 {
			stop = 0
		}
	}
	if start > length-1 {
		return 0, 0, false
	}
	if stop > length-1 {
		stop = length - 1
	}
	if start > stop {
		return 0, 0, false
	}
	return start, stop, true
}

// Range returns the ascending-order (score, member) pairs within
// [start, stop], using list-style clamped indices.
func (z *SortedSet) Range(start, stop int) []ScoredMember {
	lo, hi, ok := clampRange(z.Len(), start, stop)
	if !ok {
		return nil
	}
	out := make([]ScoredMember, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, ScoredMember{Member: z.index[i].member, Score: z.index[i].score})
	}
	return out
}

// RevRange returns the descending-order (score, member) pairs within
// [start, stop].
func (z *SortedSet) RevRange(start, stop int) []ScoredMember {
	lo, hi, ok := clampRange(z.Len(), start, stop)
	if !ok {
		return nil
	}
	out := make([]ScoredMember, 0, hi-lo+1)
	n := z.Len()
	for i := n - 1 - lo; i >= n-1-hi; i-- {
		out = append(out, ScoredMember{Member: z.index[i].member, Score: z.index[i].score})
	}
	return out
}

// RangeByScore returns ascending-order pairs with score in [min, max]
// inclusive.
func (z *SortedSet) RangeByScore(min, max int64) []ScoredMember {
	var out []ScoredMember
	for _, e := range z.index {
		if e.score < min {
			continue
		}
		if e.score > max {
			break
		}
		out = append(out, ScoredMember{Member: e.member, Score: e.score})
	}
	return out
}

// ScoredMember is one (member, score) pair returned by a range query.
type ScoredMember struct {
	Member []byte
	Score  int64
}

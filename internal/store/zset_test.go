package store

import "testing"

func TestZAddAndScore(t *testing.T) {
	ks := NewKeyspace()
	added, err := ks.ZAdd([]byte("z"), []ScoredMember{{Member: []byte("a"), Score: 1}})
	if err != nil || added != 1 {
		t.Fatalf("ZAdd() = %d, %v", added, err)
	}
	score, ok, err := ks.ZScore([]byte("z"), []byte("a"))
	if err != nil || !ok || score != 1 {
		t.Fatalf("ZScore() = %d, %v, %v", score, ok, err)
	}
}

func TestZAddUpdateDoesNotCountAsAdded(t *testing.T) {
	ks := NewKeyspace()
	ks.ZAdd([]byte("z"), []ScoredMember{{Member: []byte("a"), Score: 1}})
	added, _ := ks.ZAdd([]byte("z"), []ScoredMember{{Member: []byte("a"), Score: 5}})
	if added != 0 {
		t.Fatalf("updating an existing member's score should not count as added, got %d", added)
	}
	score, _, _ := ks.ZScore([]byte("z"), []byte("a"))
	if score != 5 {
		t.Fatalf("score not updated: got %d, want 5", score)
	}
}

func TestZRangeAscendingOrder(t *testing.T) {
	ks := NewKeyspace()
	ks.ZAdd([]byte("z"), []ScoredMember{
		{Member: []byte("c"), Score: 3},
		{Member: []byte("a"), Score: 1},
		{Member: []byte("b"), Score: 2},
	})
	got, err := ks.ZRange([]byte("z"), 0, -1)
	if err != nil {
		t.Fatalf("ZRange() error = %v", err)
	}
	want := []string{"a", "b", "c"}
	for i, w := range want {
		if string(got[i].Member) != w {
			t.Fatalf("ZRange()[%d] = %q, want %q", i, got[i].Member, w)
		}
	}
}

func TestZRangeTieBrokenByMemberBytes(t *testing.T) {
	ks := NewKeyspace()
	ks.ZAdd([]byte("z"), []ScoredMember{
		{Member: []byte("zebra"), Score: 1},
		{Member: []byte("apple"), Score: 1},
	})
	got, _ := ks.ZRange([]byte("z"), 0, -1)
	if string(got[0].Member) != "apple" || string(got[1].Member) != "zebra" {
		t.Fatalf("tie-break order wrong: %v", got)
	}
}

func TestZRevRange(t *testing.T) {
	ks := NewKeyspace()
	ks.ZAdd([]byte("z"), []ScoredMember{
		{Member: []byte("a"), Score: 1},
		{Member: []byte("b"), Score: 2},
	})
	got, _ := ks.ZRevRange([]byte("z"), 0, -1)
	if string(got[0].Member) != "b" || string(got[1].Member) != "a" {
		t.Fatalf("ZRevRange() = %v", got)
	}
}

func TestZRankAndRevRank(t *testing.T) {
	ks := NewKeyspace()
	ks.ZAdd([]byte("z"), []ScoredMember{
		{Member: []byte("a"), Score: 1},
		{Member: []byte("b"), Score: 2},
		{Member: []byte("c"), Score: 3},
	})
	rank, ok, _ := ks.ZRank([]byte("z"), []byte("b"))
	if !ok || rank != 1 {
		t.Fatalf("ZRank(b) = %d, %v, want 1", rank, ok)
	}
	revRank, ok, _ := ks.ZRevRank([]byte("z"), []byte("b"))
	if !ok || revRank != 1 {
		t.Fatalf("ZRevRank(b) = %d, %v, want 1", revRank, ok)
	}
}

func TestZRangeByScore(t *testing.T) {
	ks := NewKeyspace()
	ks.ZAdd([]byte("z"), []ScoredMember{
		{Member: []byte("a"), Score: 1},
		{Member: []byte("b"), Score: 2},
		{Member: []byte("c"), Score: 3},
	})
	got, _ := ks.ZRangeByScore([]byte("z"), 2, 3)
	if len(got) != 2 || string(got[0].Member) != "b" || string(got[1].Member) != "c" {
		t.Fatalf("ZRangeByScore(2,3) = %v", got)
	}
}

func TestZIncrByCreatesKey(t *testing.T) {
	ks := NewKeyspace()
	score, err := ks.ZIncrBy([]byte("z"), 5, []byte("a"))
	if err != nil || score != 5 {
		t.Fatalf("ZIncrBy() = %d, %v", score, err)
	}
	score, err = ks.ZIncrBy([]byte("z"), -2, []byte("a"))
	if err != nil || score != 3 {
		t.Fatalf("ZIncrBy() = %d, %v", score, err)
	}
}

func TestZRemAndZCard(t *testing.T) {
	ks := NewKeyspace()
	ks.ZAdd([]byte("z"), []ScoredMember{{Member: []byte("a"), Score: 1}, {Member: []byte("b"), Score: 2}})
	removed, err := ks.ZRem([]byte("z"), [][]byte{[]byte("a"), []byte("missing")})
	if err != nil || removed != 1 {
		t.Fatalf("ZRem() = %d, %v", removed, err)
	}
	n, _ := ks.ZCard([]byte("z"))
	if n != 1 {
		t.Fatalf("ZCard() = %d, want 1", n)
	}
}

func TestZAddWrongType(t *testing.T) {
	ks := NewKeyspace()
	ks.Set([]byte("k"), []byte("v"), SetOptions{})
	if _, err := ks.ZAdd([]byte("k"), []ScoredMember{{Member: []byte("a"), Score: 1}}); err == nil {
		t.Fatalf("expected WRONGTYPE ZADD on a string key")
	}
}

func TestSortedSetDirectInsertAndRemove(t *testing.T) {
	z := NewSortedSet()
	if !z.Add(10, []byte("x")) {
		t.Fatalf("first Add() of a member should return true")
	}
	if z.Add(10, []byte("x")) {
		t.Fatalf("re-adding the same score should return false")
	}
	if !z.Remove([]byte("x")) {
		t.Fatalf("Remove() of a present member should return true")
	}
	if z.Len() != 0 {
		t.Fatalf("Len() after Remove() = %d, want 0", z.Len())
	}
}

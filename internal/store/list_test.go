package store

import (
	"bytes"
	"testing"
)

func TestLPushRPushOrder(t *testing.T) {
	ks := NewKeyspace()
	ks.RPush([]byte("l"), [][]byte{[]byte("a"), []byte("b")})
	ks.LPush([]byte("l"), [][]byte{[]byte("x"), []byte("y")})
	got, err := ks.LRange([]byte("l"), 0, -1)
	if err != nil {
		t.Fatalf("LRange() error = %v", err)
	}
	want := []string{"y", "x", "a", "b"}
	if len(got) != len(want) {
		t.Fatalf("LRange() = %v, want %v", got, want)
	}
	for i, w := range want {
		if string(got[i]) != w {
			t.Fatalf("LRange()[%d] = %q, want %q", i, got[i], w)
		}
	}
}

func TestLPushXOnMissingKey(t *testing.T) {
	ks := NewKeyspace()
	n, existed, err := ks.LPushX([]byte("missing"), [][]byte{[]byte("a")})
	if err != nil || existed || n != 0 {
		t.Fatalf("LPushX on missing key = %d, %v, %v", n, existed, err)
	}
	if ks.Exists([]byte("missing")) {
		t.Fatalf("LPushX must not create the key on a miss")
	}
}

func TestLPopRPop(t *testing.T) {
	ks := NewKeyspace()
	ks.RPush([]byte("l"), [][]byte{[]byte("a"), []byte("b"), []byte("c")})
	popped, ok, err := ks.LPop([]byte("l"), nil)
	if err != nil || !ok || len(popped) != 1 || string(popped[0]) != "a" {
		t.Fatalf("LPop() = %v, %v, %v", popped, ok, err)
	}
	two := int64(2)
	popped, ok, err = ks.RPop([]byte("l"), &two)
	if err != nil || !ok || len(popped) != 2 {
		t.Fatalf("RPop(2) = %v, %v, %v", popped, ok, err)
	}
	if string(popped[0]) != "c" || string(popped[1]) != "b" {
		t.Fatalf("RPop(2) order = %v", popped)
	}
}

func TestLRangeNegativeIndices(t *testing.T) {
	ks := NewKeyspace()
	ks.RPush([]byte("l"), [][]byte{[]byte("a"), []byte("b"), []byte("c")})
	got, _ := ks.LRange([]byte("l"), -2, -1)
	if len(got) != 2 || string(got[0]) != "b" || string(got[1]) != "c" {
		t.Fatalf("LRange(-2,-1) = %v", got)
	}
}

func TestLPushWrongType(t *testing.T) {
	ks := NewKeyspace()
	ks.Set([]byte("k"), []byte("v"), SetOptions{})
	if _, err := ks.LPush([]byte("k"), [][]byte{[]byte("a")}); err == nil {
		t.Fatalf("expected WRONGTYPE pushing onto a string key")
	}
}

func TestLPushCopiesInput(t *testing.T) {
	ks := NewKeyspace()
	val := []byte("a")
	ks.RPush([]byte("l"), [][]byte{val})
	val[0] = 'z'
	got, _ := ks.LRange([]byte("l"), 0, 0)
	if !bytes.Equal(got[0], []byte("a")) {
		t.Fatalf("list element aliases caller's slice: got %q", got[0])
	}
}

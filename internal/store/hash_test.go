package store

import "testing"

func TestHSetHGet(t *testing.T) {
	ks := NewKeyspace()
	created, err := ks.HSet([]byte("h"), [][2][]byte{{[]byte("f1"), []byte("v1")}})
	if err != nil || created != 1 {
		t.Fatalf("HSet() = %d, %v", created, err)
	}
	v, ok, err := ks.HGet([]byte("h"), []byte("f1"))
	if err != nil || !ok || string(v) != "v1" {
		t.Fatalf("HGet() = %q, %v, %v", v, ok, err)
	}
}

func TestHSetOverwriteDoesNotCount(t *testing.T) {
	ks := NewKeyspace()
	ks.HSet([]byte("h"), [][2][]byte{{[]byte("f1"), []byte("v1")}})
	created, _ := ks.HSet([]byte("h"), [][2][]byte{{[]byte("f1"), []byte("v2")}})
	if created != 0 {
		t.Fatalf("overwriting an existing field should not count as created, got %d", created)
	}
}

func TestHMGetPreservesOrderAndMissing(t *testing.T) {
	ks := NewKeyspace()
	ks.HSet([]byte("h"), [][2][]byte{{[]byte("a"), []byte("1")}, {[]byte("b"), []byte("2")}})
	out, err := ks.HMGet([]byte("h"), [][]byte{[]byte("b"), []byte("missing"), []byte("a")})
	if err != nil {
		t.Fatalf("HMGet() error = %v", err)
	}
	if string(out[0]) != "2" || out[1] != nil || string(out[2]) != "1" {
		t.Fatalf("HMGet() = %v", out)
	}
}

func TestHDelAndHLen(t *testing.T) {
	ks := NewKeyspace()
	ks.HSet([]byte("h"), [][2][]byte{{[]byte("a"), []byte("1")}, {[]byte("b"), []byte("2")}})
	removed, err := ks.HDel([]byte("h"), [][]byte{[]byte("a"), []byte("missing")})
	if err != nil || removed != 1 {
		t.Fatalf("HDel() = %d, %v", removed, err)
	}
	n, _ := ks.HLen([]byte("h"))
	if n != 1 {
		t.Fatalf("HLen() = %d, want 1", n)
	}
}

func TestHIncrByMissingFieldStartsAtZero(t *testing.T) {
	ks := NewKeyspace()
	n, err := ks.HIncrBy([]byte("h"), []byte("counter"), 5)
	if err != nil || n != 5 {
		t.Fatalf("HIncrBy() = %d, %v", n, err)
	}
	n, err = ks.HIncrBy([]byte("h"), []byte("counter"), 3)
	if err != nil || n != 8 {
		t.Fatalf("HIncrBy() = %d, %v", n, err)
	}
	v, _, _ := ks.HGet([]byte("h"), []byte("counter"))
	if string(v) != "8" {
		t.Fatalf("stored field value = %q, want \"8\"", v)
	}
}

func TestHIncrByOnNonIntegerField(t *testing.T) {
	ks := NewKeyspace()
	ks.HSet([]byte("h"), [][2][]byte{{[]byte("f"), []byte("not-a-number")}})
	if _, err := ks.HIncrBy([]byte("h"), []byte("f"), 1); err == nil {
		t.Fatalf("expected WRONGTYPE incrementing a non-numeric hash field")
	}
}

func TestHGetOnMissingKey(t *testing.T) {
	ks := NewKeyspace()
	_, ok, err := ks.HGet([]byte("missing"), []byte("f"))
	if err != nil || ok {
		t.Fatalf("HGet() on missing key = %v, %v", ok, err)
	}
}

func TestHSetWrongType(t *testing.T) {
	ks := NewKeyspace()
	ks.RPush([]byte("k"), [][]byte{[]byte("a")})
	if _, err := ks.HSet([]byte("k"), [][2][]byte{{[]byte("f"), []byte("v")}}); err == nil {
		t.Fatalf("expected WRONGTYPE HSET on a list key")
	}
}

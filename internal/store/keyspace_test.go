package store

import "testing"

func TestSetAndGet(t *testing.T) {
	ks := NewKeyspace()
	_, wrote, err := ks.Set([]byte("k"), []byte("v"), SetOptions{})
	if err != nil || !wrote {
		t.Fatalf("Set() = wrote=%v err=%v", wrote, err)
	}
	v, ok, err := ks.Get([]byte("k"))
	if err != nil || !ok || string(v) != "v" {
		t.Fatalf("Get() = %q ok=%v err=%v", v, ok, err)
	}
}

func TestSetNXOnExisting(t *testing.T) {
	ks := NewKeyspace()
	ks.Set([]byte("k"), []byte("v1"), SetOptions{})
	_, wrote, err := ks.Set([]byte("k"), []byte("v2"), SetOptions{OnlyIfAbs: true})
	if err != nil || wrote {
		t.Fatalf("NX over existing key should not write, got wrote=%v err=%v", wrote, err)
	}
	v, _, _ := ks.Get([]byte("k"))
	if string(v) != "v1" {
		t.Fatalf("value changed despite failed NX: %q", v)
	}
}

func TestSetXXOnMissing(t *testing.T) {
	ks := NewKeyspace()
	_, wrote, err := ks.Set([]byte("missing"), []byte("v"), SetOptions{OnlyIfPres: true})
	if err != nil || wrote {
		t.Fatalf("XX over missing key should not write, got wrote=%v err=%v", wrote, err)
	}
}

func TestGetWrongType(t *testing.T) {
	ks := NewKeyspace()
	ks.LPush([]byte("k"), [][]byte{[]byte("a")})
	if _, _, err := ks.Get([]byte("k")); err == nil {
		t.Fatalf("expected WRONGTYPE reading a list as a string")
	}
}

func TestIncrBy(t *testing.T) {
	ks := NewKeyspace()
	n, err := ks.IncrBy([]byte("counter"), 5)
	if err != nil || n != 5 {
		t.Fatalf("IncrBy() = %d, %v", n, err)
	}
	n, err = ks.IncrBy([]byte("counter"), -2)
	if err != nil || n != 3 {
		t.Fatalf("IncrBy() = %d, %v", n, err)
	}
}

func TestIncrByOnNonInteger(t *testing.T) {
	ks := NewKeyspace()
	ks.Set([]byte("k"), []byte("not-a-number"), SetOptions{})
	if _, err := ks.IncrBy([]byte("k"), 1); err == nil {
		t.Fatalf("expected WRONGTYPE incrementing a non-numeric string")
	}
}

func TestIncrByRejectsLeadingPlus(t *testing.T) {
	ks := NewKeyspace()
	ks.Set([]byte("k"), []byte("+5"), SetOptions{})
	if _, err := ks.IncrBy([]byte("k"), 1); err == nil {
		t.Fatalf("expected WRONGTYPE for a plus-signed stored value")
	}
}

func TestIncrByOverflow(t *testing.T) {
	ks := NewKeyspace()
	ks.Set([]byte("k"), []byte("9223372036854775807"), SetOptions{})
	if _, err := ks.IncrBy([]byte("k"), 1); err == nil {
		t.Fatalf("expected WRONGTYPE on overflow")
	}
}

func TestDelCountsOnlyPresentKeys(t *testing.T) {
	ks := NewKeyspace()
	ks.Set([]byte("a"), []byte("1"), SetOptions{})
	n := ks.Del([][]byte{[]byte("a"), []byte("b")})
	if n != 1 {
		t.Fatalf("Del() = %d, want 1", n)
	}
}

func TestExpireAndTTL(t *testing.T) {
	ks := NewKeyspace()
	ks.Set([]byte("k"), []byte("v"), SetOptions{})
	if ks.TTL([]byte("k")) != -1 {
		t.Fatalf("expected -1 TTL for key without expiry")
	}
	if ks.TTL([]byte("missing")) != -2 {
		t.Fatalf("expected -2 TTL for missing key")
	}
	if !ks.Expire([]byte("k"), 100) {
		t.Fatalf("Expire() on existing key should succeed")
	}
	if ttl := ks.TTL([]byte("k")); ttl <= 0 || ttl > 100 {
		t.Fatalf("TTL() = %d, want in (0, 100]", ttl)
	}
	if !ks.Persist([]byte("k")) {
		t.Fatalf("Persist() should report true when an expiry was removed")
	}
	if ks.TTL([]byte("k")) != -1 {
		t.Fatalf("expected -1 TTL after Persist")
	}
}

func TestExpiredKeyReadsAsAbsent(t *testing.T) {
	ks := NewKeyspace()
	ks.Set([]byte("k"), []byte("v"), SetOptions{})
	ks.Expire([]byte("k"), -1)
	if ks.Exists([]byte("k")) {
		t.Fatalf("expired key should not exist")
	}
}

func TestRename(t *testing.T) {
	ks := NewKeyspace()
	ks.Set([]byte("src"), []byte("v"), SetOptions{})
	if err := ks.Rename([]byte("src"), []byte("dst")); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if ks.Exists([]byte("src")) {
		t.Fatalf("src should no longer exist after rename")
	}
	v, ok, _ := ks.Get([]byte("dst"))
	if !ok || string(v) != "v" {
		t.Fatalf("dst should hold src's value, got %q ok=%v", v, ok)
	}
}

func TestRenameMissingSource(t *testing.T) {
	ks := NewKeyspace()
	if err := ks.Rename([]byte("missing"), []byte("dst")); err == nil {
		t.Fatalf("expected error renaming a missing key")
	}
}

func TestTypeAndFlush(t *testing.T) {
	ks := NewKeyspace()
	ks.Set([]byte("s"), []byte("v"), SetOptions{})
	ks.LPush([]byte("l"), [][]byte{[]byte("a")})
	if k, ok := ks.Type([]byte("s")); !ok || k != KindString {
		t.Fatalf("Type(s) = %v, %v", k, ok)
	}
	if k, ok := ks.Type([]byte("l")); !ok || k != KindList {
		t.Fatalf("Type(l) = %v, %v", k, ok)
	}
	ks.Flush()
	if ks.Len() != 0 {
		t.Fatalf("expected empty keyspace after Flush, got Len()=%d", ks.Len())
	}
}

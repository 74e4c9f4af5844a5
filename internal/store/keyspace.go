/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/store/keyspace.go
*/
package store

import (
	"errors"
	"strconv"
	"time"
)

// Keyspace is the single top-level mapping from key-bytes to StoredValue.
// It is deliberately unsynchronized: the single-threaded event loop
// guarantees no two operations are ever in flight, so a mutex-guarded
// map would only add overhead no caller needs.
type Keyspace struct {
	entries map[string]*Item
}

// NewKeyspace returns an empty keyspace.
func NewKeyspace() *Keyspace {
	return &Keyspace{entries: make(map[string]*Item)}
}

// Len reports the number of live keys, used by DBSIZE and the INFO
// keyspace section.
func (ks *Keyspace) Len() int { return len(ks.entries) }

// Flush clears every key, implementing FLUSHDB.
func (ks *Keyspace) Flush() { ks.entries = make(map[string]*Item) }

// Keys returns every live key as a byte slice, used by the KEYS command.
// Order is unspecified, matching Go's native map iteration.
func (ks *Keyspace) Keys() [][]byte {
	out := make([][]byte, 0, len(ks.entries))
	for k := range ks.entries {
		out = append(out, []byte(k))
	}
	return out
}

// lookup returns the live (non-expired) item for key, transparently
// deleting it first if its deadline has passed. A StringWithExpiry item
// whose deadline has passed behaves as absent on every read path, per
// no background expiry sweep is required.
func (ks *Keyspace) lookup(key []byte, now time.Time) (*Item, bool) {
	it, ok := ks.entries[string(key)]
	if !ok {
		return nil, false
	}
	if it.Expired(now) {
		delete(ks.entries, string(key))
		return nil, false
	}
	return it, true
}

// Exists reports whether key currently holds a live value.
func (ks *Keyspace) Exists(key []byte) bool {
	_, ok := ks.lookup(key, time.Now())
	return ok
}

// Del removes keys, returning the count actually present beforehand, per
// matching Redis's integer-count convention.
func (ks *Keyspace) Del(keys [][]byte) int64 {
	var removed int64
	now := time.Now()
	for _, k := range keys {
		if _, ok := ks.lookup(k, now); ok {
			delete(ks.entries, string(k))
			removed++
		}
	}
	return removed
}

// Type returns the type tag for key's current value, with ok=false if
// the key is absent.
func (ks *Keyspace) Type(key []byte) (Kind, bool) {
	it, ok := ks.lookup(key, time.Now())
	if !ok {
		return 0, false
	}
	return it.Kind, true
}

// Rename moves the value stored at src to dst, preserving Kind and any
// expiry intact. Returns an error if src doesn't exist.
func (ks *Keyspace) Rename(src, dst []byte) error {
	it, ok := ks.lookup(src, time.Now())
	if !ok {
		return errors.New("no such key")
	}
	delete(ks.entries, string(src))
	ks.entries[string(dst)] = it
	return nil
}

// TTL returns the remaining seconds for key: -2 if key doesn't exist, -1
// if it exists without an expiry, and the positive remaining duration
// otherwise.
func (ks *Keyspace) TTL(key []byte) int64 {
	it, ok := ks.lookup(key, time.Now())
	if !ok {
		return -2
	}
	if !it.HasExpiry() {
		return -1
	}
	remaining := time.Until(it.Expiry)
	if remaining < 0 {
		return -2
	}
	secs := int64(remaining.Seconds())
	if secs <= 0 && remaining > 0 {
		secs = 1
	}
	return secs
}

// Expire attaches an absolute deadline (now + seconds) to an existing
// key, returning false if the key doesn't exist.
func (ks *Keyspace) Expire(key []byte, seconds int64) bool {
	it, ok := ks.lookup(key, time.Now())
	if !ok {
		return false
	}
	it.Expiry = time.Now().Add(time.Duration(seconds) * time.Second)
	return true
}

// Persist strips any expiry from an existing key, returning whether it
// actually had one to remove.
func (ks *Keyspace) Persist(key []byte) bool {
	it, ok := ks.lookup(key, time.Now())
	if !ok || !it.HasExpiry() {
		return false
	}
	it.Expiry = time.Time{}
	return true
}

// SetOptions controls SET's optional-operand behavior.
type SetOptions struct {
	Expiry      time.Time // zero means none
	HasExpiry   bool
	OnlyIfAbs   bool // NX
	OnlyIfPres  bool // XX
	ReturnPrior bool // GET
	KeepTTL     bool
}

// Set implements SET's full operand matrix. It returns the prior string
// value (nil if absent or opts.ReturnPrior is false) and whether the
// write actually happened (false on a failed NX/XX precondition).
func (ks *Keyspace) Set(key, val []byte, opts SetOptions) (prior []byte, wrote bool, err error) {
	now := time.Now()
	existing, exists := ks.lookup(key, now)

	if opts.ReturnPrior && exists {
		if existing.Kind != KindString {
			return nil, false, wrongType("expected STRING")
		}
		prior = make([]byte, len(existing.Str))
		copy(prior, existing.Str)
	}

	if opts.OnlyIfAbs && exists {
		return prior, false, nil
	}
	if opts.OnlyIfPres && !exists {
		return prior, false, nil
	}

	item := newStringItem(append([]byte(nil), val...))
	if opts.HasExpiry {
		item.Expiry = opts.Expiry
	} else if opts.KeepTTL && exists && existing.HasExpiry() {
		item.Expiry = existing.Expiry
	}
	ks.entries[string(key)] = item
	return prior, true, nil
}

// Get returns key's string value, or (nil, false) if absent, not a
// string, or expired.
func (ks *Keyspace) Get(key []byte) ([]byte, bool, error) {
	it, ok := ks.lookup(key, time.Now())
	if !ok {
		return nil, false, nil
	}
	if it.Kind != KindString {
		return nil, false, wrongType("expected STRING")
	}
	return it.Str, true, nil
}

// IncrBy applies signed-64-bit counter semantics: a missing key reads as
// 0; the stored bytes must parse as a base-10 int64 with no surrounding
// whitespace; overflow and parse failure both fold into WRONGTYPE.
func (ks *Keyspace) IncrBy(key []byte, delta int64) (int64, error) {
	it, ok := ks.lookup(key, time.Now())
	var current int64
	if ok {
		if it.Kind != KindString {
			return 0, wrongType("expected STRING")
		}
		n, err := parseStrictInt64(it.Str)
		if err != nil {
			return 0, wrongType("value is not an integer or out of range")
		}
		current = n
	}

	sum, overflowed := addOverflows(current, delta)
	if overflowed {
		return 0, wrongType("increment or decrement would overflow")
	}

	newItem := newStringItem([]byte(strconv.FormatInt(sum, 10)))
	if ok && it.HasExpiry() {
		newItem.Expiry = it.Expiry
	}
	ks.entries[string(key)] = newItem
	return sum, nil
}

func addOverflows(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, true
	}
	return sum, false
}

// parseStrictInt64 rejects leading/trailing whitespace, a leading "+",
// a lone "-", and extraneous leading zeros beyond "0" itself.
func parseStrictInt64(b []byte) (int64, error) {
	s := string(b)
	if s == "" {
		return 0, wrongType("empty value")
	}
	if s[0] == '+' {
		return 0, wrongType("malformed integer")
	}
	unsigned := s
	if s[0] == '-' {
		unsigned = s[1:]
	}
	if unsigned == "" {
		return 0, wrongType("malformed integer")
	}
	if len(unsigned) > 1 && unsigned[0] == '0' {
		return 0, wrongType("leading zero")
	}
	return strconv.ParseInt(s, 10, 64)
}

/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/store/list.go
*/
package store

import "time"

func (ks *Keyspace) listItem(key []byte, createIfAbsent bool) (*Item, error) {
	it, ok := ks.lookup(key, time.Now())
	if !ok {
		if !createIfAbsent {
			return nil, nil
		}
		it = &Item{Kind: KindList}
		ks.entries[string(key)] = it
		return it, nil
	}
	if it.Kind != KindList {
		return nil, wrongType("expected LIST")
	}
	return it, nil
}

// LPush prepends values in the order given, so LPUSH k a b c leaves the
// list [c, b, a, ...existing].
func (ks *Keyspace) LPush(key []byte, values [][]byte) (int64, error) {
	it, err := ks.listItem(key, true)
	if err != nil {
		return 0, err
	}
	for _, v := range values {
		it.List = append([][]byte{append([]byte(nil), v...)}, it.List...)
	}
	return int64(len(it.List)), nil
}

// RPush appends values in order.
func (ks *Keyspace) RPush(key []byte, values [][]byte) (int64, error) {
	it, err := ks.listItem(key, true)
	if err != nil {
		return 0, err
	}
	for _, v := range values {
		it.List = append(it.List, append([]byte(nil), v...))
	}
	return int64(len(it.List)), nil
}

// LPushX / RPushX push only if key already exists as a list; otherwise
// they return (0, false) without creating the key.
func (ks *Keyspace) LPushX(key []byte, values [][]byte) (int64, bool, error) {
	it, err := ks.listItem(key, false)
	if err != nil {
		return 0, false, err
	}
	if it == nil {
		return 0, false, nil
	}
	n, err := ks.LPush(key, values)
	return n, true, err
}

func (ks *Keyspace) RPushX(key []byte, values [][]byte) (int64, bool, error) {
	it, err := ks.listItem(key, false)
	if err != nil {
		return 0, false, err
	}
	if it == nil {
		return 0, false, nil
	}
	n, err := ks.RPush(key, values)
	return n, true, err
}

// LPop/RPop share the same shape: pop up to count elements (1 if count is
// nil), returning the popped values and whether the key existed as a list
// at all.
func (ks *Keyspace) LPop(key []byte, count *int64) ([][]byte, bool, error) {
	return ks.popList(key, count, true)
}

func (ks *Keyspace) RPop(key []byte, count *int64) ([][]byte, bool, error) {
	return ks.popList(key, count, false)
}

func (ks *Keyspace) popList(key []byte, count *int64, fromLeft bool) ([][]byte, bool, error) {
	it, err := ks.listItem(key, false)
	if err != nil {
		return nil, false, err
	}
	if it == nil {
		return nil, false, nil
	}
	n := int64(1)
	if count != nil {
		n = *count
	}
	if n < 0 {
		n = 0
	}
	if n > int64(len(it.List)) {
		n = int64(len(it.List))
	}
	var popped [][]byte
	for i := int64(0); i < n; i++ {
		if len(it.List) == 0 {
			break
		}
		if fromLeft {
			popped = append(popped, it.List[0])
			it.List = it.List[1:]
		} else {
			last := len(it.List) - 1
			popped = append(popped, it.List[last])
			it.List = it.List[:last]
		}
	}
	return popped, true, nil
}

// LLen returns the list length (0 if the key is absent).
func (ks *Keyspace) LLen(key []byte) (int64, error) {
	it, err := ks.listItem(key, false)
	if err != nil {
		return 0, err
	}
	if it == nil {
		return 0, nil
	}
	return int64(len(it.List)), nil
}

// LRange returns the inclusive [start, stop] slice with Redis's negative
// index semantics: negative indices count from the end,
// clamped to [0, len-1]; start > stop after normalization yields empty.
func (ks *Keyspace) LRange(key []byte, start, stop int64) ([][]byte, error) {
	it, err := ks.listItem(key, false)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, nil
	}
	lo, hi, ok := clampRange(len(it.List), int(start), int(stop))
	if !ok {
		return nil, nil
	}
	out := make([][]byte, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, it.List[i])
	}
	return out, nil
}

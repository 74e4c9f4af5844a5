/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/store/errors.go
*/
package store

// WrongTypeError reports that an operation was applied to a key whose
// stored Kind doesn't match what the operation requires. This also
// covers the "stored string isn't a base-10 int64" and overflow cases for
// INCR/INCRBY/HINCRBY/ZINCRBY — folded into WRONGTYPE rather than a
// separate numeric-error class.
type WrongTypeError struct {
	Detail string
}

func (e *WrongTypeError) Error() string { return e.Detail }

func wrongType(detail string) error { return &WrongTypeError{Detail: detail} }

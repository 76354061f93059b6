package art

import "errors"

// ErrKeyExists is returned by InsertIfAbsent when the key is already
// present. It is not a failure of the data structure — an already-
// occupied key is a caller-visible distinction, not an error in the
// library sense — but Go's idiom for "the caller asked for strict
// semantics and those semantics were violated" is a returned error, so
// that's what the strict variant gives back.
var ErrKeyExists = errors.New("art: key already exists")

package hashtable

import "errors"

var (
	ErrHasherNotProvided = errors.New("hashtable: a hasher is required")
	ErrBadHasher         = errors.New("hashtable: the hasher parameters are invalid")
	ErrNoBuckets         = errors.New("hashtable: the hasher must provide at least one bucket")
	ErrInvalidUTF8       = errors.New("hashtable: dump text must be valid UTF-8")
	ErrCBORCodecFailed   = errors.New("hashtable: failed to create the dump CBOR codec")
)

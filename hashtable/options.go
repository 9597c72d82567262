package hashtable

import (
	commoncbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/generaldave/DataStructures/bucket"
	"github.com/generaldave/DataStructures/keyhash"
)

// Options configures a Table. Set it with the With* Option functions.
type Options struct {
	Kind      bucket.Kind
	Hasher    keyhash.Hasher
	Log       logger.Logger
	CBORCodec *commoncbor.CBORCodec
}

// Option sets one field of Options.
type Option func(*Options)

// WithKind selects the bucket index implementation. The default is
// bucket.KindBalanced.
func WithKind(kind bucket.Kind) Option {
	return func(o *Options) {
		o.Kind = kind
	}
}

// WithHasher replaces the default keyhash.Default() placement. The bucket
// count of the table is hasher.Buckets().
func WithHasher(hasher keyhash.Hasher) Option {
	return func(o *Options) {
		o.Hasher = hasher
	}
}

// WithLogger sets the logger for bucket lifecycle debug records. The default
// is the process logger, when it has been initialised.
func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		o.Log = log
	}
}

// WithCBORCodec sets the codec used by EncodeDump. If not provided a
// deterministic codec is created on first use.
func WithCBORCodec(codec *commoncbor.CBORCodec) Option {
	return func(o *Options) {
		o.CBORCodec = codec
	}
}

func defaultOptions() Options {
	o := Options{
		Kind:   bucket.KindBalanced,
		Hasher: keyhash.Default(),
	}
	// The process logger is only available once logger.New has been called.
	if logger.Sugar != nil {
		o.Log = logger.Sugar.WithServiceName("hashtable")
	}
	return o
}

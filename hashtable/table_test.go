package hashtable

import (
	"fmt"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/generaldave/DataStructures/bucket"
	"github.com/generaldave/DataStructures/keyhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKinds = []bucket.Kind{bucket.KindTree, bucket.KindBalanced, bucket.KindOrdered}

func newTable(t *testing.T, opts ...Option) *Table {
	tbl, err := New(opts...)
	require.NoError(t, err)
	return tbl
}

func TestNewDefaults(t *testing.T) {
	tbl := newTable(t)
	require.Equal(t, uint32(keyhash.Modulus), tbl.Modulus())
	require.Equal(t, bucket.KindBalanced, tbl.Kind())
	require.Equal(t, 0, tbl.Len())
	require.Empty(t, tbl.Populated())
}

func TestNewRejectsBadOptions(t *testing.T) {
	_, err := New(WithHasher(nil))
	require.ErrorIs(t, err, ErrHasherNotProvided)

	_, err = New(WithHasher(keyhash.Polynomial{Prime: 31, Modulus: 0}))
	require.ErrorIs(t, err, ErrNoBuckets)

	_, err = New(WithKind(bucket.Kind(42)))
	require.ErrorIs(t, err, bucket.ErrUnknownKind)
}

func TestInsertSearchScenario(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			tbl := newTable(t, WithKind(kind))

			_, ok := tbl.Search("Hola")
			require.False(t, ok, "Hola before it is inserted")

			tbl.Insert("hi", bucket.Attrs{"value": 1})
			tbl.Insert("ih", bucket.Attrs{"value": 1})
			tbl.Insert("hello", bucket.Attrs{"value": 1})

			for _, k := range []string{"hi", "ih", "hello"} {
				e, ok := tbl.Search(k)
				require.True(t, ok, k)
				assert.Equal(t, k, e.Key)
				assert.Equal(t, bucket.Attrs{"value": 1}, e.Value)
			}

			_, ok = tbl.Search("Hola")
			require.False(t, ok, "Hola lands in an empty bucket")
			require.Equal(t, 3, tbl.Len())
		})
	}
}

func TestInsertUpdatesExistingKey(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			tbl := newTable(t, WithKind(kind))

			// "hello" and "two" share bucket 87
			tbl.Insert("hello", bucket.Attrs{"value": 1})
			tbl.Insert("two", bucket.Attrs{"value": 0})
			tbl.Insert("two", bucket.Attrs{"value": 5})

			e, ok := tbl.Search("two")
			require.True(t, ok)
			require.Equal(t, 5, e.Value["value"])
			require.Equal(t, 2, tbl.Len())

			idx, ok := tbl.Bucket(tbl.BucketOf("two"))
			require.True(t, ok)
			require.Equal(t, []string{"hello", "two"}, bucket.Keys(idx))
		})
	}
}

func TestCollisionsShareOneBucket(t *testing.T) {
	keys := []string{"xu", "po", "hi", "df", "tr", "ll"}
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			tbl := newTable(t, WithKind(kind))
			for i, k := range keys {
				tbl.Insert(k, bucket.Attrs{"value": i})
			}
			require.Equal(t, []uint32{27}, tbl.Populated())

			for i, k := range keys {
				e, ok := tbl.Search(k)
				require.True(t, ok, k)
				require.Equal(t, i, e.Value["value"])
			}

			_, ok := tbl.Search("cj") // bucket 0, never populated
			require.False(t, ok)
			_, ok = tbl.Search("zz")
			require.False(t, ok)
		})
	}
}

func TestBalancedBucketsStayWithinBound(t *testing.T) {
	// a single slot forces every key into one bucket
	one, err := keyhash.NewPolynomial(keyhash.SmallPrime, 1)
	require.NoError(t, err)
	tbl := newTable(t, WithHasher(one))

	for i := 0; i < 64; i++ {
		tbl.Insert(fmt.Sprintf("key%02d", i), bucket.Attrs{"value": i})
	}
	idx, ok := tbl.Bucket(0)
	require.True(t, ok)
	b, ok := idx.(*bucket.Balanced)
	require.True(t, ok)
	require.Equal(t, 64, b.Len())
	require.LessOrEqual(t, b.Depth(), bucket.MaxBalancedDepth(64))
}

func TestBucketAccess(t *testing.T) {
	tbl := newTable(t)
	tbl.Insert("world", nil)

	_, ok := tbl.Bucket(tbl.Modulus())
	require.False(t, ok, "out of range")

	_, ok = tbl.Bucket(0)
	require.False(t, ok, "absent slot")

	idx, ok := tbl.Bucket(4)
	require.True(t, ok)
	require.Equal(t, 1, idx.Len())
	require.Equal(t, []uint32{4}, tbl.Populated())
}

func TestPopulatedSlotsNeverRevert(t *testing.T) {
	tbl := newTable(t)
	tbl.Insert("two", bucket.Attrs{"value": 0})
	tbl.Insert("two", bucket.Attrs{"value": 1})
	tbl.Insert("hi", nil)
	require.Equal(t, []uint32{27, 87}, tbl.Populated())
}

func TestXXHashPlacement(t *testing.T) {
	x, err := keyhash.NewXXHash(keyhash.Modulus)
	require.NoError(t, err)
	tbl := newTable(t, WithHasher(x), WithKind(bucket.KindOrdered))

	for i := 0; i < 200; i++ {
		tbl.Insert(fmt.Sprintf("k%d", i), bucket.Attrs{"value": i})
	}
	require.Equal(t, 200, tbl.Len())
	for i := 0; i < 200; i++ {
		k := fmt.Sprintf("k%d", i)
		require.Equal(t, x.Bucket(k), tbl.BucketOf(k))
		e, ok := tbl.Search(k)
		require.True(t, ok)
		require.Equal(t, i, e.Value["value"])
	}
}

func TestInsertWithLogger(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	tbl := newTable(t, WithLogger(logger.Sugar.WithServiceName("TestInsertWithLogger")))
	tbl.Insert("two", bucket.Attrs{"value": 0})
	tbl.Insert("hello", bucket.Attrs{"value": 1})
	tbl.Insert("two", bucket.Attrs{"value": 5})

	e, ok := tbl.Search("two")
	require.True(t, ok)
	require.Equal(t, 5, e.Value["value"])
}

func TestNewRejectsHasherLiteralsThatBypassChecks(t *testing.T) {
	type args struct {
		hasher keyhash.Hasher
	}
	tests := []struct {
		name    string
		args    args
		wantErr error
	}{
		{
			name:    "modulus too large for uint32 slots",
			args:    args{keyhash.Polynomial{Prime: 31, Modulus: 1<<32 + 1}},
			wantErr: keyhash.ErrBadModulus,
		},
		{
			name:    "zero prime",
			args:    args{keyhash.Polynomial{Modulus: 127}},
			wantErr: keyhash.ErrBadPrime,
		},
		{
			name:    "xxhash modulus too large",
			args:    args{keyhash.XXHash{Modulus: 1<<32 + 1}},
			wantErr: keyhash.ErrBadModulus,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(WithHasher(tt.args.hasher))
			require.ErrorIs(t, err, ErrBadHasher)
			require.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

// outOfRange claims 4 slots but places keys anywhere in [0, 127).
type outOfRange struct{}

func (outOfRange) Bucket(key string) uint32 { return keyhash.Sum(key) }
func (outOfRange) Buckets() uint32          { return 4 }

func TestOutOfRangeHasherIsReduced(t *testing.T) {
	tbl := newTable(t, WithHasher(outOfRange{}))
	require.Equal(t, uint32(4), tbl.Modulus())

	// "a" hashes to 97, far beyond the 4 slots
	require.Equal(t, uint32(97%4), tbl.BucketOf("a"))

	_, ok := tbl.Search("a")
	require.False(t, ok)

	tbl.Insert("a", bucket.Attrs{"value": 1})
	tbl.Insert("hello", bucket.Attrs{"value": 2})
	e, ok := tbl.Search("a")
	require.True(t, ok)
	require.Equal(t, 1, e.Value["value"])
	e, ok = tbl.Search("hello")
	require.True(t, ok)
	require.Equal(t, 2, e.Value["value"])

	for _, i := range tbl.Populated() {
		require.Less(t, i, uint32(4))
	}
}

package hashtable

import (
	"fmt"
	"unicode/utf8"

	commoncbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/fxamacker/cbor/v2"
	"github.com/generaldave/DataStructures/bucket"
)

// BucketDump is the content of one populated slot.
type BucketDump struct {
	Index   uint32         `cbor:"1,keyasint"`
	Entries []bucket.Entry `cbor:"2,keyasint"`
}

// Dump is the diagnostic view produced by Show, as a value.
type Dump struct {
	Modulus uint32       `cbor:"1,keyasint"`
	Kind    bucket.Kind  `cbor:"2,keyasint"`
	Len     uint64       `cbor:"3,keyasint"`
	Buckets []BucketDump `cbor:"4,keyasint"`
}

// Dump returns every populated bucket, in slot order, with its entries in
// ascending key order. The attribute maps are shared with the table.
func (t *Table) Dump() Dump {
	d := Dump{
		Modulus: t.Modulus(),
		Kind:    t.opts.Kind,
		Len:     uint64(t.n),
	}
	for i, idx := range t.buckets {
		if idx == nil {
			continue
		}
		d.Buckets = append(d.Buckets, BucketDump{
			Index:   uint32(i),
			Entries: bucket.Entries(idx),
		})
	}
	return d
}

// NewDumpCodec returns the deterministic codec EncodeDump and DecodeDump use
// by default.
func NewDumpCodec() (commoncbor.CBORCodec, error) {
	decOpts := commoncbor.NewDeterministicDecOpts()
	// non negative ints decode as uint64, negative as int64
	decOpts.IntDec = cbor.IntDecConvertNone

	codec, err := commoncbor.NewCBORCodec(commoncbor.NewDeterministicEncOpts(), decOpts)
	if err != nil {
		return commoncbor.CBORCodec{}, fmt.Errorf("%w: %v", ErrCBORCodecFailed, err)
	}
	return codec, nil
}

// EncodeDump returns the Dump of the table as deterministic CBOR. Equal tables
// encode to identical bytes.
//
// CBOR text strings must be valid UTF-8, so a key, attribute name or string
// attribute value that is not fails with ErrInvalidUTF8 rather than producing
// bytes DecodeDump would reject.
func (t *Table) EncodeDump() ([]byte, error) {
	d := t.Dump()
	if err := checkUTF8(d); err != nil {
		return nil, err
	}
	codec, err := t.dumpCodec()
	if err != nil {
		return nil, err
	}
	return codec.MarshalCBOR(d)
}

// DecodeDump decodes data produced by EncodeDump, using the same codec
// options.
//
// Attribute values come back as their CBOR native Go types, so for example a
// non negative int attribute decodes as uint64.
func (t *Table) DecodeDump(data []byte) (Dump, error) {
	codec, err := t.dumpCodec()
	if err != nil {
		return Dump{}, err
	}
	return decodeDump(codec, data)
}

// DecodeDump decodes data produced by EncodeDump of a table using the default
// codec.
func DecodeDump(data []byte) (Dump, error) {
	codec, err := NewDumpCodec()
	if err != nil {
		return Dump{}, err
	}
	return decodeDump(&codec, data)
}

func decodeDump(codec *commoncbor.CBORCodec, data []byte) (Dump, error) {
	var d Dump
	if err := codec.UnmarshalInto(data, &d); err != nil {
		return Dump{}, err
	}
	return d, nil
}

func (t *Table) dumpCodec() (*commoncbor.CBORCodec, error) {
	if t.opts.CBORCodec == nil {
		codec, err := NewDumpCodec()
		if err != nil {
			return nil, err
		}
		t.opts.CBORCodec = &codec
	}
	return t.opts.CBORCodec, nil
}

func checkUTF8(d Dump) error {
	for _, b := range d.Buckets {
		for _, e := range b.Entries {
			if !utf8.ValidString(e.Key) {
				return fmt.Errorf("%w: bucket %d key %q", ErrInvalidUTF8, b.Index, e.Key)
			}
			for name, v := range e.Value {
				if !utf8.ValidString(name) || !validUTF8Value(v) {
					return fmt.Errorf("%w: bucket %d key %q attribute %q", ErrInvalidUTF8, b.Index, e.Key, name)
				}
			}
		}
	}
	return nil
}

func validUTF8Value(v any) bool {
	switch v := v.(type) {
	case string:
		return utf8.ValidString(v)
	case []string:
		for _, s := range v {
			if !utf8.ValidString(s) {
				return false
			}
		}
	case []any:
		for _, x := range v {
			if !validUTF8Value(x) {
				return false
			}
		}
	case map[string]any:
		for k, x := range v {
			if !utf8.ValidString(k) || !validUTF8Value(x) {
				return false
			}
		}
	case bucket.Attrs:
		return validUTF8Value(map[string]any(v))
	}
	return true
}

package githubtypes

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// OidLen is the size of a Git object ID in bytes.
const OidLen = 20

const oidHexLen = OidLen * 2

// Oid is a Git object ID (i.e., a SHA-1).
//
// The zero value is the all-zero sha, which GitHub uses to indicate
// that a ref did not previously exist or no longer exists.
//
// Human-readable formats such as JSON carry an Oid as a 40-character
// hex string; binary formats such as CBOR carry the raw 20 bytes. Both
// forms decode back to the same value.
type Oid [OidLen]byte

// EmptyTree is the sha of the empty tree,
// `4b825dc642cb6eb9a060e54bf8d69288fbee4904`.
//
// This can be computed manually with `git hash-object -t tree /dev/null`.
var EmptyTree = Oid{
	0x4b, 0x82, 0x5d, 0xc6, 0x42, 0xcb, 0x6e, 0xb9, 0xa0, 0x60,
	0xe5, 0x4b, 0xf8, 0xd6, 0x92, 0x88, 0xfb, 0xee, 0x49, 0x04,
}

// ParseOid decodes a 40-character hex string into an Oid. Upper and
// lower case hex digits are both accepted.
func ParseOid(s string) (Oid, error) {
	var oid Oid
	if len(s)%2 != 0 {
		return oid, malformedf("hex string has odd length %d", len(s))
	}
	if len(s) != oidHexLen {
		return oid, malformedf("hex string has invalid length %d, want %d", len(s), oidHexLen)
	}
	if _, err := hex.Decode(oid[:], []byte(s)); err != nil {
		var invalid hex.InvalidByteError
		if errors.As(err, &invalid) {
			return Oid{}, malformedf("invalid hex character %q", byte(invalid))
		}
		return Oid{}, malformedf("invalid hex string: %v", err)
	}
	return oid, nil
}

// OidFromBytes constructs an Oid from its raw 20-byte form.
func OidFromBytes(b []byte) (Oid, error) {
	var oid Oid
	if len(b) != OidLen {
		return oid, malformedf("got %d bytes, want %d", len(b), OidLen)
	}
	copy(oid[:], b)
	return oid, nil
}

// String returns the canonical lowercase hex form.
func (o Oid) String() string {
	return hex.EncodeToString(o[:])
}

// UpperHex returns the uppercase hex form, for display purposes.
func (o Oid) UpperHex() string {
	return strings.ToUpper(o.String())
}

// Bytes returns a copy of the raw 20-byte form.
func (o Oid) Bytes() []byte {
	b := make([]byte, OidLen)
	copy(b, o[:])
	return b
}

// IsZero reports whether o is the all-zero sha.
func (o Oid) IsZero() bool {
	return o == Oid{}
}

// Compare orders Oids byte-lexicographically, returning -1, 0 or +1.
func (o Oid) Compare(other Oid) int {
	return bytes.Compare(o[:], other[:])
}

// MarshalText implements encoding.TextMarshaler, producing the
// lowercase hex form.
func (o Oid) MarshalText() ([]byte, error) {
	dst := make([]byte, oidHexLen)
	hex.Encode(dst, o[:])
	return dst, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Oid) UnmarshalText(text []byte) error {
	oid, err := ParseOid(string(text))
	if err != nil {
		return err
	}
	*o = oid
	return nil
}

// MarshalCBOR implements cbor.Marshaler, producing a raw 20-byte
// string.
func (o Oid) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(o[:])
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (o *Oid) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return malformedf("decoding object id: %v", err)
	}
	oid, err := OidFromBytes(b)
	if err != nil {
		return err
	}
	*o = oid
	return nil
}

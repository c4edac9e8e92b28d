package types

import (
	"fmt"

	fssz "github.com/ferranbt/fastssz"
	"github.com/prysmaticlabs/phase0/math"
)

var _ fssz.HashRoot = (ValidatorIndex)(0)
var _ fssz.Marshaler = (*ValidatorIndex)(nil)
var _ fssz.Unmarshaler = (*ValidatorIndex)(nil)

// ValidatorIndex in eth2.
type ValidatorIndex uint64

// Div divides validator index by x.
// In case of arithmetic issues (overflow/underflow/div by zero) panic is thrown.
func (v ValidatorIndex) Div(x uint64) ValidatorIndex {
	res, err := v.SafeDiv(x)
	if err != nil {
		panic(err.Error())
	}
	return res
}

// SafeDiv divides validator index by x.
// In case of arithmetic issues (overflow/underflow/div by zero) error is returned.
func (v ValidatorIndex) SafeDiv(x uint64) (ValidatorIndex, error) {
	res, err := math.Div64(uint64(v), x)
	return ValidatorIndex(res), err
}

// Add increases validator index by x.
// In case of arithmetic issues (overflow/underflow/div by zero) panic is thrown.
func (v ValidatorIndex) Add(x uint64) ValidatorIndex {
	res, err := v.SafeAdd(x)
	if err != nil {
		panic(err.Error())
	}
	return res
}

// SafeAdd increases validator index by x.
// In case of arithmetic issues (overflow/underflow/div by zero) error is returned.
func (v ValidatorIndex) SafeAdd(x uint64) (ValidatorIndex, error) {
	res, err := math.Add64(uint64(v), x)
	return ValidatorIndex(res), err
}

// Sub subtracts x from the validator index.
// In case of arithmetic issues (overflow/underflow/div by zero) panic is thrown.
func (v ValidatorIndex) Sub(x uint64) ValidatorIndex {
	res, err := v.SafeSub(x)
	if err != nil {
		panic(err.Error())
	}
	return res
}

// SafeSub subtracts x from the validator index.
// In case of arithmetic issues (overflow/underflow/div by zero) error is returned.
func (v ValidatorIndex) SafeSub(x uint64) (ValidatorIndex, error) {
	res, err := math.Sub64(uint64(v), x)
	return ValidatorIndex(res), err
}

// Mod returns result of `validator index % x`.
// In case of arithmetic issues (overflow/underflow/div by zero) panic is thrown.
func (v ValidatorIndex) Mod(x uint64) ValidatorIndex {
	res, err := v.SafeMod(x)
	if err != nil {
		panic(err.Error())
	}
	return res
}

// SafeMod returns result of `validator index % x`.
// In case of arithmetic issues (overflow/underflow/div by zero) error is returned.
func (v ValidatorIndex) SafeMod(x uint64) (ValidatorIndex, error) {
	res, err := math.Mod64(uint64(v), x)
	return ValidatorIndex(res), err
}

// HashTreeRoot returns calculated hash root.
func (v ValidatorIndex) HashTreeRoot() ([32]byte, error) {
	return fssz.HashWithDefaultHasher(v)
}

// HashTreeRootWith hashes a ValidatorIndex object with a Hasher from the default HasherPool.
func (v ValidatorIndex) HashTreeRootWith(hh *fssz.Hasher) error {
	hh.PutUint64(uint64(v))
	return nil
}

// UnmarshalSSZ deserializes the provided bytes buffer into the validator index object.
func (v *ValidatorIndex) UnmarshalSSZ(buf []byte) error {
	if len(buf) != v.SizeSSZ() {
		return fmt.Errorf("expected buffer of length %d received %d", v.SizeSSZ(), len(buf))
	}
	*v = ValidatorIndex(fssz.UnmarshallUint64(buf))
	return nil
}

// MarshalSSZTo marshals validator index with the provided byte slice.
func (v *ValidatorIndex) MarshalSSZTo(dst []byte) ([]byte, error) {
	marshalled, err := v.MarshalSSZ()
	if err != nil {
		return nil, err
	}
	return append(dst, marshalled...), nil
}

// MarshalSSZ marshals validator index into a serialized object.
func (v *ValidatorIndex) MarshalSSZ() ([]byte, error) {
	marshalled := fssz.MarshalUint64([]byte{}, uint64(*v))
	return marshalled, nil
}

// SizeSSZ returns the size of the serialized object.
func (_ *ValidatorIndex) SizeSSZ() int {
	return 8
}

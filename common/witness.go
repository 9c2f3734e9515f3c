package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// CheckWitnessWithMessage checks witness of the passed caller and panics with
// msg if it is missing or caller is not a valid script hash.
func CheckWitnessWithMessage(caller interop.Hash160, msg string) {
	if !IsValidHash(caller) || !runtime.CheckWitness(caller) {
		panic(msg)
	}
}

// IsValidHash checks that h is a non-null script hash of the proper length.
func IsValidHash(h interop.Hash160) bool {
	return h != nil && len(h) == interop.Hash160Len
}

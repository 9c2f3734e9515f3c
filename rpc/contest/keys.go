package contest

import (
	"crypto/sha256"
	"math/big"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/pramaths/9shoot-contract/contracts/contest/contestconst"
)

// RecordKey derives the address of the record identified by the owner and ID
// within the tag namespace the same way the contract does:
//
//	SHA256(tag | owner | id)
//
// where owner is taken in its big-endian (VM) form and id is a VM integer.
func RecordKey(tag string, owner util.Uint160, id *big.Int) []byte {
	h := sha256.New()
	h.Write([]byte(tag))
	h.Write(owner.BytesBE())
	h.Write(bigint.ToBytes(id))
	return h.Sum(nil)
}

// EventKey returns the address of the authority event with the given ID.
func EventKey(authority util.Uint160, eventID *big.Int) []byte {
	return RecordKey(contestconst.EventTag, authority, eventID)
}

// ContestKey returns the address of the authority contest with the given ID.
func ContestKey(authority util.Uint160, contestID *big.Int) []byte {
	return RecordKey(contestconst.ContestTag, authority, contestID)
}

// KeyString returns printable form of the record key.
func KeyString(key []byte) string {
	return base58.Encode(key)
}

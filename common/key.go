package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
)

// RecordKey derives a fixed-length address of the record identified by its
// owner and numeric ID within the tag namespace:
//
//	SHA256(tag | owner | id)
//
// where id is encoded as a VM integer. The same derivation is available
// off-chain, so records never need a separate index.
func RecordKey(tag string, owner interop.Hash160, id int) []byte {
	data := append([]byte(tag), owner...)
	data = append(data, convert.ToBytes(id)...)

	return crypto.Sha256(data)
}

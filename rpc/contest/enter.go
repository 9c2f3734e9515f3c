package contest

import (
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// EntryData returns the data of the GAS transfer entering the contest of the
// authority with the given ID.
func EntryData(authority util.Uint160, contestID *big.Int) []any {
	return []any{authority, contestID}
}

// Enter transfers entryFee of GAS from the participant to the contract, which
// is an entry to the given contest. The participant must be a signer of the
// actor. The transaction is signed and immediately sent to the network.
func Enter(a nep17.Actor, contract, participant, authority util.Uint160, contestID, entryFee *big.Int) (util.Uint256, uint32, error) {
	return gas.New(a).Transfer(participant, contract, entryFee, EntryData(authority, contestID))
}

// EnterUnsigned is similar to Enter, but the transaction is not signed and
// simply returned to the caller.
func EnterUnsigned(a nep17.Actor, contract, participant, authority util.Uint160, contestID, entryFee *big.Int) (*transaction.Transaction, error) {
	return gas.New(a).TransferUnsigned(participant, contract, entryFee, EntryData(authority, contestID))
}

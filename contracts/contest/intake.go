package contest

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/pramaths/9shoot-contract/common"
	"github.com/pramaths/9shoot-contract/contracts/contest/contestconst"
)

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// Every accepted payment is an entry of `from` to the contest referenced by
// data, which must be an array of the contest authority and the contest ID.
// The amount must be equal to the contest entry fee.
//
// If the entry is not acceptable, the method panics and the transfer fails
// as a whole. Otherwise ContestEntered notification is produced.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		panic(contestconst.ErrOnlyGAS)
	}

	if !common.IsValidHash(from) || data == nil {
		panic(contestconst.ErrInvalidEntryData)
	}

	args := data.([]any)
	if len(args) != 2 {
		panic(contestconst.ErrInvalidEntryData)
	}

	authority := args[0].(interop.Hash160)
	contestID := args[1].(int)

	enter(storage.GetContext(), authority, contestID, from, amount)
}

func enter(ctx storage.Context, authority interop.Hash160, contestID int, participant interop.Hash160, amount int) {
	rid := contestRecordID(authority, contestID)
	c := getContest(ctx, rid)

	if c.Status != contestconst.StatusOpen {
		panic(contestconst.ErrInvalidContestStatus)
	}

	if amount != c.EntryFee {
		panic(contestconst.ErrIncorrectAmount)
	}

	c.TotalPool = checkedAdd(c.TotalPool, amount)

	if c.ParticipantCount >= contestconst.MaxParticipants {
		panic(contestconst.ErrCapacityExceeded)
	}

	storage.Put(ctx, participantKey(rid, c.ParticipantCount), participant)
	c.ParticipantCount = c.ParticipantCount + 1
	putContest(ctx, rid, c)

	runtime.Notify("ContestEntered", authority, contestID, participant, amount)
}

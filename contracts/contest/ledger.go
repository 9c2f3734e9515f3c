package contest

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/pramaths/9shoot-contract/common"
	"github.com/pramaths/9shoot-contract/contracts/contest/contestconst"
)

// Contest is the record of a single contest. TotalPool always equals the
// amount of GAS the contract holds in custody for the contest.
type Contest struct {
	Authority        interop.Hash160
	EventID          int
	ContestID        int
	Name             string
	EntryFee         int
	FeeReceiver      interop.Hash160
	Status           int
	TotalPool        int
	ParticipantCount int
}

// CreateContest registers a new open contest of the authority inside the
// existing event. Authority must witness the invocation and be an authorized
// creator. If feeReceiver is empty, the registry administrator receives the
// platform fee.
//
// It produces ContestCreated notification.
func CreateContest(authority interop.Hash160, eventID, contestID, entryFee int, name string, feeReceiver interop.Hash160) {
	ctx := storage.GetContext()

	checkCreator(ctx, authority)
	checkID(contestID)

	if storage.Get(ctx, eventKey(authority, eventID)) == nil {
		panic(contestconst.ErrEventNotFound)
	}

	checkAmount(entryFee)

	if feeReceiver == nil || len(feeReceiver) == 0 {
		feeReceiver = getAdmin(ctx)
	} else if !common.IsValidHash(feeReceiver) {
		panic(contestconst.ErrInvalidIdentifier)
	}

	rid := contestRecordID(authority, contestID)
	if storage.Get(ctx, contestKey(rid)) != nil {
		panic(contestconst.ErrContestExists)
	}

	common.SetSerialized(ctx, contestKey(rid), Contest{
		Authority:   authority,
		EventID:     eventID,
		ContestID:   contestID,
		Name:        name,
		EntryFee:    entryFee,
		FeeReceiver: feeReceiver,
		Status:      contestconst.StatusOpen,
	})

	runtime.Notify("ContestCreated", authority, contestID, eventID, entryFee, name, feeReceiver)
}

// GetContest returns the contest of the authority with the given ID.
func GetContest(authority interop.Hash160, contestID int) Contest {
	ctx := storage.GetReadOnlyContext()
	return getContest(ctx, contestRecordID(authority, contestID))
}

// Participants returns contest participants in the order of their entries.
// A participant who entered several times is listed several times.
func Participants(authority interop.Hash160, contestID int) []interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	rid := contestRecordID(authority, contestID)
	c := getContest(ctx, rid)

	list := []interop.Hash160{}
	for i := 0; i < c.ParticipantCount; i++ {
		list = append(list, storage.Get(ctx, participantKey(rid, i)).(interop.Hash160))
	}

	return list
}

func getContest(ctx storage.Context, rid []byte) Contest {
	data := common.GetSerialized(ctx, contestKey(rid))
	if data == nil {
		panic(contestconst.ErrContestNotFound)
	}

	return data.(Contest)
}

func putContest(ctx storage.Context, rid []byte, c Contest) {
	common.SetSerialized(ctx, contestKey(rid), c)
}

// transferCustody debits the contest pool and sends amount of GAS from the
// contract to the given account. The debited record is stored before the
// transfer, so the receiver observes consistent state on callback.
func transferCustody(ctx storage.Context, rid []byte, c Contest, to interop.Hash160, amount int) Contest {
	c.TotalPool = checkedSub(c.TotalPool, amount)
	putContest(ctx, rid, c)

	if !gas.Transfer(runtime.GetExecutingScriptHash(), to, amount, nil) {
		panic(contestconst.ErrCustodyTransferFailed)
	}

	return c
}

func contestRecordID(authority interop.Hash160, contestID int) []byte {
	return common.RecordKey(contestconst.ContestTag, authority, contestID)
}

func contestKey(rid []byte) []byte {
	return append([]byte{contestPrefix}, rid...)
}

func participantKey(rid []byte, index int) []byte {
	key := append([]byte{participantPrefix}, rid...)
	return append(key, convert.ToBytes(index)...)
}

func checkAmount(x int) {
	if x < 0 || x > contestconst.MaxAmount {
		panic(contestconst.ErrOverflow)
	}
}

func checkedAdd(a, b int) int {
	checkAmount(a)
	checkAmount(b)

	if a > contestconst.MaxAmount-b {
		panic(contestconst.ErrOverflow)
	}

	return a + b
}

func checkedSub(a, b int) int {
	checkAmount(a)
	checkAmount(b)

	if b > a {
		panic(contestconst.ErrOverflow)
	}

	return a - b
}

package contest

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/pramaths/9shoot-contract/common"
	"github.com/pramaths/9shoot-contract/contracts/contest/contestconst"
)

// disbursement is a single planned transfer out of the contest custody.
type disbursement struct {
	Target   interop.Hash160
	Identity interop.Hash160
	Amount   int
}

// ResolveContest closes an open contest and distributes its pool. Caller must
// witness the invocation and be an authorized creator. Exactly WinnersCount
// winners and payouts are taken, payouts[i] goes to winners[i].
//
// The platform fee is the pool divided by FeeDivisor and goes to the contest
// fee receiver. Payouts must fit into the pool left after the fee, whatever
// they leave stays in the contest custody.
//
// Targets are the accounts funds are actually sent to: targets[i] must be
// winners[i] and the last one must be the fee receiver.
//
// It produces ContestResolved notification.
func ResolveContest(caller, authority interop.Hash160, contestID int,
	winners []interop.Hash160, payouts []int, targets []interop.Hash160) {
	ctx := storage.GetContext()

	checkCreator(ctx, caller)

	if winners == nil || payouts == nil ||
		len(winners) != contestconst.WinnersCount || len(payouts) != contestconst.WinnersCount {
		panic(contestconst.ErrInvalidWinnersCount)
	}

	rid := contestRecordID(authority, contestID)
	c := getContest(ctx, rid)

	if c.Status != contestconst.StatusOpen {
		panic(contestconst.ErrInvalidContestStatus)
	}

	totalPayout := 0
	for i := range payouts {
		totalPayout = checkedAdd(totalPayout, payouts[i])
	}

	fee := c.TotalPool / contestconst.FeeDivisor
	remaining := checkedSub(c.TotalPool, fee)

	if totalPayout > remaining {
		panic(contestconst.ErrInsufficientPool)
	}

	plan := disbursementPlan(c, winners, payouts, targets, fee)

	c.Status = contestconst.StatusResolved
	putContest(ctx, rid, c)

	for i := range plan {
		if plan[i].Amount == 0 {
			continue
		}

		c = transferCustody(ctx, rid, c, plan[i].Target, plan[i].Amount)
	}

	runtime.Notify("ContestResolved", authority, contestID, len(winners), totalPayout, c.FeeReceiver, fee)
}

// disbursementPlan pairs every amount with its target account, the fee goes
// first. It panics if any target does not match the identity it pays to.
func disbursementPlan(c Contest, winners []interop.Hash160, payouts []int,
	targets []interop.Hash160, fee int) []disbursement {
	if targets == nil || len(targets) != contestconst.WinnersCount+1 {
		panic(contestconst.ErrMissingWinnerAccount)
	}

	plan := []disbursement{}
	plan = append(plan, disbursement{
		Target:   targets[contestconst.WinnersCount],
		Identity: c.FeeReceiver,
		Amount:   fee,
	})

	for i := 0; i < contestconst.WinnersCount; i++ {
		plan = append(plan, disbursement{
			Target:   targets[i],
			Identity: winners[i],
			Amount:   payouts[i],
		})
	}

	for i := range plan {
		if !common.IsValidHash(plan[i].Target) || !plan[i].Target.Equals(plan[i].Identity) {
			panic(contestconst.ErrMissingWinnerAccount)
		}
	}

	return plan
}

// CancelContest closes an open contest without winners and refunds the entry
// fee of every recorded entry to its participant. Caller must witness the
// invocation and be an authorized creator.
//
// It produces ContestCancelled notification.
func CancelContest(caller, authority interop.Hash160, contestID int) {
	ctx := storage.GetContext()

	checkCreator(ctx, caller)

	rid := contestRecordID(authority, contestID)
	c := getContest(ctx, rid)

	if c.Status != contestconst.StatusOpen {
		panic(contestconst.ErrInvalidContestStatus)
	}

	c.Status = contestconst.StatusCancelled
	putContest(ctx, rid, c)

	refunded := 0
	if c.EntryFee > 0 {
		for i := 0; i < c.ParticipantCount; i++ {
			participant := storage.Get(ctx, participantKey(rid, i)).(interop.Hash160)
			c = transferCustody(ctx, rid, c, participant, c.EntryFee)
			refunded = checkedAdd(refunded, c.EntryFee)
		}
	}

	runtime.Notify("ContestCancelled", authority, contestID, refunded)
}

package contest_test

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/pramaths/9shoot-contract/contracts/contest/contestconst"
	contestrpc "github.com/pramaths/9shoot-contract/rpc/contest"
	"github.com/stretchr/testify/require"
)

func winner(i int) util.Uint160 {
	return util.Uint160{0xaa, byte(i)}
}

// resolution returns ordered winners, the given payouts and disbursement
// targets matching them.
func resolution(receiver util.Uint160, payouts ...int64) ([]any, []any, []any) {
	var winners, amounts, targets []any
	for i := 0; i < contestconst.WinnersCount; i++ {
		winners = append(winners, winner(i))
		targets = append(targets, winner(i))
	}
	for i := range payouts {
		amounts = append(amounts, payouts[i])
	}
	return winners, amounts, append(targets, receiver)
}

func equalPayouts(amount int64) []int64 {
	res := make([]int64, contestconst.WinnersCount)
	for i := range res {
		res[i] = amount
	}
	return res
}

func TestContest_Resolve(t *testing.T) {
	env := newTestEnv(t)
	env.openContest(t, testContestID, testEntryFee, feeReceiver)

	p := env.e.NewAccount(t)
	env.enterMany(t, p, testContestID, testEntryFee, 10)
	require.EqualValues(t, 1000, env.balance(env.hash))

	creator := env.invoker(env.creator)
	authority := env.creator.ScriptHash()

	winners, payouts, targets := resolution(feeReceiver, equalPayouts(90)...)
	txHash := creator.Invoke(t, stackitem.Null{}, "resolveContest",
		authority, authority, int64(testContestID), winners, payouts, targets)

	for i := 0; i < contestconst.WinnersCount; i++ {
		require.EqualValues(t, 90, env.balance(winner(i)))
	}
	require.EqualValues(t, 100, env.balance(feeReceiver))
	require.Zero(t, env.balance(env.hash))

	c := env.getContest(t, authority, testContestID)
	require.EqualValues(t, contestconst.StatusResolved, c.Status.Int64())
	require.Zero(t, c.TotalPool.Int64())

	events, err := contestrpc.ContestResolvedEventsFromApplicationLog(&result.ApplicationLog{
		Executions: []state.Execution{env.e.GetTxExecResult(t, txHash).Execution},
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, authority, events[0].Authority)
	require.Equal(t, feeReceiver, events[0].FeeReceiver)
	require.EqualValues(t, testContestID, events[0].ContestID.Int64())
	require.EqualValues(t, contestconst.WinnersCount, events[0].WinnersCount.Int64())
	require.EqualValues(t, 900, events[0].TotalPayout.Int64())
	require.EqualValues(t, 100, events[0].Fee.Int64())

	t.Run("resolve twice", func(t *testing.T) {
		creator.InvokeFail(t, contestconst.ErrInvalidContestStatus, "resolveContest",
			authority, authority, int64(testContestID), winners, payouts, targets)
		creator.InvokeFail(t, contestconst.ErrInvalidContestStatus, "cancelContest",
			authority, authority, int64(testContestID))
	})

	t.Run("enter resolved", func(t *testing.T) {
		env.gasInvoker(t, p).InvokeFail(t, contestconst.ErrInvalidContestStatus, "transfer",
			p.ScriptHash(), env.hash, int64(testEntryFee), []any{authority, int64(testContestID)})
	})
}

func TestContest_ResolveLeftover(t *testing.T) {
	env := newTestEnv(t)
	env.openContest(t, testContestID, testEntryFee, feeReceiver)

	env.enterMany(t, env.e.NewAccount(t), testContestID, testEntryFee, 10)

	authority := env.creator.ScriptHash()
	amounts := equalPayouts(50)
	amounts[3] = 0
	winners, payouts, targets := resolution(feeReceiver, amounts...)

	// Any authorized creator can resolve.
	other := env.e.NewAccount(t)
	env.invoker(env.admin).Invoke(t, stackitem.Null{}, "setCreatorAuthorization", other.ScriptHash(), true)
	env.invoker(other).Invoke(t, stackitem.Null{}, "resolveContest",
		other.ScriptHash(), authority, int64(testContestID), winners, payouts, targets)

	require.Zero(t, env.balance(winner(3)))
	require.EqualValues(t, 50, env.balance(winner(4)))
	require.EqualValues(t, 100, env.balance(feeReceiver))
	require.EqualValues(t, 450, env.balance(env.hash))

	c := env.getContest(t, authority, testContestID)
	require.EqualValues(t, contestconst.StatusResolved, c.Status.Int64())
	require.EqualValues(t, 450, c.TotalPool.Int64())
}

func TestContest_ResolveTruncatedFee(t *testing.T) {
	env := newTestEnv(t)
	env.openContest(t, testContestID, 21, feeReceiver)

	env.enterMany(t, env.e.NewAccount(t), testContestID, 21, 5)

	// Pool 105, fee 10, 95 is left for payouts.
	amounts := equalPayouts(10)
	amounts[9] = 5
	winners, payouts, targets := resolution(feeReceiver, amounts...)

	authority := env.creator.ScriptHash()
	env.invoker(env.creator).Invoke(t, stackitem.Null{}, "resolveContest",
		authority, authority, int64(testContestID), winners, payouts, targets)

	require.EqualValues(t, 10, env.balance(feeReceiver))
	require.EqualValues(t, 5, env.balance(winner(9)))
	require.Zero(t, env.balance(env.hash))
}

func TestContest_ResolveRejected(t *testing.T) {
	env := newTestEnv(t)
	env.openContest(t, testContestID, testEntryFee, feeReceiver)

	env.enterMany(t, env.e.NewAccount(t), testContestID, testEntryFee, 4)

	creator := env.invoker(env.creator)
	authority := env.creator.ScriptHash()
	contestID := int64(testContestID)

	winners, payouts, targets := resolution(feeReceiver, equalPayouts(30)...)

	t.Run("unauthorized", func(t *testing.T) {
		stranger := env.e.NewAccount(t)
		env.invoker(stranger).InvokeFail(t, contestconst.ErrUnauthorized, "resolveContest",
			stranger.ScriptHash(), authority, contestID, winners, payouts, targets)
		env.invoker(stranger).InvokeFail(t, contestconst.ErrUnauthorized, "resolveContest",
			authority, authority, contestID, winners, payouts, targets)
		env.invoker(env.admin).InvokeFail(t, contestconst.ErrUnauthorized, "resolveContest",
			env.admin.ScriptHash(), authority, contestID, winners, payouts, targets)
	})

	t.Run("winners count", func(t *testing.T) {
		creator.InvokeFail(t, contestconst.ErrInvalidWinnersCount, "resolveContest",
			authority, authority, contestID, winners[:9], payouts[:9], targets)
		creator.InvokeFail(t, contestconst.ErrInvalidWinnersCount, "resolveContest",
			authority, authority, contestID, winners, payouts[:9], targets)
		creator.InvokeFail(t, contestconst.ErrInvalidWinnersCount, "resolveContest",
			authority, authority, contestID, append(winners, winner(10)), append(payouts, int64(0)), targets)
		creator.InvokeFail(t, contestconst.ErrInvalidWinnersCount, "resolveContest",
			authority, authority, contestID, []any{}, []any{}, targets)
	})

	t.Run("unknown contest", func(t *testing.T) {
		creator.InvokeFail(t, contestconst.ErrContestNotFound, "resolveContest",
			authority, authority, contestID+1, winners, payouts, targets)
	})

	t.Run("insufficient pool", func(t *testing.T) {
		// Pool 400, fee 40, payouts 450.
		_, over, _ := resolution(feeReceiver, equalPayouts(45)...)
		creator.InvokeFail(t, contestconst.ErrInsufficientPool, "resolveContest",
			authority, authority, contestID, winners, over, targets)

		// Payouts 370 exceed 360 left after the fee.
		amounts := equalPayouts(36)
		amounts[0] = 46
		_, over, _ = resolution(feeReceiver, amounts...)
		creator.InvokeFail(t, contestconst.ErrInsufficientPool, "resolveContest",
			authority, authority, contestID, winners, over, targets)
	})

	t.Run("overflow", func(t *testing.T) {
		amounts := equalPayouts(0)
		amounts[5] = -1
		_, bad, _ := resolution(feeReceiver, amounts...)
		creator.InvokeFail(t, contestconst.ErrOverflow, "resolveContest",
			authority, authority, contestID, winners, bad, targets)

		// Every payout is in range, their sum is not.
		amounts = equalPayouts(0)
		amounts[0] = 1 << 62
		amounts[1] = 1 << 62
		_, bad, _ = resolution(feeReceiver, amounts...)
		creator.InvokeFail(t, contestconst.ErrOverflow, "resolveContest",
			authority, authority, contestID, winners, bad, targets)

		amounts[0] = contestconst.MaxAmount
		amounts[1] = 1
		_, bad, _ = resolution(feeReceiver, amounts...)
		creator.InvokeFail(t, contestconst.ErrOverflow, "resolveContest",
			authority, authority, contestID, winners, bad, targets)
	})

	t.Run("missing winner account", func(t *testing.T) {
		bad := make([]any, len(targets))
		copy(bad, targets)
		bad[3] = winner(4)
		creator.InvokeFail(t, contestconst.ErrMissingWinnerAccount, "resolveContest",
			authority, authority, contestID, winners, payouts, bad)

		copy(bad, targets)
		bad[contestconst.WinnersCount] = env.admin.ScriptHash()
		creator.InvokeFail(t, contestconst.ErrMissingWinnerAccount, "resolveContest",
			authority, authority, contestID, winners, payouts, bad)

		creator.InvokeFail(t, contestconst.ErrMissingWinnerAccount, "resolveContest",
			authority, authority, contestID, winners, payouts, targets[:contestconst.WinnersCount])
		creator.InvokeFail(t, contestconst.ErrMissingWinnerAccount, "resolveContest",
			authority, authority, contestID, winners, payouts, nil)
	})

	c := env.getContest(t, authority, testContestID)
	require.EqualValues(t, contestconst.StatusOpen, c.Status.Int64())
	require.EqualValues(t, 400, c.TotalPool.Int64())
	require.EqualValues(t, 400, env.balance(env.hash))
	require.Zero(t, env.balance(feeReceiver))

	// Whole remainder after the fee.
	_, exact, _ := resolution(feeReceiver, equalPayouts(36)...)
	creator.Invoke(t, stackitem.Null{}, "resolveContest",
		authority, authority, contestID, winners, exact, targets)
	require.Zero(t, env.balance(env.hash))
	require.EqualValues(t, 40, env.balance(feeReceiver))
}

func TestContest_Cancel(t *testing.T) {
	env := newTestEnv(t)
	env.openContest(t, testContestID, testEntryFee, nil)

	p1 := env.e.NewAccount(t)
	p2 := env.e.NewAccount(t)

	env.enterMany(t, p1, testContestID, testEntryFee, 3)
	env.enter(t, p2, testContestID, testEntryFee)

	creator := env.invoker(env.creator)
	authority := env.creator.ScriptHash()

	env.invoker(p1).InvokeFail(t, contestconst.ErrUnauthorized, "cancelContest",
		p1.ScriptHash(), authority, int64(testContestID))
	creator.InvokeFail(t, contestconst.ErrContestNotFound, "cancelContest",
		authority, authority, int64(testContestID+1))

	// Rejected invocations above cost p1 fees, so balances are taken after them.
	b1, b2 := env.balance(p1.ScriptHash()), env.balance(p2.ScriptHash())

	txHash := creator.Invoke(t, stackitem.Null{}, "cancelContest",
		authority, authority, int64(testContestID))

	require.EqualValues(t, b1+3*testEntryFee, env.balance(p1.ScriptHash()))
	require.EqualValues(t, b2+testEntryFee, env.balance(p2.ScriptHash()))
	require.Zero(t, env.balance(env.hash))

	c := env.getContest(t, authority, testContestID)
	require.EqualValues(t, contestconst.StatusCancelled, c.Status.Int64())
	require.Zero(t, c.TotalPool.Int64())

	events, err := contestrpc.ContestCancelledEventsFromApplicationLog(&result.ApplicationLog{
		Executions: []state.Execution{env.e.GetTxExecResult(t, txHash).Execution},
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.EqualValues(t, 4*testEntryFee, events[0].Refunded.Int64())

	winners, payouts, targets := resolution(feeReceiver, equalPayouts(0)...)
	creator.InvokeFail(t, contestconst.ErrInvalidContestStatus, "resolveContest",
		authority, authority, int64(testContestID), winners, payouts, targets)
	creator.InvokeFail(t, contestconst.ErrInvalidContestStatus, "cancelContest",
		authority, authority, int64(testContestID))
}

func TestContest_ResolveRefusedPayout(t *testing.T) {
	env := newTestEnv(t)
	env.openContest(t, testContestID, testEntryFee, feeReceiver)
	env.enterMany(t, env.e.NewAccount(t), testContestID, testEntryFee, 10)

	const recvPath = "../../internal/testcontracts/gasrecv"
	c := neotest.CompileFile(t, env.e.CommitteeHash, recvPath, path.Join(recvPath, "config.yml"))
	env.e.DeployContract(t, c, nil)

	recv := env.e.CommitteeInvoker(c.Hash)
	recv.Invoke(t, stackitem.Null{}, "setRefuse", true)

	winners, payouts, targets := resolution(feeReceiver, equalPayouts(90)...)
	winners[5], targets[5] = c.Hash, c.Hash

	creator := env.invoker(env.creator)
	authority := env.creator.ScriptHash()

	creator.InvokeFail(t, "payment refused", "resolveContest",
		authority, authority, int64(testContestID), winners, payouts, targets)

	// Nothing is paid and the contest stays open.
	require.EqualValues(t, 1000, env.balance(env.hash))
	require.Zero(t, env.balance(feeReceiver))
	require.Zero(t, env.balance(winner(0)))
	require.EqualValues(t, contestconst.StatusOpen, env.getContest(t, authority, testContestID).Status.Int64())

	recv.Invoke(t, stackitem.Null{}, "setRefuse", false)
	creator.Invoke(t, stackitem.Null{}, "resolveContest",
		authority, authority, int64(testContestID), winners, payouts, targets)

	require.EqualValues(t, 90, env.balance(c.Hash))
	require.Zero(t, env.balance(env.hash))

	s, err := recv.TestInvoke(t, "lastPayment")
	require.NoError(t, err)

	payment, ok := s.Pop().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	from, err := payment[0].TryBytes()
	require.NoError(t, err)
	require.Equal(t, env.hash.BytesBE(), from)
	amount, err := payment[1].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, 90, amount.Int64())
}

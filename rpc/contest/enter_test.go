package contest

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

type testActor struct {
	script []byte
}

func (a *testActor) Call(util.Uint160, string, ...any) (*result.Invoke, error) {
	return nil, nil
}

func (a *testActor) MakeRun(script []byte) (*transaction.Transaction, error) {
	a.script = script
	return transaction.New(script, 0), nil
}

func (a *testActor) MakeUnsignedRun(script []byte, _ []transaction.Attribute) (*transaction.Transaction, error) {
	a.script = script
	return transaction.New(script, 0), nil
}

func (a *testActor) SendRun(script []byte) (util.Uint256, uint32, error) {
	a.script = script
	return util.Uint256{1}, 42, nil
}

func TestEnter(t *testing.T) {
	var (
		contract    = util.Uint160{1, 1, 1}
		participant = util.Uint160{2, 2, 2}
		authority   = util.Uint160{3, 3, 3}
	)

	a := new(testActor)
	h, vub, err := Enter(a, contract, participant, authority, big.NewInt(7), big.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, util.Uint256{1}, h)
	require.EqualValues(t, 42, vub)

	require.True(t, bytes.Contains(a.script, contract.BytesBE()))
	require.True(t, bytes.Contains(a.script, participant.BytesBE()))
	require.True(t, bytes.Contains(a.script, authority.BytesBE()))
	require.True(t, bytes.Contains(a.script, []byte("transfer")))

	a.script = nil
	tx, err := EnterUnsigned(a, contract, participant, authority, big.NewInt(7), big.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, a.script, tx.Script)
}

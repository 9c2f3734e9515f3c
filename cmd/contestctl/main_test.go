package main

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/pramaths/9shoot-contract/rpc/contest"
	"github.com/stretchr/testify/require"
)

type testReader struct {
	err          error
	admin        util.Uint160
	creators     []util.Uint160
	contest      contest.Contest
	participants []util.Uint160
}

func (r testReader) Admin() (util.Uint160, error) { return r.admin, r.err }

func (r testReader) Version() (*big.Int, error) { return big.NewInt(1000), r.err }

func (r testReader) CreatorsExpanded(int) ([]stackitem.Item, error) {
	res := make([]stackitem.Item, 0, len(r.creators))
	for i := range r.creators {
		res = append(res, stackitem.NewByteArray(r.creators[i].BytesBE()))
	}
	return res, r.err
}

func (r testReader) GetContest(util.Uint160, *big.Int) (*contest.Contest, error) {
	return &r.contest, r.err
}

func (r testReader) Participants(util.Uint160, *big.Int) ([]util.Uint160, error) {
	return r.participants, r.err
}

func TestPrint(t *testing.T) {
	r := testReader{
		admin:    util.Uint160{1},
		creators: []util.Uint160{{2}, {3}},
		contest: contest.Contest{
			Authority:        util.Uint160{2},
			EventID:          big.NewInt(1),
			ContestID:        big.NewInt(7),
			Name:             "final",
			EntryFee:         big.NewInt(100),
			FeeReceiver:      util.Uint160{1},
			Status:           big.NewInt(1),
			TotalPool:        big.NewInt(0),
			ParticipantCount: big.NewInt(1),
		},
		participants: []util.Uint160{{4}},
	}

	var buf bytes.Buffer
	require.NoError(t, printRegistry(&buf, r))
	require.Contains(t, buf.String(), "creators:\t2")
	require.Contains(t, buf.String(), address.Uint160ToString(util.Uint160{3}))

	buf.Reset()
	require.NoError(t, printContest(&buf, r, util.Uint160{2}, big.NewInt(7)))
	require.Contains(t, buf.String(), "final #7 (event #1)")
	require.Contains(t, buf.String(), "status:\tresolved")
	require.Contains(t, buf.String(), contest.KeyString(contest.ContestKey(util.Uint160{2}, big.NewInt(7))))
	require.Contains(t, buf.String(), address.Uint160ToString(util.Uint160{4}))

	r.err = errors.New("bad")
	require.Error(t, printRegistry(&buf, r))
	require.Error(t, printContest(&buf, r, util.Uint160{2}, big.NewInt(7)))
}

func TestParseHash(t *testing.T) {
	h := util.Uint160{1, 2, 3}

	res, err := parseHash(address.Uint160ToString(h))
	require.NoError(t, err)
	require.Equal(t, h, res)

	res, err = parseHash(h.StringLE())
	require.NoError(t, err)
	require.Equal(t, h, res)

	_, err = parseHash("not a hash")
	require.Error(t, err)
}

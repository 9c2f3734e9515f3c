package deploy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/pramaths/9shoot-contract/rpc/contest"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the Contest contract deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to the
	// blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Prm groups all parameters of the Contest contract deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance the contract is deployed to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	// It becomes the registry administrator of the deployed contract.
	LocalAccount *wallet.Account

	NEF      nef.File
	Manifest manifest.Manifest

	// Creators to be authorized right after the deployment.
	Creators []util.Uint160
}

// errFault is returned when transaction is accepted by the network but its
// execution fails.
var errFault = errors.New("transaction execution failed")

// txActor is the part of [actor.Actor] used by the deployment procedure.
type txActor interface {
	contest.Actor

	Sender() util.Uint160
	Wait(h util.Uint256, vub uint32, err error) (*state.AppExecResult, error)
}

// contractStateGetter is the part of [Blockchain] resolving deployed contracts.
type contractStateGetter interface {
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

type deployPrm struct {
	logger     *zap.Logger
	blockchain contractStateGetter
	actor      txActor
	nef        nef.File
	manifest   manifest.Manifest
	creators   []util.Uint160
}

// Deploy makes Contest contract deployed on the blockchain by the local
// account which becomes the registry administrator, and authorizes all
// requested creators. Deploy is idempotent: if the contract is already
// deployed from the same account or some creators are already authorized,
// they are left as is. Resulting contract address is returned.
//
// Deploy aborts on context cancellation between the transactions it sends.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	return deploy(ctx, deployPrm{
		logger:     prm.Logger,
		blockchain: prm.Blockchain,
		actor:      act,
		nef:        prm.NEF,
		manifest:   prm.Manifest,
		creators:   prm.Creators,
	})
}

func deploy(ctx context.Context, prm deployPrm) (util.Uint160, error) {
	admin := prm.actor.Sender()
	addr := state.CreateContractHash(admin, prm.nef.Checksum, prm.manifest.Name)
	l := prm.logger.With(zap.Stringer("address", addr))

	_, err := prm.blockchain.GetContractStateByHash(addr)
	switch {
	case err == nil:
		l.Info("Contest contract is already deployed")
	case isErrContractNotFound(err):
		l.Info("Contest contract is missing on the chain, deploying...")

		res, err := prm.actor.Wait(management.New(prm.actor).Deploy(&prm.nef, &prm.manifest, []any{admin}))
		err = checkResult(res, err)
		if err != nil {
			return util.Uint160{}, fmt.Errorf("deploy Contest contract: %w", err)
		}

		l.Info("Contest contract successfully deployed", zap.Stringer("tx", res.Container))
	default:
		return util.Uint160{}, fmt.Errorf("get state of the Contest contract: %w", err)
	}

	c := contest.New(prm.actor, addr)

	for i := range prm.creators {
		if err := ctx.Err(); err != nil {
			return util.Uint160{}, err
		}

		ok, err := c.IsAuthorized(prm.creators[i])
		if err != nil {
			return util.Uint160{}, fmt.Errorf("check authorization of creator %s: %w", prm.creators[i].StringLE(), err)
		}

		if ok {
			l.Debug("creator is already authorized", zap.Stringer("creator", prm.creators[i]))
			continue
		}

		res, err := prm.actor.Wait(c.SetCreatorAuthorization(prm.creators[i], true))
		err = checkResult(res, err)
		if err != nil {
			return util.Uint160{}, fmt.Errorf("authorize creator %s: %w", prm.creators[i].StringLE(), err)
		}

		l.Info("creator authorized", zap.Stringer("creator", prm.creators[i]), zap.Stringer("tx", res.Container))
	}

	return addr, nil
}

func checkResult(res *state.AppExecResult, err error) error {
	if err != nil {
		return err
	}

	if res.VMState != vmstate.Halt {
		return fmt.Errorf("%w: %s", errFault, res.FaultException)
	}

	return nil
}

func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}

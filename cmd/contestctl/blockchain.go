package main

import (
	"context"
	"fmt"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// wrapper over rpcNeo providing blockchain services needed for current command.
type remoteBlockchain struct {
	rpc *rpcclient.Client
}

// newRemoteBlockchain dials Neo RPC server and returns remoteBlockchain based
// on the opened connection. Connection and all requests are done within 15s
// timeout.
func newRemoteBlockchain(ctx context.Context, blockChainRPCEndpoint string) (*remoteBlockchain, error) {
	c, err := rpcclient.New(ctx, blockChainRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	return &remoteBlockchain{rpc: c}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

// iterateContractStorage iterates over all storage items of the Neo smart
// contract referenced by given address and passes them into f.
// iterateContractStorage breaks on any f's error and returns it.
func (x *remoteBlockchain) iterateContractStorage(contract util.Uint160, f func(key, value []byte) error) error {
	nLatestBlock, err := x.rpc.GetBlockCount()
	if err != nil {
		return fmt.Errorf("get number of the latest block: %w", err)
	}

	stateRoot, err := x.rpc.GetStateRootByHeight(nLatestBlock - 1)
	if err != nil {
		return fmt.Errorf("get state root at penult block #%d: %w", nLatestBlock-1, err)
	}

	var start []byte

	for {
		res, err := x.rpc.FindStates(stateRoot.Root, contract, nil, start, nil)
		if err != nil {
			return fmt.Errorf("get historical storage items of the requested contract at state root '%s': %w", stateRoot.Root, err)
		}

		for i := range res.Results {
			err = f(res.Results[i].Key, res.Results[i].Value)
			if err != nil {
				return err
			}
		}

		if !res.Truncated {
			return nil
		}

		start = res.Results[len(res.Results)-1].Key
	}
}

// parseHash accepts Neo address or little-endian hex string of the script
// hash.
func parseHash(s string) (util.Uint160, error) {
	h, err := address.StringToUint160(s)
	if err == nil {
		return h, nil
	}

	h, err = util.Uint160DecodeStringLE(s)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("neither address nor script hash: %q", s)
	}

	return h, nil
}

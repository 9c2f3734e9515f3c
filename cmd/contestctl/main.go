package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/pramaths/9shoot-contract/contracts/contest/contestconst"
	"github.com/pramaths/9shoot-contract/deploy"
	"github.com/pramaths/9shoot-contract/rpc/contest"
	"go.uber.org/zap"
)

const usage = `Usage: contestctl <command> [flags]

Commands:
  deploy   deploy Contest contract and authorize creators (-config deploy.yml)
  inspect  print state of the deployed Contest contract
`

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "deploy":
		err = runDeploy(ctx, logger, os.Args[2:])
	case "inspect":
		err = runInspect(ctx, os.Stdout, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		logger.Fatal("command failed", zap.String("command", os.Args[1]), zap.Error(err))
	}
}

func runDeploy(ctx context.Context, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("deploy", flag.ExitOnError)
	configPath := fs.String("config", "deploy.yml", "Path to the YAML deployment configuration")
	_ = fs.Parse(args)

	cfg, err := readDeployConfig(*configPath)
	if err != nil {
		return err
	}

	acc, err := cfg.account()
	if err != nil {
		return err
	}

	nefFile, m, err := cfg.contract()
	if err != nil {
		return err
	}

	b, err := newRemoteBlockchain(ctx, cfg.RPC)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}
	defer b.close()

	addr, err := deploy.Deploy(ctx, deploy.Prm{
		Logger:       logger,
		Blockchain:   b.rpc,
		LocalAccount: acc,
		NEF:          nefFile,
		Manifest:     m,
		Creators:     cfg.creators(),
	})
	if err != nil {
		return err
	}

	logger.Info("Contest contract is ready", zap.Stringer("address", addr))

	return nil
}

func runInspect(ctx context.Context, w io.Writer, args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	neoRPCEndpoint := fs.String("rpc", "", "Network address of the Neo RPC server")
	contractAddr := fs.String("contract", "", "Address of the Contest contract")
	authorityAddr := fs.String("authority", "", "Contest authority address (optional)")
	contestID := fs.Int64("contest", -1, "Contest ID, requires -authority (optional)")
	dumpStorage := fs.Bool("storage", false, "Print raw contract storage keys")
	_ = fs.Parse(args)

	switch {
	case *neoRPCEndpoint == "":
		return errors.New("missing Neo RPC endpoint")
	case *contractAddr == "":
		return errors.New("missing contract address")
	case *contestID >= 0 && *authorityAddr == "":
		return errors.New("contest ID requires authority")
	}

	h, err := parseHash(*contractAddr)
	if err != nil {
		return fmt.Errorf("contract: %w", err)
	}

	b, err := newRemoteBlockchain(ctx, *neoRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}
	defer b.close()

	r := contest.NewReader(invoker.New(b.rpc, nil), h)

	err = printRegistry(w, r)
	if err != nil {
		return err
	}

	if *contestID >= 0 {
		authority, err := parseHash(*authorityAddr)
		if err != nil {
			return fmt.Errorf("authority: %w", err)
		}

		err = printContest(w, r, authority, big.NewInt(*contestID))
		if err != nil {
			return err
		}
	}

	if *dumpStorage {
		return b.iterateContractStorage(h, func(key, value []byte) error {
			_, err := fmt.Fprintf(w, "%s\t%d bytes\n", contest.KeyString(key), len(value))
			return err
		})
	}

	return nil
}

// contestReader is the part of [contest.ContractReader] used by inspect command.
type contestReader interface {
	Admin() (util.Uint160, error)
	Version() (*big.Int, error)
	CreatorsExpanded(int) ([]stackitem.Item, error)
	GetContest(util.Uint160, *big.Int) (*contest.Contest, error)
	Participants(util.Uint160, *big.Int) ([]util.Uint160, error)
}

func printRegistry(w io.Writer, r contestReader) error {
	version, err := r.Version()
	if err != nil {
		return fmt.Errorf("get contract version: %w", err)
	}

	admin, err := r.Admin()
	if err != nil {
		return fmt.Errorf("get registry admin: %w", err)
	}

	creators, err := r.CreatorsExpanded(contestconst.MaxCreators)
	if err != nil {
		return fmt.Errorf("list creators: %w", err)
	}

	fmt.Fprintf(w, "version:\t%s\n", version)
	fmt.Fprintf(w, "admin:\t%s\n", address.Uint160ToString(admin))
	fmt.Fprintf(w, "creators:\t%d\n", len(creators))

	for i := range creators {
		b, err := creators[i].TryBytes()
		if err != nil {
			return fmt.Errorf("creator #%d: %w", i, err)
		}

		h, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return fmt.Errorf("creator #%d: %w", i, err)
		}

		fmt.Fprintf(w, "  %s\n", address.Uint160ToString(h))
	}

	return nil
}

var statusNames = map[int64]string{
	contestconst.StatusOpen:      "open",
	contestconst.StatusResolved:  "resolved",
	contestconst.StatusCancelled: "cancelled",
}

func printContest(w io.Writer, r contestReader, authority util.Uint160, contestID *big.Int) error {
	c, err := r.GetContest(authority, contestID)
	if err != nil {
		return fmt.Errorf("get contest: %w", err)
	}

	participants, err := r.Participants(authority, contestID)
	if err != nil {
		return fmt.Errorf("get participants: %w", err)
	}

	fmt.Fprintf(w, "contest:\t%s #%s (event #%s)\n", c.Name, c.ContestID, c.EventID)
	fmt.Fprintf(w, "key:\t%s\n", contest.KeyString(contest.ContestKey(authority, contestID)))
	fmt.Fprintf(w, "status:\t%s\n", statusNames[c.Status.Int64()])
	fmt.Fprintf(w, "entry fee:\t%s\n", c.EntryFee)
	fmt.Fprintf(w, "pool:\t%s\n", c.TotalPool)
	fmt.Fprintf(w, "fee receiver:\t%s\n", address.Uint160ToString(c.FeeReceiver))
	fmt.Fprintf(w, "participants:\t%d\n", len(participants))

	for i := range participants {
		fmt.Fprintf(w, "  %s\n", address.Uint160ToString(participants[i]))
	}

	return nil
}

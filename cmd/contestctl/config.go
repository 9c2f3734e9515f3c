package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"gopkg.in/yaml.v3"
)

// deployConfig is the YAML configuration of the deploy command.
type deployConfig struct {
	RPC    string `yaml:"rpc"`
	Wallet struct {
		Path    string `yaml:"path"`
		Address string `yaml:"address"`
		// PasswordEnv names environment variable with the account password.
		PasswordEnv string `yaml:"password_env"`
	} `yaml:"wallet"`
	Contract struct {
		NEF      string `yaml:"nef"`
		Manifest string `yaml:"manifest"`
	} `yaml:"contract"`
	Creators []string `yaml:"creators"`
}

func readDeployConfig(path string) (deployConfig, error) {
	var cfg deployConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("decode YAML config: %w", err)
	}

	return cfg, cfg.validate()
}

func (c deployConfig) validate() error {
	switch {
	case c.RPC == "":
		return errors.New("missing Neo RPC endpoint")
	case c.Wallet.Path == "":
		return errors.New("missing wallet path")
	case c.Contract.NEF == "":
		return errors.New("missing NEF file path")
	case c.Contract.Manifest == "":
		return errors.New("missing manifest file path")
	}

	for i := range c.Creators {
		if _, err := parseHash(c.Creators[i]); err != nil {
			return fmt.Errorf("invalid creator #%d: %w", i, err)
		}
	}

	return nil
}

func (c deployConfig) creators() []util.Uint160 {
	res := make([]util.Uint160, 0, len(c.Creators))
	for i := range c.Creators {
		h, _ := parseHash(c.Creators[i]) // checked by validate
		res = append(res, h)
	}
	return res
}

// account opens the wallet and returns decrypted account to sign
// transactions with. The default wallet account is used if no address is set.
func (c deployConfig) account() (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(c.Wallet.Path)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}
	defer w.Close()

	var acc *wallet.Account
	if c.Wallet.Address != "" {
		h, err := parseHash(c.Wallet.Address)
		if err != nil {
			return nil, fmt.Errorf("wallet account: %w", err)
		}
		acc = w.GetAccount(h)
	} else {
		acc = w.GetAccount(w.GetChangeAddress())
	}
	if acc == nil {
		return nil, errors.New("account not found in the wallet")
	}

	var password string
	if c.Wallet.PasswordEnv != "" {
		password = os.Getenv(c.Wallet.PasswordEnv)
	}

	err = acc.Decrypt(password, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account: %w", err)
	}

	return acc, nil
}

func (c deployConfig) contract() (nef.File, manifest.Manifest, error) {
	var m manifest.Manifest

	rawNEF, err := os.ReadFile(c.Contract.NEF)
	if err != nil {
		return nef.File{}, m, fmt.Errorf("read NEF: %w", err)
	}

	f, err := nef.FileFromBytes(rawNEF)
	if err != nil {
		return nef.File{}, m, fmt.Errorf("decode NEF: %w", err)
	}

	rawManifest, err := os.ReadFile(c.Contract.Manifest)
	if err != nil {
		return nef.File{}, m, fmt.Errorf("read manifest: %w", err)
	}

	err = json.Unmarshal(rawManifest, &m)
	if err != nil {
		return nef.File{}, m, fmt.Errorf("decode manifest: %w", err)
	}

	return f, m, nil
}

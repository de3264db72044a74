// Package contractcfg loads the per-network contract descriptor written at deployment time.
package contractcfg

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"resolution-monitoring/internal/ledger"
	"resolution-monitoring/internal/network"
)

// ErrMissingAddress means the descriptor names no usable contract address.
var ErrMissingAddress = errors.New("contract address not configured")

// Descriptor identifies the deployed contract on one network.
type Descriptor struct {
	Address        common.Address
	Network        string
	ChainID        uint64
	DeploymentTime string
	ABI            abi.ABI
}

// Loader reads descriptors from a directory.
type Loader struct {
	fs  afero.Fs
	dir string
}

// NewLoader reads descriptors under dir on fs.
func NewLoader(fs afero.Fs, dir string) *Loader {
	return &Loader{fs: fs, dir: dir}
}

// Load reads the descriptor of n. The ABI comes from the descriptor's inline
// "abi", else from "abiFile", else the built-in default.
func (l *Loader) Load(n network.Network) (Descriptor, error) {
	path := filepath.Join(l.dir, n.ConfigFile)
	v := viper.New()
	v.SetFs(l.fs)
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return Descriptor{}, errors.Wrapf(err, "read contract descriptor %s", path)
	}

	rawAddr := strings.TrimSpace(v.GetString("address"))
	if rawAddr == "" {
		return Descriptor{}, errors.Wrapf(ErrMissingAddress, "%s", path)
	}
	addr, ok := ledger.ParseAddress(rawAddr)
	if !ok || addr == (common.Address{}) {
		return Descriptor{}, errors.Wrapf(ErrMissingAddress, "%s: invalid address %q", path, rawAddr)
	}

	rawABI, err := l.abiSource(path, v.GetString("abiFile"))
	if err != nil {
		return Descriptor{}, err
	}
	parsed, err := ledger.ParseABI(rawABI)
	if err != nil {
		return Descriptor{}, errors.Wrapf(err, "%s", path)
	}

	d := Descriptor{
		Address:        addr,
		Network:        v.GetString("network"),
		ChainID:        v.GetUint64("chainId"),
		DeploymentTime: v.GetString("deploymentTime"),
		ABI:            parsed,
	}
	if d.Network == "" {
		d.Network = n.Key
	}
	if d.ChainID == 0 {
		d.ChainID = n.ChainID
	}
	return d, nil
}

// abiSource returns the ABI JSON to use, or "" for the built-in one.
// The descriptor is re-read as raw JSON because viper folds map keys to lower case.
func (l *Loader) abiSource(descriptorPath, abiFile string) (string, error) {
	raw, err := afero.ReadFile(l.fs, descriptorPath)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", descriptorPath)
	}
	if inline, err := extractABI(raw); err != nil {
		return "", errors.Wrapf(err, "%s", descriptorPath)
	} else if inline != "" {
		return inline, nil
	}

	if abiFile == "" {
		return "", nil
	}
	if !filepath.IsAbs(abiFile) {
		abiFile = filepath.Join(l.dir, abiFile)
	}
	raw, err = afero.ReadFile(l.fs, abiFile)
	if err != nil {
		return "", errors.Wrapf(err, "read abi file %s", abiFile)
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return string(trimmed), nil
	}
	// compiled artifact: {"abi": [...], "bytecode": ...}
	inline, err := extractABI(raw)
	if err != nil {
		return "", errors.Wrapf(err, "%s", abiFile)
	}
	if inline == "" {
		return "", errors.Errorf("%s holds no abi", abiFile)
	}
	return inline, nil
}

func extractABI(raw []byte) (string, error) {
	var doc struct {
		ABI json.RawMessage `json:"abi"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", errors.Wrap(err, "decode json")
	}
	if len(doc.ABI) == 0 || string(doc.ABI) == "null" {
		return "", nil
	}
	return string(doc.ABI), nil
}

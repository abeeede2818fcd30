// Package deploy provides Luminess contract deployment routine.
package deploy

import (
	"context"
	"encoding/json"
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
	"github.com/ojonugwa419/luminess/common"
	"github.com/ojonugwa419/luminess/rpc/netreg"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for Netreg contract deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to
	// the blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. GetContractStateByHash returns an error with 'Unknown
	// contract' substring if the requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Prm groups parameters of Netreg contract deployment.
type Prm struct {
	// Writes progress of the procedure.
	Logger *zap.Logger

	// Particular Neo blockchain instance to be used.
	Blockchain Blockchain

	// Account the deployment transactions are signed and paid by. On the
	// first deployment it also determines the resulting contract address.
	LocalAccount *wallet.Account

	// Compiled executable and manifest of the Netreg contract.
	NEF      nef.File
	Manifest manifest.Manifest
}

// Deploy deploys the Netreg contract to the given Neo blockchain or updates
// the previously deployed instance if its version is older than the local
// one. Deploy returns the on-chain address of the contract.
//
// Deployed contract address is a function of the deploying account, so
// repeated runs with the same account converge to the same contract.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	localActor, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	contractAddress := state.CreateContractHash(localActor.Sender(), prm.NEF.Checksum, prm.Manifest.Name)

	onChainState, err := prm.Blockchain.GetContractStateByHash(contractAddress)
	if err != nil {
		if !isErrContractNotFound(err) {
			return util.Uint160{}, fmt.Errorf("read on-chain state of the contract by address '%s': %w", contractAddress.StringLE(), err)
		}
		onChainState = nil
	}

	if onChainState == nil {
		prm.Logger.Info("contract is missing on the chain, deploying...",
			zap.Stringer("address", contractAddress))

		err = sendAndWait(ctx, localActor, func() (util.Uint256, uint32, error) {
			return management.New(localActor).Deploy(&prm.NEF, &prm.Manifest, nil)
		})
		if err != nil {
			return util.Uint160{}, fmt.Errorf("deploy contract: %w", err)
		}

		prm.Logger.Info("contract successfully deployed", zap.Stringer("address", contractAddress))

		return contractAddress, nil
	}

	versionOnChain, err := netreg.NewReader(localActor, contractAddress).Version()
	if err != nil {
		return util.Uint160{}, fmt.Errorf("read version of the on-chain contract: %w", err)
	}

	if versionOnChain.Int64() >= common.Version {
		prm.Logger.Info("on-chain contract is up-to-date, skip update",
			zap.Int64("version", versionOnChain.Int64()))
		return contractAddress, nil
	}

	prm.Logger.Info("on-chain contract is outdated, updating...",
		zap.Int64("on-chain version", versionOnChain.Int64()),
		zap.Int("local version", common.Version))

	bNEF, err := prm.NEF.Bytes()
	if err != nil {
		return util.Uint160{}, fmt.Errorf("encode local NEF of the contract into binary: %w", err)
	}

	jManifest, err := json.Marshal(prm.Manifest)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("encode local manifest of the contract into JSON: %w", err)
	}

	err = sendAndWait(ctx, localActor, func() (util.Uint256, uint32, error) {
		return netreg.New(localActor, contractAddress).Update(bNEF, jManifest, nil)
	})
	if err != nil {
		return util.Uint160{}, fmt.Errorf("update contract: %w", err)
	}

	prm.Logger.Info("contract successfully updated", zap.Stringer("address", contractAddress))

	return contractAddress, nil
}

// sendAndWait sends the transaction composed by the given function and waits
// until it is persisted and halted.
func sendAndWait(ctx context.Context, localActor *actor.Actor, send func() (util.Uint256, uint32, error)) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("wait for transaction sending: %w", err)
	}

	txHash, vub, err := send()
	if err != nil {
		return fmt.Errorf("send transaction: %w", err)
	}

	res, err := localActor.Wait(txHash, vub, nil)
	if err != nil {
		return fmt.Errorf("wait for transaction '%s' to be persisted: %w", txHash.StringLE(), err)
	}

	if res.VMState != vmstate.Halt {
		return fmt.Errorf("transaction '%s' failed: %s", txHash.StringLE(), res.FaultException)
	}

	return nil
}

// isErrContractNotFound checks if the error returned by the RPC server means
// that the requested contract is missing. RPC servers do not (yet) return
// coded errors for this case, so the message is matched.
func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}

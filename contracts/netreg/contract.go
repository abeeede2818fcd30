package netreg

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/ojonugwa419/luminess/common"
	cst "github.com/ojonugwa419/luminess/contracts/netreg/netregconst"
)

// Network stores metadata of a single registered network.
type Network struct {
	// Human-readable network name.
	Name string
	// Free-form network location.
	Location string
	// Number of devices in the network.
	DeviceCount int
	// Wallet address of the account the network is registered to.
	Owner []byte
}

const (
	networkKeyPrefix = 'n'

	totalNetworksKey = "totalNetworks"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	runtime.Log("netreg contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("netreg contract updated")
}

// Register creates a network record bound to the given owner. Owner must be
// a 25-byte wallet address and the transaction must be witnessed by the
// corresponding account. Name must be non-empty and at most 50 bytes long,
// location at most 100 bytes long, deviceCount non-negative.
//
// An owner can have at most one network, a repeated Register call fails with
// AlreadyExistsError however its arguments relate to the stored record.
// Returns the owner the network was registered under.
//
// Produces NetworkRegistered notification.
func Register(owner []byte, name string, location string, deviceCount int) []byte {
	ctx := storage.GetContext()

	if len(owner) != cst.OwnerIDLength {
		panic(cst.InvalidOwnerError)
	}
	common.CheckOwnerWitness(common.WalletToScriptHash(owner))

	checkNetworkArgs(name, location, deviceCount)

	key := networkKey(owner)
	if storage.Get(ctx, key) != nil {
		panic(cst.AlreadyExistsError)
	}

	network := Network{
		Name:        name,
		Location:    location,
		DeviceCount: deviceCount,
		Owner:       owner,
	}
	common.SetSerialized(ctx, key, network)
	storage.Put(ctx, totalNetworksKey, getTotal(ctx)+1)

	runtime.Notify("NetworkRegistered", owner, name)

	return owner
}

// UpdateNetwork overwrites name, location and device count of the network
// registered to the given owner. Argument bounds are the same as in Register.
// The record's owner never changes. Returns the owner.
//
// Produces NetworkUpdated notification.
func UpdateNetwork(owner []byte, name string, location string, deviceCount int) []byte {
	ctx := storage.GetContext()

	if len(owner) != cst.OwnerIDLength {
		panic(cst.InvalidOwnerError)
	}
	common.CheckOwnerWitness(common.WalletToScriptHash(owner))

	key := networkKey(owner)
	data := storage.Get(ctx, key)
	if data == nil {
		panic(cst.NotFoundError)
	}

	network := std.Deserialize(data.([]byte)).(Network)
	// Records are keyed by their owner's address, so this check can not fail
	// until delegated registration appears. Kept to pin the access rule down.
	if !common.BytesEqual(network.Owner, owner) {
		panic(cst.NotOwnerError)
	}

	checkNetworkArgs(name, location, deviceCount)

	network.Name = name
	network.Location = location
	network.DeviceCount = deviceCount
	network.Owner = owner
	common.SetSerialized(ctx, key, network)

	runtime.Notify("NetworkUpdated", owner)

	return owner
}

// Exists returns true if a network is registered to the given owner.
func Exists(owner []byte) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, networkKey(owner)) != nil
}

// GetNetworkDetails returns the Network registered to the given owner or nil
// if there is none. Absence is a regular outcome, not a fault.
func GetNetworkDetails(owner []byte) any {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, networkKey(owner))
	if data == nil {
		return nil
	}

	return std.Deserialize(data.([]byte)).(Network)
}

// TotalNetworks returns the number of registered networks.
func TotalNetworks() int {
	ctx := storage.GetReadOnlyContext()
	return getTotal(ctx)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func checkNetworkArgs(name string, location string, deviceCount int) {
	if len(name) < cst.MinNameLength || len(name) > cst.MaxNameLength {
		panic(cst.InvalidNameError)
	}
	if len(location) > cst.MaxLocationLength {
		panic(cst.InvalidLocationError)
	}
	if deviceCount < 0 {
		panic(cst.InvalidDeviceCountError)
	}
}

func networkKey(owner []byte) []byte {
	return append([]byte{networkKeyPrefix}, owner...)
}

func getTotal(ctx storage.Context) int {
	data := storage.Get(ctx, totalNetworksKey)
	if data == nil {
		return 0
	}
	return data.(int)
}

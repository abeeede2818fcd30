package tests

import (
	"path"
	"strings"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/ojonugwa419/luminess/common"
	"github.com/ojonugwa419/luminess/contracts/netreg/netregconst"
	netregrpc "github.com/ojonugwa419/luminess/rpc/netreg"
	"github.com/stretchr/testify/require"
)

const netregPath = "../contracts/netreg"

func deployNetregContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, netregPath, path.Join(netregPath, "config.yml"))
	e.DeployContract(t, c, nil)
	return c.Hash
}

func newNetregInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)
	h := deployNetregContract(t, e)
	return e.CommitteeInvoker(h)
}

// ownerID converts an account into the 25-byte wallet address the registry
// keys its records by.
func ownerID(acc neotest.Signer) []byte {
	owner, _ := base58.Decode(address.Uint160ToString(acc.ScriptHash()))
	return owner
}

// getNetwork performs test invocation of getNetworkDetails and decodes the
// result. Nil return means the record is missing (Null on stack).
func getNetwork(t *testing.T, c *neotest.ContractInvoker, owner []byte) *netregrpc.NetregNetwork {
	s, err := c.TestInvoke(t, "getNetworkDetails", owner)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	item := s.Pop().Item()
	if _, ok := item.(stackitem.Null); ok {
		return nil
	}

	var network netregrpc.NetregNetwork
	require.NoError(t, network.FromStackItem(item))
	return &network
}

func TestNetregRegister(t *testing.T) {
	c := newNetregInvoker(t)

	acc := c.NewAccount(t)
	owner := ownerID(acc)
	cAcc := c.WithSigners(acc)

	cAcc.Invoke(t, stackitem.NewByteArray(owner), "register",
		owner, "TestNet", "Test Location", int64(10))

	network := getNetwork(t, c, owner)
	require.NotNil(t, network)
	require.Equal(t, "TestNet", network.Name)
	require.Equal(t, "Test Location", network.Location)
	require.EqualValues(t, 10, network.DeviceCount.Int64())
	require.Equal(t, owner, network.Owner)

	c.Invoke(t, true, "exists", owner)
	c.Invoke(t, 1, "totalNetworks")

	t.Run("repeated registration", func(t *testing.T) {
		// Not idempotent even with identical arguments.
		cAcc.InvokeFail(t, netregconst.AlreadyExistsError, "register",
			owner, "TestNet", "Test Location", int64(10))
		cAcc.InvokeFail(t, netregconst.AlreadyExistsError, "register",
			owner, "OtherNet", "Other Location", int64(3))

		network := getNetwork(t, c, owner)
		require.NotNil(t, network)
		require.Equal(t, "TestNet", network.Name)
		c.Invoke(t, 1, "totalNetworks")
	})

	t.Run("missing owner witness", func(t *testing.T) {
		accOther := c.NewAccount(t)
		cAcc.InvokeFail(t, common.ErrOwnerWitnessFailed, "register",
			ownerID(accOther), "StolenNet", "Somewhere", int64(1))
	})

	t.Run("incorrect owner", func(t *testing.T) {
		cAcc.InvokeFail(t, netregconst.InvalidOwnerError, "register",
			owner[:len(owner)-1], "TestNet", "Test Location", int64(10))
	})
}

func TestNetregRegisterArgBounds(t *testing.T) {
	c := newNetregInvoker(t)

	acc := c.NewAccount(t)
	owner := ownerID(acc)
	cAcc := c.WithSigners(acc)

	cAcc.InvokeFail(t, netregconst.InvalidNameError, "register",
		owner, "", "Test Location", int64(10))
	cAcc.InvokeFail(t, netregconst.InvalidNameError, "register",
		owner, strings.Repeat("a", netregconst.MaxNameLength+1), "Test Location", int64(10))
	cAcc.InvokeFail(t, netregconst.InvalidLocationError, "register",
		owner, "TestNet", strings.Repeat("l", netregconst.MaxLocationLength+1), int64(10))
	cAcc.InvokeFail(t, netregconst.InvalidDeviceCountError, "register",
		owner, "TestNet", "Test Location", int64(-1))

	// Failed validation leaves no trace.
	c.Invoke(t, false, "exists", owner)
	c.Invoke(t, 0, "totalNetworks")

	// Boundary values pass.
	cAcc.Invoke(t, stackitem.NewByteArray(owner), "register",
		owner,
		strings.Repeat("a", netregconst.MaxNameLength),
		strings.Repeat("l", netregconst.MaxLocationLength),
		int64(0))

	network := getNetwork(t, c, owner)
	require.NotNil(t, network)
	require.Len(t, network.Name, netregconst.MaxNameLength)
	require.Len(t, network.Location, netregconst.MaxLocationLength)
	require.EqualValues(t, 0, network.DeviceCount.Int64())
}

func TestNetregUpdateNetwork(t *testing.T) {
	c := newNetregInvoker(t)

	acc := c.NewAccount(t)
	owner := ownerID(acc)
	cAcc := c.WithSigners(acc)

	t.Run("before registration", func(t *testing.T) {
		cAcc.InvokeFail(t, netregconst.NotFoundError, "updateNetwork",
			owner, "Net1", "L1", int64(5))
	})

	cAcc.Invoke(t, stackitem.NewByteArray(owner), "register",
		owner, "Net1", "L1", int64(5))

	cAcc.Invoke(t, stackitem.NewByteArray(owner), "updateNetwork",
		owner, "Net2", "L2", int64(7))

	network := getNetwork(t, c, owner)
	require.NotNil(t, network)
	require.Equal(t, "Net2", network.Name)
	require.Equal(t, "L2", network.Location)
	require.EqualValues(t, 7, network.DeviceCount.Int64())
	require.Equal(t, owner, network.Owner)
	c.Invoke(t, 1, "totalNetworks")

	t.Run("by another account", func(t *testing.T) {
		accOther := c.NewAccount(t)
		cOther := c.WithSigners(accOther)
		cOther.InvokeFail(t, common.ErrOwnerWitnessFailed, "updateNetwork",
			owner, "HijackedNet", "Elsewhere", int64(1))

		network := getNetwork(t, c, owner)
		require.NotNil(t, network)
		require.Equal(t, "Net2", network.Name)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		cAcc.InvokeFail(t, netregconst.InvalidNameError, "updateNetwork",
			owner, "", "L3", int64(1))
		cAcc.InvokeFail(t, netregconst.InvalidNameError, "updateNetwork",
			owner, strings.Repeat("a", netregconst.MaxNameLength+1), "L3", int64(1))
		cAcc.InvokeFail(t, netregconst.InvalidDeviceCountError, "updateNetwork",
			owner, "Net3", "L3", int64(-5))

		network := getNetwork(t, c, owner)
		require.NotNil(t, network)
		require.Equal(t, "Net2", network.Name)
		require.Equal(t, "L2", network.Location)
	})

	// Boundary name is accepted on update as well.
	cAcc.Invoke(t, stackitem.NewByteArray(owner), "updateNetwork",
		owner, strings.Repeat("b", netregconst.MaxNameLength), "L2", int64(7))
}

func TestNetregExists(t *testing.T) {
	c := newNetregInvoker(t)

	acc := c.NewAccount(t)
	owner := ownerID(acc)
	cAcc := c.WithSigners(acc)

	c.Invoke(t, false, "exists", owner)
	c.Invoke(t, false, "exists", randomBytes(25))
	require.Nil(t, getNetwork(t, c, owner))

	cAcc.Invoke(t, stackitem.NewByteArray(owner), "register",
		owner, "TestNet", "Test Location", int64(10))

	c.Invoke(t, true, "exists", owner)

	// Presence never reverts, there is no removal.
	cAcc.Invoke(t, stackitem.NewByteArray(owner), "updateNetwork",
		owner, "TestNet", "Test Location", int64(0))
	c.Invoke(t, true, "exists", owner)
}

func TestNetregTotalNetworks(t *testing.T) {
	c := newNetregInvoker(t)

	c.Invoke(t, 0, "totalNetworks")

	const n = 3
	owners := make([][]byte, n)
	for i := range owners {
		acc := c.NewAccount(t)
		owners[i] = ownerID(acc)
		c.WithSigners(acc).Invoke(t, stackitem.NewByteArray(owners[i]), "register",
			owners[i], "TestNet", "Test Location", int64(i))
		c.Invoke(t, i+1, "totalNetworks")
	}

	for i := range owners {
		c.Invoke(t, true, "exists", owners[i])
	}
	c.Invoke(t, n, "totalNetworks")
}

func TestNetregNotifications(t *testing.T) {
	e := newExecutor(t)
	h := deployNetregContract(t, e)
	c := e.CommitteeInvoker(h)

	acc := c.NewAccount(t)
	owner := ownerID(acc)
	cAcc := c.WithSigners(acc)

	tx := cAcc.Invoke(t, stackitem.NewByteArray(owner), "register",
		owner, "TestNet", "Test Location", int64(10))
	e.CheckTxNotificationEvent(t, tx, 0, state.NotificationEvent{
		ScriptHash: h,
		Name:       "NetworkRegistered",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.NewByteArray(owner),
			stackitem.NewByteArray([]byte("TestNet")),
		}),
	})

	tx = cAcc.Invoke(t, stackitem.NewByteArray(owner), "updateNetwork",
		owner, "TestNet", "Test Location", int64(11))
	e.CheckTxNotificationEvent(t, tx, 0, state.NotificationEvent{
		ScriptHash: h,
		Name:       "NetworkUpdated",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.NewByteArray(owner),
		}),
	})
}

func TestNetregUpdateAccess(t *testing.T) {
	c := newNetregInvoker(t)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, "only committee can update contract", "update",
		[]byte{1, 2, 3}, []byte{1, 2, 3}, nil)
}

func TestNetregVersion(t *testing.T) {
	c := newNetregInvoker(t)
	c.Invoke(t, common.Version, "version")
}

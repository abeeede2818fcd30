package netreg

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/ojonugwa419/luminess/contracts/netreg/netregconst"
	"github.com/stretchr/testify/require"
)

type testInvoker struct {
	item stackitem.Item
}

func (x *testInvoker) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	return &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{x.item},
	}, nil
}

func TestContractReaderNetwork(t *testing.T) {
	owner := make([]byte, netregconst.OwnerIDLength)
	owner[0] = 0x35

	t.Run("missing network", func(t *testing.T) {
		reader := NewReader(&testInvoker{item: stackitem.Null{}}, util.Uint160{})

		network, err := reader.Network(owner)
		require.NoError(t, err)
		require.Nil(t, network)
	})

	t.Run("registered network", func(t *testing.T) {
		reader := NewReader(&testInvoker{item: stackitem.NewStruct([]stackitem.Item{
			stackitem.NewByteArray([]byte("TestNet")),
			stackitem.NewByteArray([]byte("Test Location")),
			stackitem.NewBigInteger(big.NewInt(10)),
			stackitem.NewByteArray(owner),
		})}, util.Uint160{})

		network, err := reader.Network(owner)
		require.NoError(t, err)
		require.NotNil(t, network)
		require.Equal(t, "TestNet", network.Name)
		require.Equal(t, "Test Location", network.Location)
		require.EqualValues(t, 10, network.DeviceCount.Int64())
		require.Equal(t, owner, network.Owner)
	})

	t.Run("malformed record", func(t *testing.T) {
		reader := NewReader(&testInvoker{item: stackitem.NewStruct([]stackitem.Item{
			stackitem.NewByteArray([]byte("TestNet")),
		})}, util.Uint160{})

		_, err := reader.Network(owner)
		require.Error(t, err)
	})
}

func TestErrorCode(t *testing.T) {
	for faultMsg, code := range map[string]int{
		netregconst.InvalidNameError:        netregconst.InvalidArgumentCode,
		netregconst.InvalidLocationError:    netregconst.InvalidArgumentCode,
		netregconst.InvalidDeviceCountError: netregconst.InvalidArgumentCode,
		netregconst.InvalidOwnerError:       netregconst.InvalidArgumentCode,
		netregconst.AlreadyExistsError:      netregconst.AlreadyExistsCode,
		netregconst.NotFoundError:           netregconst.NotFoundCode,
		netregconst.NotOwnerError:           netregconst.UnauthorizedCode,
		notWitnessedError:                   netregconst.UnauthorizedCode,
	} {
		require.Equal(t, code, ErrorCode(faultMsg), faultMsg)

		// Fault messages come wrapped with the VM context.
		require.Equal(t, code, ErrorCode("at instruction 42 (PUSH1): "+faultMsg), faultMsg)
	}

	require.Zero(t, ErrorCode("insufficient funds"))
	require.Zero(t, ErrorCode(""))
}

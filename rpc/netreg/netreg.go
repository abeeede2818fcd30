package netreg

import (
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/ojonugwa419/luminess/contracts/netreg/netregconst"
)

const (
	// InvalidNameError is returned if network name length is out of bounds.
	InvalidNameError = netregconst.InvalidNameError
	// InvalidLocationError is returned if network location is too long.
	InvalidLocationError = netregconst.InvalidLocationError
	// InvalidDeviceCountError is returned on a negative device count.
	InvalidDeviceCountError = netregconst.InvalidDeviceCountError
	// InvalidOwnerError is returned if owner is not a valid wallet address.
	InvalidOwnerError = netregconst.InvalidOwnerError
	// AlreadyExistsError is returned on repeated registration for one owner.
	AlreadyExistsError = netregconst.AlreadyExistsError
	// NotFoundError is returned if network is missing.
	NotFoundError = netregconst.NotFoundError
	// NotOwnerError is returned on a record/owner mismatch.
	NotOwnerError = netregconst.NotOwnerError
)

// notWitnessedError is the message CheckOwnerWitness on the contract side
// fails with when the transaction is not signed by the claimed owner.
const notWitnessedError = "owner witness check failed"

// Network invokes `getNetworkDetails` method of contract and converts the
// result. Unlike [ContractReader.GetNetworkDetails] it decodes the record
// into [NetregNetwork]. (nil, nil) return means there is no network
// registered to the given owner.
func (c *ContractReader) Network(owner []byte) (*NetregNetwork, error) {
	item, err := c.GetNetworkDetails(owner)
	if err != nil {
		return nil, err
	}
	if _, ok := item.(stackitem.Null); ok {
		return nil, nil
	}
	return itemToNetregNetwork(item, nil)
}

// ErrorCode maps a fault message of a failed netreg invocation to the stable
// numeric code of its failure class (400, 403, 404 or 409). Zero return
// means the message belongs to none of the registry failure classes.
func ErrorCode(faultMsg string) int {
	switch {
	case strings.Contains(faultMsg, netregconst.AlreadyExistsError):
		return netregconst.AlreadyExistsCode
	case strings.Contains(faultMsg, netregconst.NotFoundError):
		return netregconst.NotFoundCode
	case strings.Contains(faultMsg, netregconst.NotOwnerError),
		strings.Contains(faultMsg, notWitnessedError):
		return netregconst.UnauthorizedCode
	case strings.Contains(faultMsg, netregconst.InvalidNameError),
		strings.Contains(faultMsg, netregconst.InvalidLocationError),
		strings.Contains(faultMsg, netregconst.InvalidDeviceCountError),
		strings.Contains(faultMsg, netregconst.InvalidOwnerError):
		return netregconst.InvalidArgumentCode
	}
	return 0
}

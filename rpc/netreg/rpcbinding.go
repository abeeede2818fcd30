// Package netreg contains RPC wrappers for Luminess Netreg contract.
package netreg

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// NetregNetwork is a contract-specific netreg.Network type used by its methods.
type NetregNetwork struct {
	Name string
	Location string
	DeviceCount *big.Int
	Owner []byte
}

// NetworkRegisteredEvent represents "NetworkRegistered" event emitted by the contract.
type NetworkRegisteredEvent struct {
	Owner []byte
	Name string
}

// NetworkUpdatedEvent represents "NetworkUpdated" event emitted by the contract.
type NetworkUpdatedEvent struct {
	Owner []byte
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Exists invokes `exists` method of contract.
func (c *ContractReader) Exists(owner []byte) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "exists", owner))
}

// GetNetworkDetails invokes `getNetworkDetails` method of contract.
func (c *ContractReader) GetNetworkDetails(owner []byte) (stackitem.Item, error) {
	return unwrap.Item(c.invoker.Call(c.hash, "getNetworkDetails", owner))
}

// TotalNetworks invokes `totalNetworks` method of contract.
func (c *ContractReader) TotalNetworks() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalNetworks"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Register creates a transaction invoking `register` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Register(owner []byte, name string, location string, deviceCount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "register", owner, name, location, deviceCount)
}

// RegisterTransaction creates a transaction invoking `register` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterTransaction(owner []byte, name string, location string, deviceCount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "register", owner, name, location, deviceCount)
}

// RegisterUnsigned creates a transaction invoking `register` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterUnsigned(owner []byte, name string, location string, deviceCount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "register", nil, owner, name, location, deviceCount)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// UpdateNetwork creates a transaction invoking `updateNetwork` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateNetwork(owner []byte, name string, location string, deviceCount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateNetwork", owner, name, location, deviceCount)
}

// UpdateNetworkTransaction creates a transaction invoking `updateNetwork` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateNetworkTransaction(owner []byte, name string, location string, deviceCount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateNetwork", owner, name, location, deviceCount)
}

// UpdateNetworkUnsigned creates a transaction invoking `updateNetwork` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateNetworkUnsigned(owner []byte, name string, location string, deviceCount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateNetwork", nil, owner, name, location, deviceCount)
}

// itemToNetregNetwork converts stack item into *NetregNetwork.
func itemToNetregNetwork(item stackitem.Item, err error) (*NetregNetwork, error) {
	if err != nil {
		return nil, err
	}
	var res = new(NetregNetwork)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of NetregNetwork from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *NetregNetwork) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.Location, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Location: %w", err)
	}

	index++
	res.DeviceCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field DeviceCount: %w", err)
	}

	index++
	res.Owner, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	return nil
}

// NetworkRegisteredEventsFromApplicationLog retrieves a set of all emitted events
// with "NetworkRegistered" name from the provided [result.ApplicationLog].
func NetworkRegisteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*NetworkRegisteredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NetworkRegisteredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NetworkRegistered" {
				continue
			}
			event := new(NetworkRegisteredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NetworkRegisteredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NetworkRegisteredEvent or
// returns an error if it's not possible to do to so.
func (e *NetworkRegisteredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	return nil
}

// NetworkUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "NetworkUpdated" name from the provided [result.ApplicationLog].
func NetworkUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*NetworkUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NetworkUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NetworkUpdated" {
				continue
			}
			event := new(NetworkUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NetworkUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NetworkUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *NetworkUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	return nil
}

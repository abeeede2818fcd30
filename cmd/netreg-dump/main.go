// netreg-dump prints all networks registered in a deployed Netreg contract
// along with the running total, reading raw contract storage over Neo RPC.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/ojonugwa419/luminess/rpc/netreg"
)

// prefix of the storage keys holding serialized networks, see storage model
// in the contract package doc.
const networkKeyPrefix = 'n'

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractAddress := flag.String("contract", "", "Netreg contract address (LE hex)")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractAddress == "":
		log.Fatal("missing Netreg contract address")
	}

	contractHash, err := util.Uint160DecodeStringLE(*contractAddress)
	if err != nil {
		log.Fatal(fmt.Errorf("decode contract address: %w", err))
	}

	err = _dump(*neoRPCEndpoint, contractHash)
	if err != nil {
		log.Fatal(err)
	}
}

func _dump(neoBlockchainRPCEndpoint string, contractHash util.Uint160) error {
	b, err := newRemoteBlockchain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	var n int

	err = b.iterateContractStorage(contractHash, []byte{networkKeyPrefix}, func(key, value []byte) error {
		item, err := stackitem.Deserialize(value)
		if err != nil {
			return fmt.Errorf("decode storage item '%x': %w", key, err)
		}

		var network netreg.NetregNetwork
		if err := network.FromStackItem(item); err != nil {
			return fmt.Errorf("decode network record '%x': %w", key, err)
		}

		n++
		fmt.Printf("%s\t%q\t%q\t%d devices\n",
			base58.Encode(network.Owner), network.Name, network.Location, network.DeviceCount)

		return nil
	})
	if err != nil {
		return fmt.Errorf("iterate contract storage: %w", err)
	}

	total, err := netreg.NewReader(b.actor, contractHash).TotalNetworks()
	if err != nil {
		return fmt.Errorf("get total number of networks: %w", err)
	}

	fmt.Printf("%d networks dumped, %s registered in total\n", n, total)

	return nil
}

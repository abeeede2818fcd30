/*
Package netreg implements Netreg contract, the network registry of Luminess.

Netreg contract keeps a single self-describing record per account: a network
name, its location and the number of devices in it. The record is created
once with Register, can be modified any number of times with UpdateNetwork by
its owner only and is never removed. Ownership is bound to the registering
account forever, there is no transfer or delegated registration.

Mutating methods take the owner address explicitly and require the carrier
transaction to be witnessed by that account, so only the account holder can
create or modify its record. Read methods (exists, getNetworkDetails,
totalNetworks) are safe and never fault: a missing record yields false/Null.

# Contract notifications

NetworkRegistered notification. Produced on every successful registration.

	NetworkRegistered:
	  - name: owner
	    type: ByteArray
	  - name: name
	    type: String

NetworkUpdated notification. Produced on every successful record update.

	NetworkUpdated:
	  - name: owner
	    type: ByteArray
*/
package netreg

/*
Contract storage model.

Current conventions:
 <owner>: 25-byte V2 format wallet address of the network owner

# Summary
Key-value storage format:
 - 'n<owner>' -> std.Serialize(Network)
   Metadata of the network registered to the owner
 - 'totalNetworks' -> int
   Number of registered networks, maintained in lock-step with insertions

# Networks
Contract stores exactly one record per owner for the whole lifetime of the
registry. The record key doubles as the authorization subject: the stored
Owner field always equals the key's <owner> part.
*/

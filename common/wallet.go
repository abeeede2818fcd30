package common

import "github.com/nspcc-dev/neo-go/pkg/interop/util"

// WalletToScriptHash extracts the 20-byte script hash from a 25-byte
// V2 format wallet address (version byte + hash + 4 checksum bytes).
func WalletToScriptHash(wallet []byte) []byte {
	return wallet[1 : len(wallet)-4]
}

// BytesEqual compares two slices of bytes by wrapping them into strings,
// which is necessary with new util.Equals interop behaviour, see neo-go#1176.
func BytesEqual(a []byte, b []byte) bool {
	return util.Equals(string(a), string(b))
}

// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/pkg/errors"

	"github.com/cgMuro/hacking-blockchain/util"
)

// PayToPubKeyHashScript creates a new script to pay a transaction output to
// the passed 20-byte pubkey hash. This is the standard locking template:
//
//	OP_DUP OP_HASH160 <pubkey hash> OP_EQUALVERIFY OP_CHECKSIG
//
// Spending it requires revealing a public key whose hash160 matches, plus a
// valid signature under that key.
func PayToPubKeyHashScript(pubKeyHash []byte) ([]byte, error) {
	if len(pubKeyHash) != 20 {
		return nil, errors.Errorf("pubkey hash must be 20 bytes, got %d",
			len(pubKeyHash))
	}
	return NewScriptBuilder().
		AddOp(OpDup).
		AddOp(OpHash160).
		AddData(pubKeyHash).
		AddOp(OpEqualVerify).
		AddOp(OpCheckSig).
		Script()
}

// PayToAddrScript creates a new script to pay a transaction output to the
// specified address.
func PayToAddrScript(addr *util.AddressPubKeyHash) ([]byte, error) {
	return PayToPubKeyHashScript(addr.Hash160())
}

// IsPayToPubKeyHash returns whether the passed script is a standard
// pay-to-pubkey-hash script.
func IsPayToPubKeyHash(script []byte) bool {
	return len(script) == 25 &&
		script[0] == OpDup &&
		script[1] == OpHash160 &&
		script[2] == 20 &&
		script[23] == OpEqualVerify &&
		script[24] == OpCheckSig
}

// ExtractPubKeyHash returns the 20-byte pubkey hash a standard
// pay-to-pubkey-hash script pays to.
func ExtractPubKeyHash(script []byte) ([]byte, error) {
	if !IsPayToPubKeyHash(script) {
		return nil, errors.New("script is not pay-to-pubkey-hash")
	}
	return script[3:23], nil
}

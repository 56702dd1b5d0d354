// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"

	"github.com/cgMuro/hacking-blockchain/ecc"
	"github.com/cgMuro/hacking-blockchain/util"
	"github.com/cgMuro/hacking-blockchain/wire"
)

// CalcSignatureHash computes the hash a signature for input idx of the given
// transaction commits to: the double-SHA256 of the transaction serialized
// with that input's previous locking script substituted for its signature
// script, empty scripts on every other input, and the hash type appended.
func CalcSignatureHash(tx *wire.MsgTx, idx int, hashType wire.SigHashType) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, tx.SerializeSize()+4))
	err := tx.SerializeSignaturePreimage(buf, idx, hashType)
	if err != nil {
		return nil, err
	}
	return util.DoubleHashB(buf.Bytes()), nil
}

// RawTxInSignature returns the serialized ECDSA signature for the input idx
// of the given transaction, with hashType appended to it.
func RawTxInSignature(tx *wire.MsgTx, idx int, hashType wire.SigHashType,
	key *ecc.PrivateKey) ([]byte, error) {

	hash, err := CalcSignatureHash(tx, idx, hashType)
	if err != nil {
		return nil, err
	}
	signature, err := key.Sign(hash)
	if err != nil {
		return nil, err
	}

	return append(signature.Serialize(), byte(hashType)), nil
}

// SignatureScript creates an input signature script for tx to spend coins
// sent from a previous output to the owner of privKey. tx must include all
// transaction inputs and outputs, however txin scripts are allowed to be
// filled or empty. The returned script is calculated to be used as the
// idx'th txin signature script for tx: a push of the DER signature with the
// hash type byte appended, followed by a push of the serialized public key.
// compress controls whether the public key is serialized in compressed or
// uncompressed SEC format; it must match the format hashed into the payment
// address, or the script validation will fail.
func SignatureScript(tx *wire.MsgTx, idx int, hashType wire.SigHashType,
	privKey *ecc.PrivateKey, compress bool) ([]byte, error) {

	sig, err := RawTxInSignature(tx, idx, hashType, privKey)
	if err != nil {
		return nil, err
	}

	pk := privKey.PubKey()
	var pkData []byte
	if compress {
		pkData = pk.SerializeCompressed()
	} else {
		pkData = pk.SerializeUncompressed()
	}

	return NewScriptBuilder().AddData(sig).AddData(pkData).Script()
}

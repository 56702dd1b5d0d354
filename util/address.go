// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/cgMuro/hacking-blockchain/util/base58"
)

// Network identifies which network an address belongs to. The network only
// affects the version byte prepended during address encoding.
type Network byte

// Address version bytes per network.
const (
	// MainNet is the main network.
	MainNet Network = 0x00

	// TestNet is the test network.
	TestNet Network = 0x6f
)

func (n Network) String() string {
	switch n {
	case MainNet:
		return "mainnet"
	case TestNet:
		return "testnet"
	}
	return "unknown network"
}

// ripemd160Size is the size of the hash160 digest an address commits to.
const ripemd160Size = 20

// ErrChecksumMismatch describes an error where decoding failed due to a bad
// checksum.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// AddressPubKeyHash is a pay-to-pubkey-hash address: the hash160 of a public
// key plus a network version byte. It is derived one-way from the public key
// and is not reversible to it.
type AddressPubKeyHash struct {
	hash [ripemd160Size]byte
	net  Network
}

// NewAddressPubKeyHash returns an address for the passed 20-byte pubkey
// hash on the given network.
func NewAddressPubKeyHash(pkHash []byte, net Network) (*AddressPubKeyHash, error) {
	if len(pkHash) != ripemd160Size {
		return nil, errors.Errorf("pkHash must be %d bytes, got %d",
			ripemd160Size, len(pkHash))
	}

	addr := &AddressPubKeyHash{net: net}
	copy(addr.hash[:], pkHash)
	return addr, nil
}

// NewAddressPubKeyHashFromPublicKey returns the address for the passed SEC
// serialized public key. The serialization used here (compressed or
// uncompressed) must match the one the spender will reveal in the unlocking
// script, or the hashes will not match.
func NewAddressPubKeyHashFromPublicKey(serializedPubKey []byte, net Network) (*AddressPubKeyHash, error) {
	return NewAddressPubKeyHash(Hash160(serializedPubKey), net)
}

// Hash160 returns the 20-byte pubkey hash the address commits to.
func (a *AddressPubKeyHash) Hash160() []byte {
	return a.hash[:]
}

// Network returns the network the address belongs to.
func (a *AddressPubKeyHash) Network() Network {
	return a.net
}

// EncodeAddress returns the Base58Check string form of the address: the
// version byte and pubkey hash followed by the first four bytes of their
// double-SHA256 as a transcription checksum, all base-58 encoded.
func (a *AddressPubKeyHash) EncodeAddress() string {
	payload := make([]byte, 0, 1+ripemd160Size+base58.ChecksumSize)
	payload = append(payload, byte(a.net))
	payload = append(payload, a.hash[:]...)
	payload = append(payload, checksum(payload)...)
	return base58.Encode(payload)
}

// String returns the encoded address.
func (a *AddressPubKeyHash) String() string {
	return a.EncodeAddress()
}

// DecodeAddress parses a Base58Check address string, verifying its checksum
// and returning the address along with the network recovered from the
// version byte.
func DecodeAddress(addr string) (*AddressPubKeyHash, error) {
	decoded := base58.Decode(addr)
	if len(decoded) != 1+ripemd160Size+base58.ChecksumSize {
		return nil, errors.Errorf("decoded address is %d bytes, want %d",
			len(decoded), 1+ripemd160Size+base58.ChecksumSize)
	}

	payload := decoded[:len(decoded)-base58.ChecksumSize]
	if !bytes.Equal(checksum(payload), decoded[len(decoded)-base58.ChecksumSize:]) {
		return nil, ErrChecksumMismatch
	}

	net := Network(payload[0])
	if net != MainNet && net != TestNet {
		return nil, errors.Errorf("unknown address version byte %#02x", payload[0])
	}

	return NewAddressPubKeyHash(payload[1:], net)
}

// checksum returns the first four bytes of sha256(sha256(input)).
func checksum(input []byte) []byte {
	return DoubleHashB(input)[:base58.ChecksumSize]
}

package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/tyler-smith/go-bip39"

	"github.com/cgMuro/hacking-blockchain/ecc"
	"github.com/cgMuro/hacking-blockchain/util"
	"github.com/cgMuro/hacking-blockchain/util/base58"
)

func main() {
	cfg, err := parseCommandLine()
	if err != nil {
		printErrorAndExit(err, "Failed to parse arguments")
	}

	privateKey, err := resolvePrivateKey(cfg)
	if err != nil {
		printErrorAndExit(err, "Failed to obtain private key")
	}

	mnemonic, err := bip39.NewMnemonic(privateKey.Serialize())
	if err != nil {
		printErrorAndExit(err, "Failed to derive mnemonic")
	}

	network := util.MainNet
	if cfg.TestNet {
		network = util.TestNet
	}

	serializedPubKey := privateKey.PubKey().SerializeCompressed()
	address, err := util.NewAddressPubKeyHashFromPublicKey(serializedPubKey, network)
	if err != nil {
		printErrorAndExit(err, "Failed to derive address")
	}

	fmt.Printf("\nPrivate key (hex):     %x\n", privateKey.Serialize())
	fmt.Printf("Private key (base-58): %s\n", base58.Encode(privateKey.Serialize()))
	fmt.Printf("Mnemonic:              %s\n\n", mnemonic)
	fmt.Printf("Public key:            %s\n", hex.EncodeToString(serializedPubKey))
	fmt.Printf("Address (%s):     %s\n\n", network, address.EncodeAddress())
}

// resolvePrivateKey either restores the key encoded by a BIP39 mnemonic or
// samples a fresh one.
func resolvePrivateKey(cfg *config) (*ecc.PrivateKey, error) {
	if cfg.Mnemonic == "" {
		return ecc.NewPrivateKey()
	}

	entropy, err := bip39.EntropyFromMnemonic(cfg.Mnemonic)
	if err != nil {
		return nil, err
	}
	privateKey, _ := ecc.PrivKeyFromBytes(entropy)
	return privateKey, nil
}

func printErrorAndExit(err error, message string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", message, err)
	os.Exit(1)
}

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/cgMuro/hacking-blockchain/ecc"
	"github.com/cgMuro/hacking-blockchain/txscript"
	"github.com/cgMuro/hacking-blockchain/util"
	"github.com/cgMuro/hacking-blockchain/wire"
)

func main() {
	cfg, err := parseCommandLine()
	if err != nil {
		printErrorAndExit(err, "Failed to parse arguments")
	}

	privateKey, err := parsePrivateKey(cfg.PrivateKey)
	if err != nil {
		printErrorAndExit(err, "Failed to decode private key")
	}

	transaction, err := buildTransaction(cfg, privateKey)
	if err != nil {
		printErrorAndExit(err, "Failed to build transaction")
	}

	err = signTransaction(transaction, privateKey)
	if err != nil {
		printErrorAndExit(err, "Failed to sign transaction")
	}

	serializedTransaction, err := serializeTransaction(transaction)
	if err != nil {
		printErrorAndExit(err, "Failed to serialize transaction")
	}

	fmt.Printf("Signed transaction (hex): %s\n\n", serializedTransaction)
	fmt.Printf("Transaction ID: %s\n", transaction.TxID())
}

func parsePrivateKey(privateKeyHex string) (*ecc.PrivateKey, error) {
	privateKeyBytes, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return nil, err
	}
	privateKey, _ := ecc.PrivKeyFromBytes(privateKeyBytes)
	return privateKey, nil
}

// buildTransaction assembles the unsigned transaction: one input spending
// the previous output, which is assumed to be locked to the signing key's
// compressed public key, plus the destination output and an optional change
// output.
func buildTransaction(cfg *config, privateKey *ecc.PrivateKey) (*wire.MsgTx, error) {
	network := util.MainNet
	if cfg.TestNet {
		network = util.TestNet
	}

	prevTxID, err := wire.NewTxIDFromStr(cfg.PrevTxID)
	if err != nil {
		return nil, err
	}

	sourceAddress, err := util.NewAddressPubKeyHashFromPublicKey(
		privateKey.PubKey().SerializeCompressed(), network)
	if err != nil {
		return nil, err
	}
	prevScriptPubKey, err := txscript.PayToAddrScript(sourceAddress)
	if err != nil {
		return nil, err
	}

	transaction := wire.NewMsgTx(wire.TxVersion)
	prevOut := wire.NewOutPoint(prevTxID, cfg.PrevIndex)
	transaction.AddTxIn(wire.NewTxIn(prevOut, prevScriptPubKey))

	err = addOutput(transaction, cfg.ToAddress, cfg.Amount)
	if err != nil {
		return nil, err
	}
	if cfg.ChangeAddress != "" {
		err = addOutput(transaction, cfg.ChangeAddress, cfg.ChangeAmount)
		if err != nil {
			return nil, err
		}
	}

	return transaction, nil
}

func addOutput(transaction *wire.MsgTx, address string, amount uint64) error {
	addr, err := util.DecodeAddress(address)
	if err != nil {
		return err
	}
	scriptPubKey, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return err
	}
	transaction.AddTxOut(wire.NewTxOut(amount, scriptPubKey))
	return nil
}

func signTransaction(transaction *wire.MsgTx, privateKey *ecc.PrivateKey) error {
	for i, transactionInput := range transaction.TxIn {
		signatureScript, err := txscript.SignatureScript(transaction, i,
			wire.SigHashAll, privateKey, true)
		if err != nil {
			return err
		}
		transactionInput.SignatureScript = signatureScript
	}
	return nil
}

func serializeTransaction(transaction *wire.MsgTx) (string, error) {
	buf := bytes.NewBuffer(make([]byte, 0, transaction.SerializeSize()))
	err := transaction.Serialize(buf)
	serializedTransaction := hex.EncodeToString(buf.Bytes())
	return serializedTransaction, err
}

func printErrorAndExit(err error, message string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", message, err)
	os.Exit(1)
}

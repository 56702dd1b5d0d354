// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/cgMuro/hacking-blockchain/util"
)

// SigHashType represents the hash type bits committed to at the end of a
// signature hash preimage and appended as the final byte of a signature
// script push.
type SigHashType uint32

// SigHashAll is the only hash type produced here: the signature commits to
// every input and output of the transaction.
const SigHashAll SigHashType = 0x1

const (
	// TxVersion is the current transaction version.
	TxVersion uint32 = 1

	// MaxTxInSequenceNum is the maximum sequence number a transaction
	// input can be.
	MaxTxInSequenceNum uint32 = 0xffffffff

	// maxScriptAllowed is a sanity cap on the size of a script read back
	// from the wire.
	maxScriptAllowed = 10000

	// maxTxPerMessage is a sanity cap on the input and output counts read
	// back from the wire.
	maxTxPerMessage = 1 << 16
)

// OutPoint defines a data type that is used to track previous transaction
// outputs.
type OutPoint struct {
	TxID  TxID
	Index uint32
}

// NewOutPoint returns a new transaction outpoint with the provided values.
func NewOutPoint(txID *TxID, index uint32) *OutPoint {
	return &OutPoint{
		TxID:  *txID,
		Index: index,
	}
}

// TxIn defines a transaction input: a reference to a previous output
// together with the unlocking script that satisfies its locking condition.
//
// PrevScriptPubKey is the locking script of the referenced output,
// reconstructed from the payee's pubkey hash as the canonical
// pay-to-pubkey-hash template. It is never serialized in the final
// transaction; it is only substituted in place of the signature script while
// computing the signature hash for this input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
	PrevScriptPubKey []byte
}

// NewTxIn returns a new transaction input with the provided previous
// outpoint and implied locking script, and the maximum sequence number.
func NewTxIn(prevOut *OutPoint, prevScriptPubKey []byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		Sequence:         MaxTxInSequenceNum,
		PrevScriptPubKey: prevScriptPubKey,
	}
}

// TxOut defines a transaction output: an amount in satoshis locked by a
// script.
type TxOut struct {
	Value        uint64
	ScriptPubKey []byte
}

// NewTxOut returns a new transaction output with the provided value and
// locking script.
func NewTxOut(value uint64, scriptPubKey []byte) *TxOut {
	return &TxOut{
		Value:        value,
		ScriptPubKey: scriptPubKey,
	}
}

// MsgTx implements the ledger transaction wire format: version, inputs,
// outputs and locktime. All integers are little endian, counts use the
// varint scheme and previous transaction ids are stored byte-reversed
// relative to their display form.
type MsgTx struct {
	Version  uint32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// NewMsgTx returns a transaction with the given version and no inputs or
// outputs.
func NewMsgTx(version uint32) *MsgTx {
	return &MsgTx{Version: version}
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// Serialize writes the transaction in its final, broadcastable form: every
// input carries its real signature script and no hash type trailer is
// appended.
func (msg *MsgTx) Serialize(w io.Writer) error {
	return msg.serialize(w, noSigIndex, 0)
}

// SerializeSignaturePreimage writes the signature hash preimage for the
// input at sigIndex: that input's signature script is replaced with the
// locking script of the output it spends, every other input gets an empty
// script, and the 4-byte hash type is appended. The resulting bytes are
// exactly what the signature for that input commits to.
func (msg *MsgTx) SerializeSignaturePreimage(w io.Writer, sigIndex int, hashType SigHashType) error {
	if sigIndex < 0 || sigIndex >= len(msg.TxIn) {
		return errors.Errorf("signature index %d is out of range for a "+
			"transaction with %d inputs", sigIndex, len(msg.TxIn))
	}
	return msg.serialize(w, sigIndex, hashType)
}

// noSigIndex selects the final serialization in serialize.
const noSigIndex = -1

func (msg *MsgTx) serialize(w io.Writer, sigIndex int, hashType SigHashType) error {
	err := binarySerializer.PutUint32(w, msg.Version)
	if err != nil {
		return err
	}

	err = WriteVarInt(w, uint64(len(msg.TxIn)))
	if err != nil {
		return err
	}
	for i, ti := range msg.TxIn {
		script := ti.SignatureScript
		if sigIndex != noSigIndex {
			// While signing, the input being signed commits to the
			// locking script it spends and every other input
			// commits to an empty script.
			if i == sigIndex {
				script = ti.PrevScriptPubKey
			} else {
				script = nil
			}
		}
		err = writeTxIn(w, ti, script)
		if err != nil {
			return err
		}
	}

	err = WriteVarInt(w, uint64(len(msg.TxOut)))
	if err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		err = writeTxOut(w, to)
		if err != nil {
			return err
		}
	}

	err = binarySerializer.PutUint32(w, msg.LockTime)
	if err != nil {
		return err
	}

	if sigIndex != noSigIndex {
		err = binarySerializer.PutUint32(w, uint32(hashType))
		if err != nil {
			return err
		}
	}
	return nil
}

// Deserialize decodes a transaction from r in its final wire form into the
// receiver. PrevScriptPubKey fields are not part of the wire format and are
// left nil.
func (msg *MsgTx) Deserialize(r io.Reader) error {
	version, err := binarySerializer.Uint32(r)
	if err != nil {
		return err
	}
	msg.Version = version

	count, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	if count > maxTxPerMessage {
		return errors.Errorf("too many input transactions to fit into "+
			"max message size [count %d, max %d]", count, maxTxPerMessage)
	}
	msg.TxIn = make([]*TxIn, 0, count)
	for i := uint64(0); i < count; i++ {
		ti, err := readTxIn(r)
		if err != nil {
			return err
		}
		msg.TxIn = append(msg.TxIn, ti)
	}

	count, err = ReadVarInt(r)
	if err != nil {
		return err
	}
	if count > maxTxPerMessage {
		return errors.Errorf("too many output transactions to fit into "+
			"max message size [count %d, max %d]", count, maxTxPerMessage)
	}
	msg.TxOut = make([]*TxOut, 0, count)
	for i := uint64(0); i < count; i++ {
		to, err := readTxOut(r)
		if err != nil {
			return err
		}
		msg.TxOut = append(msg.TxOut, to)
	}

	lockTime, err := binarySerializer.Uint32(r)
	if err != nil {
		return err
	}
	msg.LockTime = lockTime
	return nil
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction in its final form.
func (msg *MsgTx) SerializeSize() int {
	// Version 4 bytes + LockTime 4 bytes + serialized varint size for the
	// number of transaction inputs and outputs.
	n := 8 + VarIntSerializeSize(uint64(len(msg.TxIn))) +
		VarIntSerializeSize(uint64(len(msg.TxOut)))

	for _, ti := range msg.TxIn {
		// Outpoint txid + index 4 bytes + sequence 4 bytes.
		n += HashSize + 8 +
			VarIntSerializeSize(uint64(len(ti.SignatureScript))) +
			len(ti.SignatureScript)
	}
	for _, to := range msg.TxOut {
		n += 8 + VarIntSerializeSize(uint64(len(to.ScriptPubKey))) +
			len(to.ScriptPubKey)
	}
	return n
}

// TxID generates the transaction id: the double-SHA256 of the final
// serialization. The id covers the entire serialization, so filling in
// signature scripts changes it.
func (msg *MsgTx) TxID() TxID {
	buf := bytes.NewBuffer(make([]byte, 0, msg.SerializeSize()))
	// Ignore the error returns since the only way the serialize could
	// fail is by running out of memory, which would cause a run-time
	// panic.
	_ = msg.Serialize(buf)

	var txID TxID
	copy(txID[:], util.DoubleHashB(buf.Bytes()))
	return txID
}

func writeTxIn(w io.Writer, ti *TxIn, script []byte) error {
	_, err := w.Write(ti.PreviousOutPoint.TxID[:])
	if err != nil {
		return errors.WithStack(err)
	}
	err = binarySerializer.PutUint32(w, ti.PreviousOutPoint.Index)
	if err != nil {
		return err
	}
	err = writeVarBytes(w, script)
	if err != nil {
		return err
	}
	return binarySerializer.PutUint32(w, ti.Sequence)
}

func readTxIn(r io.Reader) (*TxIn, error) {
	ti := &TxIn{}
	_, err := io.ReadFull(r, ti.PreviousOutPoint.TxID[:])
	if err != nil {
		return nil, errors.WithStack(err)
	}
	ti.PreviousOutPoint.Index, err = binarySerializer.Uint32(r)
	if err != nil {
		return nil, err
	}
	ti.SignatureScript, err = readVarBytes(r, maxScriptAllowed,
		"transaction input signature script")
	if err != nil {
		return nil, err
	}
	ti.Sequence, err = binarySerializer.Uint32(r)
	if err != nil {
		return nil, err
	}
	return ti, nil
}

func writeTxOut(w io.Writer, to *TxOut) error {
	err := binarySerializer.PutUint64(w, to.Value)
	if err != nil {
		return err
	}
	return writeVarBytes(w, to.ScriptPubKey)
}

func readTxOut(r io.Reader) (*TxOut, error) {
	to := &TxOut{}
	var err error
	to.Value, err = binarySerializer.Uint64(r)
	if err != nil {
		return nil, err
	}
	to.ScriptPubKey, err = readVarBytes(r, maxScriptAllowed,
		"transaction output script")
	if err != nil {
		return nil, err
	}
	return to, nil
}

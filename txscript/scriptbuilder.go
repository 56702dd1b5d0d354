// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/pkg/errors"
)

// maxDirectPushSize is the exclusive upper bound on the data length of a
// direct push, where the opcode byte itself is the length of the data that
// follows. Longer pushes would require the OP_PUSHDATA opcodes, which this
// script subset deliberately does not produce.
const maxDirectPushSize = 75

// ErrScriptDataTooLarge is returned when data to be pushed cannot be
// expressed as a direct push.
var ErrScriptDataTooLarge = errors.Errorf("push length must be less than %d "+
	"bytes", maxDirectPushSize)

// ScriptBuilder provides a facility for building custom scripts as an
// ordered sequence of commands, each either a single-byte opcode or a raw
// data push.
//
// For example, the following would build a standard pay-to-pubkey-hash
// script:
//
//	builder := NewScriptBuilder()
//	builder.AddOp(OpDup).AddOp(OpHash160).AddData(pubKeyHash)
//	builder.AddOp(OpEqualVerify).AddOp(OpCheckSig)
//	script, err := builder.Script()
type ScriptBuilder struct {
	script []byte
	err    error
}

// NewScriptBuilder returns a new instance of a script builder.
func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{}
}

// AddOp pushes the passed opcode to the end of the script. The script will
// not be modified if pushing the opcode would cause the script to exceed the
// builder's constraints.
func (b *ScriptBuilder) AddOp(opcode byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	b.script = append(b.script, opcode)
	return b
}

// AddData pushes the passed data to the end of the script as a direct push:
// one length byte followed by the raw bytes. Data of maxDirectPushSize bytes
// or more cannot be expressed this way and makes the builder fail; the error
// is reported by Script.
func (b *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	if len(data) >= maxDirectPushSize {
		b.err = errors.Wrapf(ErrScriptDataTooLarge, "adding %d bytes of data",
			len(data))
		return b
	}

	b.script = append(b.script, byte(len(data)))
	b.script = append(b.script, data...)
	return b
}

// Reset resets the script so it has no content.
func (b *ScriptBuilder) Reset() *ScriptBuilder {
	b.script = b.script[0:0]
	b.err = nil
	return b
}

// Script returns the currently built script. When any errors occurred while
// building the script, the script will be returned up the point of the first
// error along with the error.
func (b *ScriptBuilder) Script() ([]byte, error) {
	return b.script, b.err
}

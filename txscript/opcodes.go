// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// These constants are based on the official opcode values of the script
// language. Only the opcodes needed to express the standard
// pay-to-pubkey-hash template are named; direct data pushes encode their own
// length as the opcode byte.
const (
	Op0           byte = 0x00
	OpDup         byte = 0x76 // 118
	OpEqualVerify byte = 0x88 // 136
	OpHash160     byte = 0xa9 // 169
	OpCheckSig    byte = 0xac // 172
)

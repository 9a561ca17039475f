// Package isa models the instruction description of the Motorola 6800 and
// 6809 processors.
//
// A description is a list of declarations, one per mnemonic, each naming an
// operand-encoding kind and one or two base opcodes. The Parser reads the
// textual description, and Expand turns every declaration into the set of
// addressing modes the instruction supports on a given architecture, together
// with the opcode value selecting each mode.
package isa

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package decode compiles instruction bindings into a byte indexed decode
// automaton.
package decode

import (
	"iter"

	"github.com/ezrec/isagen/isa"
)

// NodeKind is the kind of a decode table slot.
type NodeKind int

//go:generate go tool stringer -linecomment -type=NodeKind
const (
	NODE_EMPTY = NodeKind(0) // empty
	NODE_LEAF  = NodeKind(1) // leaf
	NODE_TABLE = NodeKind(2) // table
)

// Node is a slot of a decode table.
type Node struct {
	Kind     NodeKind
	Mnemonic string   // NODE_LEAF: instruction mnemonic.
	Mode     isa.Mode // NODE_LEAF: addressing mode.
	Table    int      // NODE_TABLE: index of the prefix table.
}

// Leaf returns a leaf node.
func Leaf(mnemonic string, mode isa.Mode) Node {
	return Node{Kind: NODE_LEAF, Mnemonic: mnemonic, Mode: mode}
}

// Table is a 256 entry decode table, indexed by opcode byte.
type Table [256]Node

// Collision is an opcode claimed by two bindings.
type Collision struct {
	Opcode  uint16
	Kept    Node // Leaf left in the matrix.
	Dropped Node // Leaf that was displaced or discarded.
}

// Matrix is a two level decode automaton. Tables[0] is the root; the other
// tables are prefix pages reached from a NODE_TABLE slot of the root.
type Matrix struct {
	Tables     []Table
	Collisions []Collision
}

// Root returns the root table.
func (matrix *Matrix) Root() *Table {
	return &matrix.Tables[0]
}

// Table returns the table at index.
func (matrix *Matrix) Table(index int) *Table {
	return &matrix.Tables[index]
}

// Lookup decodes the opcode at the start of code. It returns the leaf, the
// number of opcode bytes consumed, and true if a leaf was found.
func (matrix *Matrix) Lookup(code []byte) (node Node, length int, ok bool) {
	table := matrix.Root()
	for _, b := range code {
		node = table[b]
		length++
		switch node.Kind {
		case NODE_LEAF:
			ok = true
			return
		case NODE_TABLE:
			table = matrix.Table(node.Table)
		default:
			return
		}
	}

	node = Node{}
	return
}

// Leaves iterates over all leaves by opcode value, in byte order.
func (matrix *Matrix) Leaves() iter.Seq2[uint16, Node] {
	return func(yield func(uint16, Node) bool) {
		for hi, node := range matrix.Root() {
			switch node.Kind {
			case NODE_LEAF:
				if !yield(uint16(hi), node) {
					return
				}
			case NODE_TABLE:
				for lo, leaf := range matrix.Table(node.Table) {
					if leaf.Kind != NODE_LEAF {
						continue
					}
					if !yield(uint16(hi<<8|lo), leaf) {
						return
					}
				}
			}
		}
	}
}

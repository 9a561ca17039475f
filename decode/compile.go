package decode

import (
	"log"

	"github.com/ezrec/isagen/catalog"
	"github.com/ezrec/isagen/isa"
)

// Options control matrix compilation.
type Options struct {
	Verbose bool // If set, logs opcode collisions.
}

// compiler is the state of a matrix compilation.
type compiler struct {
	Options
	matrix *Matrix
}

// slot returns the table and index an opcode decodes through, adding a
// prefix table to the root if needed.
func (comp *compiler) slot(opcode uint16) (table int, index int, err error) {
	if opcode <= 0xff {
		index = int(opcode)
		return
	}

	hi := opcode >> 8
	prefix := comp.matrix.Tables[0][hi]
	switch prefix.Kind {
	case NODE_EMPTY:
		comp.matrix.Tables = append(comp.matrix.Tables, Table{})
		table = len(comp.matrix.Tables) - 1
		comp.matrix.Tables[0][hi] = Node{Kind: NODE_TABLE, Table: table}
	case NODE_TABLE:
		table = prefix.Table
	default:
		err = ErrPrefixConflict
		return
	}

	index = int(opcode & 0xff)
	return
}

// longForm is true when mnemonic is the long branch synthesized from the
// relative branch held by node.
func longForm(mnemonic string, mode isa.Mode, node Node) bool {
	return mode == isa.MODE_REL16 && node.Mode == isa.MODE_REL16 &&
		mnemonic == isa.LONG_BRANCH_PREFIX+node.Mnemonic
}

// insert places a single mode of a mnemonic.
func (comp *compiler) insert(mnemonic string, mode isa.Mode, opcode uint16) (err error) {
	defer func() {
		if err != nil {
			err = &ErrConflict{Mnemonic: mnemonic, Mode: mode, Opcode: opcode, Err: err}
		}
	}()

	table, index, err := comp.slot(opcode)
	if err != nil {
		return
	}

	leaf := Leaf(mnemonic, mode)
	node := &comp.matrix.Tables[table][index]

	switch node.Kind {
	case NODE_EMPTY:
		*node = leaf
	case NODE_TABLE:
		err = ErrPrefixConflict
	case NODE_LEAF:
		collision := Collision{Opcode: opcode, Kept: *node, Dropped: leaf}
		if longForm(mnemonic, mode, *node) {
			collision.Kept, collision.Dropped = leaf, *node
			*node = leaf
		}
		comp.matrix.Collisions = append(comp.matrix.Collisions, collision)
		if comp.Verbose {
			log.Printf("%#x: %v %v kept, %v %v dropped", opcode,
				collision.Kept.Mnemonic, collision.Kept.Mode,
				collision.Dropped.Mnemonic, collision.Dropped.Mode)
		}
	}

	return
}

// Compile folds the bindings of the entries into a decode matrix.
//
// Entries are visited in the order given, each entry's modes in reverse
// canonical order. The first leaf placed at an opcode keeps it, except that
// a long branch replaces the 16-bit form of the branch it was made from.
func Compile(entries []catalog.Entry, opts Options) (matrix *Matrix, err error) {
	comp := &compiler{
		Options: opts,
		matrix:  &Matrix{Tables: make([]Table, 1)},
	}

	for _, entry := range entries {
		for mode, opcode := range entry.Binding.Backward() {
			err = comp.insert(entry.Mnemonic, mode, opcode)
			if err != nil {
				return
			}
		}
	}

	matrix = comp.matrix
	return
}

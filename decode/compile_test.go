package decode

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/isagen/catalog"
	"github.com/ezrec/isagen/isa"
)

func TestCompileNop(t *testing.T) {
	assert := assert.New(t)

	parser := &isa.Parser{}
	desc, err := parser.Parse(strings.NewReader("@6800\nnop 0 12\n@6809\nnop 0 12\n@end\n"))
	assert.NoError(err)

	cat, err := catalog.Build(desc, catalog.Options{})
	assert.NoError(err)

	for arch := range isa.Archs() {
		matrix, err := Compile(cat.Entries(arch), Options{})
		assert.NoError(err)
		assert.Equal(1, len(matrix.Tables))
		assert.Equal(Leaf("nop", isa.MODE_NONE), matrix.Root()[0x12])
		assert.Equal(0, len(matrix.Collisions))
	}
}

func TestCompileBoundary(t *testing.T) {
	assert := assert.New(t)

	matrix, err := Compile([]catalog.Entry{
		{Mnemonic: "page", Binding: isa.Binding{isa.MODE_IMM16: 0x100}},
		{Mnemonic: "top", Binding: isa.Binding{isa.MODE_NONE: 0xff}},
	}, Options{})
	assert.NoError(err)

	assert.Equal(2, len(matrix.Tables))
	assert.Equal(Node{Kind: NODE_TABLE, Table: 1}, matrix.Root()[0x01])
	assert.Equal(Leaf("page", isa.MODE_IMM16), matrix.Table(1)[0x00])
	assert.Equal(Leaf("top", isa.MODE_NONE), matrix.Root()[0xff])

	node, length, ok := matrix.Lookup([]byte{0x01, 0x00, 0x42})
	assert.True(ok)
	assert.Equal(2, length)
	assert.Equal("page", node.Mnemonic)

	node, length, ok = matrix.Lookup([]byte{0xff})
	assert.True(ok)
	assert.Equal(1, length)
	assert.Equal("top", node.Mnemonic)

	_, _, ok = matrix.Lookup([]byte{0x01})
	assert.False(ok)

	_, _, ok = matrix.Lookup([]byte{0x01, 0x01})
	assert.False(ok)

	_, _, ok = matrix.Lookup([]byte{0x00})
	assert.False(ok)
}

func TestCompileSharedPrefix(t *testing.T) {
	assert := assert.New(t)

	matrix, err := Compile([]catalog.Entry{
		{Mnemonic: "cmpd", Binding: isa.Binding{isa.MODE_IMM16: 0x1083, isa.MODE_DIRECT: 0x1093}},
		{Mnemonic: "swi3", Binding: isa.Binding{isa.MODE_NONE: 0x113f}},
		{Mnemonic: "swi2", Binding: isa.Binding{isa.MODE_NONE: 0x103f}},
	}, Options{})
	assert.NoError(err)

	// One table per distinct prefix byte, in order of first use.
	assert.Equal(3, len(matrix.Tables))
	assert.Equal(1, matrix.Root()[0x10].Table)
	assert.Equal(2, matrix.Root()[0x11].Table)

	var opcodes []uint16
	for opcode := range matrix.Leaves() {
		opcodes = append(opcodes, opcode)
	}
	assert.Equal([]uint16{0x103f, 0x1083, 0x1093, 0x113f}, opcodes)
}

func TestCompileCollision(t *testing.T) {
	assert := assert.New(t)

	matrix, err := Compile([]catalog.Entry{
		{Mnemonic: "aaa", Binding: isa.Binding{isa.MODE_NONE: 0x10}},
		{Mnemonic: "bbb", Binding: isa.Binding{isa.MODE_NONE: 0x10}},
	}, Options{Verbose: true})
	assert.NoError(err)

	assert.Equal(Leaf("aaa", isa.MODE_NONE), matrix.Root()[0x10])
	assert.Equal([]Collision{
		{Opcode: 0x10, Kept: Leaf("aaa", isa.MODE_NONE), Dropped: Leaf("bbb", isa.MODE_NONE)},
	}, matrix.Collisions)
}

func TestCompileModeOrder(t *testing.T) {
	assert := assert.New(t)

	// Later modes are placed first, so they keep a shared opcode.
	matrix, err := Compile([]catalog.Entry{
		{Mnemonic: "odd", Binding: isa.Binding{isa.MODE_DIRECT: 0x42, isa.MODE_INDEXED: 0x42}},
	}, Options{})
	assert.NoError(err)

	assert.Equal(Leaf("odd", isa.MODE_INDEXED), matrix.Root()[0x42])
	assert.Equal(1, len(matrix.Collisions))
}

func TestCompileLongBranch(t *testing.T) {
	assert := assert.New(t)

	matrix, err := Compile([]catalog.Entry{
		{Mnemonic: "bra", Binding: isa.Binding{isa.MODE_REL8: 0x20, isa.MODE_REL16: 0x16}},
		{Mnemonic: "lbra", Binding: isa.Binding{isa.MODE_REL16: 0x16}},
		{Mnemonic: "lbrn", Binding: isa.Binding{isa.MODE_REL16: 0x1021}},
		{Mnemonic: "zzz", Binding: isa.Binding{isa.MODE_NONE: 0x16}},
	}, Options{})
	assert.NoError(err)

	assert.Equal(Leaf("bra", isa.MODE_REL8), matrix.Root()[0x20])
	assert.Equal(Leaf("lbra", isa.MODE_REL16), matrix.Root()[0x16])
	assert.Equal(Leaf("lbrn", isa.MODE_REL16), matrix.Table(matrix.Root()[0x10].Table)[0x21])

	assert.Equal([]Collision{
		{Opcode: 0x16, Kept: Leaf("lbra", isa.MODE_REL16), Dropped: Leaf("bra", isa.MODE_REL16)},
		{Opcode: 0x16, Kept: Leaf("lbra", isa.MODE_REL16), Dropped: Leaf("zzz", isa.MODE_NONE)},
	}, matrix.Collisions)
}

func TestCompileLongBranchDeclared(t *testing.T) {
	assert := assert.New(t)

	// A declared branch whose name starts with the prefix does not take
	// over the long form made from it.
	matrix, err := Compile([]catalog.Entry{
		{Mnemonic: "lloop", Binding: isa.Binding{isa.MODE_REL16: 0x1020}},
		{Mnemonic: "loop", Binding: isa.Binding{isa.MODE_REL8: 0x20, isa.MODE_REL16: 0x1020}},
	}, Options{})
	assert.NoError(err)

	assert.Equal(Leaf("lloop", isa.MODE_REL16), matrix.Table(matrix.Root()[0x10].Table)[0x20])
	assert.Equal(Leaf("loop", isa.MODE_REL8), matrix.Root()[0x20])
	assert.Equal([]Collision{
		{Opcode: 0x1020, Kept: Leaf("lloop", isa.MODE_REL16), Dropped: Leaf("loop", isa.MODE_REL16)},
	}, matrix.Collisions)

	// Other mnemonics starting with the prefix are ordinary collisions.
	matrix, err = Compile([]catalog.Entry{
		{Mnemonic: "aaa", Binding: isa.Binding{isa.MODE_NONE: 0x12}},
		{Mnemonic: "lda", Binding: isa.Binding{isa.MODE_NONE: 0x12}},
	}, Options{})
	assert.NoError(err)
	assert.Equal(Leaf("aaa", isa.MODE_NONE), matrix.Root()[0x12])
}

func TestCompilePrefixConflict(t *testing.T) {
	assert := assert.New(t)

	table := [][]catalog.Entry{
		{
			{Mnemonic: "a", Binding: isa.Binding{isa.MODE_NONE: 0x10}},
			{Mnemonic: "b", Binding: isa.Binding{isa.MODE_IMM16: 0x1083}},
		},
		{
			{Mnemonic: "a", Binding: isa.Binding{isa.MODE_IMM16: 0x1083}},
			{Mnemonic: "b", Binding: isa.Binding{isa.MODE_NONE: 0x10}},
		},
	}

	for n, entries := range table {
		_, err := Compile(entries, Options{})
		assert.ErrorIs(err, ErrPrefixConflict, n)

		var conflict *ErrConflict
		if assert.ErrorAs(err, &conflict, n) {
			assert.Equal("b", conflict.Mnemonic)
		}
	}
}

func TestCompileRoundTrip(t *testing.T) {
	assert := assert.New(t)

	text := strings.Join([]string{
		"@6809",
		"suba 1 80",
		"ldd 1w cc",
		"cmpd 1w 1083",
		"neg 1t 00",
		"bne 1r 26",
		"bra 1r 20,16",
		"pshs l 34",
		"tfr 2 1f",
		"leax 1x 30",
		"@end",
	}, "\n")

	parser := &isa.Parser{}
	desc, err := parser.Parse(strings.NewReader(text))
	assert.NoError(err)

	cat, err := catalog.Build(desc, catalog.Options{})
	assert.NoError(err)

	matrix, err := Compile(cat.Entries(isa.ARCH_EXTENDED), Options{})
	assert.NoError(err)

	got := map[uint16]Node{}
	for opcode, node := range matrix.Leaves() {
		got[opcode] = node
	}

	// Long forms sort after their short forms, and take over the opcode.
	want := map[uint16]Node{}
	for _, pattern := range cat.Patterns(isa.ARCH_EXTENDED) {
		for mode, opcode := range pattern.Opcodes {
			if opcode == isa.UNDEFINED {
				continue
			}
			want[uint16(opcode)] = Leaf(pattern.Mnemonic, isa.Mode(mode))
		}
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("leaves (-want +got):\n%s", diff)
	}

	for opcode, node := range got {
		code := []byte{byte(opcode)}
		if opcode > 0xff {
			code = []byte{byte(opcode >> 8), byte(opcode)}
		}
		found, length, ok := matrix.Lookup(code)
		assert.True(ok)
		assert.Equal(len(code), length)
		assert.Equal(node, found)
	}
}

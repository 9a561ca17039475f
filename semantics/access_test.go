package semantics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/isagen/isa"
)

func TestAccessInherent(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		mnemonic string
		read     string
		write    string
	}{
		{"asla", "GETA(cpu)", "SETA(cpu, $)"},
		{"clrb", "GETB(cpu)", "SETB(cpu, $)"},
		{"abx", "cpu->x", "cpu->x = $"},
		{"andcc", "cpu->cc", "cpu->cc = $"},
		{"nop", "", ""},
		{"rti", "", ""},
	}

	for _, entry := range table {
		access := AccessFor(isa.ARCH_EXTENDED, entry.mnemonic, isa.MODE_NONE)
		assert.Equal(entry.read, access.Read, entry.mnemonic)
		assert.Equal(entry.write, access.Write, entry.mnemonic)
		assert.Equal(0, access.Width)
		assert.Equal([]string{`DEBUG(cpu, "\t` + entry.mnemonic + `\n");`}, access.Fetch)
	}
}

func TestAccessMemory(t *testing.T) {
	assert := assert.New(t)

	access := AccessFor(isa.ARCH_LEGACY, "ldaa", isa.MODE_INDEXED)
	assert.Equal([]string{
		`DEBUG(cpu, "\tldaa\t");`,
		"address = INDEXED(cpu);",
		`DEBUG(cpu, "$%X,x\n", address - cpu->x);`,
	}, access.Fetch)
	assert.Equal("m6809_read_byte(address)", access.Read)
	assert.Equal("m6809_read_word(address)", access.ReadWord())
	assert.Equal("m6809_write_byte(address, value)", access.WriteOf("value"))
	assert.Equal("m6809_write_word(address, value)", access.WriteWordOf("value"))

	access = AccessFor(isa.ARCH_EXTENDED, "lda", isa.MODE_INDEXED)
	assert.Equal("address = m6809_index(cpu, FETCH(cpu));", access.Fetch[1])
	assert.Equal(1, access.Width)

	access = AccessFor(isa.ARCH_EXTENDED, "lda", isa.MODE_EXTENDED)
	assert.Equal("address = FETCHW(cpu);", access.Fetch[1])
	assert.Equal(2, access.Width)
}

func TestAccessOperands(t *testing.T) {
	assert := assert.New(t)

	access := AccessFor(isa.ARCH_EXTENDED, "lbne", isa.MODE_REL16)
	assert.Equal([]string{
		`DEBUG(cpu, "\tlbne\t");`,
		"value = FETCHW(cpu);",
		"value += cpu->pc;",
		`DEBUG(cpu, "$%X\n", value);`,
	}, access.Fetch)
	assert.Equal("value", access.Read)
	assert.Equal("", access.Write)

	access = AccessFor(isa.ARCH_EXTENDED, "tfr", isa.MODE_REG2)
	assert.Equal(`DEBUG(cpu, "\ttfr\t%s,%s\n", m6809_regname[(op) >> 4], m6809_regname[op & 0xF]);`, access.Fetch[1])

	access = AccessFor(isa.ARCH_EXTENDED, "pulu", isa.MODE_REGLIST)
	assert.Contains(access.Fetch, `		DEBUG(cpu, "%s", m6809_stacku_regname[i]);`)
	assert.Equal(1, access.Width)

	widths := map[isa.Mode]int{}
	for mode := range isa.Modes() {
		widths[mode] = AccessFor(isa.ARCH_EXTENDED, "x", mode).Width
	}
	assert.Equal(map[isa.Mode]int{
		isa.MODE_NONE: 0, isa.MODE_IMM8: 1, isa.MODE_IMM16: 2, isa.MODE_DIRECT: 1,
		isa.MODE_INDEXED: 1, isa.MODE_EXTENDED: 2, isa.MODE_REL8: 1, isa.MODE_REL16: 2,
		isa.MODE_REG2: 1, isa.MODE_REGLIST: 1,
	}, widths)
}

package semantics

import (
	"fmt"
	"strings"

	"github.com/ezrec/isagen/isa"
)

// Access is how the dispatch arm of an instruction reaches its operand.
type Access struct {
	Fetch []string // Operand fetch prelude, one C statement per line.
	Read  string   // C expression reading the operand, if any.
	Write string   // C statement writing the operand, with '$' for the value, if any.
	Width int      // Number of operand bytes consumed by the fetch.
}

// ReadWord returns the 16-bit form of the operand read.
func (access Access) ReadWord() string {
	return strings.ReplaceAll(access.Read, "_byte", "_word")
}

// WriteOf returns the operand write of value.
func (access Access) WriteOf(value string) string {
	return strings.ReplaceAll(access.Write, "$", value)
}

// WriteWordOf returns the 16-bit operand write of value.
func (access Access) WriteWordOf(value string) string {
	return strings.ReplaceAll(access.WriteOf(value), "_byte", "_word")
}

// registerMap is the accessor pair of the accumulators.
var registerMap = map[string][2]string{
	"a": {"GETA(cpu)", "SETA(cpu, $)"},
	"b": {"GETB(cpu)", "SETB(cpu, $)"},
}

// inherentRegister returns the register an inherent mnemonic operates on,
// from its suffix.
func inherentRegister(mnemonic string) (reg string, ok bool) {
	if strings.HasSuffix(mnemonic, "cc") {
		return "cc", true
	}

	if len(mnemonic) == 0 {
		return
	}

	reg = mnemonic[len(mnemonic)-1:]
	ok = strings.Contains("abdusxy", reg)
	return
}

// debugMnemonic is the trace line announcing an instruction with operands.
func debugMnemonic(mnemonic string) string {
	return fmt.Sprintf(`DEBUG(cpu, "\t%s\t");`, mnemonic)
}

// AccessFor returns the operand access of a mnemonic in an addressing mode.
func AccessFor(arch isa.Arch, mnemonic string, mode isa.Mode) (access Access) {
	const (
		readMemory  = "m6809_read_byte(address)"
		writeMemory = "m6809_write_byte(address, $)"
	)

	switch mode {
	case isa.MODE_NONE:
		access.Fetch = []string{fmt.Sprintf(`DEBUG(cpu, "\t%s\n");`, mnemonic)}
		reg, ok := inherentRegister(mnemonic)
		if ok {
			pair, ok := registerMap[reg]
			if !ok {
				pair = [2]string{"cpu->" + reg, "cpu->" + reg + " = $"}
			}
			access.Read, access.Write = pair[0], pair[1]
		}
	case isa.MODE_IMM8:
		access.Fetch = []string{
			debugMnemonic(mnemonic),
			"value = FETCH(cpu);",
			`DEBUG(cpu, "#$%X\n", value);`,
		}
		access.Read = "value"
	case isa.MODE_IMM16:
		access.Fetch = []string{
			debugMnemonic(mnemonic),
			"value = FETCHW(cpu);",
			`DEBUG(cpu, "#$%X\n", value);`,
		}
		access.Read = "value"
	case isa.MODE_REL8:
		access.Fetch = []string{
			debugMnemonic(mnemonic),
			"value = (int8_t)FETCH(cpu);",
			"value += cpu->pc;",
			`DEBUG(cpu, "$%X\n", value);`,
		}
		access.Read = "value"
	case isa.MODE_REL16:
		access.Fetch = []string{
			debugMnemonic(mnemonic),
			"value = FETCHW(cpu);",
			"value += cpu->pc;",
			`DEBUG(cpu, "$%X\n", value);`,
		}
		access.Read = "value"
	case isa.MODE_DIRECT:
		access.Fetch = []string{
			debugMnemonic(mnemonic),
			"address = DIRECT(cpu);",
			`DEBUG(cpu, "<$%X\n", address & 0xFF);`,
		}
		access.Read, access.Write = readMemory, writeMemory
	case isa.MODE_INDEXED:
		if arch == isa.ARCH_LEGACY {
			access.Fetch = []string{
				debugMnemonic(mnemonic),
				"address = INDEXED(cpu);",
				`DEBUG(cpu, "$%X,x\n", address - cpu->x);`,
			}
		} else {
			access.Fetch = []string{
				debugMnemonic(mnemonic),
				"address = m6809_index(cpu, FETCH(cpu));",
				`DEBUG(cpu, "\n");`,
			}
		}
		access.Read, access.Write = readMemory, writeMemory
	case isa.MODE_EXTENDED:
		access.Fetch = []string{
			debugMnemonic(mnemonic),
			"address = FETCHW(cpu);",
			`DEBUG(cpu, "$%X\n", address);`,
		}
		access.Read, access.Write = readMemory, writeMemory
	case isa.MODE_REG2:
		access.Fetch = []string{
			"op = FETCH(cpu);",
			fmt.Sprintf(`DEBUG(cpu, "\t%s\t%%s,%%s\n", m6809_regname[(op) >> 4], m6809_regname[op & 0xF]);`, mnemonic),
		}
	case isa.MODE_REGLIST:
		stack := mnemonic[len(mnemonic)-1:]
		access.Fetch = []string{
			"op = FETCH(cpu);",
			debugMnemonic(mnemonic),
			"for(int i = 0; i < 8; i++)",
			"{",
			"\tif(((op >> i) & 1))",
			"\t{",
			`		if(i && ((op >> (i - 1)) & 1)) DEBUG(cpu, ",");`,
			fmt.Sprintf(`		DEBUG(cpu, "%%s", m6809_stack%s_regname[i]);`, stack),
			"\t}",
			"}",
			`DEBUG(cpu, "\n");`,
		}
	}

	access.Width = widthMap[mode]

	return
}

// widthMap is the number of operand bytes fetched in each mode. Indexed
// postbyte extensions of the 6809 are fetched by m6809_index and not counted.
var widthMap = [isa.MODE_COUNT]int{
	isa.MODE_NONE:     0,
	isa.MODE_IMM8:     1,
	isa.MODE_IMM16:    2,
	isa.MODE_DIRECT:   1,
	isa.MODE_INDEXED:  1,
	isa.MODE_EXTENDED: 2,
	isa.MODE_REL8:     1,
	isa.MODE_REL16:    2,
	isa.MODE_REG2:     1,
	isa.MODE_REGLIST:  1,
}

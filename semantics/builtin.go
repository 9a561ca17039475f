package semantics

import (
	"fmt"
	"strings"

	"github.com/ezrec/isagen/isa"
)

// lines returns a handler with a fixed body.
func lines(body ...string) Handler {
	return func(ins Instruction) ([]string, error) {
		return body, nil
	}
}

// accumulator returns the accumulator letter of an A/B mnemonic, ie "A".
func accumulator(ins Instruction) string {
	return strings.ToUpper(ins.Mnemonic[len(ins.Mnemonic)-1:])
}

// register returns the register letter ending a mnemonic, ie "x".
func register(ins Instruction) string {
	return ins.Mnemonic[len(ins.Mnemonic)-1:]
}

// wide is true for mnemonics operating on a 16-bit register.
func wide(ins Instruction) bool {
	switch register(ins) {
	case "a", "b":
		return false
	}
	return true
}

// read returns the operand read, or ErrOperand.
func read(ins Instruction) (rd string, err error) {
	rd = ins.Access.Read
	if rd == "" {
		err = ErrOperand
	}
	return
}

// modify returns the operand read and write of a read-modify-write mnemonic.
func modify(ins Instruction) (rd string, wr string, err error) {
	rd, err = read(ins)
	if err != nil {
		return
	}
	wr = ins.Access.Write
	if wr == "" {
		err = ErrOperand
	}
	return
}

// zeroFlag sets the Z flag from a register.
func zeroFlag(reg string) []string {
	return []string{
		fmt.Sprintf("if(cpu->%s == 0)", reg),
		"\tcpu->cc |= CC_Z;",
		"else",
		"\tcpu->cc &= ~CC_Z;",
	}
}

// helper is a read-modify-write through an m6809 helper, ie "asl".
func helper(name string, args ...string) Handler {
	return func(ins Instruction) (body []string, err error) {
		rd, _, err := modify(ins)
		if err != nil {
			return
		}
		call := fmt.Sprintf("m6809_%s(cpu, %s)", name, strings.Join(append([]string{rd}, args...), ", "))
		body = []string{ins.Access.WriteOf(call) + ";"}
		return
	}
}

// arithmetic is an accumulator add or subtract, with the carry input.
func arithmetic(name string, carry string) Handler {
	return func(ins Instruction) (body []string, err error) {
		rd, err := read(ins)
		if err != nil {
			return
		}
		r := accumulator(ins)
		body = []string{fmt.Sprintf("SET%s(cpu, m6809_%s(cpu, GET%s(cpu), %s, %s));", r, name, r, rd, carry)}
		return
	}
}

// logical is an accumulator logical operation.
func logical(op string) Handler {
	return func(ins Instruction) (body []string, err error) {
		rd, err := read(ins)
		if err != nil {
			return
		}
		r := accumulator(ins)
		body = []string{
			fmt.Sprintf("value = GET%s(cpu) %s %s;", r, op, rd),
			"m6809_test(cpu, value);",
			"cpu->cc &= ~CC_V;",
			fmt.Sprintf("SET%s(cpu, value);", r),
		}
		return
	}
}

// branch is a conditional branch on the opcode's condition code.
func branch(ins Instruction) (body []string, err error) {
	rd, err := read(ins)
	if err != nil {
		return
	}
	body = []string{
		"if(m6809_check_condition(cpu, op))",
		"{",
		fmt.Sprintf("\tcpu->pc = %s;", rd),
		"}",
	}
	return
}

// subroutine pushes the return address and jumps to target.
func subroutine(target string) []string {
	return []string{
		"PUSH(s, cpu, cpu->pc);",
		"PUSH(s, cpu, cpu->pc >> 8);",
		fmt.Sprintf("cpu->pc = %s;", target),
	}
}

var conditions = []string{
	"hi", "ls", "cc", "cs", "hs", "lo", "ne", "eq",
	"vc", "vs", "pl", "mi", "ge", "lt", "gt", "le",
}

// Builtin returns the semantics of the 6800 and 6809 instruction sets.
func Builtin() (table Table) {
	table = Table{}

	table.add(lines(), "nop", "brn", "lbrn")

	table.add(lines("SETA(cpu, m6809_adc(cpu, GETA(cpu), GETB(cpu), 0));"), "aba")
	table.add(lines("cpu->x += (uint8_t)GETB(cpu);"), "abx")
	table.add(arithmetic("adc", "GETC(cpu)"), "adca", "adcb")
	table.add(arithmetic("adc", "0"), "adda", "addb")
	table.add(arithmetic("sbc", "GETC(cpu)"), "sbca", "sbcb")
	table.add(arithmetic("sbc", "0"), "suba", "subb")
	table.add(lines("SETA(cpu, m6809_sbc(cpu, GETA(cpu), GETB(cpu), 0));"), "sba")
	table.add(lines("m6809_sbc(cpu, GETA(cpu), GETB(cpu), 0);"), "cba")

	for mnemonic, name := range map[string]string{"addd": "addw", "subd": "subw"} {
		table.add(func(ins Instruction) (body []string, err error) {
			_, err = read(ins)
			if err != nil {
				return
			}
			body = []string{fmt.Sprintf("cpu->d = m6809_%s(cpu, cpu->d, %s);", name, ins.Access.ReadWord())}
			return
		}, mnemonic)
	}

	table.add(logical("&"), "anda", "andb")
	table.add(logical("^"), "eora", "eorb")
	table.add(logical("|"), "ora", "orb", "oraa", "orab")
	table.add(lines("cpu->cc &= value;"), "andcc")
	table.add(lines("cpu->cc |= value;"), "orcc")

	table.add(func(ins Instruction) (body []string, err error) {
		rd, err := read(ins)
		if err != nil {
			return
		}
		body = []string{
			fmt.Sprintf("m6809_test(cpu, GET%s(cpu) & %s);", accumulator(ins), rd),
			"cpu->cc &= ~CC_V;",
		}
		return
	}, "bita", "bitb")

	for _, name := range []string{"asl", "asr", "lsr", "rol", "ror", "neg"} {
		table.add(helper(name), name, name+"a", name+"b")
	}
	table.add(helper("inc_dec", "1"), "inc", "inca", "incb")
	table.add(helper("inc_dec", "-1"), "dec", "deca", "decb")

	table.add(func(ins Instruction) (body []string, err error) {
		_, _, err = modify(ins)
		if err != nil {
			return
		}
		body = []string{
			ins.Access.WriteOf("0") + ";",
			"cpu->cc = (cpu->cc & ~(CC_C | CC_V | CC_N)) | CC_Z;",
		}
		return
	}, "clr", "clra", "clrb")

	table.add(func(ins Instruction) (body []string, err error) {
		rd, _, err := modify(ins)
		if err != nil {
			return
		}
		body = []string{
			fmt.Sprintf("value = ~(%s);", rd),
			"m6809_test(cpu, value);",
			"cpu->cc = (cpu->cc & ~CC_V) | CC_C;",
			ins.Access.WriteOf("value") + ";",
		}
		return
	}, "com", "coma", "comb")

	table.add(func(ins Instruction) (body []string, err error) {
		rd, err := read(ins)
		if err != nil {
			return
		}
		body = []string{
			fmt.Sprintf("value = %s;", rd),
			"m6809_test(cpu, value);",
		}
		if ins.Arch == isa.ARCH_LEGACY {
			body = append(body, "cpu->cc &= ~(CC_V | CC_C);")
		} else {
			body = append(body, "cpu->cc &= ~CC_V;")
		}
		return
	}, "tst", "tsta", "tstb")

	table.add(func(ins Instruction) (body []string, err error) {
		rd, err := read(ins)
		if err != nil {
			return
		}
		if wide(ins) {
			body = []string{fmt.Sprintf("m6809_subw(cpu, cpu->%s, %s);", register(ins), ins.Access.ReadWord())}
		} else {
			body = []string{fmt.Sprintf("m6809_sbc(cpu, GET%s(cpu), %s, 0);", accumulator(ins), rd)}
		}
		return
	}, "cmpa", "cmpb", "cmpd", "cmps", "cmpu", "cmpx", "cmpy", "cpx")

	table.add(func(ins Instruction) (body []string, err error) {
		rd, err := read(ins)
		if err != nil {
			return
		}
		if wide(ins) {
			body = []string{
				fmt.Sprintf("value = %s;", ins.Access.ReadWord()),
				"m6809_testw(cpu, value);",
				fmt.Sprintf("cpu->%s = value;", register(ins)),
			}
		} else {
			body = []string{
				fmt.Sprintf("value = %s;", rd),
				"m6809_test(cpu, value);",
				fmt.Sprintf("SET%s(cpu, value);", accumulator(ins)),
			}
		}
		body = append(body, "cpu->cc &= ~CC_V;")
		return
	}, "lda", "ldb", "ldaa", "ldab", "ldd", "lds", "ldu", "ldx", "ldy")

	table.add(func(ins Instruction) (body []string, err error) {
		if ins.Access.Write == "" {
			err = ErrOperand
			return
		}
		if wide(ins) {
			body = []string{
				fmt.Sprintf("value = cpu->%s;", register(ins)),
				"m6809_testw(cpu, value);",
				ins.Access.WriteWordOf("value") + ";",
			}
		} else {
			body = []string{
				fmt.Sprintf("value = GET%s(cpu);", accumulator(ins)),
				"m6809_test(cpu, value);",
				ins.Access.WriteOf("value") + ";",
			}
		}
		body = append(body, "cpu->cc &= ~CC_V;")
		return
	}, "sta", "stb", "staa", "stab", "std", "sts", "stu", "stx", "sty")

	table.add(func(ins Instruction) (body []string, err error) {
		rd, err := read(ins)
		if err != nil {
			return
		}
		body = []string{fmt.Sprintf("cpu->pc = %s;", rd)}
		return
	}, "bra", "lbra")

	table.add(func(ins Instruction) (body []string, err error) {
		rd, err := read(ins)
		if err != nil {
			return
		}
		body = subroutine(rd)
		return
	}, "bsr", "lbsr")

	for _, cond := range conditions {
		table.add(branch, "b"+cond, isa.LONG_BRANCH_PREFIX+"b"+cond)
	}

	table.add(lines("cpu->pc = address;"), "jmp")
	table.add(lines(subroutine("address")...), "jsr")

	for _, flag := range []string{"c", "i", "v"} {
		table.add(lines(fmt.Sprintf("cpu->cc &= ~CC_%s;", strings.ToUpper(flag))), "cl"+flag)
		table.add(lines(fmt.Sprintf("cpu->cc |= CC_%s;", strings.ToUpper(flag))), "se"+flag)
	}

	table.add(lines("cpu->cc = (cpu->cc & value) | CC_E;", "m6809_wait_interrupt(cpu);"), "cwai")
	table.add(lines("m6809_dec_adj(cpu);"), "daa")

	table.add(lines(append([]string{"cpu->x --;"}, zeroFlag("x")...)...), "dex")
	table.add(lines(append([]string{"cpu->x ++;"}, zeroFlag("x")...)...), "inx")
	table.add(lines("cpu->s --;"), "des")
	table.add(lines("cpu->s ++;"), "ins")

	table.add(lines(
		"value = m6809_read_register(cpu, op >> 4);",
		"m6809_write_register(cpu, op >> 4, m6809_read_register(cpu, op & 0xF));",
		"m6809_write_register(cpu, op & 0xF, value);",
	), "exg")
	table.add(lines(
		"value = m6809_read_register(cpu, op >> 4);",
		"if(m6809_regsize(op >> 4) == 1)",
		"\tm6809_test(cpu, value);",
		"else",
		"\tm6809_testw(cpu, value);",
		"cpu->cc &= ~CC_V;",
		"m6809_write_register(cpu, op & 0xF, value);",
	), "tfr")

	for _, reg := range []string{"s", "u", "x", "y"} {
		body := []string{fmt.Sprintf("cpu->%s = address;", reg)}
		if reg == "x" || reg == "y" {
			body = append(body, zeroFlag(reg)...)
		}
		table.add(lines(body...), "lea"+reg)
	}

	table.add(lines(
		"cpu->d = (uint8_t)GETA(cpu) * (uint8_t)GETB(cpu);",
		"if(cpu->d == 0)",
		"\tcpu->cc |= CC_Z;",
		"else",
		"\tcpu->cc &= ~CC_Z;",
		"if((cpu->d & 0x80))",
		"\tcpu->cc |= CC_C;",
		"else",
		"\tcpu->cc &= ~CC_C;",
	), "mul")

	for _, r := range []string{"a", "b"} {
		acc := strings.ToUpper(r)
		table.add(lines(fmt.Sprintf("PUSH(s, cpu, GET%s(cpu));", acc)), "psh"+r)
		table.add(lines(fmt.Sprintf("SET%s(cpu, PULL(s, cpu));", acc)), "pul"+r)
	}
	for _, stack := range []string{"s", "u"} {
		table.add(lines(fmt.Sprintf("PUSHM(%s, cpu, op);", stack)), "psh"+stack)
		table.add(lines(fmt.Sprintf("PULLM(%s, cpu, op);", stack)), "pul"+stack)
	}

	table.add(lines("m6809_return_interrupt(cpu);"), "rti")
	table.add(lines("cpu->pc = PULL(s, cpu) << 8;", "cpu->pc |= PULL(s, cpu);"), "rts")

	table.add(lines(
		"if((GETB(cpu) & 0x80))",
		"{",
		"\tcpu->d |= -0x100;",
		"\tcpu->cc = (cpu->cc & ~CC_Z) | CC_N;",
		"}",
		"else",
		"{",
		"\tcpu->d &= 0xFF;",
		"\tif(cpu->d == 0)",
		"\t\tcpu->cc = (cpu->cc & ~CC_N) | CC_Z;",
		"\telse",
		"\t\tcpu->cc &= ~(CC_Z | CC_N);",
		"}",
	), "sex")

	for _, swi := range []string{"swi", "swi2", "swi3"} {
		table.add(lines(fmt.Sprintf("m6809_do_interrupt(cpu, IV_%s);", strings.ToUpper(swi))), swi)
	}
	table.add(lines("m6809_sync_interrupt(cpu);"), "sync")
	table.add(lines("m6809_wait_interrupt(cpu);"), "wai")

	table.add(lines("value = GETA(cpu);", "m6809_test(cpu, value);", "SETB(cpu, value);", "cpu->cc &= ~CC_V;"), "tab")
	table.add(lines("value = GETB(cpu);", "m6809_test(cpu, value);", "SETA(cpu, value);", "cpu->cc &= ~CC_V;"), "tba")
	table.add(lines("cpu->cc = GETA(cpu) & 0x3F;"), "tap")
	table.add(lines("SETA(cpu, cpu->cc);"), "tpa")
	table.add(lines("cpu->x = cpu->s + 1;"), "tsx")
	table.add(lines("cpu->s = cpu->x - 1;"), "txs")

	return
}

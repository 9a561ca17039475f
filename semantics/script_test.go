package semantics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/isagen/isa"
)

func TestScript(t *testing.T) {
	assert := assert.New(t)

	src := strings.Join([]string{
		"def load_value(ins):",
		"    return ['value = %s;' % ins.read, 'TRACE(\"%s %s %d\");' % (ins.mnemonic, ins.mode, ins.width)]",
		"",
		"def halt(ins):",
		"    return 'HALT(cpu);\\nbreak;'",
		"",
		"def idle(ins):",
		"    return None",
		"",
		"semantics = {",
		"    'lda': load_value,",
		"    'hlt': halt,",
		"    'nop': idle,",
		"}",
	}, "\n")

	script, err := NewScript("test.star", src)
	assert.NoError(err)
	assert.Equal(3, script.Mnemonics())

	body, err := script.Render(NewInstruction(isa.ARCH_EXTENDED, "lda", isa.MODE_EXTENDED))
	assert.NoError(err)
	assert.Equal([]string{
		"value = m6809_read_byte(address);",
		`TRACE("lda extended 2");`,
	}, body)

	body, err = script.Render(NewInstruction(isa.ARCH_EXTENDED, "hlt", isa.MODE_NONE))
	assert.NoError(err)
	assert.Equal([]string{"HALT(cpu);", "break;"}, body)

	body, err = script.Render(NewInstruction(isa.ARCH_EXTENDED, "nop", isa.MODE_NONE))
	assert.NoError(err)
	assert.Nil(body)

	_, err = script.Render(NewInstruction(isa.ARCH_EXTENDED, "ldb", isa.MODE_NONE))
	assert.ErrorIs(err, ErrUnhandledInstruction)

	// Unhandled mnemonics fall through to the next provider.
	body, err = Chain{script, Builtin()}.Render(NewInstruction(isa.ARCH_EXTENDED, "abx", isa.MODE_NONE))
	assert.NoError(err)
	assert.Equal([]string{"cpu->x += (uint8_t)GETB(cpu);"}, body)
}

func TestScriptErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := NewScript("none.star", "x = 1\n")
	assert.ErrorIs(err, ErrScript)

	_, err = NewScript("list.star", "semantics = [1]\n")
	assert.ErrorIs(err, ErrScript)

	_, err = NewScript("key.star", "semantics = {1: 2}\n")
	assert.ErrorIs(err, ErrScript)

	_, err = NewScript("value.star", "semantics = {'nop': 2}\n")
	assert.ErrorIs(err, ErrScript)

	_, err = NewScript("syntax.star", "semantics = {\n")
	assert.Error(err)

	script, err := NewScript("ret.star", "semantics = {'nop': lambda ins: 42, 'clc': lambda ins: [1]}\n")
	assert.NoError(err)

	_, err = script.Render(NewInstruction(isa.ARCH_EXTENDED, "nop", isa.MODE_NONE))
	assert.ErrorIs(err, ErrScript)

	_, err = script.Render(NewInstruction(isa.ARCH_EXTENDED, "clc", isa.MODE_NONE))
	assert.ErrorIs(err, ErrScript)

	script, err = NewScript("fail.star", "semantics = {'nop': lambda ins: fail('no')}\n")
	assert.NoError(err)

	_, err = script.Render(NewInstruction(isa.ARCH_EXTENDED, "nop", isa.MODE_NONE))
	assert.Error(err)
}

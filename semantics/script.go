package semantics

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"
)

// Script is a Provider running Starlark functions.
//
// The script defines a 'semantics' dictionary of mnemonic to function. Each
// function is called with a struct of the instruction (mnemonic, mode, arch,
// read, read_word, write, width) and returns a string, a list of strings, or
// None for an empty body.
type Script struct {
	Name     string
	handlers map[string]starlark.Callable
}

var _ Provider = (*Script)(nil)

// NewScript loads a semantics script. If src is nil, the script is read
// from the file filename.
func NewScript(filename string, src any) (script *Script, err error) {
	thread := &starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"struct": starlark.NewBuiltin("struct", starlarkstruct.Make),
	}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, pred)
	if err != nil {
		return
	}
	globals.Freeze()

	value, ok := globals["semantics"]
	if !ok {
		err = ErrScript
		return
	}

	dict, ok := value.(*starlark.Dict)
	if !ok {
		err = ErrScriptValue(value.Type())
		return
	}

	script = &Script{
		Name:     filename,
		handlers: map[string]starlark.Callable{},
	}

	for _, item := range dict.Items() {
		key, ok := item[0].(starlark.String)
		if !ok {
			err = ErrScriptValue(item[0].Type())
			script = nil
			return
		}
		fn, ok := item[1].(starlark.Callable)
		if !ok {
			err = ErrScriptValue(item[1].Type())
			script = nil
			return
		}
		script.handlers[string(key)] = fn
	}

	return
}

// Mnemonics returns the number of mnemonics the script handles.
func (script *Script) Mnemonics() int {
	return len(script.handlers)
}

// Render implements Provider.
func (script *Script) Render(ins Instruction) (lines []string, err error) {
	defer func() {
		if err != nil {
			err = &ErrInstruction{Arch: ins.Arch, Mnemonic: ins.Mnemonic, Mode: ins.Mode, Err: err}
		}
	}()

	fn, ok := script.handlers[ins.Mnemonic]
	if !ok {
		err = ErrUnhandledInstruction
		return
	}

	arg := starlarkstruct.FromStringDict(starlarkstruct.Default, starlark.StringDict{
		"mnemonic":  starlark.String(ins.Mnemonic),
		"mode":      starlark.String(ins.Mode.String()),
		"arch":      starlark.String(ins.Arch.String()),
		"read":      starlark.String(ins.Access.Read),
		"read_word": starlark.String(ins.Access.ReadWord()),
		"write":     starlark.String(ins.Access.Write),
		"width":     starlark.MakeInt(ins.Access.Width),
	})

	thread := &starlark.Thread{Name: script.Name}
	result, err := starlark.Call(thread, fn, starlark.Tuple{arg}, nil)
	if err != nil {
		return
	}

	switch value := result.(type) {
	case starlark.NoneType:
	case starlark.String:
		lines = strings.Split(string(value), "\n")
	case *starlark.List:
		for n := range value.Len() {
			line, ok := value.Index(n).(starlark.String)
			if !ok {
				err = ErrScriptValue(value.Index(n).Type())
				lines = nil
				return
			}
			lines = append(lines, string(line))
		}
	default:
		err = ErrScriptValue(result.Type())
	}

	return
}

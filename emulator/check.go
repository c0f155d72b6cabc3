package emulator

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/asm16/cpu"
)

// globals returns the machine state as Starlark predeclared values.
func (emu *Emulator) globals() (pred starlark.StringDict, err error) {
	cp := emu.Cpu

	sym := starlark.NewDict(len(emu.Program.Symbol))
	for label, addr := range emu.Program.Symbol {
		err = sym.SetKey(starlark.String(label), starlark.MakeInt(int(addr)))
		if err != nil {
			return
		}
	}
	sym.Freeze()

	mem := starlark.NewBuiltin("mem", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
		var addr int
		err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &addr)
		if err != nil {
			return
		}
		if addr < 0 || addr >= cpu.MEMORY_SIZE {
			err = ErrMemoryRange
			return
		}
		value = starlark.MakeInt(int(cp.Memory[addr]))
		return
	})

	pred = starlark.StringDict{
		"r0":     starlark.MakeInt(int(cp.Register[0])),
		"r1":     starlark.MakeInt(int(cp.Register[1])),
		"r2":     starlark.MakeInt(int(cp.Register[2])),
		"r3":     starlark.MakeInt(int(cp.Register[3])),
		"pc":     starlark.MakeInt(int(cp.Pc)),
		"zero":   starlark.Bool(cp.Zero),
		"halted": starlark.Bool(cp.Halted),
		"ticks":  starlark.MakeInt(cp.Ticks),
		"sym":    sym,
		"mem":    mem,
	}

	return
}

// Check evaluates a Starlark expression against the machine state and
// returns its truth value. The predeclared names are r0-r3, pc, zero,
// halted and ticks, the label table sym, and mem(addr) to read a word.
//
//	r0 == 15 and halted
//	mem(sym["result"]) == 0x1234
func (emu *Emulator) Check(expr string) (ok bool, err error) {
	thread := starlark.Thread{Name: "check"}
	opts := syntax.FileOptions{}

	pred, err := emu.globals()
	if err != nil {
		return
	}

	prog := "rc=(" + expr + ")\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "check", prog, pred)
	if err != nil {
		err = &ErrCheckExpression{Expr: expr, Err: err}
		return
	}

	rc, found := dict["rc"]
	if !found {
		err = &ErrCheckExpression{Expr: expr, Err: ErrCheckResult}
		return
	}

	ok = bool(rc.Truth())
	return
}

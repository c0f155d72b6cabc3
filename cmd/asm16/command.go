package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/prefixtree/v2"
	"github.com/k0kubun/pp/v3"

	"github.com/ezrec/asm16/asm"
	"github.com/ezrec/asm16/emulator"
	"github.com/ezrec/asm16/isa"
	"github.com/ezrec/asm16/translate"
)

// options are the flags common to every command.
type options struct {
	verbose bool
	color   bool
}

type command struct {
	name  string
	usage string
	fn    func(opt *options, args []string, w io.Writer) error
}

var commands = []command{
	{"assemble", "<input.asm> <output.bin>", cmdAssemble},
	{"run", "[-limit N] [-expect EXPR] [-origin ADDR] <input.asm|input.bin>", cmdRun},
	{"dump", "<input.asm>", cmdDump},
}

var commandTree = prefixtree.New[*command]()

func init() {
	for n := range commands {
		commandTree.Add(commands[n].name, &commands[n])
	}
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		w := fs.Output()
		fmt.Fprintf(w, "usage: asm16 [-v] [-color] <command> [args]\n")
		for _, cmd := range commands {
			fmt.Fprintf(w, "  %-9s %v\n", cmd.name, cmd.usage)
		}
		fs.PrintDefaults()
	}
}

// execute parses the global flags and dispatches to a command. Command
// names may be abbreviated to any unique prefix.
func execute(args []string, w io.Writer) (err error) {
	opt := &options{}

	fs := flag.NewFlagSet("asm16", flag.ContinueOnError)
	fs.BoolVar(&opt.verbose, "v", false, "Verbose mode")
	fs.BoolVar(&opt.color, "color", false, "Colorize dump output")
	fs.Usage = usage(fs)

	err = fs.Parse(args)
	if err != nil {
		return
	}

	if fs.NArg() == 0 {
		fs.Usage()
		err = ErrCommandMissing
		return
	}

	name := fs.Arg(0)
	cmd, err := commandTree.FindValue(strings.ToLower(name))
	if err != nil {
		err = &ErrCommand{Name: name, Err: err}
		return
	}

	err = cmd.fn(opt, fs.Args()[1:], w)
	return
}

// parse assembles a source file.
func parse(opt *options, path string) (prog *asm.Program, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	asm := &asm.Assembler{Verbose: opt.verbose}
	prog, err = asm.Parse(bytes.NewReader(data))
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	return
}

func cmdAssemble(opt *options, args []string, w io.Writer) (err error) {
	if len(args) != 2 {
		err = ErrArguments
		return
	}

	input, output := args[0], args[1]

	prog, err := parse(opt, input)
	if err != nil {
		return
	}

	data := prog.Bytes()
	err = os.WriteFile(output, data, 0o644)
	if err != nil {
		return
	}

	_, err = translate.Fprintln(w, "Wrote %v bytes to %v", len(data), output)
	return
}

func cmdRun(opt *options, args []string, w io.Writer) (err error) {
	var limit int
	var expect string
	var origin uint

	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.IntVar(&limit, "limit", 1_000_000, "Maximum ticks, 0 for unlimited")
	fs.StringVar(&expect, "expect", "", "Starlark expression that must hold after the run")
	fs.UintVar(&origin, "origin", uint(isa.DEFAULT_ORIGIN), "Load address of a .bin image")

	err = fs.Parse(args)
	if err != nil {
		return
	}

	if fs.NArg() != 1 {
		err = ErrArguments
		return
	}

	if origin > 0xffff {
		err = ErrOrigin(origin)
		return
	}

	input := fs.Arg(0)

	emu := emulator.NewEmulator()
	emu.Verbose = opt.verbose

	if strings.EqualFold(filepath.Ext(input), ".bin") {
		var data []byte
		data, err = os.ReadFile(input)
		if err != nil {
			return
		}
		err = emu.LoadImage(data, uint16(origin))
		if err != nil {
			err = fmt.Errorf("%v: %w", input, err)
			return
		}
	} else {
		emu.Program, err = parse(opt, input)
		if err != nil {
			return
		}
		err = emu.Reset()
		if err != nil {
			return
		}
	}

	err = emu.Run(limit)
	fmt.Fprint(w, emu.Cpu.String())
	if err != nil {
		err = fmt.Errorf("%v: %w", input, err)
		return
	}

	if len(expect) != 0 {
		var ok bool
		ok, err = emu.Check(expect)
		if err != nil {
			return
		}
		if !ok {
			err = ErrExpect(expect)
			return
		}
	}

	return
}

func cmdDump(opt *options, args []string, w io.Writer) (err error) {
	if len(args) != 1 {
		err = ErrArguments
		return
	}

	prog, err := parse(opt, args[0])
	if err != nil {
		return
	}

	err = prog.Listing(w)
	if err != nil {
		return
	}

	printer := pp.New()
	printer.SetColoringEnabled(opt.color)
	printer.SetOutput(w)

	symbols := make([]string, 0, len(prog.Symbol))
	for _, label := range prog.Labels() {
		symbols = append(symbols, fmt.Sprintf("%04x %v", prog.Symbol[label], label))
	}
	_, err = printer.Println(symbols)

	return
}

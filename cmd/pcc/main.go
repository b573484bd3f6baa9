// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/pcc/cpu"
	"github.com/ezrec/pcc/emulator"
	pccio "github.com/ezrec/pcc/io"
	"github.com/ezrec/pcc/translate"
)

const VERSION = "1.0.0"

const (
	COLOR_ERROR = "\033[1;31m"
	COLOR_RESET = "\033[0m"
)

var f = translate.From

// Exit codes.
const (
	EXIT_OK = iota
	EXIT_INPUT
	EXIT_CREATE
	EXIT_WRITE
	EXIT_ENCODE
	EXIT_RUNTIME
)

var ErrOutputIsInput = errors.New(f("output would replace input"))

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	var runtime *emulator.ErrRuntime
	switch {
	case err == nil:
		return EXIT_OK
	case errors.As(err, &runtime):
		return EXIT_RUNTIME
	case errors.Is(err, cpu.ErrOutputCreate):
		return EXIT_CREATE
	case errors.Is(err, cpu.ErrOutputWrite), errors.Is(err, cpu.ErrValue):
		return EXIT_WRITE
	case errors.Is(err, cpu.ErrMnemonicInvalid),
		errors.Is(err, cpu.ErrRegisterInvalid),
		errors.Is(err, cpu.ErrOperandMissing),
		errors.Is(err, cpu.ErrOperandExtra):
		return EXIT_ENCODE
	}

	return EXIT_INPUT
}

// outputPath replaces the extension of the input path with '.bin'.
func outputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".bin"
}

type options struct {
	input       string
	output      string
	verbose     bool
	noWrite     bool
	version     bool
	listing     bool
	run         bool
	port        uint
	tape        int
	limit       int
	disassemble bool
}

func parseOptions(args []string, stderr io.Writer) (opts options, err error) {
	flags := flag.NewFlagSet("pcc", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		translate.Fprintf(stderr, "Usage: pcc [options] [-i] source.asm\n")
		flags.PrintDefaults()
	}

	flags.StringVar(&opts.input, "i", "", f("8080 assembly source file"))
	flags.StringVar(&opts.output, "o", "", f("Binary image output (default: input with .bin)"))
	flags.BoolVar(&opts.verbose, "v", false, f("Verbose mode"))
	flags.BoolVar(&opts.noWrite, "N", false, f("Do not write the binary image"))
	flags.BoolVar(&opts.version, "version", false, f("Show version"))
	flags.BoolVar(&opts.listing, "l", false, f("Print a listing to stdout"))
	flags.BoolVar(&opts.run, "r", false, f("Run the image in the emulator"))
	flags.UintVar(&opts.port, "port", 1, f("Output port printed as hex while running"))
	flags.IntVar(&opts.tape, "tape", -1, f("Output port written raw to stdout while running"))
	flags.IntVar(&opts.limit, "limit", emulator.DEFAULT_TICK_LIMIT, f("Maximum instructions to run, 0 for no limit"))
	flags.BoolVar(&opts.disassemble, "D", false, f("Disassemble a binary image"))

	err = flags.Parse(args)
	if err != nil {
		return
	}

	switch {
	case flags.NArg() == 1 && len(opts.input) == 0:
		opts.input = flags.Arg(0)
	case flags.NArg() != 0:
		err = errors.New(f("unknown arguments: %v", flags.Args()))
		return
	}

	if opts.port > 255 || opts.tape > 255 {
		err = errors.New(f("ports are 0 to 255"))
		return
	}

	if len(opts.output) == 0 && len(opts.input) != 0 {
		opts.output = outputPath(opts.input)
	}

	return
}

// disassemble lists an existing binary image.
func disassemble(opts options, stdout io.Writer) (err error) {
	image, err := os.ReadFile(opts.input)
	if err != nil {
		err = &cpu.ErrFile{Path: opts.input, Err: errors.Join(cpu.ErrInputOpen, err)}
		return
	}

	err = cpu.Disassemble(stdout, image)
	return
}

// assemble builds the source, and optionally writes, lists and runs it.
func assemble(opts options, stdout io.Writer) (err error) {
	asm := &cpu.Assembler{Verbose: opts.verbose}

	insts, err := asm.ReadFile(opts.input)
	if err != nil {
		return
	}

	if !opts.noWrite {
		if filepath.Clean(opts.output) == filepath.Clean(opts.input) {
			err = &cpu.ErrFile{Path: opts.output, Err: ErrOutputIsInput}
			return
		}
		err = asm.WriteFile(opts.output, insts)
		if err != nil {
			return
		}
	}

	if !opts.listing && !opts.run {
		if opts.noWrite {
			// Still report encoding errors.
			_, err = asm.Assemble(insts)
		}
		return
	}

	prog, err := asm.Assemble(insts)
	if err != nil {
		return
	}

	if opts.listing {
		err = prog.Listing(stdout)
		if err != nil {
			return
		}
	}

	if opts.run {
		emu := emulator.NewEmulator()
		emu.Verbose = opts.verbose
		emu.Program = prog
		emu.SetPort(uint8(opts.port), &pccio.Hex{Output: stdout})
		if opts.tape >= 0 {
			emu.SetPort(uint8(opts.tape), &pccio.Tape{Output: stdout})
		}

		emu.Reset()
		err = emu.Run(opts.limit)
		if err != nil {
			return
		}

		_, err = fmt.Fprint(stdout, emu.String())
	}

	return
}

// pcc runs the command, and returns the exit code.
func pcc(args []string, stdout io.Writer, stderr io.Writer, color bool) (code int) {
	log.SetOutput(stderr)

	report := func(err error) {
		if color {
			log.Printf("%s%v%s", COLOR_ERROR, err, COLOR_RESET)
		} else {
			log.Print(err)
		}
	}

	opts, err := parseOptions(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return EXIT_OK
	}
	if err != nil {
		report(err)
		return EXIT_INPUT
	}

	if opts.version {
		translate.Fprintf(stdout, "pcc %v\n", VERSION)
		return EXIT_OK
	}

	if len(opts.input) == 0 {
		report(errors.New(f("no input file")))
		return EXIT_INPUT
	}

	if opts.disassemble {
		err = disassemble(opts, stdout)
	} else {
		err = assemble(opts, stdout)
	}

	if err != nil {
		report(err)
	}

	return exitCode(err)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("pcc: ")

	color := isTerminal(int(os.Stderr.Fd()))
	if color {
		atexit.Register(func() {
			fmt.Fprint(os.Stderr, COLOR_RESET)
		})
	}

	atexit.Exit(pcc(os.Args[1:], os.Stdout, os.Stderr, color))
}

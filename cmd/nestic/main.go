package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/nevisdale/nescore/internal/cart"
	"github.com/nevisdale/nescore/internal/cpu"
	"github.com/nevisdale/nescore/internal/nes"
	"github.com/nevisdale/nescore/internal/ui"
	"github.com/pkg/profile"
)

type options struct {
	headless bool
	steps    int
	trace    bool
	pc       string
	profile  string
	scale    int
	debug    bool
}

func main() {
	log.SetFlags(log.Lshortfile | log.Lmicroseconds | log.Ldate)

	var opts options
	flag.BoolVar(&opts.headless, "headless", false, "run without a window")
	flag.IntVar(&opts.steps, "steps", 0, "stop after N instructions in headless mode (0: until an error)")
	flag.BoolVar(&opts.trace, "trace", false, "print a nestest-format trace line before every instruction")
	flag.StringVar(&opts.pc, "pc", "", "start at this address instead of the reset vector, e.g. 0xC000")
	flag.StringVar(&opts.profile, "profile", "", "write a cpu or mem profile to the current directory")
	flag.IntVar(&opts.scale, "scale", 2, "window scale")
	flag.BoolVar(&opts.debug, "debug", false, "log resets and interrupts")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <rom.nes>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := start(flag.Arg(0), opts); err != nil {
		log.Fatalf("%v", err)
	}
}

// start runs the emulator under the requested profiler. The profile is
// flushed before start returns.
func start(romPath string, opts options) error {
	switch opts.profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", opts.profile)
	}
	return run(romPath, opts)
}

func run(romPath string, opts options) error {
	c, err := cart.Load(romPath)
	if err != nil {
		return fmt.Errorf("couldn't load the cartridge: %w", err)
	}
	log.Printf("loaded %s: PRG %d KB, CHR %d KB, %s mirroring", romPath, len(c.PRG)/1024, len(c.CHR)/1024, c.Mirroring)

	console := nes.New(c)
	console.Debug = opts.debug
	if opts.pc != "" {
		pc, err := strconv.ParseUint(opts.pc, 0, 16)
		if err != nil {
			return fmt.Errorf("bad -pc value: %w", err)
		}
		console.SetPC(uint16(pc))
	}

	if opts.headless {
		return runHeadless(console, opts)
	}
	return ui.Run(ui.New(console), opts.scale)
}

var (
	codeColor  = color.New(color.FgCyan).SprintFunc()
	stateColor = color.New(color.FgYellow).SprintFunc()
	okColor    = color.New(color.FgGreen).SprintFunc()
	errColor   = color.New(color.FgRed).SprintFunc()
)

func runHeadless(console *nes.Console, opts options) error {
	var executed int
	defer func() {
		fmt.Fprintf(color.Output, "%s %d instructions, %d cycles, %d frames\n",
			okColor("executed"), executed, console.Cycles(), console.Frame())
	}()

	for opts.steps == 0 || executed < opts.steps {
		if opts.trace {
			tr := console.Trace()
			fmt.Fprintln(color.Output, codeColor(tr.Code())+stateColor(tr.State()))
		}
		if _, err := console.Step(); err != nil {
			var execErr *cpu.ExecError
			if errors.As(err, &execErr) {
				fmt.Fprintf(color.Output, "%s opcode $%02X at $%04X\n", errColor("halted:"), execErr.Opcode, execErr.PC)
			}
			return err
		}
		executed++
	}
	return nil
}

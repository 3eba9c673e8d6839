// SPDX-License-Identifier: MIT
//
// Command certifaiger loads a model and a witness AIG, resolves their
// shared signals, and emits one check AIG per proof obligation: reset,
// transition, property, base, step, and, when the witness declares
// justice properties, the liveness family per justice index.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
	version "github.com/hashicorp/go-version"

	"github.com/aigcert/certifaiger/aiger"
	"github.com/aigcert/certifaiger/obligation"
	"github.com/aigcert/certifaiger/quant"
	"github.com/aigcert/certifaiger/shared"
)

// toolVersion is parsed through go-version when --version is given, which
// validates its format; the parsed version's String form is printed.
var toolVersion = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

// exit codes, per spec.md §6: 0 plus a quantifier-usage bitmask on
// success, distinct nonzero codes for each fatal error class.
const (
	exitOK               = 0
	exitUsage            = 64
	exitMalformedInput   = 1
	exitNotReencoded     = 2
	exitUnsupportedConf  = 3
	exitWriteFailure     = 4
)

func run(args []string) int {
	ui := &cli.BasicUi{Writer: os.Stdout, ErrorWriter: os.Stderr}
	log := hclog.New(&hclog.LoggerOptions{Name: "certifaiger", Output: os.Stderr, Level: hclog.Warn})

	if len(args) > 0 && args[0] == "--version" {
		v, err := version.NewVersion(toolVersion)
		if err != nil {
			ui.Error(fmt.Sprintf("internal version string is invalid: %v", err))
			return exitUsage
		}
		ui.Output(fmt.Sprintf("certifaiger %s", v.String()))
		return exitOK
	}

	positional, caps, checkNames, err := parseArgs(args)
	if err != nil {
		ui.Error(err.Error())
		ui.Output(usage())
		return exitUsage
	}
	if len(positional) < 2 {
		ui.Error("model.aig and witness.aig are both required")
		ui.Output(usage())
		return exitUsage
	}

	model, err := aiger.ReadFile(positional[0])
	if err != nil {
		ui.Error(fmt.Sprintf("reading model %s: %v", positional[0], err))
		if errors.Is(err, aiger.ErrNotReencoded) {
			return exitNotReencoded
		}
		return exitMalformedInput
	}
	witness, err := aiger.ReadFile(positional[1])
	if err != nil {
		ui.Error(fmt.Sprintf("reading witness %s: %v", positional[1], err))
		if errors.Is(err, aiger.ErrNotReencoded) {
			return exitNotReencoded
		}
		return exitMalformedInput
	}

	if !model.Reencoded() || !witness.Reencoded() {
		ui.Error("model or witness is not reencoded (inputs must occupy 2..2n, latches immediately after)")
		return exitNotReencoded
	}

	for _, w := range obligation.StructuralWarnings(model, witness) {
		ui.Warn(w.Error())
	}

	res, err := shared.Resolve(model, witness)
	if err != nil {
		ui.Error(fmt.Sprintf("resolving shared signals: %v", err))
		return exitMalformedInput
	}

	checks, exitBits, err := obligation.EmitAll(model, witness, res, caps, log)
	if err != nil {
		ui.Error(err.Error())
		return exitUnsupportedConf
	}

	names := defaultNames(checks, checkNames)
	for i, c := range checks {
		path := names[i]
		if err := aiger.WriteFile(path, c.AIG); err != nil {
			ui.Error(fmt.Sprintf("writing %s: %v", path, err))
			return exitWriteFailure
		}
		ui.Output(fmt.Sprintf("wrote %s (%s)%s", path, c.Name, quantifiedSuffix(c.Quantified)))
	}

	return exitOK | exitBits
}

func quantifiedSuffix(q bool) string {
	if q {
		return " [quantified]"
	}
	return ""
}

// parseArgs splits args into positional file arguments, --qbf caps (if
// given), and any explicit check output filenames trailing the two
// required inputs.
func parseArgs(args []string) (positional []string, caps quant.Levels, checkNames []string, err error) {
	caps = quant.Uncapped
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--qbf":
			rest := args[i+1:]
			consumed, parsed, perr := parseQBFCaps(rest)
			if perr != nil {
				return nil, quant.Levels{}, nil, perr
			}
			caps = parsed
			i += consumed
		case strings.HasPrefix(args[i], "--"):
			return nil, quant.Levels{}, nil, fmt.Errorf("unrecognized flag %q", args[i])
		default:
			positional = append(positional, args[i])
		}
	}
	if len(positional) > 2 {
		checkNames = positional[2:]
		positional = positional[:2]
	}
	return positional, caps, checkNames, nil
}

// parseQBFCaps reads up to five non-negative integer caps (reset,
// transition, property, base, step) following --qbf, stopping at the
// first flag-looking token; a non-numeric token is an error.
func parseQBFCaps(rest []string) (consumed int, caps quant.Levels, err error) {
	caps = quant.Uncapped
	fields := [...]*int{&caps.Reset, &caps.Transition, &caps.Property, &caps.Base, &caps.Step}
	for _, f := range fields {
		if consumed >= len(rest) {
			break
		}
		tok := rest[consumed]
		if strings.HasPrefix(tok, "--") {
			break
		}
		n, perr := strconv.Atoi(tok)
		if perr != nil {
			return consumed, quant.Levels{}, fmt.Errorf("--qbf: invalid cap %q", tok)
		}
		*f = n
		consumed++
	}
	return consumed, caps, nil
}

// defaultNames assigns output filenames: explicit ones from the CLI when
// given, else the ordered defaults from spec.md §6, extended with a
// justice-index suffix for the liveness family.
func defaultNames(checks []obligation.Check, explicit []string) []string {
	names := make([]string, len(checks))
	for i, c := range checks {
		if i < len(explicit) {
			names[i] = explicit[i]
			continue
		}
		names[i] = c.Name + ".aag"
	}
	return names
}

func usage() string {
	return "usage: certifaiger <model.aig> <witness.aig> [<check1> ... <checkK>] [--qbf [caps...]] [--version]"
}

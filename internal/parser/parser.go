// Package parser reads the text description of a scheduling run.
//
// A description is a list of directives, one per line:
//
//	processcount 2
//	runfor 15
//	use rr
//	quantum 2
//	process name A arrival 0 burst 5
//	process name B arrival 1 burst 4
//	end
//
// A '#' starts a comment that runs to the end of the line.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"cpusched/internal/core"
)

var (
	ErrProcessCountMismatch = errors.New("process count mismatch")
	ErrMissingQuantum       = errors.New("missing quantum parameter when use is 'rr'")
	ErrMalformedProcess     = errors.New("malformed process line")
	ErrMissingDirective     = errors.New("missing directive")
	ErrUnknownDirective     = errors.New("unknown directive")
	ErrInvalidValue         = errors.New("invalid value")
	ErrDuplicateProcess     = errors.New("duplicate process name")

	// ErrUnknownPolicy is returned for a `use` line with an unknown policy.
	ErrUnknownPolicy = core.ErrUnknownPolicy
)

// Input is a parsed description.
type Input struct {
	ProcessCount int
	Config       core.SimulationConfig
	Processes    []*core.Process
}

// ParseFile reads and parses the description stored at path.
func ParseFile(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a description. Parsing stops at the `end` directive or at the
// end of the input.
func Parse(r io.Reader) (*Input, error) {
	var (
		input       = &Input{}
		processes   = make([]*core.Process, 0)
		names       = make(map[string]bool)
		seenCount   bool
		seenRunFor  bool
		seenUse     bool
		seenQuantum bool
		quantum     int
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		fields := strings.Fields(stripComment(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		directive := strings.ToLower(fields[0])
		if directive == "end" {
			break
		}

		var err error
		switch directive {
		case "processcount":
			input.ProcessCount, err = intArg(fields, 0)
			seenCount = true
		case "runfor":
			input.Config.RunFor, err = intArg(fields, 1)
			seenRunFor = true
		case "use":
			if len(fields) < 2 {
				err = fmt.Errorf("%w: use needs a policy", ErrInvalidValue)
				break
			}
			input.Config.Policy, err = core.ParsePolicy(fields[1])
			seenUse = true
		case "quantum":
			if len(fields) < 2 {
				err = ErrMissingQuantum
				break
			}
			quantum, err = intArg(fields, math.MinInt)
			seenQuantum = true
		case "process":
			var p *core.Process
			p, err = parseProcess(fields[1:], len(processes))
			if err == nil && names[p.Name()] {
				err = fmt.Errorf("%w: %s", ErrDuplicateProcess, p.Name())
			}
			if err == nil {
				names[p.Name()] = true
				processes = append(processes, p)
			}
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownDirective, fields[0])
		}

		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	switch {
	case !seenCount:
		return nil, fmt.Errorf("%w: processcount", ErrMissingDirective)
	case !seenRunFor:
		return nil, fmt.Errorf("%w: runfor", ErrMissingDirective)
	case !seenUse:
		return nil, fmt.Errorf("%w: use", ErrMissingDirective)
	}

	if input.ProcessCount != len(processes) {
		return nil, fmt.Errorf("%w: processcount is %d but %d processes given",
			ErrProcessCountMismatch, input.ProcessCount, len(processes))
	}

	if input.Config.Policy == core.PolicyRoundRobin {
		if !seenQuantum {
			return nil, ErrMissingQuantum
		}
		if quantum < 1 {
			return nil, fmt.Errorf("%w: quantum must be at least 1, got %d",
				ErrInvalidValue, quantum)
		}
		input.Config.Quantum = quantum
	}

	input.Processes = processes

	return input, nil
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

// intArg parses the argument of a single-value directive and checks it
// against a lower bound.
func intArg(fields []string, lowest int) (int, error) {
	if len(fields) < 2 {
		return 0, fmt.Errorf("%w: %s needs a value", ErrInvalidValue, fields[0])
	}

	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidValue, fields[0], fields[1])
	}

	if v < lowest {
		return 0, fmt.Errorf("%w: %s must be at least %d, got %d",
			ErrInvalidValue, fields[0], lowest, v)
	}

	return v, nil
}

// parseProcess reads the keyword/value pairs of a process line.
func parseProcess(args []string, order int) (*core.Process, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("%w: unpaired keyword in %q",
			ErrMalformedProcess, strings.Join(args, " "))
	}

	values := make(map[string]string, 3)
	for i := 0; i < len(args); i += 2 {
		key := strings.ToLower(args[i])
		switch key {
		case "name", "arrival", "burst":
			values[key] = args[i+1]
		default:
			return nil, fmt.Errorf("%w: unknown keyword %q",
				ErrMalformedProcess, args[i])
		}
	}

	for _, key := range []string{"name", "arrival", "burst"} {
		if _, ok := values[key]; !ok {
			return nil, fmt.Errorf("%w: missing %s", ErrMalformedProcess, key)
		}
	}

	arrival, err := strconv.Atoi(values["arrival"])
	if err != nil || arrival < 0 {
		return nil, fmt.Errorf("%w: arrival %q", ErrMalformedProcess, values["arrival"])
	}

	burst, err := strconv.Atoi(values["burst"])
	if err != nil || burst <= 0 {
		return nil, fmt.Errorf("%w: burst %q", ErrMalformedProcess, values["burst"])
	}

	return core.NewProcess(order, values["name"], arrival, burst), nil
}

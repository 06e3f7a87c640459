// Package handheld simulates the three-instruction game-console program
// from the handheld-halting puzzle and implements the single-flip repair
// search.
package handheld

import (
	"fmt"
	"strconv"
	"strings"
)

// Op is an instruction tag.
type Op int

const (
	OpAcc Op = iota
	OpJmp
	OpNop
)

func (o Op) String() string {
	switch o {
	case OpAcc:
		return "acc"
	case OpJmp:
		return "jmp"
	case OpNop:
		return "nop"
	}
	return "unknown"
}

// Instruction is one program line: an op with a signed operand.
type Instruction struct {
	Op  Op
	Arg int
}

// Program is an immutable instruction sequence. Repair works on modified
// copies, never in place.
type Program []Instruction

// ParseLine parses a "mnemonic ±N" line.
func ParseLine(line string) (Instruction, error) {
	mnemonic, operand, found := strings.Cut(line, " ")
	if !found {
		return Instruction{}, fmt.Errorf("malformed instruction %q", line)
	}
	var op Op
	switch mnemonic {
	case "acc":
		op = OpAcc
	case "jmp":
		op = OpJmp
	case "nop":
		op = OpNop
	default:
		return Instruction{}, fmt.Errorf("unknown instruction %q", mnemonic)
	}
	arg, err := strconv.Atoi(strings.TrimPrefix(operand, "+"))
	if err != nil {
		return Instruction{}, fmt.Errorf("operand %q: %w", operand, err)
	}
	return Instruction{Op: op, Arg: arg}, nil
}

// Result is the outcome of running a program. Halted distinguishes a
// normal halt (the counter advanced to exactly the program length) from a
// detected loop or an out-of-range jump; the accumulator value is reported
// either way since callers behave differently for each outcome.
type Result struct {
	Acc    int
	Halted bool
}

// Run executes the program until it halts or revisits a program counter.
// Any counter outside [0, len(program)) other than exactly len(program)
// counts as the non-halting outcome rather than a fault.
func Run(program Program) Result {
	acc := 0
	pc := 0
	visited := make(map[int]struct{}, len(program))

	for pc != len(program) {
		if pc < 0 || pc > len(program) {
			return Result{Acc: acc}
		}
		if _, seen := visited[pc]; seen {
			return Result{Acc: acc}
		}
		visited[pc] = struct{}{}

		switch instruction := program[pc]; instruction.Op {
		case OpAcc:
			acc += instruction.Arg
			pc++
		case OpJmp:
			pc += instruction.Arg
		case OpNop:
			pc++
		}
	}
	return Result{Acc: acc, Halted: true}
}

// Repair looks for a single jmp↔nop flip that makes the program halt
// normally, trying each candidate in program order. It returns the halting
// accumulator value of the first fixed copy, or ok=false when no flip
// helps. Only meant for programs that loop; acc instructions are never
// touched.
func Repair(program Program) (int, bool) {
	for index, instruction := range program {
		var flipped Op
		switch instruction.Op {
		case OpJmp:
			flipped = OpNop
		case OpNop:
			flipped = OpJmp
		default:
			continue
		}

		modified := make(Program, len(program))
		copy(modified, program)
		modified[index] = Instruction{Op: flipped, Arg: instruction.Arg}

		if result := Run(modified); result.Halted {
			return result.Acc, true
		}
	}
	return 0, false
}

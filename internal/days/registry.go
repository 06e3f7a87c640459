// Package days holds one self-contained solution per puzzle day plus the
// registry the dispatcher and the TUI iterate over.
package days

import "github.com/ktsimpso/adventofcode2020/internal/runner"

// Registry builds the ordered day list. Construction is explicit and
// happens once at process start; nothing registers itself from init.
func Registry() runner.Registry {
	return runner.Registry{
		TobogganTrajectory(),
		PasswordPhilosophy(),
		ReportRepair(),
		PassportProcessing(),
		BinaryBoarding(),
		CustomCustoms(),
		HandyHaversacks(),
		HandheldHalting(),
		EncodingError(),
		AdapterArray(),
		SeatingSystem(),
		RainRisk(),
		ShuttleSearch(),
	}
}

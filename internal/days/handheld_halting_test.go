package days

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleHandheldProgram = `nop +0
acc +1
jmp +4
acc +3
jmp -3
acc -99
acc +1
jmp -4
acc +6
`

func writeHandheldFixture(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestHandheldRun(t *testing.T) {
	path := writeHandheldFixture(t, sampleHandheldProgram)

	acc, err := handheldRun(path, false)
	if err != nil {
		t.Fatalf("handheldRun: %v", err)
	}
	if acc != 5 {
		t.Fatalf("accumulator at loop = %d, want 5", acc)
	}

	acc, err = handheldRun(path, true)
	if err != nil {
		t.Fatalf("handheldRun with modify: %v", err)
	}
	if acc != 8 {
		t.Fatalf("repaired accumulator = %d, want 8", acc)
	}
}

func TestHandheldRun_AlreadyHaltingWithModify(t *testing.T) {
	path := writeHandheldFixture(t, "acc +4\nnop +0\n")

	acc, err := handheldRun(path, true)
	if err != nil {
		t.Fatalf("handheldRun: %v", err)
	}
	if acc != 4 {
		t.Fatalf("accumulator = %d, want 4", acc)
	}
}

func TestHandheldRun_NoRepairFound(t *testing.T) {
	path := writeHandheldFixture(t, "acc +1\njmp -1\njmp -2\n")

	_, err := handheldRun(path, true)
	if !errors.Is(err, errNoRepair) {
		t.Fatalf("err = %v, want errNoRepair", err)
	}
}

func TestHandheldRun_MalformedInstruction(t *testing.T) {
	path := writeHandheldFixture(t, "acc +1\nbrk +2\n")

	if _, err := handheldRun(path, false); err == nil {
		t.Fatal("handheldRun accepted an unknown instruction")
	}
}

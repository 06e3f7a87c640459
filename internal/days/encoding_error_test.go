package days

import "testing"

var sampleXMASStream = []int{
	35, 20, 15, 25, 47, 40, 62, 55, 65, 95,
	102, 117, 150, 182, 127, 219, 299, 277, 309, 576,
}

func TestFirstInvalidNumber(t *testing.T) {
	invalid, ok := firstInvalidNumber(sampleXMASStream, 5)
	if !ok {
		t.Fatal("firstInvalidNumber found nothing")
	}
	if invalid != 127 {
		t.Fatalf("firstInvalidNumber = %d, want 127", invalid)
	}
}

func TestFirstInvalidNumber_AllValid(t *testing.T) {
	if _, ok := firstInvalidNumber([]int{1, 2, 3, 5}, 2); ok {
		t.Fatal("firstInvalidNumber flagged a fully valid stream")
	}
}

func TestFirstInvalidNumber_StreamTooShort(t *testing.T) {
	if _, ok := firstInvalidNumber([]int{1, 2, 3}, 5); ok {
		t.Fatal("firstInvalidNumber flagged a stream shorter than the preamble")
	}
}

func TestContiguousRunSummingTo(t *testing.T) {
	run, ok := contiguousRunSummingTo(sampleXMASStream, 127)
	if !ok {
		t.Fatal("contiguousRunSummingTo found nothing")
	}
	want := []int{15, 25, 47, 40}
	if len(run) != len(want) {
		t.Fatalf("run = %v, want %v", run, want)
	}
	for i, value := range want {
		if run[i] != value {
			t.Fatalf("run = %v, want %v", run, want)
		}
	}
	if got := exploitValue(run); got != 62 {
		t.Fatalf("exploitValue = %d, want 62", got)
	}
}

func TestContiguousRunSummingTo_NoRun(t *testing.T) {
	if _, ok := contiguousRunSummingTo([]int{5, 5, 5}, 4); ok {
		t.Fatal("contiguousRunSummingTo found a run that cannot exist")
	}
}

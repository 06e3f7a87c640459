package days

import "testing"

func TestParseBoardingPass(t *testing.T) {
	tests := []struct {
		code   string
		row    int
		column int
		seatID int
	}{
		{"FBFBBFFRLR", 44, 5, 357},
		{"BFFFBBFRRR", 70, 7, 567},
		{"FFFBBBFRRR", 14, 7, 119},
		{"BBFFBBFRLL", 102, 4, 820},
	}
	for _, tc := range tests {
		pass, err := parseBoardingPass(tc.code)
		if err != nil {
			t.Fatalf("parseBoardingPass(%q): %v", tc.code, err)
		}
		if pass.row != tc.row || pass.column != tc.column {
			t.Errorf("parseBoardingPass(%q) = %+v, want row %d column %d",
				tc.code, pass, tc.row, tc.column)
		}
		if got := pass.seatID(); got != tc.seatID {
			t.Errorf("seatID(%q) = %d, want %d", tc.code, got, tc.seatID)
		}
	}
}

func TestParseBoardingPass_Rejects(t *testing.T) {
	for _, bad := range []string{"", "FBFBBFFRL", "FBFBBFFRLRR", "XBFBBFFRLR", "FBFBBFFRLX"} {
		if _, err := parseBoardingPass(bad); err == nil {
			t.Errorf("parseBoardingPass(%q) succeeded, want error", bad)
		}
	}
}

func TestHighestSeatID(t *testing.T) {
	passes := mustParsePasses(t, "BFFFBBFRRR", "FFFBBBFRRR", "BBFFBBFRLL")
	if got := highestSeatID(passes); got != 820 {
		t.Fatalf("highestSeatID = %d, want 820", got)
	}
}

func TestMissingSeatID(t *testing.T) {
	// Seat ids 3, 4 and 6: seat 5 is the gap.
	passes := mustParsePasses(t, "FFFFFFFLRR", "FFFFFFFRLL", "FFFFFFFRRL")
	if got := missingSeatID(passes); got != 5 {
		t.Fatalf("missingSeatID = %d, want 5", got)
	}
}

func TestMissingSeatID_NoGap(t *testing.T) {
	passes := mustParsePasses(t, "FFFFFFFLRR", "FFFFFFFRLL")
	if got := missingSeatID(passes); got != 0 {
		t.Fatalf("missingSeatID = %d, want 0 when no gap exists", got)
	}
}

func mustParsePasses(t *testing.T, codes ...string) []boardingPass {
	t.Helper()
	passes := make([]boardingPass, 0, len(codes))
	for _, code := range codes {
		pass, err := parseBoardingPass(code)
		if err != nil {
			t.Fatalf("parseBoardingPass(%q): %v", code, err)
		}
		passes = append(passes, pass)
	}
	return passes
}

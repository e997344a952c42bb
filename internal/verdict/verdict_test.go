package verdict

import "testing"

func TestEncodeDecode_RoundTrip(t *testing.T) {
	cases := []Verdict{
		{Depth: 12, BestMove: 2214, Mate: 0, Score: 35},
		{Depth: 20, BestMove: 0, Mate: -3, Score: 0},
		{Depth: 6, BestMove: 100, Mate: 0, Score: -250},
	}
	for _, v := range cases {
		s := Encode(v)
		got, err := Decode(s)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", s, err)
		}
		if got != v {
			t.Errorf("Decode(Encode(%+v)) = %+v, want %+v", v, got, v)
		}
	}
}

func TestDecode_RejectsWrongFieldCount(t *testing.T) {
	if _, err := Decode("1,2,3"); err == nil {
		t.Error("Decode with 3 fields succeeded, want an error")
	}
}

func TestDecode_RejectsNonHexField(t *testing.T) {
	if _, err := Decode("1,zz,0,0"); err == nil {
		t.Error("Decode with a non-hex field succeeded, want an error")
	}
}

func TestString_MateVsScore(t *testing.T) {
	mate := Verdict{Depth: 10, Mate: 2}
	if got, want := mate.String(), "depth=10 mate=2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	score := Verdict{Depth: 10, Score: -40}
	if got, want := score.String(), "depth=10 score=-40"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

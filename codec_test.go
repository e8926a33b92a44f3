package morris

import "testing"

func TestCodecRoundTrip(t *testing.T) {
	cases := []string{
		"EEEEEEEEEEEEEEEEEEEEEEEE",
		"WWWBBBEEEEEEEEEEEEEEEEEE",
		"BBEEEEEBEEEEWEWWBWWEEEBE",
	}
	for _, s := range cases {
		b, err := FromString(s)
		if err != nil {
			t.Fatalf("FromString(%q) failed: %v", s, err)
		}
		if got := ToString(b); got != s {
			t.Errorf("ToString(FromString(%q)) = %q, want %q", s, got, s)
		}
	}
}

func TestFromStringBadLength(t *testing.T) {
	if _, err := FromString("EEE"); err == nil {
		t.Error("FromString with wrong length should have failed")
	}
}

func TestFromStringBadChar(t *testing.T) {
	_, err := FromString("XEEEEEEEEEEEEEEEEEEEEEEE")
	if err == nil {
		t.Error("FromString with invalid character should have failed")
	}
}

func TestStringerMatchesToString(t *testing.T) {
	b, err := FromString("WWWBBBEEEEEEEEEEEEEEEEEE")
	if err != nil {
		t.Fatalf("FromString failed: %v", err)
	}
	if b.String() != ToString(b) {
		t.Error("Board.String() does not match ToString()")
	}
}

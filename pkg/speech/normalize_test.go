package speech

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Joy to the World, the Lord has come!", "joy to the world the lord has come"},
		{"  Silent   Night,\nHoly Night. ", "silent night holy night"},
		{"Don't stop believin'", "dont stop believin"},
		{"I want it that way", "i want it that way"},
		{"On the 12 days of Christmas", "on the twelve days of christmas"},
		{"Route 66", "route sixty six"},
		{"Track 101", "track one hundred one"},
		{"In 1000 years", "in one thousand years"},
		{"", ""},
		{"...", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSpellNumber(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "zero"},
		{7, "seven"},
		{19, "nineteen"},
		{20, "twenty"},
		{42, "forty two"},
		{300, "three hundred"},
		{512, "five hundred twelve"},
		{1986, "one thousand nine hundred eighty six"},
	}
	for _, tt := range tests {
		got := ""
		for i, w := range spellNumber(tt.n) {
			if i > 0 {
				got += " "
			}
			got += w
		}
		if got != tt.want {
			t.Errorf("spellNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

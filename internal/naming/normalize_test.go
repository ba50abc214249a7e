package naming

import "testing"

func TestCleanFragment(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"dots", "Show.Name", "Show Name"},
		{"underscores", "Show_Name_Here", "Show Name Here"},
		{"mixed separators", "Show._  Name", "Show Name"},
		{"leading trailing dots", ".Show.Name.", "Show Name"},
		{"compound hyphen preserved", "Thirty-Seven", "Thirty-Seven"},
		{"edge hyphens removed", " - Title -", "Title"},
		{"leading hyphen run", "--Title", "Title"},
		{"separator hyphen removed", "Show - Title", "Show Title"},
		{"hyphen after dots", "Seven.Thirty-Seven", "Seven Thirty-Seven"},
		{"lone hyphen", "-", ""},
		{"whitespace only", "   ", ""},
		{"tabs and spaces", "Show\tName  Here", "Show Name Here"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CleanFragment(tc.in)
			if got != tc.want {
				t.Errorf("CleanFragment(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCleanFragment_Idempotent(t *testing.T) {
	inputs := []string{
		"", "Show.Name.Here", "_a_b-c_", " - Title -", "Thirty-Seven",
		"a  -  b", "...---...", "Rbmk-1000", "x - - y",
	}
	for _, in := range inputs {
		once := CleanFragment(in)
		twice := CleanFragment(once)
		if once != twice {
			t.Errorf("CleanFragment not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

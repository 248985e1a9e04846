package helper

import "testing"

func TestContainsPattern(t *testing.T) {
	cases := map[string]string{
		"Kiran":    "%kiran%",
		"50%":      `%50\%%`,
		"emp_01":   `%emp\_01%`,
		`a\b`:      `%a\\b%`,
		"":         "%%",
		"EMP%_X\\": `%emp\%\_x\\%`,
	}
	for in, want := range cases {
		if got := ContainsPattern(in); got != want {
			t.Errorf("ContainsPattern(%q) = %q, want %q", in, got, want)
		}
	}
}

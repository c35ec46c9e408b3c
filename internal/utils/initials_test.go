package utils

import "testing"

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"Bia Silva":            "BS",
		"Marco Vedo":           "MV",
		"Maria da Silva Ramos": "MR",
		"duda":                 "D",
		"张小明":                  "ZM",
		"王 芳":                  "WF",
		"":                     "",
	}
	for name, want := range tests {
		if got := Initials(name); got != want {
			t.Errorf("Initials(%q): expected %q, got %q", name, want, got)
		}
	}
}

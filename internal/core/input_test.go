package core

import "testing"

func TestKeySetPressRelease(t *testing.T) {
	k := NewKeySet("z", KeyArrowUp)

	if !k.Pressed("z") || !k.Pressed(KeyArrowUp) {
		t.Error("NewKeySet codes should be pressed")
	}
	if k.Pressed("s") {
		t.Error("s should not be pressed")
	}

	k.Release("z")
	if k.Pressed("z") {
		t.Error("z should be released")
	}

	k.Press("s")
	if !k.Pressed("s") {
		t.Error("s should be pressed after Press")
	}
}

func TestKeySetPressedFold(t *testing.T) {
	tests := []struct {
		name     string
		held     []string
		query    string
		expected bool
	}{
		{"same case", []string{"w"}, "w", true},
		{"upper held, lower queried", []string{"W"}, "w", true},
		{"lower held, upper queried", []string{"s"}, "S", true},
		{"different letter", []string{"z"}, "w", false},
		{"empty set", nil, "w", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k := NewKeySet(tc.held...)
			if got := k.PressedFold(tc.query); got != tc.expected {
				t.Errorf("PressedFold(%q) = %v, expected %v", tc.query, got, tc.expected)
			}
		})
	}
}

func TestKeySetZeroValue(t *testing.T) {
	var k KeySet
	if k.Pressed("z") || k.PressedFold("z") {
		t.Error("zero KeySet should report nothing pressed")
	}
}

func TestKeySetClone(t *testing.T) {
	k := NewKeySet("z")
	clone := k.Clone()
	k.Release("z")

	if !clone.Pressed("z") {
		t.Error("clone should not be affected by changes to the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionP1Up.String() != "P1Up" {
		t.Errorf("ActionP1Up.String() = %q", ActionP1Up.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}

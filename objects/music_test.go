package objects

import "testing"

// TestMidiValues spot-checks the staff range mapping.
func TestMidiValues(t *testing.T) {
	testCases := []struct {
		note string
		want int
	}{
		{"C4", 60},
		{"G4", 67},
		{"B4", 71},
		{"C5", 72},
		{"F5", 77},
	}
	for _, tc := range testCases {
		got, ok := MidiValue(tc.note)
		if !ok || got != tc.want {
			t.Errorf("MidiValue(%q) = %d, %v; want %d, true", tc.note, got, ok, tc.want)
		}
	}

	if _, ok := MidiValue("C3"); ok {
		t.Error("MidiValue(C3) should be outside the supported range")
	}
}

// TestParseMusicPhrase verifies decoded note mappings and the unsupported
// note rejection.
func TestParseMusicPhrase(t *testing.T) {
	decoded := []any{
		map[string]any{"readableNoteName": "C4", "noteDuration": map[string]any{"num": 1, "den": 1}},
		map[string]any{"readableNoteName": "E4"},
	}
	got, err := Parse(MusicPhraseType, decoded)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	phrase := got.(MusicPhrase)
	if len(phrase) != 2 || phrase[0].ReadableNoteName != "C4" || phrase[1].ReadableNoteName != "E4" {
		t.Errorf("Parse() = %+v, want C4 E4", phrase)
	}

	bad := MusicPhrase{{ReadableNoteName: "Z9"}}
	if _, err := Parse(MusicPhraseType, bad); err == nil {
		t.Error("Parse() should reject an unsupported note name")
	}
}

// TestFormatMusicPhrase verifies empty and non-empty rendering.
func TestFormatMusicPhrase(t *testing.T) {
	got, err := Format(MusicPhraseType, MusicPhrase{{ReadableNoteName: "C4"}, {ReadableNoteName: "D4"}})
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if got != "C4, D4" {
		t.Errorf("Format() = %q, want %q", got, "C4, D4")
	}

	got, err = Format(MusicPhraseType, MusicPhrase{})
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if got != "(silence)" {
		t.Errorf("Format() = %q, want %q", got, "(silence)")
	}
}

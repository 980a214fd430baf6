package objects

import (
	"fmt"
	"strings"
)

// MusicNote is a single note in a phrase, named the way it appears on the
// staff ("C4" through "F5"). The duration is a fraction of a whole note.
type MusicNote struct {
	ReadableNoteName string
	NoteDuration     NoteDuration
}

// NoteDuration is a note length expressed as Num/Den of a whole note.
type NoteDuration struct {
	Num int
	Den int
}

// MusicPhrase is an ordered sequence of notes. Order is significant;
// rules compare phrases position by position.
type MusicPhrase []MusicNote

// midiValues maps the supported note names to their MIDI numbers. The
// staff covers the two-octave teaching range C4..F5.
var midiValues = map[string]int{
	"C4": 60,
	"D4": 62,
	"E4": 64,
	"F4": 65,
	"G4": 67,
	"A4": 69,
	"B4": 71,
	"C5": 72,
	"D5": 74,
	"E5": 76,
	"F5": 77,
}

// MidiValue returns the MIDI number for a supported note name.
func MidiValue(noteName string) (int, bool) {
	v, ok := midiValues[noteName]
	return v, ok
}

// MidiSequence returns the phrase's notes as MIDI numbers.
func (p MusicPhrase) MidiSequence() []int {
	out := make([]int, len(p))
	for i, n := range p {
		out[i] = midiValues[n.ReadableNoteName]
	}
	return out
}

func formatMusicPhrase(p MusicPhrase) string {
	if len(p) == 0 {
		return "(silence)"
	}
	names := make([]string, len(p))
	for i, n := range p {
		names[i] = n.ReadableNoteName
	}
	return strings.Join(names, ", ")
}

func parseMusicPhrase(v any) (any, error) {
	switch val := v.(type) {
	case MusicPhrase:
		return val, checkMusicPhrase(val)
	case []MusicNote:
		return MusicPhrase(val), checkMusicPhrase(MusicPhrase(val))
	case []any:
		phrase := make(MusicPhrase, 0, len(val))
		for i, rn := range val {
			m, ok := rn.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("music phrase: note %d: expected a mapping, got %T", i, rn)
			}
			note := MusicNote{NoteDuration: NoteDuration{Num: 1, Den: 1}}
			note.ReadableNoteName, ok = m["readableNoteName"].(string)
			if !ok {
				return nil, fmt.Errorf("music phrase: note %d: missing readableNoteName", i)
			}
			if rd, ok := m["noteDuration"].(map[string]any); ok {
				for key, dst := range map[string]*int{"num": &note.NoteDuration.Num, "den": &note.NoteDuration.Den} {
					n, err := parseInt(rd[key])
					if err != nil {
						return nil, fmt.Errorf("music phrase: note %d: duration %s: %w", i, key, err)
					}
					*dst = n.(int)
				}
			}
			phrase = append(phrase, note)
		}
		return phrase, checkMusicPhrase(phrase)
	default:
		return nil, fmt.Errorf("expected a music phrase, got %T", v)
	}
}

func checkMusicPhrase(p MusicPhrase) error {
	for i, n := range p {
		if _, ok := midiValues[n.ReadableNoteName]; !ok {
			return fmt.Errorf("music phrase: note %d: unsupported note name %q", i, n.ReadableNoteName)
		}
	}
	return nil
}

package rules

import (
	"fmt"

	"github.com/grishamjindal/oppia/objects"
)

// musicPredicates implements the MusicNotesInput family. Phrases are
// compared by the MIDI values of their notes, position by position;
// durations never affect classification.
func musicPredicates() map[string]Predicate {
	return map[string]Predicate{
		"Equals": musicPredicate(func(a []int, inputs map[string]any) bool {
			return midiMismatches(a, phraseParam(inputs, "x")) == 0
		}),
		"IsLongerThan": musicPredicate(func(a []int, inputs map[string]any) bool {
			return len(a) > inputs["k"].(int)
		}),
		"HasLengthInclusivelyBetween": musicPredicate(func(a []int, inputs map[string]any) bool {
			return inputs["a"].(int) <= len(a) && len(a) <= inputs["b"].(int)
		}),
		"IsEqualToExceptFor": musicPredicate(func(a []int, inputs map[string]any) bool {
			x := phraseParam(inputs, "x")
			return len(a) == len(x) && midiMismatches(a, x) <= inputs["k"].(int)
		}),
		"IsTranspositionOf": musicPredicate(func(a []int, inputs map[string]any) bool {
			return transpositionMismatches(a, phraseParam(inputs, "x"), inputs["y"].(int)) == 0
		}),
		"IsTranspositionOfExceptFor": musicPredicate(func(a []int, inputs map[string]any) bool {
			x := phraseParam(inputs, "x")
			if len(a) != len(x) {
				return false
			}
			return transpositionMismatches(a, x, inputs["y"].(int)) <= inputs["k"].(int)
		}),
	}
}

func musicPredicate(match func(answerMidi []int, inputs map[string]any) bool) Predicate {
	return func(answer any, inputs map[string]any) (bool, error) {
		v, err := objects.Parse(objects.MusicPhraseType, answer)
		if err != nil {
			return false, fmt.Errorf("answer: %w", err)
		}
		return match(v.(objects.MusicPhrase).MidiSequence(), inputs), nil
	}
}

func phraseParam(inputs map[string]any, name string) []int {
	return inputs[name].(objects.MusicPhrase).MidiSequence()
}

// midiMismatches counts positions where the sequences disagree. Sequences
// of different length never match anything, so the count is forced above
// any usable threshold.
func midiMismatches(a, b []int) int {
	if len(a) != len(b) {
		return len(a) + len(b) + 1
	}
	count := 0
	for i := range a {
		if a[i] != b[i] {
			count++
		}
	}
	return count
}

// transpositionMismatches counts positions where a differs from b shifted
// up by the given number of semitones.
func transpositionMismatches(a, b []int, semitones int) int {
	if len(a) != len(b) {
		return len(a) + len(b) + 1
	}
	count := 0
	for i := range a {
		if a[i] != b[i]+semitones {
			count++
		}
	}
	return count
}

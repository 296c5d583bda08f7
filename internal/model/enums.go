package model

import (
	"fmt"
	"strings"
)

// Medium is the category of a media item.
type Medium string

const (
	MediumFilm       Medium = "film"
	MediumAudio      Medium = "audio"
	MediumLiterature Medium = "literature"
	MediumOther      Medium = "other"
)

// Mediums lists every valid medium in display order.
var Mediums = []Medium{MediumFilm, MediumAudio, MediumLiterature, MediumOther}

// ConsumedState is the progress marker of a media item.
type ConsumedState string

const (
	StateNotStarted ConsumedState = "not started"
	StateStarted    ConsumedState = "started"
	StateFinished   ConsumedState = "finished"
)

// ConsumedStates lists every valid consumed state in display order.
var ConsumedStates = []ConsumedState{StateNotStarted, StateStarted, StateFinished}

// ParseMedium converts an exact, case-sensitive literal to a Medium.
func ParseMedium(s string) (Medium, error) {
	for _, m := range Mediums {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown medium %q", s)
}

// ParseConsumedState converts an exact, case-sensitive literal to a ConsumedState.
func ParseConsumedState(s string) (ConsumedState, error) {
	for _, c := range ConsumedStates {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown consumed state %q", s)
}

// MediumVocabulary renders the medium literals as {'a', 'b', ...}.
func MediumVocabulary() string {
	names := make([]string, len(Mediums))
	for i, m := range Mediums {
		names[i] = string(m)
	}
	return vocabulary(names)
}

// ConsumedStateVocabulary renders the consumed state literals as {'a', 'b', ...}.
func ConsumedStateVocabulary() string {
	names := make([]string, len(ConsumedStates))
	for i, c := range ConsumedStates {
		names[i] = string(c)
	}
	return vocabulary(names)
}

func vocabulary(names []string) string {
	return "{'" + strings.Join(names, "', '") + "'}"
}

// Package gamelog maintains the two in-combat logs: the per-line display log
// with its swipe history, and the per-turn encounter log the summary prompt
// is rebuilt from.
package gamelog

import (
	"strings"

	"github.com/riftline/encounter-engine/internal/entities"
	"github.com/riftline/encounter-engine/internal/errors"
)

// Log owns both logs for one encounter. It is not safe for concurrent use;
// the lifecycle controller serializes access.
type Log struct {
	display   []entities.LogEntry
	encounter []entities.EncounterLogEntry
}

// New creates an empty log
func New() *Log {
	return &Log{}
}

// Restore rebuilds a log from persisted entries
func Restore(display []entities.LogEntry, encounter []entities.EncounterLogEntry) *Log {
	return &Log{display: display, encounter: encounter}
}

// Display returns the display-log entries
func (l *Log) Display() []entities.LogEntry {
	return l.display
}

// Encounter returns the encounter-log entries
func (l *Log) Encounter() []entities.EncounterLogEntry {
	return l.encounter
}

// Append adds a display entry with a single swipe
func (l *Log) Append(message string, typ entities.LogType) int {
	l.display = append(l.display, entities.LogEntry{
		Message:    message,
		Type:       typ,
		Swipes:     []string{message},
		SwipeIndex: 0,
		Round:      len(l.encounter),
	})
	return len(l.display) - 1
}

// AddSwipe appends an alternate message to an entry and selects it
func (l *Log) AddSwipe(index int, message string) error {
	if index < 0 || index >= len(l.display) {
		return errors.OutOfRangef("log entry %d does not exist", index)
	}

	entry := &l.display[index]
	entry.Swipes = append(entry.Swipes, message)
	entry.SwipeIndex = len(entry.Swipes) - 1
	entry.Message = message
	return nil
}

// SetSwipeIndex switches the active swipe of an entry
func (l *Log) SetSwipeIndex(index, swipe int) error {
	if index < 0 || index >= len(l.display) {
		return errors.OutOfRangef("log entry %d does not exist", index)
	}

	entry := &l.display[index]
	if swipe < 0 || swipe >= len(entry.Swipes) {
		return errors.OutOfRangef("swipe %d out of bounds for entry %d", swipe, index)
	}

	entry.SwipeIndex = swipe
	entry.Message = entry.Swipes[swipe]
	return nil
}

// AppendRound records one resolved action round-trip. Display entries land
// in causal order: enemy actions, then party actions, then one narrative
// entry per non-empty line. The encounter log gains a single coarse entry.
// Returns the display index of the first narrative entry, or -1 when the
// narrative was empty.
func (l *Log) AppendRound(action string, enemyActions, partyActions []string, narrative string) int {
	// Round number is fixed before the encounter entry is appended so every
	// display line of this round shares it.
	l.encounter = append(l.encounter, entities.EncounterLogEntry{
		Action:    action,
		Narrative: narrative,
	})
	round := len(l.encounter) - 1

	appendTyped := func(msgs []string, typ entities.LogType) {
		for _, m := range msgs {
			if strings.TrimSpace(m) == "" {
				continue
			}
			l.display = append(l.display, entities.LogEntry{
				Message: m,
				Type:    typ,
				Swipes:  []string{m},
				Round:   round,
			})
		}
	}

	appendTyped(enemyActions, entities.LogEnemyAction)
	appendTyped(partyActions, entities.LogPartyAction)

	first := -1
	for _, line := range strings.Split(narrative, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		l.display = append(l.display, entities.LogEntry{
			Message: line,
			Type:    entities.LogNarrative,
			Swipes:  []string{line},
			Round:   round,
		})
		if first == -1 {
			first = len(l.display) - 1
		}
	}

	return first
}

// ActionFor resolves the player action that produced a display entry, used
// to regenerate the entry through the same pipeline. Only narrative entries
// are regenerable.
func (l *Log) ActionFor(index int) (string, error) {
	if index < 0 || index >= len(l.display) {
		return "", errors.OutOfRangef("log entry %d does not exist", index)
	}

	entry := l.display[index]
	if entry.Type != entities.LogNarrative {
		return "", errors.InvalidArgumentf("log entry %d is %s, only narrative entries regenerate", index, entry.Type)
	}
	if entry.Round < 0 || entry.Round >= len(l.encounter) {
		return "", errors.Internalf("log entry %d references unknown round %d", index, entry.Round)
	}

	return l.encounter[entry.Round].Action, nil
}

// Package lifecycle is the grow stage table: which stages exist, how they are
// shown on the kanban board and which moves between them are allowed.
package lifecycle

import (
	"fmt"
	"strings"

	"mycolab/pkg/apperr"
)

type Stage string

const (
	Spawning     Stage = "spawning"
	Colonization Stage = "colonization"
	Fruiting     Stage = "fruiting"
	Harvesting   Stage = "harvesting"
	Completed    Stage = "completed"
	Contaminated Stage = "contaminated"
	Aborted      Stage = "aborted"
)

type StageInfo struct {
	Stage    Stage  `json:"stage"`
	Label    string `json:"label"`
	Order    int    `json:"order"`
	Terminal bool   `json:"terminal"`
	Column   string `json:"column"` // kanban column: active|done|failed
}

var table = []StageInfo{
	{Stage: Spawning, Label: "Spawning", Order: 0, Column: "active"},
	{Stage: Colonization, Label: "Colonization", Order: 1, Column: "active"},
	{Stage: Fruiting, Label: "Fruiting", Order: 2, Column: "active"},
	{Stage: Harvesting, Label: "Harvesting", Order: 3, Column: "active"},
	{Stage: Completed, Label: "Completed", Order: 4, Terminal: true, Column: "done"},
	{Stage: Contaminated, Label: "Contaminated", Order: 5, Terminal: true, Column: "failed"},
	{Stage: Aborted, Label: "Aborted", Order: 6, Terminal: true, Column: "failed"},
}

// forward edges; contaminated/aborted are reachable from every active stage
var edges = map[Stage][]Stage{
	Spawning:     {Colonization},
	Colonization: {Fruiting},
	Fruiting:     {Harvesting},
	Harvesting:   {Fruiting, Completed},
}

// All returns the stage table in board order.
func All() []StageInfo {
	out := make([]StageInfo, len(table))
	copy(out, table)
	return out
}

func Parse(s string) (Stage, bool) {
	st := Stage(strings.ToLower(strings.TrimSpace(s)))
	_, ok := Info(st)
	return st, ok
}

func Info(s Stage) (StageInfo, bool) {
	for _, i := range table {
		if i.Stage == s {
			return i, true
		}
	}
	return StageInfo{}, false
}

func IsTerminal(s Stage) bool {
	i, ok := Info(s)
	return ok && i.Terminal
}

// IsActive reports whether the grow is still in progress.
func IsActive(s Stage) bool {
	i, ok := Info(s)
	return ok && !i.Terminal
}

func CanTransition(from, to Stage) bool {
	if from == to || !IsActive(from) {
		return false
	}
	if _, ok := Info(to); !ok {
		return false
	}
	if to == Contaminated || to == Aborted {
		return true
	}
	for _, n := range edges[from] {
		if n == to {
			return true
		}
	}
	return false
}

// Targets lists the stages reachable from s.
func Targets(s Stage) []Stage {
	if !IsActive(s) {
		return nil
	}
	out := append([]Stage{}, edges[s]...)
	return append(out, Contaminated, Aborted)
}

// Next is the default forward move used by the "advance" button.
func Next(s Stage) (Stage, bool) {
	switch s {
	case Spawning:
		return Colonization, true
	case Colonization:
		return Fruiting, true
	case Fruiting:
		return Harvesting, true
	case Harvesting:
		return Completed, true
	}
	return "", false
}

func Transition(from, to Stage) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", apperr.ErrInvalidTransition, from, to)
	}
	return nil
}

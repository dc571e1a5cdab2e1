package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Priority is the ordered task priority. The rank (Alta=1, Média=2, Baixa=3)
// defines sort precedence.
type Priority int

const (
	PriorityHigh Priority = iota + 1
	PriorityMedium
	PriorityLow
)

var priorityLabels = map[Priority]string{
	PriorityHigh:   "Alta",
	PriorityMedium: "Média",
	PriorityLow:    "Baixa",
}

// Priorities lists all priorities in rank order.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

func (p Priority) String() string {
	return priorityLabels[p]
}

// Rank returns the sort rank; lower sorts first.
func (p Priority) Rank() int {
	return int(p)
}

// ParsePriority matches a display label case-insensitively.
func ParsePriority(s string) (Priority, bool) {
	return matchLabel(priorityLabels, s)
}

func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	// The zero value marshals to "", so "" must parse back to unset.
	if strings.TrimSpace(s) == "" {
		*p = 0
		return nil
	}
	v, ok := ParsePriority(s)
	if !ok {
		return fmt.Errorf("unknown priority %q", s)
	}
	*p = v
	return nil
}

// Status is the task workflow state.
type Status int

const (
	StatusPending Status = iota + 1
	StatusInProgress
	StatusPaused
	StatusDone
)

var statusLabels = map[Status]string{
	StatusPending:    "Pendente",
	StatusInProgress: "Em andamento",
	StatusPaused:     "Pausado",
	StatusDone:       "Concluído",
}

func (s Status) String() string {
	return statusLabels[s]
}

// ParseStatus matches a display label case-insensitively.
func ParseStatus(v string) (Status, bool) {
	return matchLabel(statusLabels, v)
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if strings.TrimSpace(v) == "" {
		*s = 0
		return nil
	}
	parsed, ok := ParseStatus(v)
	if !ok {
		return fmt.Errorf("unknown status %q", v)
	}
	*s = parsed
	return nil
}

// GmbStatus is the local-listing subtask state.
type GmbStatus int

const (
	GmbPublished GmbStatus = iota + 1
	GmbPending
	GmbNotApplicable
)

var gmbStatusLabels = map[GmbStatus]string{
	GmbPublished:     "Publicado",
	GmbPending:       "Pendente",
	GmbNotApplicable: "N/A",
}

func (g GmbStatus) String() string {
	return gmbStatusLabels[g]
}

// ParseGmbStatus matches a display label case-insensitively.
func ParseGmbStatus(v string) (GmbStatus, bool) {
	return matchLabel(gmbStatusLabels, v)
}

func (g GmbStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

func (g *GmbStatus) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if strings.TrimSpace(v) == "" {
		*g = 0
		return nil
	}
	parsed, ok := ParseGmbStatus(v)
	if !ok {
		return fmt.Errorf("unknown gmb status %q", v)
	}
	*g = parsed
	return nil
}

func matchLabel[T comparable](labels map[T]string, s string) (T, bool) {
	var zero T
	needle := strings.TrimSpace(s)
	for v, label := range labels {
		if strings.EqualFold(label, needle) {
			return v, true
		}
	}
	return zero, false
}

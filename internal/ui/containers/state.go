// Package containers holds state and rendering for the container panel.
package containers

import (
	"lazydock/internal/docker"
	"lazydock/internal/ui/shared"
)

// State contains container panel data and cursor state.
type State struct {
	Items    []docker.ContainerSummary
	Filtered []docker.ContainerSummary
	Selected int
}

// SetItems replaces the full list and reapplies the filter, keeping the
// cursor in range.
func (s *State) SetItems(items []docker.ContainerSummary, filter string) {
	s.Items = items
	s.ApplyFilter(filter)
}

// ApplyFilter rebuilds the visible slice from the current filter.
func (s *State) ApplyFilter(filter string) {
	s.Filtered = s.Filtered[:0]
	for _, c := range s.Items {
		if shared.MatchesFilter(filter, c.Name, c.Image, c.State, c.ShortID) {
			s.Filtered = append(s.Filtered, c)
		}
	}
	s.clamp()
}

// Current returns the container under the cursor.
func (s *State) Current() (docker.ContainerSummary, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Filtered) {
		return docker.ContainerSummary{}, false
	}
	return s.Filtered[s.Selected], true
}

// Move shifts the cursor by delta, clamped to the list.
func (s *State) Move(delta int) {
	s.Selected += delta
	s.clamp()
}

// Top moves the cursor to the first row.
func (s *State) Top() { s.Selected = 0 }

// Bottom moves the cursor to the last row.
func (s *State) Bottom() {
	s.Selected = len(s.Filtered) - 1
	s.clamp()
}

func (s *State) clamp() {
	if s.Selected >= len(s.Filtered) {
		s.Selected = len(s.Filtered) - 1
	}
	if s.Selected < 0 {
		s.Selected = 0
	}
}

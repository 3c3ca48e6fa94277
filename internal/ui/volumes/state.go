// Package volumes holds state and rendering for the volume panel.
package volumes

import (
	"lazydock/internal/docker"
	"lazydock/internal/ui/shared"
)

// State contains volume panel data and cursor state.
type State struct {
	Items    []docker.VolumeSummary
	Filtered []docker.VolumeSummary
	Selected int
}

func (s *State) SetItems(items []docker.VolumeSummary, filter string) {
	s.Items = items
	s.ApplyFilter(filter)
}

func (s *State) ApplyFilter(filter string) {
	s.Filtered = s.Filtered[:0]
	for _, v := range s.Items {
		if shared.MatchesFilter(filter, v.Name, v.Driver) {
			s.Filtered = append(s.Filtered, v)
		}
	}
	s.clamp()
}

func (s *State) Current() (docker.VolumeSummary, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Filtered) {
		return docker.VolumeSummary{}, false
	}
	return s.Filtered[s.Selected], true
}

func (s *State) Move(delta int) {
	s.Selected += delta
	s.clamp()
}

func (s *State) Top() { s.Selected = 0 }

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

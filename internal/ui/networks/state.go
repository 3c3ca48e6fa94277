// Package networks holds state and rendering for the network panel.
package networks

import (
	"lazydock/internal/docker"
	"lazydock/internal/ui/shared"
)

// State contains network panel data and cursor state.
type State struct {
	Items    []docker.NetworkSummary
	Filtered []docker.NetworkSummary
	Selected int
}

func (s *State) SetItems(items []docker.NetworkSummary, filter string) {
	s.Items = items
	s.ApplyFilter(filter)
}

func (s *State) ApplyFilter(filter string) {
	s.Filtered = s.Filtered[:0]
	for _, n := range s.Items {
		if shared.MatchesFilter(filter, n.Name, n.Driver, n.ShortID) {
			s.Filtered = append(s.Filtered, n)
		}
	}
	s.clamp()
}

func (s *State) Current() (docker.NetworkSummary, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Filtered) {
		return docker.NetworkSummary{}, false
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

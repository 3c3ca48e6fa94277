// Package images holds state and rendering for the image panel.
package images

import (
	"lazydock/internal/docker"
	"lazydock/internal/ui/shared"
)

// State contains image panel data and cursor state.
type State struct {
	Items    []docker.ImageSummary
	Filtered []docker.ImageSummary
	Selected int
}

func (s *State) SetItems(items []docker.ImageSummary, filter string) {
	s.Items = items
	s.ApplyFilter(filter)
}

func (s *State) ApplyFilter(filter string) {
	s.Filtered = s.Filtered[:0]
	for _, img := range s.Items {
		if shared.MatchesFilter(filter, img.RepoTag, img.ShortID) {
			s.Filtered = append(s.Filtered, img)
		}
	}
	s.clamp()
}

func (s *State) Current() (docker.ImageSummary, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Filtered) {
		return docker.ImageSummary{}, false
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

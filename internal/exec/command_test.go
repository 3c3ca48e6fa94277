package exec

import (
	"reflect"
	"testing"
)

func TestSelectCommand(t *testing.T) {
	cases := []struct {
		name       string
		entrypoint []string
		cmd        []string
		want       []string
	}{
		{
			name:       "bare shell gets interactive flag",
			entrypoint: []string{"/bin/bash"},
			want:       []string{"/bin/bash", "-i"},
		},
		{
			name:       "non-shell binary falls back",
			entrypoint: []string{"/usr/bin/myserver"},
			cmd:        []string{"--port", "8080"},
			want:       []string{"/bin/sh", "-lc"},
		},
		{
			name:       "shell with args kept as-is",
			entrypoint: []string{"/bin/sh"},
			cmd:        []string{"-c", "sleep infinity"},
			want:       []string{"/bin/sh", "-c", "sleep infinity"},
		},
		{
			name: "binary with -lc argument counts as shell",
			cmd:  []string{"/usr/bin/env", "-lc", "top"},
			want: []string{"/usr/bin/env", "-lc", "top"},
		},
		{
			name: "empty configuration falls back",
			want: []string{"/bin/sh", "-lc"},
		},
		{
			name: "busybox ash basename",
			cmd:  []string{"/bin/ash"},
			want: []string{"/bin/ash", "-i"},
		},
	}
	for _, tc := range cases {
		got := SelectCommand(tc.entrypoint, tc.cmd)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: SelectCommand(%v, %v) = %v, want %v",
				tc.name, tc.entrypoint, tc.cmd, got, tc.want)
		}
	}
}

func TestLooksLikeShell(t *testing.T) {
	if LooksLikeShell(nil, nil) {
		t.Error("empty configuration should not look like a shell")
	}
	if !LooksLikeShell([]string{"zsh"}, nil) {
		t.Error("bare zsh should look like a shell")
	}
	if LooksLikeShell([]string{"/usr/local/bin/node"}, []string{"server.js"}) {
		t.Error("node entrypoint should not look like a shell")
	}
}

package containers

import (
	"testing"

	"lazydock/internal/docker"
)

func sample() []docker.ContainerSummary {
	return []docker.ContainerSummary{
		{ShortID: "aaa111222333", Name: "web", Image: "nginx:latest", State: "running"},
		{ShortID: "bbb111222333", Name: "db", Image: "postgres:16", State: "running"},
		{ShortID: "ccc111222333", Name: "worker", Image: "nginx:latest", State: "exited"},
	}
}

func TestApplyFilter(t *testing.T) {
	var st State
	st.SetItems(sample(), "")
	if len(st.Filtered) != 3 {
		t.Fatalf("unfiltered length = %d, want 3", len(st.Filtered))
	}

	st.ApplyFilter("nginx")
	if len(st.Filtered) != 2 {
		t.Errorf("nginx filter length = %d, want 2", len(st.Filtered))
	}

	st.ApplyFilter("exited")
	if len(st.Filtered) != 1 || st.Filtered[0].Name != "worker" {
		t.Errorf("exited filter = %+v, want worker only", st.Filtered)
	}

	st.ApplyFilter("nomatch")
	if len(st.Filtered) != 0 {
		t.Errorf("nomatch filter length = %d, want 0", len(st.Filtered))
	}
	if _, ok := st.Current(); ok {
		t.Error("Current() should report no selection on empty filter result")
	}
}

func TestCursorClamping(t *testing.T) {
	var st State
	st.SetItems(sample(), "")

	st.Move(-1)
	if st.Selected != 0 {
		t.Errorf("moving above top: Selected = %d, want 0", st.Selected)
	}
	st.Bottom()
	if st.Selected != 2 {
		t.Errorf("Bottom: Selected = %d, want 2", st.Selected)
	}
	st.Move(1)
	if st.Selected != 2 {
		t.Errorf("moving past end: Selected = %d, want 2", st.Selected)
	}

	// Shrinking the list pulls the cursor back in range.
	st.ApplyFilter("web")
	if st.Selected != 0 {
		t.Errorf("after shrink: Selected = %d, want 0", st.Selected)
	}
}

func TestFormatPorts(t *testing.T) {
	if got := FormatPorts(nil); got != "-" {
		t.Errorf("no ports = %q, want -", got)
	}
	ports := []docker.PortMapping{
		{Port: 80, Protocol: "tcp", HostPort: 8080},
		{Port: 9000, Protocol: "udp"},
	}
	want := "8080->80/tcp, 9000/udp"
	if got := FormatPorts(ports); got != want {
		t.Errorf("FormatPorts = %q, want %q", got, want)
	}
}

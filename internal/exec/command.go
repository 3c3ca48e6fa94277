package exec

import "path"

var shellNames = map[string]bool{
	"sh":   true,
	"bash": true,
	"zsh":  true,
	"ash":  true,
	"dash": true,
}

// fallbackCommand is used when the container's configured entrypoint
// does not look like something a user could type into.
var fallbackCommand = []string{"/bin/sh", "-lc"}

// LooksLikeShell reports whether the configured entrypoint/cmd pair
// would drop the user into a shell. It matches on the basename of the
// first word, or on -c / -lc arguments to an arbitrary binary.
func LooksLikeShell(entrypoint, cmd []string) bool {
	words := append(append([]string{}, entrypoint...), cmd...)
	if len(words) == 0 {
		return false
	}
	if shellNames[path.Base(words[0])] {
		return true
	}
	for _, w := range words[1:] {
		if w == "-c" || w == "-lc" {
			return true
		}
	}
	return false
}

// SelectCommand decides what to run inside the container. A shell-like
// entrypoint is reused as-is, with "-i" appended when it carries no
// arguments so the shell comes up interactive. Anything else gets the
// /bin/sh fallback.
func SelectCommand(entrypoint, cmd []string) []string {
	if !LooksLikeShell(entrypoint, cmd) {
		return fallbackCommand
	}
	words := append(append([]string{}, entrypoint...), cmd...)
	if len(words) == 1 {
		words = append(words, "-i")
	}
	return words
}

//go:build debug

package game

// assert panics on invariant violations when built with -tags debug.
func assert(cond bool, msg string) {
	if !cond {
		panic("game: " + msg)
	}
}

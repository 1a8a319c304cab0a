package alder

import (
	"fmt"
	"os"
)

// debugEnabled turns on extra validation and stderr warnings for the whole
// package. Off by default; flip it with SetDebug during development.
var debugEnabled bool

// SetDebug enables or disables debug mode. In debug mode the package warns
// on stderr about suspicious usage (huge child lists, playing frame sets
// that were never added) that release mode ignores for speed.
func SetDebug(on bool) {
	debugEnabled = on
}

const debugMaxChildCount = 1000

// debugCheckChildCount warns on stderr if a sprite's child list has grown
// past debugMaxChildCount.
func debugCheckChildCount(s *Sprite) {
	if len(s.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[alder] warning: sprite %s has %d children (threshold %d)\n",
			s.id, len(s.children), debugMaxChildCount)
	}
}

const debugMaxTreeHeight = 32

// debugCheckTreeHeight warns on stderr when the tree rooted at s has grown
// taller than debugMaxTreeHeight. Sprites carry no parent links, so the
// check measures downward from the sprite the child was attached to.
func debugCheckTreeHeight(s *Sprite) {
	if h := treeHeight(s); h > debugMaxTreeHeight {
		_, _ = fmt.Fprintf(os.Stderr, "[alder] warning: tree height %d exceeds %d (sprite %s)\n",
			h, debugMaxTreeHeight, s.id)
	}
}

func treeHeight(s *Sprite) int {
	max := 0
	for _, c := range s.children {
		if h := treeHeight(c); h > max {
			max = h
		}
	}
	return max + 1
}

// debugWarnUnknownFrameSet warns on stderr when Play is asked for a frame
// set name that was never registered.
func debugWarnUnknownFrameSet(name string) {
	_, _ = fmt.Fprintf(os.Stderr, "[alder] warning: Play(%q): no such frame set\n", name)
}

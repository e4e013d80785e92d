package reel

import (
	"fmt"
	"os"
	"time"
)

// tickStats holds per-tick pass timing metrics.
// Only populated when Stage.debug is true.
type tickStats struct {
	constructTime time.Duration
	commitTime    time.Duration
	exitTime      time.Duration
	cleanupTime   time.Duration
	clipCount     int
}

// debugLog prints pass timing stats to stderr.
func (s *Stage) debugLog(stats tickStats) {
	if !s.debug {
		return
	}
	total := stats.constructTime + stats.commitTime + stats.exitTime + stats.cleanupTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[reel] construct: %v | commit: %v | exit: %v | cleanup: %v | total: %v\n",
		stats.constructTime, stats.commitTime, stats.exitTime, stats.cleanupTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[reel] tick: %d | clips: %d\n", s.ticks, stats.clipCount)
}

// debugCheckDestroyed panics with a descriptive message when a destroyed clip
// is used in a tree operation. Only called when the stage is in debug mode.
// In release mode callers skip this entirely.
func debugCheckDestroyed(c *Clip, op string) {
	if c.destroyed {
		panic(fmt.Sprintf("reel debug: %s on destroyed clip %q (ID %d)", op, c.Name, c.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(c *Clip) {
	depth := 0
	for p := c; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[reel] warning: tree depth %d exceeds %d (clip %q)\n",
			depth, debugMaxTreeDepth, c.Name)
	}
}

// debugCheckChildCount warns on stderr if a clip has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(c *Clip) {
	if len(c.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[reel] warning: clip %q has %d children (threshold %d)\n",
			c.Name, len(c.children), debugMaxChildCount)
	}
}

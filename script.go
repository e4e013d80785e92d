package reel

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a playback script.
type scriptStep struct {
	Action string `json:"action"`
	Clip   string `json:"clip,omitempty"`
	Frame  int    `json:"frame,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// playbackScript is the top-level JSON structure for a playback script.
type playbackScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences playback actions across ticks for automated timeline
// testing: one step per tick, applied before the construction pass. Attach to
// a Stage via SetScriptRunner.
//
// Supported actions: "play", "stop", "gotoAndPlay", "gotoAndStop",
// "nextFrame", "prevFrame", "destroy" (all targeting the clip named by the
// step's "clip" field) and "wait" (idle for "frames" ticks). Steps targeting
// a clip that no longer exists are skipped.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON playback script and returns a ScriptRunner ready
// to be attached to a Stage via SetScriptRunner.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script playbackScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse playback script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse playback script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a ScriptRunner to the stage. The runner's step
// method is called at the start of each Tick.
func (s *Stage) SetScriptRunner(runner *ScriptRunner) {
	s.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick. Called from Stage.Tick.
func (r *ScriptRunner) step(s *Stage) {
	if r.done {
		return
	}
	// Count down wait ticks.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	if st.Action == "wait" {
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	} else if clip := s.Find(st.Clip); clip != nil {
		switch st.Action {
		case "play":
			clip.Play()
		case "stop":
			clip.Stop()
		case "gotoAndPlay":
			clip.GotoAndPlay(st.Frame)
		case "gotoAndStop":
			clip.GotoAndStop(st.Frame)
		case "nextFrame":
			clip.NextFrame()
		case "prevFrame":
			clip.PrevFrame()
		case "destroy":
			clip.Destroy()
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

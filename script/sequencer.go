// Package script plays a scene's steps over time against a Director.
package script

import (
	cfg "github.com/automoto/neighbors/config"
	"github.com/automoto/neighbors/story"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Director is the stage the sequencer acts on. Every method must tolerate
// names that are not on stage.
type Director interface {
	Has(name string) bool
	Position(name string) (x, y float64, ok bool)
	Facing(name string) float64
	// Place puts the character at x, y immediately.
	Place(name string, x, y float64)
	// Walk starts the character walking toward x at its own speed.
	Walk(name string, x float64)
	Speak(name, text string)
	Think(name, text string)
	HideBubbles()
	Emote(name, emote string)
}

// Sequencer advances an ordered list of steps by elapsed time while playing.
type Sequencer struct {
	director Director
	steps    []story.Step
	index    int
	elapsed  float64
	playing  bool
	started  bool

	// Per-step state, reset when a step begins
	runes       []rune
	revealed    int
	originX     float64
	steppedBack bool
	tweenX      *gween.Tween
	tweenY      *gween.Tween
	targetY     float64

	// OnStep runs once as each step begins.
	OnStep func(index int, step story.Step)
	// OnReveal runs each time a dialogue line shows more runes.
	OnReveal func(step story.Step, revealed int)
	// OnFinish runs once when the last step completes.
	OnFinish func()
}

func NewSequencer(d Director) *Sequencer {
	return &Sequencer{director: d}
}

// Load replaces the steps and rewinds. The sequencer is left paused.
func (s *Sequencer) Load(steps []story.Step) {
	s.steps = append([]story.Step(nil), steps...)
	s.Reset()
}

// Reset rewinds to the first step and pauses.
func (s *Sequencer) Reset() {
	s.index = 0
	s.elapsed = 0
	s.playing = false
	s.started = false
	s.clearStep()
}

// Play starts or resumes playback. It does nothing once every step is done.
func (s *Sequencer) Play() {
	if s.Done() {
		return
	}
	s.playing = true
}

func (s *Sequencer) Pause() {
	s.playing = false
}

func (s *Sequencer) Toggle() {
	if s.playing {
		s.Pause()
		return
	}
	s.Play()
}

func (s *Sequencer) Playing() bool { return s.playing }

// Index is the current step index, in [0, len(steps)].
func (s *Sequencer) Index() int { return s.index }

// Elapsed is the time spent in the current step, in seconds.
func (s *Sequencer) Elapsed() float64 { return s.elapsed }

func (s *Sequencer) Done() bool { return s.index >= len(s.steps) }

// Current returns the step being played.
func (s *Sequencer) Current() (story.Step, bool) {
	if s.Done() {
		return story.Step{}, false
	}
	return s.steps[s.index], true
}

// Advance moves playback forward by dt seconds. Past the last step it is a no-op.
func (s *Sequencer) Advance(dt float64) {
	if !s.playing || s.Done() {
		return
	}
	if !s.started {
		s.begin()
	}

	step := s.steps[s.index]
	s.elapsed += dt
	duration := Duration(step)

	if s.director.Has(step.Character) {
		switch step.Kind {
		case story.Dialogue:
			s.updateDialogue(step)
		case story.Movement:
			s.updateMovement(step, dt)
		}
	} else {
		// Nobody to act the step
		s.elapsed = duration
	}

	if s.elapsed >= duration {
		s.finishStep(step)
	}
}

// Skip jumps to the next step, settling the current one first.
func (s *Sequencer) Skip() {
	if s.Done() {
		return
	}
	step := s.steps[s.index]
	if s.started && step.Kind == story.Dialogue && !s.steppedBack && s.director.Has(step.Character) {
		s.director.Walk(step.Character, s.originX)
	}
	s.finishStep(step)
}

// Duration returns how long a step plays, in seconds.
func Duration(step story.Step) float64 {
	if step.Duration > 0 {
		return step.Duration
	}
	switch step.Kind {
	case story.Dialogue:
		return typingEnd(step) + cfg.Script.HoldTime + cfg.Script.GapTime
	case story.Thought:
		return cfg.Script.ThoughtTime
	case story.Movement:
		return cfg.Script.MoveTime
	}
	return 0
}

// typingEnd is the time at which the whole line has been revealed.
func typingEnd(step story.Step) float64 {
	return cfg.Script.RevealDelay + float64(len([]rune(step.Text)))*cfg.Script.TypeInterval
}

func (s *Sequencer) begin() {
	s.started = true
	s.clearStep()
	step := s.steps[s.index]

	s.director.HideBubbles()
	if s.OnStep != nil {
		s.OnStep(s.index, step)
	}

	name := step.Character
	if !s.director.Has(name) {
		return
	}
	if step.Emote != "" {
		s.director.Emote(name, step.Emote)
	}

	switch step.Kind {
	case story.Dialogue:
		s.runes = []rune(step.Text)
		x, _, _ := s.director.Position(name)
		s.originX = x
		s.director.Walk(name, x+s.director.Facing(name)*cfg.Character.StepForward)
	case story.Thought:
		s.director.Think(name, step.Text)
	case story.Movement:
		x, y, _ := s.director.Position(name)
		s.targetY = step.TargetY
		if s.targetY == 0 {
			s.targetY = y
		}
		d := float32(Duration(step))
		s.tweenX = gween.New(float32(x), float32(step.TargetX), d, ease.Linear)
		s.tweenY = gween.New(float32(y), float32(s.targetY), d, ease.Linear)
		if step.Text != "" {
			s.director.Think(name, step.Text)
		}
	}
}

func (s *Sequencer) updateDialogue(step story.Step) {
	if s.elapsed >= cfg.Script.RevealDelay {
		n := int((s.elapsed-cfg.Script.RevealDelay)/cfg.Script.TypeInterval) + 1
		if n > len(s.runes) {
			n = len(s.runes)
		}
		if n != s.revealed {
			s.revealed = n
			s.director.Speak(step.Character, string(s.runes[:n]))
			if s.OnReveal != nil {
				s.OnReveal(step, n)
			}
		}
	}

	if !s.steppedBack && s.elapsed >= typingEnd(step)+cfg.Script.HoldTime {
		s.steppedBack = true
		s.director.Walk(step.Character, s.originX)
	}
}

func (s *Sequencer) updateMovement(step story.Step, dt float64) {
	if s.tweenX == nil {
		return
	}
	x, _ := s.tweenX.Update(float32(dt))
	y, _ := s.tweenY.Update(float32(dt))
	s.director.Place(step.Character, float64(x), float64(y))
}

func (s *Sequencer) finishStep(step story.Step) {
	if step.Kind == story.Movement && s.tweenX != nil && s.director.Has(step.Character) {
		s.director.Place(step.Character, step.TargetX, s.targetY)
	}

	s.index++
	s.elapsed = 0
	s.started = false
	s.clearStep()

	if s.Done() {
		s.playing = false
		if s.OnFinish != nil {
			s.OnFinish()
		}
	}
}

func (s *Sequencer) clearStep() {
	s.runes = nil
	s.revealed = 0
	s.originX = 0
	s.steppedBack = false
	s.tweenX = nil
	s.tweenY = nil
	s.targetY = 0
}

package cadence

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/gopxl/beep"
)

// scriptAction is one action in a JSON script. Which fields matter depends on
// Action; durations are in milliseconds.
type scriptAction struct {
	Action  string  `json:"action"`
	Tag     uint32  `json:"tag,omitempty"`
	Target  string  `json:"target,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Angle   float64 `json:"angle,omitempty"`
	Scale   float64 `json:"scale,omitempty"`
	Alpha   int     `json:"alpha,omitempty"`
	Z       int     `json:"z,omitempty"`
	R       uint8   `json:"r,omitempty"`
	G       uint8   `json:"g,omitempty"`
	B       uint8   `json:"b,omitempty"`
	Ms      float64 `json:"ms,omitempty"`
	Ease    string  `json:"ease,omitempty"`
	Times   int     `json:"times,omitempty"`
	Back    int     `json:"back,omitempty"`
	Blinks  int     `json:"blinks,omitempty"`
	Radius  float64 `json:"radius,omitempty"`
	Tension float64 `json:"tension,omitempty"`
	Points  []Vec2  `json:"points,omitempty"`
	Texture string  `json:"texture,omitempty"`
	Sound   string  `json:"sound,omitempty"`
	Name    string  `json:"name,omitempty"`
	Value   int32   `json:"value,omitempty"`
}

// scriptSequence is one sequence in a JSON script.
type scriptSequence struct {
	Tag     uint32         `json:"tag"`
	Target  string         `json:"target,omitempty"`
	Actions []scriptAction `json:"actions"`
}

// Script is a parsed set of sequence descriptions. It is compiled against a
// ScriptEnv with Build, which can be called any number of times.
//
// A script looks like:
//
//	{"sequences": [
//	  {"tag": 1, "target": "hero", "actions": [
//	    {"action": "moveTo", "x": 100, "y": 0, "ms": 500, "ease": "bounce-out"},
//	    {"action": "callback", "name": "landed"}
//	  ]}
//	]}
type Script struct {
	Sequences []scriptSequence `json:"sequences"`
}

// ScriptEnv resolves the names a script refers to.
type ScriptEnv struct {
	Targets  map[string]Target
	Textures map[string]*Texture
	Sounds   map[string]*beep.Buffer
	Channel  *Channel

	Callbacks        map[string]func(tag uint32)
	IntegerCallbacks map[string]func(tag uint32, value int32)
	Conditions       map[string]func(tag uint32) bool
}

// ErrInvalidScript is wrapped by script errors that are not JSON syntax
// errors: unknown names, missing fields, empty sequences.
var ErrInvalidScript = errors.New("cadence: invalid script")

// LoadScript parses a JSON script. It checks the structure only; names are
// resolved by Build.
func LoadScript(data []byte) (*Script, error) {
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Sequences) == 0 {
		return nil, fmt.Errorf("parse script: no sequences: %w", ErrInvalidScript)
	}
	for i, seq := range s.Sequences {
		if len(seq.Actions) == 0 {
			return nil, fmt.Errorf("parse script: sequence %d has no actions: %w", i, ErrInvalidScript)
		}
		if len(seq.Actions) > MaxTemplateActions {
			return nil, fmt.Errorf("parse script: sequence %d: %w", i, ErrSequenceFull)
		}
	}
	return &s, nil
}

// ScriptRefs lists the distinct names a script refers to, each sorted.
type ScriptRefs struct {
	Targets          []string
	Textures         []string
	Sounds           []string
	Callbacks        []string
	IntegerCallbacks []string
	Conditions       []string
}

// References collects every name Build will need to resolve.
func (s *Script) References() ScriptRefs {
	var refs ScriptRefs
	add := func(list *[]string, n string) {
		if n != "" && !slices.Contains(*list, n) {
			*list = append(*list, n)
		}
	}
	for _, seq := range s.Sequences {
		add(&refs.Targets, seq.Target)
		for _, a := range seq.Actions {
			add(&refs.Targets, a.Target)
			switch a.Action {
			case "texture", "tintTo":
				add(&refs.Textures, a.Texture)
			case "playFx":
				add(&refs.Sounds, a.Sound)
			case "callback":
				add(&refs.Callbacks, a.Name)
			case "callbackInt":
				add(&refs.IntegerCallbacks, a.Name)
			case "repeatCondition", "repeatBackCondition":
				add(&refs.Conditions, a.Name)
			}
		}
	}
	for _, list := range [][]string{refs.Targets, refs.Textures, refs.Sounds,
		refs.Callbacks, refs.IntegerCallbacks, refs.Conditions} {
		slices.Sort(list)
	}
	return refs
}

// TargetNames returns the distinct target names the script refers to, sorted.
func (s *Script) TargetNames() []string {
	return s.References().Targets
}

// Build compiles every sequence in the script into a fresh template.
func (s *Script) Build(env ScriptEnv) ([]*Sequence, error) {
	out := make([]*Sequence, 0, len(s.Sequences))
	for i, seq := range s.Sequences {
		var target Target
		if seq.Target != "" {
			t, err := env.target(seq.Target)
			if err != nil {
				return nil, fmt.Errorf("sequence %d: %w", i, err)
			}
			target = t
		}
		q := &Sequence{tag: seq.Tag, target: target}
		for j, sa := range seq.Actions {
			a, err := env.build(sa, target)
			if err != nil {
				return nil, fmt.Errorf("sequence %d action %d (%s): %w", i, j, sa.Action, err)
			}
			if err := q.Append(a); err != nil {
				return nil, fmt.Errorf("sequence %d: %w", i, err)
			}
		}
		out = append(out, q)
	}
	return out, nil
}

// RunAll builds the script and submits every sequence to sched. Either all
// sequences are submitted or, on a build error, none are.
func (s *Script) RunAll(sched *Scheduler, env ScriptEnv) ([]Handle, error) {
	seqs, err := s.Build(env)
	if err != nil {
		return nil, err
	}
	for _, q := range seqs {
		if q.Len() > sched.Settings().MaxSequenceActions {
			return nil, fmt.Errorf("sequence %d: %w", q.Tag(), ErrSequenceTooLong)
		}
	}
	handles := make([]Handle, 0, len(seqs))
	for _, q := range seqs {
		h, err := sched.RunSequence(q)
		if err != nil {
			return handles, err
		}
		handles = append(handles, h)
	}
	return handles, nil
}

func (env ScriptEnv) target(name string) (Target, error) {
	t, ok := env.Targets[name]
	if !ok || t == nil {
		return nil, fmt.Errorf("unknown target %q: %w", name, ErrInvalidScript)
	}
	return t, nil
}

func (env ScriptEnv) texture(name string) (*Texture, error) {
	tex, ok := env.Textures[name]
	if !ok || tex == nil {
		return nil, fmt.Errorf("unknown texture %q: %w", name, ErrInvalidScript)
	}
	return tex, nil
}

// build turns one scriptAction into an Action. def is the sequence target,
// used when the action names none.
func (env ScriptEnv) build(sa scriptAction, def Target) (Action, error) {
	target := def
	if sa.Target != "" {
		t, err := env.target(sa.Target)
		if err != nil {
			return nil, err
		}
		target = t
	}
	d := time.Duration(sa.Ms * float64(time.Millisecond))

	switch sa.Action {
	case "delay":
		return env.eased(NewDelayTime(d), sa.Ease)
	case "repeat":
		return NewRepeatForever(), nil
	case "repeatCount":
		return NewRepeatCount(sa.Times), nil
	case "repeatBackCount":
		return NewRepeatBackCount(sa.Back, sa.Times), nil
	case "repeatCondition", "repeatBackCondition":
		cond, ok := env.Conditions[sa.Name]
		if !ok {
			return nil, fmt.Errorf("unknown condition %q: %w", sa.Name, ErrInvalidScript)
		}
		if sa.Action == "repeatCondition" {
			return NewRepeatCondition(sa.Tag, cond), nil
		}
		return NewRepeatBackCondition(sa.Tag, sa.Back, cond), nil
	case "callback":
		fn, ok := env.Callbacks[sa.Name]
		if !ok {
			return nil, fmt.Errorf("unknown callback %q: %w", sa.Name, ErrInvalidScript)
		}
		return NewCallback(sa.Tag, fn), nil
	case "callbackInt":
		fn, ok := env.IntegerCallbacks[sa.Name]
		if !ok {
			return nil, fmt.Errorf("unknown integer callback %q: %w", sa.Name, ErrInvalidScript)
		}
		return NewCallbackInteger(sa.Tag, fn, sa.Value), nil
	case "playFx":
		if env.Channel == nil {
			return nil, fmt.Errorf("no audio channel: %w", ErrInvalidScript)
		}
		snd, ok := env.Sounds[sa.Sound]
		if !ok {
			return nil, fmt.Errorf("unknown sound %q: %w", sa.Sound, ErrInvalidScript)
		}
		return NewPlayFx(sa.Tag, env.Channel, snd), nil
	case "tintTo":
		tex, err := env.texture(sa.Texture)
		if err != nil {
			return nil, err
		}
		return env.eased(NewTintTo(sa.Tag, tex, sa.R, sa.G, sa.B, d), sa.Ease)
	}

	if target == nil {
		return nil, fmt.Errorf("no target: %w", ErrInvalidScript)
	}
	switch sa.Action {
	case "show":
		return NewShow(target), nil
	case "hide":
		return NewHide(target), nil
	case "place":
		return NewPlace(target, sa.X, sa.Y), nil
	case "placeX":
		return NewPlaceX(target, sa.X), nil
	case "placeY":
		return NewPlaceY(target, sa.Y), nil
	case "rotate":
		return NewRotate(target, sa.Angle), nil
	case "scale":
		return NewScale(target, sa.Scale), nil
	case "alpha":
		return NewAlpha(target, sa.Alpha), nil
	case "zOrder":
		return NewZOrder(target, sa.Z), nil
	case "texture":
		textured, ok := target.(Textured)
		if !ok {
			return nil, fmt.Errorf("target cannot change texture: %w", ErrInvalidScript)
		}
		tex, err := env.texture(sa.Texture)
		if err != nil {
			return nil, err
		}
		return NewTextureChange(textured, tex), nil
	case "moveTo":
		return env.eased(NewMoveTo(sa.Tag, target, sa.X, sa.Y, d), sa.Ease)
	case "rotateTo":
		return env.eased(NewRotateTo(sa.Tag, target, sa.Angle, d), sa.Ease)
	case "scaleTo":
		return env.eased(NewScaleTo(sa.Tag, target, sa.Scale, d), sa.Ease)
	case "scaleXTo":
		return env.eased(NewScaleXTo(sa.Tag, target, sa.Scale, d), sa.Ease)
	case "scaleYTo":
		return env.eased(NewScaleYTo(sa.Tag, target, sa.Scale, d), sa.Ease)
	case "alphaTo":
		return env.eased(NewAlphaTo(sa.Tag, target, sa.Alpha, d), sa.Ease)
	case "blink":
		return env.eased(NewBlink(sa.Tag, target, sa.Blinks, d), sa.Ease)
	case "shake":
		return env.eased(NewShake(sa.Tag, target, sa.Radius, d), sa.Ease)
	case "splineTo":
		a, err := NewSplineTo(sa.Tag, target, sa.Points, sa.Tension, d)
		if err != nil {
			return nil, err
		}
		return env.eased(a, sa.Ease)
	}
	return nil, fmt.Errorf("unknown action %q: %w", sa.Action, ErrInvalidScript)
}

// eased applies a named easing curve. An empty name keeps linear.
func (env ScriptEnv) eased(a interface {
	Action
	Easer
}, name string) (Action, error) {
	if name == "" {
		return a, nil
	}
	e, ok := ParseEase(name)
	if !ok {
		return nil, fmt.Errorf("unknown ease %q: %w", name, ErrInvalidScript)
	}
	a.SetInterpolation(e)
	return a, nil
}

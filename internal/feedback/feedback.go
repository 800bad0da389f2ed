// Package feedback carries the fire-and-forget haptic and sound cues the
// screens request. Implementations never report errors.
package feedback

// HapticKind is a tactile feedback style.
type HapticKind int

const (
	HapticNone HapticKind = iota
	HapticLight
	HapticSuccess
	HapticError
	HapticSelection
)

func (k HapticKind) String() string {
	switch k {
	case HapticLight:
		return "light"
	case HapticSuccess:
		return "success"
	case HapticError:
		return "error"
	case HapticSelection:
		return "selection"
	default:
		return "none"
	}
}

// SoundKind is an audible cue.
type SoundKind int

const (
	SoundNone SoundKind = iota
	SoundTap
	SoundSuccess
	SoundError
)

func (k SoundKind) String() string {
	switch k {
	case SoundTap:
		return "tap"
	case SoundSuccess:
		return "success"
	case SoundError:
		return "error"
	default:
		return "none"
	}
}

// SystemSoundID is the platform sound played for k on devices that have one.
func (k SoundKind) SystemSoundID() uint32 {
	switch k {
	case SoundTap:
		return 1104 // Tock
	case SoundSuccess:
		return 1114 // Tweet Sent
	case SoundError:
		return 1053 // Failed
	default:
		return 0
	}
}

// Cue is what a transition asks the device to do.
type Cue struct {
	Haptic HapticKind
	Sound  SoundKind
}

// Cues used by the navigation flow.
var (
	Tap     = Cue{Haptic: HapticLight, Sound: SoundTap}
	Select  = Cue{Haptic: HapticSelection, Sound: SoundTap}
	Success = Cue{Haptic: HapticSuccess, Sound: SoundSuccess}
	Failure = Cue{Haptic: HapticError, Sound: SoundError}
)

func (c Cue) String() string { return c.Haptic.String() + "/" + c.Sound.String() }

// Feedback receives cues.
type Feedback interface {
	Notify(c Cue)
}

// Func adapts a function to Feedback.
type Func func(c Cue)

func (f Func) Notify(c Cue) { f(c) }

// Nop discards cues.
type Nop struct{}

func (Nop) Notify(Cue) {}

// Multi delivers each cue to every member in order.
type Multi []Feedback

func (m Multi) Notify(c Cue) {
	for _, f := range m {
		if f != nil {
			f.Notify(c)
		}
	}
}

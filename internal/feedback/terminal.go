package feedback

import (
	"io"

	"go.uber.org/zap"
)

// Bell rings the terminal bell for error sounds, the closest a terminal gets
// to a failure buzz.
type Bell struct {
	w io.Writer
}

func NewBell(w io.Writer) *Bell { return &Bell{w: w} }

func (b *Bell) Notify(c Cue) {
	if b.w == nil || c.Sound != SoundError {
		return
	}
	_, _ = io.WriteString(b.w, "\a")
}

// Log writes one debug record per cue.
type Log struct {
	l *zap.Logger
}

func NewLog(l *zap.Logger) *Log { return &Log{l: l} }

func (g *Log) Notify(c Cue) {
	if g.l == nil {
		return
	}
	g.l.Debug("feedback",
		zap.Stringer("haptic", c.Haptic),
		zap.Stringer("sound", c.Sound),
		zap.Uint32("system_sound_id", c.Sound.SystemSoundID()),
	)
}

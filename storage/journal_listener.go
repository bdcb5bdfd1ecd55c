package storage

import (
	"go.uber.org/zap"

	"coldtrack/bus"
)

// JournalListener persists every event delivered by the bus. A failed append
// is logged and never propagated: journaling must not stall the fan-out.
type JournalListener struct {
	Journal Journal
	Log     *zap.SugaredLogger
}

func (l *JournalListener) OnEvent(event bus.Event) {
	if err := l.Journal.Append(event); err != nil {
		l.Log.Errorw("journal append failed", "id", event.ID, "error", err)
	}
}

package main

import (
	"fmt"
	"log/slog"
)

// debugAdapter exposes a slog.Logger as the Printf logger of pdu.Decoder.
type debugAdapter struct {
	*slog.Logger
}

func (log *debugAdapter) Printf(msg string, args ...any) {
	log.Logger.Debug(fmt.Sprintf(msg, args...))
}

package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog/log"
)

// LogAlerter prints alerts to out and records them in the log.
type LogAlerter struct {
	mu  sync.Mutex
	out io.Writer
}

func NewLogAlerter(out io.Writer) *LogAlerter {
	return &LogAlerter{out: out}
}

func (a *LogAlerter) Alert(msg string) {
	log.Warn().Str("module", "adapters.ui").Str("alert", msg).Msg("alert")
	if a.out == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintf(a.out, "Alert: %s\n", msg)
}

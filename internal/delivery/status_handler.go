package delivery

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"

	"github.com/chatnova/chatnova/internal/memory"
)

type StatusHandler struct {
	memory    memory.Store
	startedAt time.Time
	log       *logger.ZapLogger
}

func NewStatusHandler(mem memory.Store, log *logger.ZapLogger) *StatusHandler {
	return &StatusHandler{
		memory:    mem,
		startedAt: time.Now(),
		log:       log,
	}
}

func (h *StatusHandler) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(200)
	w.Write([]byte("pong"))
}

func (h *StatusHandler) Status(w http.ResponseWriter, _ *http.Request) {
	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "status requested",
		Service: "chatnova",
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"sessions": h.memory.Size(),
		"started":  humanize.Time(h.startedAt),
	})
}

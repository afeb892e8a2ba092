package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"vaultsync/internal/domain"
)

const defaultSnapshotLimit = 10

type hub struct {
	logger *zap.Logger

	mu     sync.Mutex
	events []domain.TimelineEvent
	subs   map[*websocket.Conn]struct{}
}

func newHub(logger *zap.Logger) *hub {
	return &hub{
		logger: logger,
		subs:   make(map[*websocket.Conn]struct{}),
	}
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	h := newHub(logger)

	r := mux.NewRouter()
	r.HandleFunc("/v1/activity", h.handleSnapshot).Methods(http.MethodGet)
	r.HandleFunc("/v1/activity", h.handleAppend).Methods(http.MethodPost)
	r.HandleFunc("/v1/records", h.handleRecords).Methods(http.MethodPost)
	r.HandleFunc("/v1/activity/stream", h.handleStream).Methods(http.MethodGet)
	r.Use(h.requireBearer)

	logger.Info("activity hub listening", zap.String("addr", *addr))
	if err := http.ListenAndServe(*addr, r); err != nil {
		logger.Fatal("listen failed", zap.Error(err))
	}
}

// requireBearer checks for a bearer token on every request. The hub is
// a development stand-in, so presence is enough; it never sees private
// key material either way.
func (h *hub) requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *hub) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	limit := defaultSnapshotLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "bad limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	h.mu.Lock()
	sorted := make([]domain.TimelineEvent, len(h.events))
	copy(sorted, h.events)
	h.mu.Unlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EventTimestamp > sorted[j].EventTimestamp
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(sorted)
}

func (h *hub) handleAppend(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var ev domain.TimelineEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.append(ev)
	w.WriteHeader(http.StatusAccepted)
}

func (h *hub) handleRecords(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var events []domain.TimelineEvent
	if err := json.NewDecoder(r.Body).Decode(&events); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	for _, ev := range events {
		h.append(ev)
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *hub) append(ev domain.TimelineEvent) {
	now := time.Now().UnixMilli()
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.EventTimestamp == 0 {
		ev.EventTimestamp = now
	}
	if ev.CreatedAt == 0 {
		ev.CreatedAt = now
	}

	h.mu.Lock()
	h.events = append(h.events, ev)
	conns := make([]*websocket.Conn, 0, len(h.subs))
	for c := range h.subs {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	h.logger.Info("event appended",
		zap.String("id", ev.ID),
		zap.String("type", ev.EventType),
		zap.Int("subscribers", len(conns)))

	for _, c := range conns {
		if err := c.WriteJSON(ev); err != nil {
			h.logger.Debug("subscriber write failed, dropping", zap.Error(err))
			h.drop(c)
		}
	}
}

func (h *hub) handleStream(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.subs[conn] = struct{}{}
	h.mu.Unlock()
	h.logger.Info("subscriber connected", zap.String("remote", r.RemoteAddr))

	// Reader loop only notices closure; subscribers never send.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.logger.Debug("subscriber closed", zap.Error(err))
				h.drop(conn)
				return
			}
		}
	}()
}

func (h *hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.subs, conn)
	h.mu.Unlock()
	conn.Close()
}

// Command htmlharvest-live is a small demo server: it accepts HTML chunks
// over a WebSocket connection, feeds them into a stream.Extractor as they
// arrive, and pushes each finalized MatchResult back to the same connection
// as JSON, one message per match. It exists to exercise the streaming
// extractor against a genuinely asynchronous chunk source instead of a
// fixed-size CLI loop.
//
// The net/http + log/slog server wiring is grounded on example/main.go from
// the teacher repo (LoggerMiddleware + slog.NewTextHandler + ListenAndServe);
// the todos component's per-connection subscription channel there is the
// model for this server's per-connection match-push goroutine. The
// WebSocket transport itself uses github.com/gorilla/websocket, a teacher
// dependency the core template-rendering use never exercised.
package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/websocket"

	"github.com/dpotapov/htmlharvest/stream"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// loggerMiddleware mirrors example/main.go's LoggerMiddleware.
func loggerMiddleware(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info("HTTP request", "method", r.Method, "url", r.URL)
		next.ServeHTTP(w, r)
	})
}

// session drives one WebSocket connection's extractor and match-push loop.
type session struct {
	conn    *websocket.Conn
	extract *stream.Extractor
	logger  *slog.Logger
	sent    sentCounts
}

// clientMessage is the incoming control/data message. A "chunk" message
// feeds bytes; a "select" message registers a selector; an empty/"finish"
// message drains and finalizes everything still open.
type clientMessage struct {
	Type     string `json:"type"`
	Selector string `json:"selector,omitempty"`
	Data     string `json:"data,omitempty"`
}

type matchMessage struct {
	Type       string            `json:"type"`
	Selector   string            `json:"selector"`
	Text       string            `json:"text"`
	Attributes map[string]string `json:"attributes"`
}

func (s *session) run() {
	defer s.conn.Close()
	for {
		var msg clientMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			s.logger.Info("connection closed", "error", err)
			return
		}
		switch msg.Type {
		case "select":
			if err := s.extract.AddSelector(msg.Selector); err != nil {
				s.logger.Warn("invalid selector", "selector", msg.Selector, "error", err)
				continue
			}
		case "chunk":
			s.extract.Feed([]byte(msg.Data))
			s.pushNewMatches()
		case "finish", "":
			s.extract.Finish()
			s.pushNewMatches()
			return
		}
	}
}

// sentCounts tracks, per selector key, how many matches have already been sent
// to the client so a repeated poll only emits the new tail.
type sentCounts map[string]int

func (s *session) pushNewMatches() {
	if s.sent == nil {
		s.sent = make(sentCounts)
	}
	for _, key := range s.extract.Keys() {
		matches, _ := s.extract.GetMatches(key)
		for _, m := range matches[s.sent[key]:] {
			attrs := make(map[string]string, len(m.Attributes))
			for _, a := range m.Attributes {
				attrs[a.Key] = a.Val
			}
			_ = s.conn.WriteJSON(matchMessage{
				Type:       "match",
				Selector:   key,
				Text:       m.Text,
				Attributes: attrs,
			})
		}
		s.sent[key] = len(matches)
	}
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	mux := http.NewServeMux()
	mux.HandleFunc("/extract", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error("websocket upgrade failed", "error", err)
			return
		}
		s := &session{conn: conn, extract: stream.New(), logger: logger}
		s.run()
	})

	logger.Info("Starting HTTP server", "address", "http://localhost:8081/extract")
	err := http.ListenAndServe(":8081", loggerMiddleware(mux, logger))
	logger.Error("HTTP server error", "error", err)
}

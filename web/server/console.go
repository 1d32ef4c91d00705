package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/df07/go-raymarcher/pkg/core"
)

// consoleHistory is the number of messages kept for /api/console
const consoleHistory = 200

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by recording messages for one render
// into the server console
type WebLogger struct {
	renderID string
	console  *Console
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to stdout for server logs
	fmt.Print(message)

	wl.console.Add(ConsoleMessage{
		RenderID:  wl.renderID,
		Message:   message,
		Timestamp: time.Now(),
		Level:     "info",
	})
}

// subscriberBuffer is the number of messages a slow stream may fall behind
const subscriberBuffer = 50

// Console keeps the most recent log messages of all renders and fans new
// messages out to stream subscribers
type Console struct {
	mu          sync.Mutex
	messages    []ConsoleMessage
	limit       int
	subscribers map[chan ConsoleMessage]struct{}
}

// NewConsole creates a console keeping at most limit messages
func NewConsole(limit int) *Console {
	return &Console{limit: limit, subscribers: make(map[chan ConsoleMessage]struct{})}
}

// Logger returns a logger that records into this console
func (c *Console) Logger(renderID string) core.Logger {
	return &WebLogger{renderID: renderID, console: c}
}

// Add records a message, dropping the oldest beyond the limit
func (c *Console) Add(msg ConsoleMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
	if over := len(c.messages) - c.limit; over > 0 {
		c.messages = append(c.messages[:0], c.messages[over:]...)
	}

	// Non-blocking: a full subscriber drops the message
	for ch := range c.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// Subscribe registers a stream for new messages. The returned function
// unregisters it and closes the channel.
func (c *Console) Subscribe() (<-chan ConsoleMessage, func()) {
	ch := make(chan ConsoleMessage, subscriberBuffer)

	c.mu.Lock()
	c.subscribers[ch] = struct{}{}
	c.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subscribers, ch)
			c.mu.Unlock()
			close(ch)
		})
	}
}

// Messages returns a copy of the recorded messages, oldest first
func (c *Console) Messages() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ConsoleMessage(nil), c.messages...)
}

// handleConsole returns the recent console messages
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	messages := s.console.Messages()
	if messages == nil {
		messages = []ConsoleMessage{}
	}
	writeJSON(w, http.StatusOK, messages)
}

// handleConsoleStream sends new console messages as Server-Sent Events
// until the client disconnects
func (s *Server) handleConsoleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	messages, unsubscribe := s.console.Subscribe()
	defer unsubscribe()

	setSSEHeaders(w)
	fmt.Fprint(w, "event: ready\ndata: {}\n\n")
	flusher.Flush()

	ctx := r.Context()
	for {
		select {
		case msg := <-messages:
			data, err := json.Marshal(msg)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "event: console\ndata: %s\n\n", data); err != nil {
				// Client disconnected during write
				return
			}
			flusher.Flush()
		case <-ctx.Done():
			return
		}
	}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func setSSEHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("Access-Control-Allow-Origin", "*")
}

// Package mockagent serves a local stand-in for the conversational agent,
// speaking the same messages endpoint the advisor calls.
package mockagent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dohr-michael/advisor/internal/agent"
)

// Style selects how the reply is carried in the response.
type Style string

const (
	StyleTool      Style = "tool"      // tool_call_message to send_message
	StyleAssistant Style = "assistant" // assistant_message
)

// ParseStyle validates a style name.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleTool, StyleAssistant:
		return Style(s), nil
	default:
		return "", fmt.Errorf("unknown mock style %q (want tool or assistant)", s)
	}
}

// Server is the mock agent HTTP server.
type Server struct {
	httpServer *http.Server
	style      Style
}

// NewServer creates a mock agent listening on addr.
func NewServer(addr string, style Style) *Server {
	s := &Server{style: style}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/v1/health", s.handleHealth)
	r.Post("/v1/agents/{agentID}/messages", s.handleMessages)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening. It blocks until the server is stopped.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	slog.Info("mock agent listening", "addr", ln.Addr().String(), "style", s.style)
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// wireMessage is one record of the mock response.
type wireMessage struct {
	ID          string        `json:"id"`
	Date        string        `json:"date"`
	MessageType string        `json:"message_type"`
	Reasoning   string        `json:"reasoning,omitempty"`
	Content     string        `json:"content,omitempty"`
	ToolCall    *wireToolCall `json:"tool_call,omitempty"`
}

type wireToolCall struct {
	Name       string `json:"name"`
	Arguments  string `json:"arguments"` // JSON-encoded string
	ToolCallID string `json:"tool_call_id"`
}

func (s *Server) handleMessages(w http.ResponseWriter, r *http.Request) {
	var req agent.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "invalid body: " + err.Error()})
		return
	}
	if len(req.Messages) == 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "messages must not be empty"})
		return
	}

	utterance := req.Messages[len(req.Messages)-1].Content
	reply := replyFor(utterance)
	now := time.Now().UTC().Format(time.RFC3339)

	msgs := []wireMessage{{
		ID:          "message-" + uuid.NewString(),
		Date:        now,
		MessageType: "reasoning_message",
		Reasoning:   "El usuario pregunta por productos; respondo con el catálogo.",
	}}

	toolName := req.AssistantMessageToolName
	if toolName == "" {
		toolName = "send_message"
	}
	kwarg := req.AssistantMessageToolKwarg
	if kwarg == "" {
		kwarg = "message"
	}

	switch s.style {
	case StyleAssistant:
		msgs = append(msgs, wireMessage{
			ID:          "message-" + uuid.NewString(),
			Date:        now,
			MessageType: string(agent.MessageTypeAssistant),
			Content:     reply,
		})
	default:
		args, _ := json.Marshal(map[string]string{kwarg: reply})
		msgs = append(msgs, wireMessage{
			ID:          "message-" + uuid.NewString(),
			Date:        now,
			MessageType: string(agent.MessageTypeToolCall),
			ToolCall: &wireToolCall{
				Name:       toolName,
				Arguments:  string(args),
				ToolCallID: "call-" + uuid.NewString(),
			},
		})
	}

	slog.Debug("mock agent reply", "agent", chi.URLParam(r, "agentID"), "utterance", utterance)
	writeJSON(w, http.StatusOK, map[string]any{
		"messages": msgs,
		"usage": map[string]int{
			"completion_tokens": len(reply) / 4,
			"prompt_tokens":     len(utterance) / 4,
			"step_count":        1,
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// requestLogger logs one line per request with slog.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			slog.Info("request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"latency", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

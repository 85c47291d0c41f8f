package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/bastiangx/jyutserve/internal/logger"
	"github.com/bastiangx/jyutserve/internal/utils"
	"github.com/bastiangx/jyutserve/pkg/config"
	"github.com/bastiangx/jyutserve/pkg/jyutping"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// ReloadFunc builds a fresh engine, usually from the configured data file.
type ReloadFunc func() jyutping.Lookuper

// Server handles msgpack IPC for lookups
type Server struct {
	mu     sync.RWMutex
	engine jyutping.Lookuper
	reload ReloadFunc
	config *config.Config

	reader       io.Reader
	writer       *bufio.Writer
	encoder      *msgpack.Encoder
	requestCount int
	log          *log.Logger
}

// NewServer creates a lookup server using stdin/stdout for IPC.
// reload may be nil, in which case "reload" requests fail.
func NewServer(engine jyutping.Lookuper, cfg *config.Config, reload ReloadFunc) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s := &Server{
		engine: engine,
		reload: reload,
		config: cfg,
		log:    logger.New("server"),
	}
	return s.WithIO(os.Stdin, os.Stdout)
}

// WithIO replaces the request reader and response writer.
func (s *Server) WithIO(r io.Reader, w io.Writer) *Server {
	s.reader = bufio.NewReader(r)
	s.writer = bufio.NewWriter(w)
	s.encoder = msgpack.NewEncoder(s.writer)
	return s
}

// Start sends the ready signal and serves requests until the reader
// is exhausted.
func (s *Server) Start() error {
	s.log.Debug("Starting server")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	decoder := msgpack.NewDecoder(s.reader)
	for {
		raw, err := decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			s.log.Errorf("Reading request: %v", err)
			return fmt.Errorf("reading request: %w", err)
		}
		s.requestCount++

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			s.log.Errorf("Unmarshaling request: %v", err)
			if err := s.sendError("", "invalid msgpack request", 400); err != nil {
				return err
			}
			continue
		}
		if err := s.handleRequest(req); err != nil {
			return err
		}
	}
}

// handleRequest dispatches on the action, writing exactly one response.
func (s *Server) handleRequest(req Request) error {
	switch req.Action {
	case "":
		return s.handleLookup(req)
	case ActionInfo:
		return s.handleInfo(req, "ok")
	case ActionReload:
		if s.reload == nil {
			return s.sendError(req.ID, "reload is not available", 501)
		}
		engine := s.reload()
		s.mu.Lock()
		s.engine = engine
		s.mu.Unlock()
		s.log.Info("Engine reloaded", "syllables", len(engine.Syllables()))
		return s.handleInfo(req, "reloaded")
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), 400)
	}
}

func (s *Server) handleLookup(req Request) error {
	query := strings.TrimSpace(req.Query)
	if len(query) < s.config.Server.MinQueryLen {
		return s.sendError(req.ID, fmt.Sprintf("query must be at least %d characters", s.config.Server.MinQueryLen), 400)
	}
	if maxLen := s.config.Server.MaxQueryLen; maxLen > 0 && len(query) > maxLen {
		return s.sendError(req.ID, fmt.Sprintf("query exceeds maximum length of %d characters", maxLen), 400)
	}

	engine := s.current()
	start := time.Now()
	res := engine.Lookup(req.Query)
	elapsed := time.Since(start)
	s.log.Debugf("Took [ %v ] for query '%s'", elapsed, req.Query)

	return s.send(LookupResponse{
		ID:        req.ID,
		Exact:     res.Exact,
		Initial:   res.Initial,
		Final:     res.Final,
		Count:     utils.UniqueCount(res.Exact, res.Initial, res.Final),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleInfo(req Request, status string) error {
	engine := s.current()
	return s.send(InfoResponse{
		ID:        req.ID,
		Status:    status,
		Onsets:    engine.Onsets(),
		Rimes:     engine.Rimes(),
		Syllables: len(engine.Syllables()),
		Stats:     engine.Stats(),
	})
}

func (s *Server) current() jyutping.Lookuper {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

// send encodes one response and flushes it to the client.
func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Marshaling response: %v", err)
		return fmt.Errorf("writing response: %w", err)
	}
	return s.writer.Flush()
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

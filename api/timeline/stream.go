package timeline

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/killallgit/segment-editor/api/types"
	"github.com/killallgit/segment-editor/internal/models"
	"github.com/killallgit/segment-editor/internal/services/geometry"
	"github.com/killallgit/segment-editor/internal/services/interaction"
	"github.com/killallgit/segment-editor/pkg/config"
)

func newUpgrader(cfg config.WebSocketConfig) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  cfg.ReadBufferSize,
		WriteBufferSize: cfg.WriteBufferSize,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
}

// socket serializes writes; gorilla connections allow one concurrent writer.
type socket struct {
	conn      *websocket.Conn
	mu        sync.Mutex
	writeWait time.Duration
}

func (s *socket) write(messageType int, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeWait > 0 {
		_ = s.conn.SetWriteDeadline(time.Now().Add(s.writeWait))
	}
	return s.conn.WriteMessage(messageType, data)
}

// session is one live editing connection over a media item
type session struct {
	deps    *types.Dependencies
	mediaID string
	apply   bool
	sock    *socket
	rec     *interaction.Recorder
	in      *interaction.Interpreter
	layout  geometry.Layout
	log     *zap.Logger
}

// Stream upgrades to a websocket carrying pointer messages in and events out
// @Summary      Live gesture stream
// @Description  Websocket. The client sends interaction messages, the server answers with every event emitted, live and final. With apply=true final edits are persisted and the timeline refreshed.
// @Tags         timeline
// @Param        id     path  string  true   "Media ID"
// @Param        width  query number  false  "Track width in pixels"
// @Param        apply  query bool    false  "Persist final edits"
// @Param        selection_mode query bool false "Start in range selection mode"
// @Success      101 "Switching protocols"
// @Failure      404 {object} types.ErrorResponse "Media not found"
// @Router       /api/v1/media/{id}/timeline/ws [get]
func Stream(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID := c.Param("id")
		width, ok := types.ParseFloatQuery(c, "width", deps.ContainerWidth(defaultWidth))
		if !ok {
			return
		}

		snap, err := deps.SegmentService.Snapshot(c.Request.Context(), mediaID)
		if err != nil {
			types.SendAppError(c, err, "Failed to load timeline")
			return
		}

		upgrader := newUpgrader(deps.WebSocket)
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			deps.Log().Warn("websocket upgrade failed", zap.Error(err))
			return
		}
		defer conn.Close()

		rec := &interaction.Recorder{}
		in := interaction.NewInterpreter(rec, deps.InteractionOptions(c.Query("selection_mode") == "true"))
		in.SetWidth(width)

		s := &session{
			deps:    deps,
			mediaID: mediaID,
			apply:   c.Query("apply") == "true",
			sock:    &socket{conn: conn, writeWait: deps.WebSocket.WriteWait},
			rec:     rec,
			in:      in,
			log:     deps.Log().With(zap.String("media_id", mediaID)),
		}
		s.setSnapshot(snap)
		s.run(c.Request.Context())
	}
}

func (s *session) setSnapshot(snap models.Snapshot) {
	s.in.SetSnapshot(snap)
	s.layout = geometry.Build(snap, geometry.Options{Logger: s.log})
}

func (s *session) run(ctx context.Context) {
	cfg := s.deps.WebSocket
	if cfg.MaxMessageSize > 0 {
		s.sock.conn.SetReadLimit(cfg.MaxMessageSize)
	}

	done := make(chan struct{})
	defer close(done)
	if cfg.PongWait > 0 {
		_ = s.sock.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
		s.sock.conn.SetPongHandler(func(string) error {
			return s.sock.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
		})
		go s.keepAlive(cfg.PongWait*9/10, done)
	}

	s.log.Debug("timeline stream opened")
	for {
		_, data, err := s.sock.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn("timeline stream closed unexpectedly", zap.Error(err))
			}
			break
		}

		var msg interaction.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("invalid message: " + err.Error())
			continue
		}
		if err := s.in.Dispatch(msg, &s.layout); err != nil {
			s.sendError(err.Error())
			continue
		}
		if err := s.flush(ctx); err != nil {
			break
		}
	}
	s.in.Abort()
	s.log.Debug("timeline stream closed")
}

func (s *session) keepAlive(period time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := s.sock.write(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// flush writes the events emitted by the last message and applies finals
func (s *session) flush(ctx context.Context) error {
	events := append([]models.Event(nil), s.rec.Events()...)
	s.rec.Reset()

	changed := false
	for _, ev := range events {
		data, err := models.MarshalEvent(ev)
		if err != nil {
			s.log.Error("failed to encode event", zap.Error(err))
			continue
		}
		if err := s.sock.write(websocket.TextMessage, data); err != nil {
			return err
		}

		if s.apply && models.IsFinal(ev) {
			ok, err := s.deps.SegmentService.Apply(ctx, s.mediaID, ev)
			if err != nil {
				s.sendError(err.Error())
				continue
			}
			changed = changed || ok
		}
	}

	if changed {
		snap, err := s.deps.SegmentService.Snapshot(ctx, s.mediaID)
		if err != nil {
			s.log.Warn("failed to refresh timeline", zap.Error(err))
			return nil
		}
		s.setSnapshot(snap)
	}
	return nil
}

func (s *session) sendError(message string) {
	data, _ := json.Marshal(gin.H{"type": "error", "payload": gin.H{"message": message}})
	if err := s.sock.write(websocket.TextMessage, data); err != nil {
		s.log.Debug("failed to send error frame", zap.Error(err))
	}
}

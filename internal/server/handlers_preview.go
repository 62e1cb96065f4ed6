package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/jonathan/portfolio-builder/internal/rendering"
	"github.com/jonathan/portfolio-builder/internal/templates"
)

const (
	liveWriteWait  = 10 * time.Second
	livePongWait   = 60 * time.Second
	livePingPeriod = livePongWait * 9 / 10
)

type treeResponse struct {
	Version    uint64               `json:"version"`
	Resolution templates.Resolution `json:"resolution"`
	Tree       *rendering.Tree      `json:"tree"`
}

// handlePreview serves the live tree as a complete HTML page
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	st, _ := sess.Store.Snapshot()
	page, res, err := s.engine.Preview(&st)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	setResolutionHeaders(w, res)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}

// handlePreviewTree serves the live tree as JSON
func (s *Server) handlePreviewTree(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	st, version := sess.Store.Snapshot()
	tree, res, err := s.engine.RenderLive(&st)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	setResolutionHeaders(w, res)
	jsonResponse(w, http.StatusOK, treeResponse{Version: version, Resolution: res, Tree: tree})
}

// handleLive pushes the rendered tree over a websocket: once on connect and
// again after every committed edit. Clients only send pings and close frames.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.String("session_id", sess.ID), zap.Error(err))
		return
	}
	defer conn.Close()

	updates, unsubscribe := sess.Store.Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go s.liveReadLoop(conn, cancel)

	log := s.logger.With(zap.String("session_id", sess.ID))
	log.Debug("live preview connected")

	push := func() error {
		st, version := sess.Store.Snapshot()
		tree, res, err := s.engine.RenderLive(&st)
		if err != nil {
			return err
		}
		_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
		return conn.WriteJSON(treeResponse{Version: version, Resolution: res, Tree: tree})
	}
	if err := push(); err != nil {
		log.Warn("live preview push failed", zap.Error(err))
		return
	}

	ticker := time.NewTicker(livePingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Debug("live preview disconnected")
			return
		case _, ok := <-updates:
			if !ok {
				return
			}
			if err := push(); err != nil {
				log.Warn("live preview push failed", zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// liveReadLoop drains client frames so pongs and close frames are processed.
// It cancels the connection context when the client goes away.
func (s *Server) liveReadLoop(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(livePongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(livePongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/vovakirdan/gridkit/internal/maze"
	"github.com/vovakirdan/gridkit/internal/storage"
	"github.com/vovakirdan/gridkit/pkg/grid"
)

// walkState is sent to the client after every command.
type walkState struct {
	Position grid.Coord `json:"position"`
	Steps    int        `json:"steps"`
	Finished bool       `json:"finished"`
	Best     int        `json:"best,omitempty"`
	Error    string     `json:"error,omitempty"`
}

// walkSession is one WebSocket client walking a saved maze.
type walkSession struct {
	srv    *Server
	mazeID int64
	player string
	walker maze.Walker
	best   int
}

// handleWalk upgrades to a WebSocket. Each text message is a direction
// ("up", "right", "s", ...) or "restart"; the reply is the walk state.
func (s *Server) handleWalk(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		errorResponse(w, http.StatusNotFound, "maze not found")
		return
	}
	rec, err := s.store.GetMaze(id)
	if errors.Is(err, storage.ErrNotFound) {
		errorResponse(w, http.StatusNotFound, "maze not found")
		return
	}
	if err != nil {
		s.logger.Error("cannot load maze", "id", id, "error", err)
		errorResponse(w, http.StatusInternalServerError, "cannot load maze")
		return
	}
	mz, err := rec.Maze()
	if err != nil {
		s.logger.Error("cannot decode maze", "id", id, "error", err)
		errorResponse(w, http.StatusInternalServerError, "cannot decode maze")
		return
	}

	player := r.URL.Query().Get("player")
	if player == "" {
		player = "web-" + uuid.NewString()[:8]
	}

	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket accept failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer c.Close(websocket.StatusInternalError, "")

	s.logger.Info("walk started", "maze", id, "player", player, "remote", r.RemoteAddr)
	defer s.logger.Info("walk ended", "maze", id, "player", player)

	sess := &walkSession{
		srv:    s,
		mazeID: id,
		player: player,
		walker: maze.NewWalker(mz),
	}
	sess.best, _ = s.store.BestWalk(id)

	if err := sess.run(r.Context(), c); err != nil {
		switch websocket.CloseStatus(err) {
		case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		default:
			s.logger.Debug("walk connection closed", "maze", id, "error", err)
		}
		return
	}
	c.Close(websocket.StatusNormalClosure, "")
}

// run reads commands until the client disconnects.
func (ws *walkSession) run(ctx context.Context, c *websocket.Conn) error {
	if err := wsjson.Write(ctx, c, ws.state("")); err != nil {
		return err
	}
	for {
		typ, data, err := c.Read(ctx)
		if err != nil {
			return err
		}
		if typ != websocket.MessageText {
			if err := wsjson.Write(ctx, c, ws.state("expected a text message")); err != nil {
				return err
			}
			continue
		}
		if err := wsjson.Write(ctx, c, ws.state(ws.apply(string(data)))); err != nil {
			return err
		}
	}
}

// apply runs one command and returns an error message for the client, or
// an empty string.
func (ws *walkSession) apply(cmd string) string {
	cmd = strings.ToLower(strings.TrimSpace(cmd))
	if cmd == "restart" {
		ws.walker.Reset()
		return ""
	}

	d, err := grid.ParseDir(cmd)
	if err != nil {
		return err.Error()
	}
	if ws.walker.Finished() {
		return "walk finished, send restart to walk again"
	}
	if !ws.walker.Move(d) {
		return "wall"
	}
	if ws.walker.Finished() {
		ws.record()
	}
	return ""
}

func (ws *walkSession) record() {
	steps := ws.walker.Steps()
	if _, err := ws.srv.store.SaveWalk(ws.mazeID, ws.player, steps); err != nil {
		ws.srv.logger.Warn("cannot save walk", "maze", ws.mazeID, "error", err)
		return
	}
	if ws.best == 0 || steps < ws.best {
		ws.best = steps
	}
}

func (ws *walkSession) state(errMsg string) walkState {
	return walkState{
		Position: ws.walker.Position(),
		Steps:    ws.walker.Steps(),
		Finished: ws.walker.Finished(),
		Best:     ws.best,
		Error:    errMsg,
	}
}

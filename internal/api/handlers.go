package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/vovakirdan/gridkit/internal/registry"
	"github.com/vovakirdan/gridkit/internal/storage"
	"github.com/vovakirdan/gridkit/pkg/grid"
)

// mazeView is the JSON form of a saved maze.
type mazeView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Algorithm string    `json:"algorithm"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Seed      int64     `json:"seed"`
	CreatedAt time.Time `json:"created_at"`
	Layout    string    `json:"layout,omitempty"`
	Solution  int       `json:"solution,omitempty"` // steps on the shortest path
	Best      int       `json:"best,omitempty"`     // fewest steps walked
}

func newMazeView(r storage.MazeRecord) mazeView {
	return mazeView{
		ID:        r.ID,
		Name:      r.Name,
		Algorithm: r.Algorithm,
		Width:     r.Width,
		Height:    r.Height,
		Seed:      r.Seed,
		CreatedAt: r.CreatedAt,
	}
}

// neighborView describes one neighbor of a cell.
type neighborView struct {
	Has   bool       `json:"has"`
	Coord grid.Coord `json:"coord"`
}

// cellView is the JSON form of a cell and its neighbors.
type cellView struct {
	Index     int                     `json:"index"`
	Row       int                     `json:"row"`
	Col       int                     `json:"col"`
	Coord     grid.Coord              `json:"coord"`
	Neighbors map[string]neighborView `json:"neighbors"`
}

// createRequest is the body of POST /mazes. Zero fields take defaults.
type createRequest struct {
	Name      string `json:"name"`
	Algorithm string `json:"algorithm"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Seed      int64  `json:"seed"`
}

// fitsCells reports whether a width x height grid has between 1 and
// maxCells cells. Each side is bounded before dividing so the check cannot
// overflow.
func fitsCells(width, height, maxCells int) bool {
	if width < 1 || height < 1 || width > maxCells {
		return false
	}
	return height <= maxCells/width
}

func (s *Server) handleGenerators(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]any{
		"items": registry.List(),
	})
}

func (s *Server) handleCell(w http.ResponseWriter, r *http.Request) {
	width, err := queryInt(r, "width", 3)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid width")
		return
	}
	height, err := queryInt(r, "height", 3)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid height")
		return
	}
	if !fitsCells(width, height, s.opts.MaxCells) {
		errorResponse(w, http.StatusBadRequest, fmt.Sprintf("grid must have 1..%d cells", s.opts.MaxCells))
		return
	}

	m := grid.New(width, height)
	cell, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil || cell >= m.Size() {
		errorResponse(w, http.StatusNotFound, "cell outside the grid")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"item": cellView{
			Index: cell,
			Row:   m.Row(cell),
			Col:   m.Col(cell),
			Coord: m.As2D(cell),
			Neighbors: map[string]neighborView{
				"top":      {m.HasTop(cell), m.Top(cell)},
				"right":    {m.HasRight(cell), m.Right(cell)},
				"bottom":   {m.HasBottom(cell), m.Bottom(cell)},
				"left":     {m.HasLeft(cell), m.Left(cell)},
				"diagonal": {m.HasDiagonal(cell), m.Diagonal(cell)},
			},
		},
	})
}

func (s *Server) handleListMazes(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 20)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid limit")
		return
	}

	records, err := s.store.ListMazes(limit)
	if err != nil {
		s.logger.Error("cannot list mazes", "error", err)
		errorResponse(w, http.StatusInternalServerError, "cannot list mazes")
		return
	}

	items := make([]mazeView, len(records))
	for i, rec := range records {
		items[i] = newMazeView(rec)
	}
	jsonResponse(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleCreateMaze(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusUnprocessableEntity, "invalid JSON body")
		return
	}

	if req.Algorithm == "" {
		req.Algorithm = s.opts.Algorithm
	}
	if !registry.Exists(req.Algorithm) {
		errorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown generator %q", req.Algorithm))
		return
	}
	if !fitsCells(req.Width, req.Height, s.opts.MaxCells) {
		errorResponse(w, http.StatusBadRequest, fmt.Sprintf("maze must have 1..%d rooms", s.opts.MaxCells))
		return
	}
	if req.Seed == 0 {
		req.Seed = time.Now().UnixNano()
	}

	mz, err := registry.Generate(req.Algorithm, grid.New(req.Width, req.Height), req.Seed)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := s.store.SaveMaze(req.Name, req.Algorithm, req.Seed, mz)
	if err != nil {
		s.logger.Error("cannot save maze", "error", err)
		errorResponse(w, http.StatusInternalServerError, "cannot save maze")
		return
	}

	s.logger.Info("maze created", "id", id, "algorithm", req.Algorithm, "width", req.Width, "height", req.Height)
	s.writeMaze(w, http.StatusCreated, id)
}

func (s *Server) handleGetMaze(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		errorResponse(w, http.StatusNotFound, "maze not found")
		return
	}
	s.writeMaze(w, http.StatusOK, id)
}

// writeMaze responds with the full view of a saved maze.
func (s *Server) writeMaze(w http.ResponseWriter, status int, id int64) {
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
	best, err := s.store.BestWalk(id)
	if err != nil {
		s.logger.Warn("cannot load best walk", "id", id, "error", err)
	}

	view := newMazeView(rec)
	view.Layout = mz.String()
	view.Best = best
	if path, ok := mz.Solve(mz.Start(), mz.Goal()); ok {
		view.Solution = len(path) - 1
	}
	jsonResponse(w, status, map[string]any{"item": view})
}

func (s *Server) handleDeleteMaze(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		errorResponse(w, http.StatusNotFound, "maze not found")
		return
	}

	err := s.store.DeleteMaze(id)
	if errors.Is(err, storage.ErrNotFound) {
		errorResponse(w, http.StatusNotFound, "maze not found")
		return
	}
	if err != nil {
		s.logger.Error("cannot delete maze", "id", id, "error", err)
		errorResponse(w, http.StatusInternalServerError, "cannot delete maze")
		return
	}
	jsonResponse(w, http.StatusOK, nil)
}

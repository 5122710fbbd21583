// Package handlers exposes the maze solver over HTTP: one-shot solve
// and generate endpoints plus a websocket session for repeated queries.
package handlers

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/schema"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/avezina/mazehunt/internal/maze"
	"github.com/avezina/mazehunt/internal/mazegen"
	"github.com/avezina/mazehunt/internal/search"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type SolveHandler struct {
	logger   *logrus.Logger
	rnd      *rand.Rand
	upgrader websocket.Upgrader
}

func NewSolveHandler(logger *logrus.Logger, rnd *rand.Rand) *SolveHandler {
	return &SolveHandler{
		logger: logger,
		rnd:    rnd,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

type solveParams struct {
	Heuristic string `schema:"heuristic"`
}

type solveRequest struct {
	Rows []string `json:"rows"`
}

type solveResponse struct {
	ID       string `json:"id"`
	Solvable bool   `json:"solvable"`
	Moves    string `json:"moves,omitempty"`
	Cost     int    `json:"cost"`
	Expanded int    `json:"expanded"`
}

func (h SolveHandler) solve(rows []string, heuristic string) (*solveResponse, error) {
	hf, ok := search.ByName(heuristic)
	if !ok {
		return nil, fmt.Errorf("unknown heuristic %q", heuristic)
	}

	problem, err := maze.Parse(rows)
	if err != nil {
		return nil, err
	}

	res := search.Run(problem, hf)
	out := &solveResponse{
		ID:       uuid.NewString(),
		Solvable: res.Found,
		Expanded: res.Expanded,
	}
	if res.Found {
		out.Moves = maze.FormatMoves(res.Moves)
		out.Cost = res.Cost
	}
	return out, nil
}

// Solve handles POST /solve: maze rows as a JSON body, heuristic
// selected by query parameter. Malformed mazes are 400s; a well-formed
// maze with an unreachable target is a 422 with solvable=false.
func (h SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var params solveParams
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		h.replyError(w, http.StatusBadRequest, err)
		return
	}

	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.replyError(w, http.StatusBadRequest, err)
		return
	}

	res, err := h.solve(req.Rows, params.Heuristic)
	if err != nil {
		h.replyError(w, http.StatusBadRequest, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"id":       res.ID,
		"solvable": res.Solvable,
		"cost":     res.Cost,
		"expanded": res.Expanded,
	}).Info("solve request")

	if !res.Solvable {
		h.reply(w, http.StatusUnprocessableEntity, res)
		return
	}
	h.reply(w, http.StatusOK, res)
}

type generateResponse struct {
	Rows []string `json:"rows"`
}

// Generate handles POST /generate: mazegen params in the query string,
// maze text in the response.
func (h SolveHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var params mazegen.Params
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		h.replyError(w, http.StatusBadRequest, err)
		return
	}

	rows, err := mazegen.Generate(params, h.rnd)
	if err != nil {
		h.replyError(w, http.StatusBadRequest, err)
		return
	}

	h.reply(w, http.StatusOK, generateResponse{Rows: rows})
}

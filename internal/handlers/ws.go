package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"
)

type wsQuery struct {
	Rows      []string `json:"rows"`
	Heuristic string   `json:"heuristic"`
}

// ConnectWS handles GET /solve/ws. Each text frame carries one maze
// query; the reply frame carries the solution or an error. The
// connection stays open for any number of queries.
func (h SolveHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		h.logger.WithError(err).Error("unable to upgrade")
		return
	}
	defer conn.Close()

	h.logger.Debug("established WS connection")

	if err := h.wsRunSolveLoop(conn); err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			return
		}
		h.logger.WithError(err).Warn("error in ws loop")
	}
}

func (h SolveHandler) wsRunSolveLoop(conn *websocket.Conn) error {
	for {
		var query wsQuery
		if err := conn.ReadJSON(&query); err != nil {
			return err
		}

		res, err := h.solve(query.Rows, query.Heuristic)
		if err != nil {
			if err := conn.WriteJSON(wrapError(err)); err != nil {
				return err
			}
			continue
		}

		if err := conn.WriteJSON(res); err != nil {
			return err
		}
	}
}

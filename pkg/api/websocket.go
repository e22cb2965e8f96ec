package api

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/bkgmgo/bkgm/pkg/bkgm"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins - configure properly in production
	},
}

// MovesQuery is one inbound /ws/moves message: a position ID and a dice
// roll to apply to it.
type MovesQuery struct {
	ID   string `json:"id"`
	Dice [2]int `json:"dice"`
}

// MoveResult is one outbound /ws/moves message: a single resulting
// position ID, streamed as soon as it's produced rather than buffered
// into one array, since the generator's output order is unspecified but
// still useful incrementally.
type MoveResult struct {
	Position string `json:"position,omitempty"`
	Done     bool   `json:"done,omitempty"`
	Error    string `json:"error,omitempty"`
}

// WebSocket handles GET /ws/moves: each inbound query gets one outbound
// message per resulting position, followed by a {"done":true} message.
func (h *Handlers) WebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	for {
		var q MovesQuery
		if err := conn.ReadJSON(&q); err != nil {
			return
		}
		if err := h.streamMoves(conn, q); err != nil {
			return
		}
	}
}

func (h *Handlers) streamMoves(conn *websocket.Conn, q MovesQuery) error {
	p, err := bkgm.FromPositionID(q.ID, 15)
	if err != nil {
		return conn.WriteJSON(MoveResult{Error: err.Error()})
	}
	dice, err := bkgm.NewDice(q.Dice[0], q.Dice[1])
	if err != nil {
		return conn.WriteJSON(MoveResult{Error: err.Error()})
	}

	if h.pool != nil {
		if err := h.pool.Acquire(context.Background()); err != nil {
			return conn.WriteJSON(MoveResult{Error: "server busy"})
		}
		defer h.pool.Release()
	}

	for _, np := range p.PossiblePositions(dice) {
		if err := conn.WriteJSON(MoveResult{Position: np.PositionID()}); err != nil {
			return err
		}
	}
	return conn.WriteJSON(MoveResult{Done: true})
}

package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bkgmgo/bkgm/pkg/bkgm"
)

// Handlers holds the HTTP handlers and a reference to the worker pool.
type Handlers struct {
	version string
	pool    *WorkerPool
}

// NewHandlers creates a new Handlers instance without a worker pool.
func NewHandlers(version string) *Handlers {
	return &Handlers{version: version}
}

// NewHandlersWithPool creates a new Handlers instance with a worker pool.
func NewHandlersWithPool(version string, pool *WorkerPool) *Handlers {
	return &Handlers{version: version, pool: pool}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// positionIDFromPath splits a /position/{id} or /position/{id}/moves path
// into the position ID and whether it was the "/moves" form, since the
// gnubg position ID alphabet itself contains '/' and can't be captured by
// a single Go ServeMux path segment.
func positionIDFromPath(prefix, path string) (id string, isMoves bool, ok bool) {
	rest := strings.TrimPrefix(path, prefix)
	if rest == path || rest == "" {
		return "", false, false
	}
	rest = strings.TrimPrefix(rest, "/")
	if trimmed := strings.TrimSuffix(rest, "/moves"); trimmed != rest {
		rest = trimmed
		isMoves = true
	}
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" {
		return "", false, false
	}
	return rest, isMoves, true
}

func toPositionResponse(p bkgm.Position) PositionResponse {
	resp := PositionResponse{
		ID:   p.PositionID(),
		XOff: int(p.XOff()),
		OOff: int(p.OOff()),
		Turn: p.Turn(),
	}
	for i := 0; i <= 25; i++ {
		resp.Pips[i] = int(p.Pip(i))
	}
	state := p.GameState()
	if result, over := state.Result(); over {
		resp.GameOver = true
		resp.Result = result.String()
	}
	resp.Phase = p.Phase().String()
	return resp
}

// Health handles GET /health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Version: h.version}
	if h.pool != nil {
		stats := h.pool.Stats()
		resp.Pool = &stats
	}
	writeJSON(w, http.StatusOK, resp)
}

// PositionOrMoves dispatches GET /position/{id} and POST
// /position/{id}/moves, the two real routes registered against the
// /position/{rest...} wildcard pattern.
func (h *Handlers) PositionOrMoves(w http.ResponseWriter, r *http.Request) {
	id, isMoves, ok := positionIDFromPath("/position", r.URL.Path)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing position id")
		return
	}
	if isMoves {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		h.moves(w, r, id)
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	h.position(w, id)
}

func (h *Handlers) position(w http.ResponseWriter, id string) {
	p, err := bkgm.FromPositionID(id, 15)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toPositionResponse(p))
}

// moves decodes the position named by id, applies the dice roll carried
// in the request body, and returns the resulting position IDs.
func (h *Handlers) moves(w http.ResponseWriter, r *http.Request, id string) {
	p, err := bkgm.FromPositionID(id, 15)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req MovesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	dice, err := bkgm.NewDice(req.Dice[0], req.Dice[1])
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.pool != nil {
		if err := h.pool.Acquire(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "server busy")
			return
		}
		defer h.pool.Release()
	}

	positions := p.PossiblePositions(dice)
	ids := make([]string, len(positions))
	for i, np := range positions {
		ids[i] = np.PositionID()
	}
	writeJSON(w, http.StatusOK, MovesResponse{Positions: ids, Dice: req.Dice})
}

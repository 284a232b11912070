package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"adversarial/communication"
	"adversarial/searcher"
	"adversarial/tictactoe"

	"github.com/rs/zerolog/log"
)

type Minimax = searcher.Minimax[tictactoe.Player, tictactoe.Action, tictactoe.State]

// Server answers best action requests for tic-tac-toe boards.
type Server struct {
	minimax *Minimax
	mux     *http.ServeMux
}

func NewServer(minimax *Minimax) *Server {
	s := &Server{
		minimax: minimax,
		mux:     http.NewServeMux(),
	}
	s.mux.HandleFunc(communication.BestActionPath, s.handleBestAction)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("agent server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info().Msg("agent server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleBestAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	var req communication.BestActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	state, err := tictactoe.ParseState(req.Board)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	d, err := s.minimax.Search(state)
	switch {
	case errors.Is(err, searcher.ErrNoAction):
		writeError(w, http.StatusConflict, err)
		return
	case err != nil:
		log.Error().Err(err).Str("board", req.Board).Msg("search failed")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	resp := communication.BestActionResponse{
		Position: d.Action.Position,
		Player:   d.Action.Player.String(),
		Value:    d.Value,
		Scores:   make([]communication.ActionScore, len(d.Scores)),
	}
	for i, score := range d.Scores {
		resp.Scores[i] = communication.ActionScore{Position: score.Action.Position, Value: score.Value}
	}
	log.Debug().Str("board", req.Board).Int("position", resp.Position).Msg("best action")
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, communication.ErrorResponse{Error: err.Error()})
}

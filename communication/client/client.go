package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"adversarial/agent"
	"adversarial/communication"
	"adversarial/searcher"
	"adversarial/tictactoe"
)

// Agent asks a remote agent server for its moves.
type Agent struct {
	serverURL string
	http      *http.Client
}

var _ agent.Agent[tictactoe.Action, tictactoe.State] = (*Agent)(nil)

func NewAgent(serverURL string, timeout time.Duration) *Agent {
	return &Agent{
		serverURL: serverURL,
		http:      &http.Client{Timeout: timeout},
	}
}

func (a *Agent) FindAction(state tictactoe.State) (tictactoe.Action, searcher.SearchMetrics, error) {
	body, err := json.Marshal(communication.BestActionRequest{Board: state.Encode()})
	if err != nil {
		return tictactoe.Action{}, searcher.SearchMetrics{}, err
	}

	started := time.Now()
	resp, err := a.http.Post(a.serverURL+communication.BestActionPath, "application/json", bytes.NewReader(body))
	if err != nil {
		return tictactoe.Action{}, searcher.SearchMetrics{}, fmt.Errorf("request best action: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e communication.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if resp.StatusCode == http.StatusConflict {
			return tictactoe.Action{}, searcher.SearchMetrics{}, fmt.Errorf("%w: %s", searcher.ErrNoAction, e.Error)
		}
		return tictactoe.Action{}, searcher.SearchMetrics{}, fmt.Errorf("agent server returned status %d: %s", resp.StatusCode, e.Error)
	}

	var best communication.BestActionResponse
	if err := json.NewDecoder(resp.Body).Decode(&best); err != nil {
		return tictactoe.Action{}, searcher.SearchMetrics{}, fmt.Errorf("decode best action: %w", err)
	}
	player, err := tictactoe.ParsePlayer(best.Player)
	if err != nil {
		return tictactoe.Action{}, searcher.SearchMetrics{}, fmt.Errorf("decode best action: %w", err)
	}
	metrics := searcher.SearchMetrics{StartTime: started, Duration: time.Since(started)}
	return tictactoe.Action{Position: best.Position, Player: player}, metrics, nil
}

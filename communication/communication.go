package communication

// BestActionPath is the agent server endpoint returning the engine's move for a board.
const BestActionPath = "/bestaction"

// BestActionRequest carries a tic-tac-toe board as nine 'X', 'O' or '.' characters, row by
// row. The player to move follows from the symbol counts.
type BestActionRequest struct {
	Board string `json:"board"`
}

type ActionScore struct {
	Position int     `json:"position"`
	Value    float64 `json:"value"`
}

type BestActionResponse struct {
	Position int           `json:"position"`
	Player   string        `json:"player"`
	Value    float64       `json:"value"`
	Scores   []ActionScore `json:"scores"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

package metrics

import (
	"time"

	"adversarial/searcher"
)

type MoveMetric struct {
	Step   int
	Player string
	Action string
	searcher.SearchMetrics
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Empty on a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector records one game. It is not safe for concurrent use.
type Collector interface {
	Start(startingPlayer string)
	AddMove(move MoveMetric)
	Complete(winner string) (GameMetric, []MoveMetric)
}

type collector struct {
	startingPlayer string
	startTime      time.Time
	moves          []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(startingPlayer string) {
	c.startingPlayer = startingPlayer
	c.startTime = time.Now()
	c.moves = nil
}

func (c *collector) AddMove(move MoveMetric) {
	c.moves = append(c.moves, move)
}

func (c *collector) Complete(winner string) (GameMetric, []MoveMetric) {
	end := time.Now()
	return GameMetric{
		StartingPlayer: c.startingPlayer,
		Winner:         winner,
		StartTime:      c.startTime,
		EndTime:        end,
		Duration:       end.Sub(c.startTime),
		TotalMoves:     len(c.moves),
	}, c.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(startingPlayer string) {}
func (c *dummyCollector) AddMove(move MoveMetric)     {}
func (c *dummyCollector) Complete(winner string) (GameMetric, []MoveMetric) {
	return GameMetric{}, nil
}

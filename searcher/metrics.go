package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Goroutines int
	Nodes      int64 // States visited, root included
	Terminals  int64 // Terminal states evaluated
}

type MetricsCollector interface {
	Start(goroutines int)
	AddNode()
	AddTerminal()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime  time.Time
	goroutines int
	nodes      atomic.Int64
	terminals  atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Goroutines: m.goroutines,
		Nodes:      m.nodes.Load(),
		Terminals:  m.terminals.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(goroutines int)    {}
func (m *noMetricsCollector) AddNode()                {}
func (m *noMetricsCollector) AddTerminal()            {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }

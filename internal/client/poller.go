package client

import (
	"context"
	"sync"
	"time"

	"github.com/taskhive/task-dashboard-api/internal/dto"
)

// Phase is the externally observable state of the dashboard list.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseEmpty
	PhasePopulated
)

// Snapshot is an immutable view of the poller's current state.
type Snapshot struct {
	Phase     Phase
	Tasks     []dto.DashboardTask
	Err       error
	UpdatedAt time.Time
}

// Poller refreshes the task list on a fixed interval. Responses apply
// last-write-wins: a fetch superseded by a newer one is discarded, so the
// displayed list never goes backwards.
type Poller struct {
	client   *Client
	interval time.Duration

	mu         sync.Mutex
	snap       Snapshot
	generation uint64

	triggerCh chan struct{}
}

// NewPoller creates a Poller around the client with the given refresh
// interval.
func NewPoller(c *Client, interval time.Duration) *Poller {
	return &Poller{
		client:    c,
		interval:  interval,
		snap:      Snapshot{Phase: PhaseLoading},
		triggerCh: make(chan struct{}, 1),
	}
}

// Run fetches immediately, then on every tick or manual trigger, until the
// context is cancelled.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.fetch(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetch(ctx)
		case <-p.triggerCh:
			p.fetch(ctx)
		}
	}
}

// Trigger requests an immediate refresh. Non-blocking; a pending trigger is
// collapsed into one.
func (p *Poller) Trigger() {
	select {
	case p.triggerCh <- struct{}{}:
	default:
	}
}

// Snapshot returns the current list state.
func (p *Poller) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap
}

func (p *Poller) fetch(ctx context.Context) {
	p.mu.Lock()
	p.generation++
	gen := p.generation
	p.mu.Unlock()

	go func() {
		tasks, err := p.client.GetAllTasks(ctx)
		p.apply(gen, tasks, err)
	}()
}

// apply installs a fetch result unless a newer fetch has started since.
func (p *Poller) apply(gen uint64, tasks []dto.DashboardTask, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if gen < p.generation {
		return
	}

	if err != nil {
		p.snap.Err = err
		p.snap.UpdatedAt = time.Now()
		return
	}

	phase := PhasePopulated
	if len(tasks) == 0 {
		phase = PhaseEmpty
	}
	p.snap = Snapshot{
		Phase:     phase,
		Tasks:     tasks,
		UpdatedAt: time.Now(),
	}
}

package driver

import (
	"fmt"
	"sync"
	"time"

	"dealersim/internal/model"
	"dealersim/internal/sim"
)

const (
	// DefaultTickInterval advances the simulation 10 days per second,
	// independent of how often anything redraws.
	DefaultTickInterval = 100 * time.Millisecond

	// DefaultWindow is how many recent days stay on screen.
	DefaultWindow = 35
)

// Renderer receives a full redraw of the retained window after every tick.
type Renderer interface {
	Render(frame Frame)
}

// Frame is a point-in-time snapshot of the display window. Values holds
// the most recent end-of-day inventory levels in chronological order.
type Frame struct {
	Values  []int `json:"values"`
	Day     int   `json:"day"`
	Window  int   `json:"window"`
	Running bool  `json:"running"`
}

// Last returns the most recent inventory level, or 0 for an empty frame.
func (f Frame) Last() int {
	if len(f.Values) == 0 {
		return 0
	}
	return f.Values[len(f.Values)-1]
}

// Config describes one run of the driver.
type Config struct {
	Params   model.Params
	Schedule model.DemandSchedule

	TickInterval time.Duration // 0 means DefaultTickInterval
	Window       int           // 0 means DefaultWindow
	Renderer     Renderer      // optional
}

// Driver advances one simulation engine at a fixed cadence and keeps a
// bounded window of recent inventory levels for rendering. The engine is
// touched only from the driver's own loop; everyone else sees copies via
// Frame.
type Driver struct {
	mu      sync.Mutex
	cfg     Config
	engine  *sim.Engine
	values  []int
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

func New() *Driver { return &Driver{} }

// Start validates cfg and begins a fresh run from day 0. A run already in
// progress is fully stopped and discarded first; two engines never run at
// once. On a validation error nothing changes.
func (d *Driver) Start(cfg Config) error {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	engine, err := sim.New(cfg.Params, cfg.Schedule)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}

	d.Stop()

	d.mu.Lock()
	d.cfg = cfg
	d.engine = engine
	d.values = make([]int, 0, cfg.Window)
	d.running = true
	d.stopCh = make(chan struct{})
	d.doneCh = make(chan struct{})
	stop, done := d.stopCh, d.doneCh
	d.mu.Unlock()

	go d.loop(stop, done, cfg.TickInterval)
	return nil
}

// Stop halts the loop and drops the engine and display window. Calling
// Stop when nothing is running is a no-op.
func (d *Driver) Stop() {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	d.running = false
	stop, done := d.stopCh, d.doneCh
	d.mu.Unlock()

	close(stop)
	<-done

	d.mu.Lock()
	d.engine = nil
	d.values = nil
	d.mu.Unlock()
}

// Running reports whether a run is in progress.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// Frame returns a copy of the current display window.
func (d *Driver) Frame() Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshotLocked()
}

func (d *Driver) loop(stop <-chan struct{}, done chan<- struct{}, interval time.Duration) {
	defer close(done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			d.tick()
		}
	}
}

// tick pulls exactly one day from the engine, trims the window and
// redraws. Each tick is a self-contained unit of work.
func (d *Driver) tick() {
	d.mu.Lock()
	if !d.running || d.engine == nil {
		d.mu.Unlock()
		return
	}
	row := d.engine.NextDay()
	d.values = append(d.values, row.InventoryEnd)
	if len(d.values) > d.cfg.Window {
		d.values = d.values[len(d.values)-d.cfg.Window:]
	}
	frame := d.snapshotLocked()
	renderer := d.cfg.Renderer
	d.mu.Unlock()

	if renderer != nil {
		renderer.Render(frame)
	}
}

func (d *Driver) snapshotLocked() Frame {
	f := Frame{
		Values:  make([]int, len(d.values)),
		Window:  d.cfg.Window,
		Running: d.running,
	}
	copy(f.Values, d.values)
	if d.engine != nil {
		f.Day = d.engine.Day()
	}
	return f
}

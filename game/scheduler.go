package game

// Handle identifies a scheduled callback.
type Handle uint64

// Scheduler runs callbacks before the next display frame.
type Scheduler interface {
	Schedule(fn func()) Handle
	Cancel(h Handle)
}

type frameTask struct {
	handle Handle
	fn     func()
}

// FrameScheduler is a Scheduler driven by the render loop. Callbacks scheduled
// during a frame run on the following frame.
type FrameScheduler struct {
	next    Handle
	pending []frameTask
	batch   []frameTask // tasks being run by RunFrame
}

// NewFrameScheduler creates an empty scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Schedule queues fn for the next RunFrame.
func (s *FrameScheduler) Schedule(fn func()) Handle {
	s.next++
	s.pending = append(s.pending, frameTask{handle: s.next, fn: fn})
	return s.next
}

// Cancel drops the callback for h if it has not run yet. Unknown or already
// run handles are ignored.
func (s *FrameScheduler) Cancel(h Handle) {
	for i := range s.batch {
		if s.batch[i].handle == h {
			s.batch[i].fn = nil
			return
		}
	}
	for i, t := range s.pending {
		if t.handle == h {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of callbacks waiting for the next frame.
func (s *FrameScheduler) Pending() int {
	return len(s.pending)
}

// RunFrame runs every callback queued before this call and returns how many ran.
func (s *FrameScheduler) RunFrame() int {
	s.batch, s.pending = s.pending, s.batch[:0]
	ran := 0
	for i := range s.batch {
		if fn := s.batch[i].fn; fn != nil {
			s.batch[i].fn = nil
			fn()
			ran++
		}
	}
	s.batch = s.batch[:0]
	return ran
}

// Start begins ticking on sched, one Step per scheduled callback. A tick that is
// already scheduled is left in place. A nil sched keeps the current scheduler.
func (g *Game) Start(sched Scheduler) {
	if sched != nil && sched != g.sched {
		g.cancelScheduled()
		g.sched = sched
	}
	g.running = true
	g.scheduleNext()
}

// Cancel stops the loop and drops any scheduled tick. Calling it while stopped
// does nothing.
func (g *Game) Cancel() {
	g.running = false
	g.cancelScheduled()
}

// Running reports whether the loop is active.
func (g *Game) Running() bool {
	return g.running
}

// Scheduled reports whether a tick is waiting on the scheduler.
func (g *Game) Scheduled() bool {
	return g.scheduled
}

func (g *Game) scheduleNext() {
	if g.sched == nil || g.scheduled || !g.running {
		return
	}
	g.handle = g.sched.Schedule(g.frame)
	g.scheduled = true
}

func (g *Game) cancelScheduled() {
	if !g.scheduled {
		return
	}
	g.sched.Cancel(g.handle)
	g.scheduled = false
}

// frame is the scheduled callback: one Step, then the next tick.
func (g *Game) frame() {
	g.scheduled = false
	if !g.running {
		return
	}
	g.Step()
	g.scheduleNext()
}

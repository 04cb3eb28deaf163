package game

// TurnClock holds the remaining time budgets: one shared budget in single
// player games, one per player otherwise. Only the active budget runs.
type TurnClock struct {
	budgets  []int64
	baseline int64
}

func NewTurnClock(budget int64, players int, now int64) *TurnClock {
	if players < 1 {
		players = 1
	}
	c := &TurnClock{budgets: make([]int64, players), baseline: now}
	for i := range c.budgets {
		c.budgets[i] = budget
	}
	return c
}

func (c *TurnClock) Remaining(i int) int64 {
	return c.budgets[c.index(i)]
}

// Budgets returns a copy of every remaining budget.
func (c *TurnClock) Budgets() []int64 {
	return append([]int64(nil), c.budgets...)
}

// Tick charges every whole ClockTickPeriod elapsed since the last charge to
// the active budget. It reports whether that budget has run out.
func (c *TurnClock) Tick(active int, now int64) (expired bool) {
	elapsed := now - c.baseline
	if elapsed < ClockTickPeriod {
		return false
	}
	periods := elapsed / ClockTickPeriod
	c.baseline += periods * ClockTickPeriod
	i := c.index(active)
	if c.budgets[i] == Unlimited {
		return false
	}
	c.budgets[i] -= periods * ClockTickPeriod
	if c.budgets[i] < TimeoutThreshold {
		c.budgets[i] = 0
		return true
	}
	return false
}

// Anchor restarts the charging period at now, dropping the time spent paused.
func (c *TurnClock) Anchor(now int64) {
	c.baseline = now
}

func (c *TurnClock) index(i int) int {
	if len(c.budgets) == 1 || i < 0 || i >= len(c.budgets) {
		return 0
	}
	return i
}

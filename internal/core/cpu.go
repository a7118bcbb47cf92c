package core

// CpuMetric accumulates how the processor spent the simulated time.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// CPU is the single exclusive processor slot. Every unit of simulated time
// is either spent executing one process or idling.
type CPU struct {
	clock  *Clock
	metric CpuMetric
}

// NewCPU creates a processor that moves the given clock.
func NewCPU(clock *Clock) *CPU {
	return &CPU{clock: clock}
}

// Execute runs the process for the given number of units and advances the
// clock accordingly.
func (c *CPU) Execute(p *Process, units int) {
	p.Run(units)
	c.clock.Advance(units)
	c.metric.UtilizationTime += units
}

// Idle lets one unit of time pass without work.
func (c *CPU) Idle() {
	c.clock.Advance(1)
	c.metric.IdleTime++
}

// Metric returns the accumulated metric up to the current time.
func (c *CPU) Metric() CpuMetric {
	m := c.metric
	m.TotalTime = c.clock.Now()

	return m
}

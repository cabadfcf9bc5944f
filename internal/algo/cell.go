package algo

// ListLen is the fixed number of cells in every run.
const ListLen = 8

// NoTarget is the target sentinel meaning "no pending swap".
const NoTarget = -1

// Cell is one number in the grid. Key identifies the cell for the whole run,
// across swaps and marks.
type Cell struct {
	Number       int    `json:"number"`
	Key          string `json:"key"`
	MarkedAsZero bool   `json:"marked_as_zero"`
}

// RunContext is the data the machine carries between states. It is treated
// as a value: transitions build a new context instead of mutating one.
type RunContext struct {
	List    []Cell `json:"list"`
	Current int    `json:"current"`
	Zeros   int    `json:"zeros"`
	Target  int    `json:"target"`
}

// NewContext returns the context of a fresh run over list. Current starts
// one past the last index so the first step entry selects index 7.
func NewContext(list []Cell) RunContext {
	return RunContext{
		List:    cloneCells(list),
		Current: len(list),
		Zeros:   0,
		Target:  NoTarget,
	}
}

// Clone returns a deep copy that shares no list storage with c.
func (c RunContext) Clone() RunContext {
	c.List = cloneCells(c.List)
	return c
}

// IsDone reports whether the scan ran past the first index.
func (c RunContext) IsDone() bool { return c.Current < 0 }

// Numbers returns the cell numbers in list order.
func (c RunContext) Numbers() []int {
	out := make([]int, len(c.List))
	for i, cell := range c.List {
		out[i] = cell.Number
	}
	return out
}

// Keys returns the cell identities in list order.
func (c RunContext) Keys() []string {
	out := make([]string, len(c.List))
	for i, cell := range c.List {
		out[i] = cell.Key
	}
	return out
}

func (c RunContext) inRange(i int) bool { return i >= 0 && i < len(c.List) }

func (c RunContext) currentIsZero() (zero, ok bool) {
	if !c.inRange(c.Current) {
		return false, false
	}
	return c.List[c.Current].Number == 0, true
}

func (c *RunContext) findTarget() {
	if c.Zeros > 0 {
		c.Target = c.Current + c.Zeros
		return
	}
	c.Target = NoTarget
}

func cloneCells(list []Cell) []Cell {
	if list == nil {
		return nil
	}
	out := make([]Cell, len(list))
	copy(out, list)
	return out
}

package machine

// Result is what an instruction tells the run loop to do next.
type Result int

const (
	// Continue means move the IP by its delta and fetch the cell there.
	Continue Result = iota
	// StayPut means the run loop does not move the IP: the instruction has
	// already stepped it one cell itself (used by '"' entering string mode
	// and by every non-space cell pushed in string mode).
	StayPut
	// Skip behaves like Continue; it exists so a future concurrent
	// scheduler can special-case it the way §4.4's comment-skip does.
	Skip
	// Exit ends the IP (an '@' was hit).
	Exit
	// Panic aborts the entire run.
	Panic
)

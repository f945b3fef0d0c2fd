package pipeline

// ShouldProcess decides whether a streamed frame goes through the full
// pipeline: only every skipRate-th frame is processed, the rest short-circuit
// into a lightweight skipped response. A skipRate below 1 processes every
// frame. The rate is read from the settings store at call time; a decision
// based on a slightly stale rate is acceptable.
func ShouldProcess(frameIdx, skipRate int) bool {
	if skipRate <= 1 {
		return true
	}
	return frameIdx%skipRate == 0
}

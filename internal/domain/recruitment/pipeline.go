package recruitment

import "fmt"

// pipeline is the fixed applicant flow. Rejection is reachable from any
// non-final stage; everything else moves strictly forward.
var pipeline = map[string][]string{
	StageApplied:   {StageScreening, StageRejected},
	StageScreening: {StageInterview, StageRejected},
	StageInterview: {StageOffered, StageRejected},
	StageOffered:   {StageHired, StageRejected},
	StageHired:     {},
	StageRejected:  {},
}

// Stages lists every pipeline stage in flow order.
var Stages = []string{StageApplied, StageScreening, StageInterview, StageOffered, StageHired, StageRejected}

func ValidStage(stage string) bool {
	_, ok := pipeline[stage]
	return ok
}

// Transition validates a stage move and returns a descriptive error for
// anything the pipeline does not allow.
func Transition(from, to string) error {
	next, ok := pipeline[from]
	if !ok {
		return fmt.Errorf("unknown stage %q", from)
	}
	for _, candidate := range next {
		if candidate == to {
			return nil
		}
	}
	return fmt.Errorf("cannot move applicant from %s to %s", from, to)
}

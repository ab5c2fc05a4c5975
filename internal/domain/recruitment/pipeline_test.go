package recruitment

import "testing"

func TestPipelineForwardOnly(t *testing.T) {
	if err := Transition(StageApplied, StageScreening); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Transition(StageScreening, StageApplied); err == nil {
		t.Fatal("backwards move must be rejected")
	}
	if err := Transition(StageApplied, StageOffered); err == nil {
		t.Fatal("stage skipping must be rejected")
	}
}

func TestPipelineRejectionFromAnyActiveStage(t *testing.T) {
	for _, stage := range []string{StageApplied, StageScreening, StageInterview, StageOffered} {
		if err := Transition(stage, StageRejected); err != nil {
			t.Fatalf("rejection from %s must be allowed: %v", stage, err)
		}
	}
}

func TestPipelineFinalStages(t *testing.T) {
	if err := Transition(StageHired, StageRejected); err == nil {
		t.Fatal("hired is final")
	}
	if err := Transition(StageRejected, StageApplied); err == nil {
		t.Fatal("rejected is final")
	}
}

func TestValidStage(t *testing.T) {
	if !ValidStage(StageInterview) {
		t.Fatal("interview is a known stage")
	}
	if ValidStage("Shortlisted") {
		t.Fatal("unknown stage must be invalid")
	}
}

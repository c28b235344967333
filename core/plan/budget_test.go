package plan

import "testing"

var testPolicy = Policy{
	CFUTarget:         60,
	SoftOverageMax:    6,
	StandardFreeCount: 2,
	PSIFreeCount:      3,
}

func TestEvaluateBudget(t *testing.T) {
	tests := []struct {
		name         string
		mode         Mode
		curricular   int
		free         int
		wantTotal    int
		wantExcess   int
		wantBlocking bool
		wantReason   Reason
	}{
		{
			name: "standard at target", mode: ModeStandard, curricular: 18, free: 12,
			wantTotal: 60, wantReason: ReasonNone,
		},
		{
			name: "standard under target tolerated", mode: ModeStandard, curricular: 18, free: 6,
			wantTotal: 54, wantReason: ReasonNone,
		},
		{
			name: "standard soft overage", mode: ModeStandard, curricular: 18, free: 18,
			wantTotal: 66, wantExcess: 6, wantReason: ReasonSoftOverage,
		},
		{
			name: "standard hard overage", mode: ModeStandard, curricular: 18, free: 19,
			wantTotal: 67, wantExcess: 7, wantBlocking: true, wantReason: ReasonHardOverage,
		},
		{
			name: "psi at target", mode: ModePSI, curricular: 12, free: 18,
			wantTotal: 60, wantReason: ReasonNone,
		},
		{
			name: "psi below floor", mode: ModePSI, curricular: 12, free: 17,
			wantTotal: 59, wantBlocking: true, wantReason: ReasonBelowMinimumPSI,
		},
		{
			name: "psi soft overage", mode: ModePSI, curricular: 12, free: 22,
			wantTotal: 64, wantExcess: 4, wantReason: ReasonSoftOverage,
		},
		{
			name: "psi hard overage", mode: ModePSI, curricular: 12, free: 25,
			wantTotal: 67, wantExcess: 7, wantBlocking: true, wantReason: ReasonHardOverage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := EvaluateBudget(tt.mode, tt.curricular, tt.free, 30, testPolicy)
			if b.Total != tt.wantTotal {
				t.Errorf("Total = %d; want %d", b.Total, tt.wantTotal)
			}
			if b.Excess != tt.wantExcess {
				t.Errorf("Excess = %d; want %d", b.Excess, tt.wantExcess)
			}
			if b.Blocking != tt.wantBlocking {
				t.Errorf("Blocking = %v; want %v", b.Blocking, tt.wantBlocking)
			}
			if b.Reason != tt.wantReason {
				t.Errorf("Reason = %q; want %q", b.Reason, tt.wantReason)
			}
		})
	}
}

// Increasing the free-choice total never turns a blocking budget into a
// passing one.
func TestEvaluateBudget_overageMonotonic(t *testing.T) {
	var blocked bool
	for free := 0; free <= 60; free++ {
		b := EvaluateBudget(ModeStandard, 18, free, 30, testPolicy)
		if blocked && !b.Blocking {
			t.Fatalf("budget passed again at free=%d after blocking earlier", free)
		}
		if b.Blocking && b.Reason == ReasonHardOverage {
			blocked = true
		}
	}
	if !blocked {
		t.Fatal("hard overage never reached")
	}
}

func TestPolicy_FreeChoiceCount(t *testing.T) {
	if got := testPolicy.FreeChoiceCount(ModeStandard); got != 2 {
		t.Errorf("FreeChoiceCount(Standard) = %d; want 2", got)
	}
	if got := testPolicy.FreeChoiceCount(ModePSI); got != 3 {
		t.Errorf("FreeChoiceCount(PSI) = %d; want 3", got)
	}
}

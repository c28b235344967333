package plan

import (
	"strings"
	"testing"

	"github.com/dieti/studyplan/core"
	"github.com/dieti/studyplan/core/catalog"
)

const (
	testMainPath = "Curriculum TEST"
	testSubPath  = "PDS TST - CURRICULUM TEST"
)

func testSnapshot() catalog.Snapshot {
	mk := catalog.MakeCourse
	return catalog.Snapshot{
		Curricula: catalog.Curriculum{
			testMainPath: {
				testSubPath: {
					CurricularI:  mk("Advanced Statistical Learning and Modeling", "U100", 12, "D", "Second", "I"),
					CurricularII: mk("Speech Processing", "U101", 6, "D", "Second", "II"),
				},
			},
		},
		FreeChoice: []catalog.Course{
			mk("Astroinformatics", "F1", 6, "D", "Second", "II"),
			mk("Biometric Systems", "F2", 6, "D", "Second", "II"),
			mk("Computer Vision", "F3", 6, "D", "Second", "I"),
			mk("Big Data Engineering", "F4", 12, "D", "Second", "I"),
			mk("Text Mining", "F5", 6, "D", "Second", "I"), // banned below
		},
		Banned: catalog.BanRules{testSubPath: {"F5": {}}},
		Fixed: [3]catalog.Course{
			mk("ALTRE ATTIVITA", "12568", 6, "D", "Second", "II"),
			mk("TESI DI LAUREA", "U2848", 16, "D", "Second", "II"),
			mk("TIROCINIO/STAGE", "U4319", 8, "D", "Second", "II"),
		},
	}
}

func run(t *testing.T, sel Selection) (*ValidatedPlan, map[string]string) {
	t.Helper()
	vp, err := NewValidator(testSnapshot(), sel, testPolicy).Run()
	if err == nil {
		return vp, nil
	}
	vErr, ok := err.(*core.ValidationError)
	if !ok {
		t.Fatalf("error is %T; want *core.ValidationError", err)
	}
	flds := make(map[string]string, len(vErr.Fields))
	for _, f := range vErr.Fields {
		flds[f.Field] = f.Error
	}
	return nil, flds
}

func catalogSelection(labels ...string) Selection {
	return Selection{
		Mode:             ModeStandard,
		MainPath:         testMainPath,
		SubPath:          testSubPath,
		FreeChoiceLabels: labels,
	}
}

func TestValidator_standardCatalogPlan(t *testing.T) {
	vp, flds := run(t, catalogSelection("Astroinformatics (F1, 6 CFU)", "Biometric Systems (F2, 6 CFU)"))
	if flds != nil {
		t.Fatalf("unexpected rejection: %v", flds)
	}
	if vp.TotalCFU != 60 {
		t.Errorf("TotalCFU = %d; want 60", vp.TotalCFU)
	}
	if vp.Excess != 0 {
		t.Errorf("Excess = %d; want 0", vp.Excess)
	}
	if vp.RequiresApproval {
		t.Error("nominal standard plan should not require approval")
	}
	if len(vp.Warnings) != 0 {
		t.Errorf("Warnings = %v; want none", vp.Warnings)
	}
	if len(vp.Curricular) != 2 || len(vp.FreeChoice) != 2 {
		t.Errorf("Curricular/FreeChoice = %d/%d; want 2/2", len(vp.Curricular), len(vp.FreeChoice))
	}
}

func TestValidator_softOverageWarnsAndRequiresApproval(t *testing.T) {
	vp, flds := run(t, catalogSelection("Big Data Engineering (F4, 12 CFU)", "Astroinformatics (F1, 6 CFU)"))
	if flds != nil {
		t.Fatalf("unexpected rejection: %v", flds)
	}
	if vp.TotalCFU != 66 || vp.Excess != 6 {
		t.Errorf("TotalCFU/Excess = %d/%d; want 66/6", vp.TotalCFU, vp.Excess)
	}
	if !vp.RequiresApproval {
		t.Error("plan over target must require approval")
	}
	if len(vp.Warnings) != 1 {
		t.Fatalf("Warnings = %v; want the overage warning", vp.Warnings)
	}
	if !strings.Contains(vp.Warnings[0], "exceed 60 CFU by 6 CFU") {
		t.Errorf("warning = %q; want the overage amounts", vp.Warnings[0])
	}
}

func TestValidator_rejections(t *testing.T) {
	psiManual := func(cfus ...int) Selection {
		sel := Selection{Mode: ModePSI, MainPath: testMainPath, SubPath: testSubPath, ManualEntry: true}
		for i, cfu := range cfus {
			sel.ManualCourses = append(sel.ManualCourses, ManualCourse{
				Name: "Course " + string(rune('A'+i)), Code: "M" + string(rune('1'+i)), CFU: cfu, Dept: "D",
			})
		}
		return sel
	}

	tests := []struct {
		name      string
		sel       Selection
		wantField string
		wantSub   string
	}{
		{
			name:      "unknown mode",
			sel:       Selection{Mode: "Erasmus", MainPath: testMainPath, SubPath: testSubPath},
			wantField: "mode", wantSub: "unknown plan mode",
		},
		{
			name:      "no sub-path",
			sel:       Selection{Mode: ModeStandard, MainPath: testMainPath, SubPath: "   "},
			wantField: "sub_path", wantSub: "no sub-path selected",
		},
		{
			name:      "unknown sub-path",
			sel:       Selection{Mode: ModeStandard, MainPath: testMainPath, SubPath: "PDS LOL"},
			wantField: "sub_path", wantSub: "not found",
		},
		{
			name:      "wrong catalog count",
			sel:       catalogSelection("Astroinformatics (F1, 6 CFU)"),
			wantField: "free_choice_labels", wantSub: "select exactly 2",
		},
		{
			name:      "unknown label",
			sel:       catalogSelection("Astroinformatics (F1, 6 CFU)", "Quantum Basket Weaving (F9, 6 CFU)"),
			wantField: "free_choice_labels[1]", wantSub: "not available",
		},
		{
			name:      "banned label not selectable",
			sel:       catalogSelection("Astroinformatics (F1, 6 CFU)", "Text Mining (F5, 6 CFU)"),
			wantField: "free_choice_labels[1]", wantSub: "not available",
		},
		{
			name:      "duplicate label",
			sel:       catalogSelection("Astroinformatics (F1, 6 CFU)", "Astroinformatics (F1, 6 CFU)"),
			wantField: "free_choice_labels[1]", wantSub: "selected twice",
		},
		{
			name:      "psi below floor",
			sel:       psiManual(1, 1, 1),
			wantField: "budget", wantSub: "at least 60",
		},
		{
			name:      "hard overage",
			sel:       psiManual(12, 12, 12), // 12+36+30 = 78
			wantField: "budget", wantSub: "exceed 60 CFU by 18 CFU",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp, flds := run(t, tt.sel)
			if vp != nil {
				t.Fatalf("plan admitted; want rejection on %q", tt.wantField)
			}
			msg, ok := flds[tt.wantField]
			if !ok {
				t.Fatalf("no error on field %q; got %v", tt.wantField, flds)
			}
			if !strings.Contains(msg, tt.wantSub) {
				t.Errorf("error %q does not contain %q", msg, tt.wantSub)
			}
		})
	}
}

func TestValidator_manualPlanAdmitted(t *testing.T) {
	sel := Selection{
		Mode:        ModeStandard,
		MainPath:    testMainPath,
		SubPath:     testSubPath,
		ManualEntry: true,
		ManualCourses: []ManualCourse{
			{Name: "Reinforcement Learning", Code: "M1", CFU: 6, Dept: "DIETI"},
			{Name: "Graph Theory", Code: "M2", CFU: 6, Dept: "DMRC"},
		},
	}
	vp, flds := run(t, sel)
	if flds != nil {
		t.Fatalf("unexpected rejection: %v", flds)
	}
	if vp.TotalCFU != 60 {
		t.Errorf("TotalCFU = %d; want 60", vp.TotalCFU)
	}
	if !vp.RequiresApproval {
		t.Error("manual plans always require approval")
	}
}

// Every broken slot reports, and the budget reason lands in the same
// response instead of being masked by the slot errors.
func TestValidator_manualErrorsAggregate(t *testing.T) {
	sel := Selection{
		Mode:        ModeStandard,
		MainPath:    testMainPath,
		SubPath:     testSubPath,
		ManualEntry: true,
		ManualCourses: []ManualCourse{
			{Name: "Italian Literature", Code: "U100", CFU: 12, Dept: "D"}, // restricted name + curricular code
			{Name: "Speech Processing", Code: "F5", CFU: 12, Dept: "D"},    // curricular name + banned code
		},
	}
	_, flds := run(t, sel)
	if flds == nil {
		t.Fatal("plan admitted; want aggregated rejection")
	}

	wantFields := map[string]string{
		"manual_courses[0].name": "Italian",
		"manual_courses[0].code": "duplicates a curricular course",
		"manual_courses[1].name": "duplicates a curricular course",
		"manual_courses[1].code": "not allowed for the selected sub-path",
		"budget":                 "exceed 60 CFU by 12 CFU",
	}
	for fld, sub := range wantFields {
		msg, ok := flds[fld]
		if !ok {
			t.Errorf("no error on field %q; got %v", fld, flds)
			continue
		}
		if !strings.Contains(msg, sub) {
			t.Errorf("%s: error %q does not contain %q", fld, msg, sub)
		}
	}
}

func TestValidator_manualCountChecksBeforeSlots(t *testing.T) {
	sel := Selection{
		Mode:          ModeStandard,
		MainPath:      testMainPath,
		SubPath:       testSubPath,
		ManualEntry:   true,
		ManualCourses: []ManualCourse{{}}, // one invalid slot, wrong count
	}
	_, flds := run(t, sel)
	if len(flds) != 1 {
		t.Fatalf("got %v; want the single count error", flds)
	}
	if msg := flds["manual_courses"]; !strings.Contains(msg, "exactly 2") {
		t.Errorf("error = %q; want the count requirement", msg)
	}
}

func TestValidator_manualNearDuplicateWarns(t *testing.T) {
	sel := Selection{
		Mode:        ModeStandard,
		MainPath:    testMainPath,
		SubPath:     testSubPath,
		ManualEntry: true,
		ManualCourses: []ManualCourse{
			{Name: "Advanced Statistical Learning & Modeling", Code: "M1", CFU: 6, Dept: "D"},
			{Name: "Graph Theory", Code: "M2", CFU: 6, Dept: "D"},
		},
	}
	vp, flds := run(t, sel)
	if flds != nil {
		t.Fatalf("unexpected rejection: %v", flds)
	}
	if len(vp.Warnings) != 1 {
		t.Fatalf("Warnings = %v; want the near-duplicate warning", vp.Warnings)
	}
	if !strings.Contains(vp.Warnings[0], "very close to curricular course") {
		t.Errorf("warning = %q; want the near-duplicate text", vp.Warnings[0])
	}
}

func TestValidator_psiUsesOnlyCurricularI(t *testing.T) {
	sel := Selection{
		Mode:     ModePSI,
		MainPath: testMainPath,
		SubPath:  testSubPath,
		FreeChoiceLabels: []string{
			"Astroinformatics (F1, 6 CFU)",
			"Biometric Systems (F2, 6 CFU)",
			"Computer Vision (F3, 6 CFU)",
		},
	}
	vp, flds := run(t, sel)
	if flds != nil {
		t.Fatalf("unexpected rejection: %v", flds)
	}
	if len(vp.Curricular) != 1 || vp.Curricular[0].Code != "U100" {
		t.Errorf("Curricular = %v; want only Curricular I", vp.Curricular)
	}
	if vp.TotalCFU != 60 {
		t.Errorf("TotalCFU = %d; want 60", vp.TotalCFU)
	}
	if !vp.RequiresApproval {
		t.Error("PSI plans always require approval")
	}
}

package plan

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/dieti/studyplan/core"
	"github.com/dieti/studyplan/core/catalog"
)

var errPlanRejected = errors.New("study plan rejected")

// Validation states. A Validator walks them in order; any failure lands in
// rejected. Nothing is retried: the caller submits a corrected Selection and
// a fresh Validator re-runs from scratch.
type state int

const (
	collectingCurricular state = iota
	collectingFreeChoice
	evaluating
	admitted
	rejected
)

type Validator struct {
	pol  Policy
	snap catalog.Snapshot
	sel  Selection

	state      state
	curricular []catalog.Course
	freeChoice []catalog.Course
	budget     Budget
	warnings   []string
	fieldErrs  []core.FieldError
}

func NewValidator(snap catalog.Snapshot, sel Selection, pol Policy) *Validator {
	return &Validator{pol: pol, snap: snap, sel: sel}
}

// Run validates the selection end to end. It returns the admitted plan, or a
// *core.ValidationError carrying every applicable rejection reason.
func (v *Validator) Run() (*ValidatedPlan, error) {
	for {
		switch v.state {
		case collectingCurricular:
			v.collectCurricular()
		case collectingFreeChoice:
			v.collectFreeChoice()
		case evaluating:
			v.evaluate()
		case admitted:
			return v.plan(), nil
		default: // rejected
			return nil, core.NewValidationError(errPlanRejected, v.fieldErrs...)
		}
	}
}

func (v *Validator) reject(flds ...core.FieldError) {
	v.fieldErrs = append(v.fieldErrs, flds...)
	v.state = rejected
}

// collectCurricular fixes the curricular set from the chosen sub-path: only
// Curricular I in PSI mode, the whole pair otherwise. There is no default
// sub-path.
func (v *Validator) collectCurricular() {
	if !v.sel.Mode.IsValid() {
		v.reject(core.FieldError{Field: "mode", Error: fmt.Sprintf("unknown plan mode %q", v.sel.Mode)})
		return
	}
	if core.CleanString(v.sel.SubPath) == "" {
		v.reject(core.FieldError{Field: "sub_path", Error: "no sub-path selected"})
		return
	}
	pair, ok := v.snap.SubPath(v.sel.MainPath, v.sel.SubPath)
	if !ok {
		v.reject(core.FieldError{Field: "sub_path", Error: catalog.ErrSubPathNotFound.Error()})
		return
	}

	if v.sel.Mode.IsPSI() {
		v.curricular = []catalog.Course{pair.CurricularI}
	} else {
		v.curricular = pair.Courses()
	}
	v.state = collectingFreeChoice
}

func (v *Validator) collectFreeChoice() {
	n := v.pol.FreeChoiceCount(v.sel.Mode)
	if v.sel.ManualEntry {
		v.collectManual(n)
		return
	}

	// count precondition first; checked independently of the budget
	if len(v.sel.FreeChoiceLabels) != n {
		v.reject(core.FieldError{
			Field: "free_choice_labels",
			Error: fmt.Sprintf("select exactly %d free-choice courses from the catalogue", n),
		})
		return
	}

	eligible := catalog.EligibleFreeChoice(
		v.snap.FreeChoice, v.curricular, v.snap.Banned.BannedCodes(v.sel.SubPath))
	byLabel := make(map[string]catalog.Course, len(eligible))
	for _, c := range eligible {
		byLabel[c.Label()] = c
	}

	seen := make(map[string]struct{}, n)
	picked := make([]catalog.Course, 0, n)
	for i, label := range v.sel.FreeChoiceLabels {
		fld := fmt.Sprintf("free_choice_labels[%d]", i)
		c, ok := byLabel[label]
		if !ok {
			v.reject(core.FieldError{Field: fld, Error: fmt.Sprintf("%q is not available for the selected sub-path", label)})
			return
		}
		if _, dup := seen[label]; dup {
			v.reject(core.FieldError{Field: fld, Error: fmt.Sprintf("%q is selected twice", label)})
			return
		}
		seen[label] = struct{}{}
		picked = append(picked, c)
	}

	v.freeChoice = picked
	v.state = evaluating
}

// collectManual applies the extra manual-entry constraints. All slots are
// checked in one pass so every error surfaces at once; the budget is still
// evaluated afterwards so its reason lands in the same response.
func (v *Validator) collectManual(n int) {
	if len(v.sel.ManualCourses) != n {
		v.reject(core.FieldError{
			Field: "manual_courses",
			Error: fmt.Sprintf("enter exactly %d free-choice courses", n),
		})
		return
	}

	banned := v.snap.Banned.BannedCodes(v.sel.SubPath)
	currCodes := make(map[string]struct{}, len(v.curricular))
	currNames := make(map[string]struct{}, len(v.curricular))
	for _, c := range v.curricular {
		currCodes[c.NormCode()] = struct{}{}
		currNames[c.NormName()] = struct{}{}
	}
	seenCodes := make(map[string]struct{}, n)
	seenNames := make(map[string]struct{}, n)

	for i, mc := range v.sel.ManualCourses {
		prefix := fmt.Sprintf("manual_courses[%d].", i)
		if err := core.Validate.Struct(mc); err != nil {
			v.fieldErrs = append(v.fieldErrs, core.TranslateValidationErrors(err, prefix)...)
		}

		course := mc.Course()
		codeUp := course.NormCode()
		nameLo := course.NormName()

		if codeUp != "" {
			if _, dup := currCodes[codeUp]; dup {
				v.fieldErrs = append(v.fieldErrs, core.FieldError{
					Field: prefix + "code",
					Error: fmt.Sprintf("code %q duplicates a curricular course", mc.Code),
				})
			}
			if _, ban := banned[codeUp]; ban {
				v.fieldErrs = append(v.fieldErrs, core.FieldError{
					Field: prefix + "code",
					Error: fmt.Sprintf("code %q is not allowed for the selected sub-path", mc.Code),
				})
			}
			if _, dup := seenCodes[codeUp]; dup {
				v.fieldErrs = append(v.fieldErrs, core.FieldError{
					Field: prefix + "code",
					Error: fmt.Sprintf("code %q is duplicated in your entries", mc.Code),
				})
			} else {
				seenCodes[codeUp] = struct{}{}
			}
		}

		if nameLo != "" {
			if _, dup := currNames[nameLo]; dup {
				v.fieldErrs = append(v.fieldErrs, core.FieldError{
					Field: prefix + "name",
					Error: fmt.Sprintf("name %q duplicates a curricular course", mc.Name),
				})
			} else {
				for _, c := range v.curricular {
					if nameSimilarity(mc.Name, c.Name) >= nameMaxSim {
						v.warnings = append(v.warnings, fmt.Sprintf(
							"free-choice #%d %q is very close to curricular course %q; the Commissione may reject it",
							i+1, mc.Name, c.Name))
						break
					}
				}
			}
			if _, dup := seenNames[nameLo]; dup {
				v.fieldErrs = append(v.fieldErrs, core.FieldError{
					Field: prefix + "name",
					Error: fmt.Sprintf("name %q is duplicated in your entries", mc.Name),
				})
			} else {
				seenNames[nameLo] = struct{}{}
			}
		}

		v.freeChoice = append(v.freeChoice, course)
	}

	v.state = evaluating
}

func (v *Validator) evaluate() {
	var curricularTotal, freeTotal int
	for _, c := range v.curricular {
		curricularTotal += c.CFU
	}
	for _, c := range v.freeChoice {
		freeTotal += c.CFU
	}
	v.budget = EvaluateBudget(v.sel.Mode, curricularTotal, freeTotal, v.snap.FixedTotal(), v.pol)

	switch v.budget.Reason {
	case ReasonBelowMinimumPSI:
		v.fieldErrs = append(v.fieldErrs, core.FieldError{
			Field: "budget",
			Error: fmt.Sprintf("selections total %d CFU; a PSI plan must reach at least %d CFU", v.budget.Total, v.pol.CFUTarget),
		})
	case ReasonSoftOverage:
		v.warnings = append(v.warnings, fmt.Sprintf(
			"selections exceed %d CFU by %d CFU; consider adjusting your free-choice exams or consult the coordinator",
			v.pol.CFUTarget, v.budget.Excess))
	case ReasonHardOverage:
		v.fieldErrs = append(v.fieldErrs, core.FieldError{
			Field: "budget",
			Error: fmt.Sprintf("selections exceed %d CFU by %d CFU; reduce the total to %d or less",
				v.pol.CFUTarget, v.budget.Excess, v.pol.CFUTarget+v.pol.SoftOverageMax),
		})
	}

	if v.fieldErrs != nil {
		v.state = rejected
		return
	}
	v.state = admitted
}

func (v *Validator) plan() *ValidatedPlan {
	return &ValidatedPlan{
		Mode:             v.sel.Mode,
		MainPath:         v.sel.MainPath,
		SubPath:          v.sel.SubPath,
		ManualEntry:      v.sel.ManualEntry,
		Curricular:       v.curricular,
		FreeChoice:       v.freeChoice,
		Fixed:            v.snap.Fixed,
		TotalCFU:         v.budget.Total,
		Excess:           v.budget.Excess,
		RequiresApproval: v.sel.Mode.IsPSI() || v.sel.ManualEntry || v.budget.Excess > 0,
		Warnings:         v.warnings,
	}
}

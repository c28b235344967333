package plan

import "github.com/dieti/studyplan/core/catalog"

// PlanRows is the fixed number of document rows in every study plan.
const PlanRows = 7

// SlotRole names a row's position in the rendered plan, so the composition
// contract is explicit instead of positional-by-convention.
type SlotRole string

const (
	SlotCurricularI  SlotRole = "curricular_1"
	SlotCurricularII SlotRole = "curricular_2"
	SlotFree1        SlotRole = "free_1"
	SlotFree2        SlotRole = "free_2"
	SlotFree3        SlotRole = "free_3"
	SlotFixed1       SlotRole = "fixed_1"
	SlotFixed2       SlotRole = "fixed_2"
	SlotFixed3       SlotRole = "fixed_3"
)

// SlotRoles is the row layout per mode:
// PSI trades Curricular II for a third free-choice exam.
func SlotRoles(m Mode) [PlanRows]SlotRole {
	if m.IsPSI() {
		return [PlanRows]SlotRole{SlotCurricularI, SlotFree1, SlotFree2, SlotFree3, SlotFixed1, SlotFixed2, SlotFixed3}
	}
	return [PlanRows]SlotRole{SlotCurricularI, SlotCurricularII, SlotFree1, SlotFree2, SlotFixed1, SlotFixed2, SlotFixed3}
}

type Row struct {
	Role   SlotRole       `json:"role"`
	Course catalog.Course `json:"course"`
}

// Compose arranges an admitted plan into the exact ordered row sequence the
// document renderer consumes. It performs no validation of its own.
func Compose(vp *ValidatedPlan) [PlanRows]Row {
	var rows [PlanRows]Row
	i := 0
	add := func(role SlotRole, c catalog.Course) {
		rows[i] = Row{Role: role, Course: c}
		i++
	}

	roles := SlotRoles(vp.Mode)
	add(roles[0], vp.Curricular[0])
	if !vp.Mode.IsPSI() {
		add(SlotCurricularII, vp.Curricular[1])
	}
	for _, c := range vp.FreeChoice {
		add(roles[i], c)
	}
	for _, c := range vp.Fixed {
		add(roles[i], c)
	}
	return rows
}

package plan

import "github.com/dieti/studyplan/core/catalog"

// Plan modes. Standard confirms the sub-path's curricular pair and adds two
// free-choice exams; PSI (Piano di Studi Individuale) keeps only Curricular I
// and adds three, and always requires approval.
type Mode string

const (
	ModeStandard Mode = "Standard"
	ModePSI      Mode = "PSI"
)

func (m Mode) IsPSI() bool  { return m == ModePSI }
func (m Mode) IsValid() bool { return m == ModeStandard || m == ModePSI }

// ManualCourse is an ad hoc free-choice exam typed in by the student instead
// of picked from the pool. It needs Commissione approval.
type ManualCourse struct {
	Name     string `json:"name" validate:"notblank,norestrictedname"`
	Code     string `json:"code" validate:"notblank"`
	CFU      int    `json:"cfu" validate:"required,min=1,max=30"`
	Dept     string `json:"dept" validate:"notblank"`
	Year     string `json:"year"`
	Semester string `json:"semester"`
}

func (mc ManualCourse) Course() catalog.Course {
	year, semester := mc.Year, mc.Semester
	if year == "" {
		year = "Second"
	}
	if semester == "" {
		semester = "First"
	}
	return catalog.MakeCourse(mc.Name, mc.Code, mc.CFU, mc.Dept, year, semester)
}

// Selection is one student's plan attempt. It only lives for a single
// composition attempt; nothing is kept between attempts.
type Selection struct {
	Mode        Mode   `json:"mode"`
	MainPath    string `json:"main_path"`
	SubPath     string `json:"sub_path"`
	ManualEntry bool   `json:"manual_entry"`

	// catalog mode: picker labels (see catalog.Course.Label) in choice order
	FreeChoiceLabels []string `json:"free_choice_labels,omitempty"`
	// manual mode
	ManualCourses []ManualCourse `json:"manual_courses,omitempty"`
}

// ValidatedPlan is the admitted outcome of a validation pass, ready for
// composition and rendering.
type ValidatedPlan struct {
	Mode        Mode   `json:"mode"`
	MainPath    string `json:"main_path"`
	SubPath     string `json:"sub_path"`
	ManualEntry bool   `json:"manual_entry"`

	Curricular []catalog.Course  `json:"curricular_courses"`
	FreeChoice []catalog.Course  `json:"free_choice_courses"`
	Fixed      [3]catalog.Course `json:"fixed_components"`

	TotalCFU         int      `json:"total_cfu"`
	Excess           int      `json:"excess"`
	RequiresApproval bool     `json:"requires_approval"`
	Warnings         []string `json:"warnings,omitempty"`
}

package plan

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/dieti/studyplan/core"
	"github.com/dieti/studyplan/core/catalog"
)

// PSISuffix is appended to the displayed sub-path of an individual plan.
const PSISuffix = " — Piano di Studi Individuale"

// WatermarkPending marks documents that still need Commissione approval.
const WatermarkPending = "To Be Approved"

type StudentDetails struct {
	Name            string `json:"name" validate:"notblank"`
	Matricula       string `json:"matricula" validate:"notblank"`
	PlaceOfBirth    string `json:"place_of_birth" validate:"notblank"`
	DateOfBirth     string `json:"dob" validate:"notblank"` // dd/mm/yyyy
	Phone           string `json:"phone" validate:"notblank"`
	Email           string `json:"email" validate:"required,email"`
	BachelorsDegree string `json:"bachelors_degree"`
}

type AcademicDetails struct {
	AcademicYear string `json:"academic_year" validate:"notblank"` // "YYYY-YYYY"
	YearOfDegree string `json:"year_of_degree"`
	DegreeType   string `json:"degree_type"`
	DegreeName   string `json:"degree_name"`
}

// applyDefaults fills the degree fields the form pre-fills for everyone.
func (ad *AcademicDetails) applyDefaults() {
	if ad.YearOfDegree == "" {
		ad.YearOfDegree = "Second"
	}
	if ad.DegreeType == "" {
		ad.DegreeType = "LAUREA MAGISTRALE"
	}
	if ad.DegreeName == "" {
		ad.DegreeName = "DATA SCIENCE"
	}
}

// RenderInput is everything a document renderer needs for one study plan.
// SubPath already carries the PSI suffix when applicable; Rows are final and
// ordered, exactly PlanRows of them.
type RenderInput struct {
	Student       StudentDetails
	Academic      AcademicDetails
	MainPath      string
	SubPath       string
	Rows          [PlanRows]Row
	WatermarkText string // empty means no watermark
}

// DocumentRenderer turns a composed plan into an opaque document byte
// stream; nothing further is assumed about the output.
type DocumentRenderer interface {
	Render(in RenderInput) (*bytes.Buffer, error)
}

// SerializedCourse is the flat course shape carried in submission metadata.
type SerializedCourse struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	CFU      int    `json:"cfu"`
	Dept     string `json:"dept"`
	Year     string `json:"year"`
	Semester string `json:"semester"`
}

func SerializeCourses(courses []catalog.Course) []SerializedCourse {
	out := make([]SerializedCourse, 0, len(courses))
	for _, c := range courses {
		out = append(out, SerializedCourse{
			Name:     c.Name,
			Code:     c.Code,
			CFU:      c.CFU,
			Dept:     c.Dept,
			Year:     c.Year,
			Semester: c.Semester,
		})
	}
	return out
}

type SubmissionMeta struct {
	AcademicYear     string             `json:"academic_year"`
	YearOfDegree     string             `json:"year_of_degree"`
	DegreeType       string             `json:"degree_type"`
	DegreeName       string             `json:"degree_name"`
	PlanMode         Mode               `json:"plan_mode"`
	MainPath         string             `json:"main_path"`
	SubPath          string             `json:"sub_path"`
	UsingManualEntry bool               `json:"using_manual_entry"`
	RequiresApproval bool               `json:"requires_approval"`
	TotalCFU         int                `json:"total_cfu"`
	Curricular       []SerializedCourse `json:"curricular_courses"`
	FreeChoice       []SerializedCourse `json:"free_courses"`
	Fixed            []SerializedCourse `json:"fixed_components"`
}

// Submission is a rendered document plus its context, handed to the relay.
type Submission struct {
	ID       string
	FileName string
	Document []byte
	Student  StudentDetails
	Meta     SubmissionMeta
}

// SubmissionRelay forwards a submission to the coordinator's storage
// endpoint. Best effort: implementations must never fail the caller, the
// student keeps the rendered document regardless of relay outcome.
type SubmissionRelay interface {
	Submit(sub Submission)
}

// AcademicYearToAAFormat converts "2025-2026" to "2025/26". Input without a
// hyphen (already formatted, or free text) passes through unchanged.
func AcademicYearToAAFormat(academicYear string) string {
	if !strings.Contains(academicYear, "-") {
		return academicYear
	}
	parts := strings.SplitN(academicYear, "-", 2)
	y2, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return academicYear
	}
	yy := strconv.Itoa(y2 % 100)
	if len(yy) < 2 {
		yy = "0" + yy
	}
	return strings.TrimSpace(parts[0]) + "/" + yy
}

// ShortCodeFromSubPath extracts the short plan code from a sub-path label:
// "PDS ITE/TS - CURRICULUM ..." yields "ITE/TS".
func ShortCodeFromSubPath(label string) string {
	if label == "" {
		return "PLAN"
	}
	base := strings.SplitN(label, " — ", 2)[0]
	head := core.CleanString(strings.SplitN(base, " - ", 2)[0])
	if strings.HasPrefix(strings.ToUpper(head), "PDS ") {
		head = core.CleanString(head[4:])
	}
	return head
}

// PlanName derives the short document name, eg. "ITE-TS" or "ISY-PSI".
func PlanName(subPath string, mode Mode) string {
	name := strings.ReplaceAll(ShortCodeFromSubPath(subPath), "/", "-")
	if mode.IsPSI() {
		name += "-PSI"
	}
	return name
}

// DocumentFileName builds a filesystem-safe file name for the rendered plan;
// anything outside [alnum . _ -] is replaced.
func DocumentFileName(matricula, subPath string, mode Mode, ext string) string {
	m := core.CleanString(matricula)
	if m == "" {
		m = "studente"
	}
	raw := strings.Trim(m+"_"+PlanName(subPath, mode), "_")

	var b strings.Builder
	for _, ch := range raw {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9',
			ch == '.', ch == '_', ch == '-':
			b.WriteRune(ch)
		default:
			b.WriteRune('_')
		}
	}
	return b.String() + ext
}

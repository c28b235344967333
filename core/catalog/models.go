package catalog

import (
	"fmt"
	"strings"
)

// Canonical semester values. Anything else found in source data is kept
// verbatim (tolerated, not an error).
const (
	SemesterFirst  = "first"
	SemesterSecond = "second"
	SemesterBoth   = "first&second"
)

// semesterNames maps the spellings found in the historical course sheets to
// the canonical set.
var semesterNames = map[string]string{
	"I":            SemesterFirst,
	"1":            SemesterFirst,
	"First":        SemesterFirst,
	"first":        SemesterFirst,
	"II":           SemesterSecond,
	"2":            SemesterSecond,
	"Second":       SemesterSecond,
	"second":       SemesterSecond,
	"first&Second": SemesterBoth,
	"First&Second": SemesterBoth,
	"first&second": SemesterBoth,
}

// NormalizeSemester is total: unrecognized spellings pass through unchanged.
func NormalizeSemester(raw string) string {
	s := strings.TrimSpace(raw)
	if norm, ok := semesterNames[s]; ok {
		return norm
	}
	return s
}

type Course struct {
	Name     string   `json:"name"`
	Code     string   `json:"code"`
	CFU      int      `json:"cfu"`
	Dept     string   `json:"dept"`
	Year     string   `json:"year"`     // "First" | "Second"
	Semester string   `json:"semester"` // canonical, or verbatim when unknown
	Links    []string `json:"links,omitempty"`
}

// MakeCourse builds a Course with a normalized semester. It never fails.
func MakeCourse(name, code string, cfu int, dept, year, semester string, links ...string) Course {
	return Course{
		Name:     name,
		Code:     code,
		CFU:      cfu,
		Dept:     dept,
		Year:     year,
		Semester: NormalizeSemester(semester),
		Links:    links,
	}
}

// Label is the stable human-readable identifier used as the selection key in
// list-based pickers. Courses with identical name+code+cfu are
// indistinguishable to a picker; an accepted limitation.
func (c Course) Label() string {
	return fmt.Sprintf("%s (%s, %d CFU)", c.Name, c.Code, c.CFU)
}

// NormCode and NormName are the identity keys used for duplicate detection.
func (c Course) NormCode() string { return strings.ToUpper(strings.TrimSpace(c.Code)) }
func (c Course) NormName() string { return strings.ToLower(strings.TrimSpace(c.Name)) }

// SubPath is the curricular course pair fixed by a specialization.
// CurricularI carries the larger credit weight (typically 12 CFU),
// CurricularII the smaller (typically 6).
type SubPath struct {
	CurricularI  Course `json:"curricular_i"`
	CurricularII Course `json:"curricular_ii"`
}

func (sp SubPath) Courses() []Course { return []Course{sp.CurricularI, sp.CurricularII} }

// Curriculum maps main-path name -> sub-path name -> curricular pair.
type Curriculum map[string]map[string]SubPath

// BanRules maps a sub-path name to the set of free-choice course codes
// (normalized) whose topic overlaps that sub-path's curricular content.
type BanRules map[string]map[string]struct{}

// BannedCodes returns the exclusion set for a sub-path; empty when the
// sub-path has no rule.
func (br BanRules) BannedCodes(subPath string) map[string]struct{} {
	if codes, ok := br[subPath]; ok {
		return codes
	}
	return map[string]struct{}{}
}

// Snapshot is one immutable view of the whole catalog. Writers build a new
// Snapshot and swap it in whole; readers never see a half-updated catalog.
type Snapshot struct {
	Curricula  Curriculum
	FreeChoice []Course  // unique by name
	Banned     BanRules
	Fixed      [3]Course // invariant plan tail: other activities, thesis, internship
}

// FixedTotal is the constant credit sum of the fixed components.
func (s Snapshot) FixedTotal() int {
	var total int
	for _, c := range s.Fixed {
		total += c.CFU
	}
	return total
}

// SubPath looks a curricular pair up by main and sub-path name.
func (s Snapshot) SubPath(mainPath, subPath string) (SubPath, bool) {
	subs, ok := s.Curricula[mainPath]
	if !ok {
		return SubPath{}, false
	}
	sp, ok := subs[subPath]
	return sp, ok
}

package catalog

import (
	"errors"
	"sort"

	"github.com/dieti/studyplan/core"
)

var (
	// errors
	ErrSubPathNotFound   = errors.New("sub-path not found")
	ErrFreeChoiceExists  = errors.New("a free-choice course with this name already exists")
	errInvalidSubmission = errors.New("invalid catalog submission")
)

type (
	// Repository is the process-wide catalog store. Implementations must
	// swap whole snapshots on write; see storage/catalog/inmem.
	Repository interface {
		Snapshot() Snapshot
		ReplaceSubPath(mainPath, subPath string, pair SubPath) error
		AddFreeChoiceCourse(c Course) error
	}

	Service struct {
		repo Repository
		log  core.Logger
	}
)

func NewService(repo Repository, log core.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (svc *Service) Snapshot() Snapshot {
	return svc.repo.Snapshot()
}

// PathEntry lists the sub-paths of one main path; entries and sub-paths are
// sorted for a stable listing.
type PathEntry struct {
	MainPath string   `json:"main_path"`
	SubPaths []string `json:"sub_paths"`
}

func (svc *Service) Paths() []PathEntry {
	snap := svc.repo.Snapshot()
	entries := make([]PathEntry, 0, len(snap.Curricula))
	for mainPath, subs := range snap.Curricula {
		subPaths := make([]string, 0, len(subs))
		for subPath := range subs {
			subPaths = append(subPaths, subPath)
		}
		sort.Strings(subPaths)
		entries = append(entries, PathEntry{MainPath: mainPath, SubPaths: subPaths})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].MainPath < entries[j].MainPath })
	return entries
}

// OverviewRow is one flattened catalog line (curricular, free-choice or
// fixed) for the read-only overview listing.
type OverviewRow struct {
	Type     string `json:"type"`
	MainPath string `json:"main_path,omitempty"`
	SubPath  string `json:"sub_path,omitempty"`
	Slot     string `json:"slot,omitempty"`
	Course   Course `json:"course"`
}

func (svc *Service) Overview() []OverviewRow {
	snap := svc.repo.Snapshot()
	rows := make([]OverviewRow, 0, len(snap.FreeChoice)+len(snap.Fixed))

	for _, entry := range svc.Paths() {
		for _, subPath := range entry.SubPaths {
			sp := snap.Curricula[entry.MainPath][subPath]
			rows = append(rows,
				OverviewRow{Type: "Curricular", MainPath: entry.MainPath, SubPath: subPath, Slot: "Curricular 1", Course: sp.CurricularI},
				OverviewRow{Type: "Curricular", MainPath: entry.MainPath, SubPath: subPath, Slot: "Curricular 2", Course: sp.CurricularII},
			)
		}
	}
	for _, c := range snap.FreeChoice {
		rows = append(rows, OverviewRow{Type: "Free Choice", Course: c})
	}
	for _, c := range snap.Fixed {
		rows = append(rows, OverviewRow{Type: "Fixed", Course: c})
	}
	return rows
}

func (svc *Service) SubPath(mainPath, subPath string) (SubPath, error) {
	sp, ok := svc.repo.Snapshot().SubPath(mainPath, subPath)
	if !ok {
		return SubPath{}, ErrSubPathNotFound
	}
	return sp, nil
}

// Eligible computes the free-choice courses a student may pick for the given
// curricular set under the sub-path's exclusion rules.
func (svc *Service) Eligible(subPath string, curricular []Course) []Course {
	snap := svc.repo.Snapshot()
	return EligibleFreeChoice(snap.FreeChoice, curricular, snap.Banned.BannedCodes(subPath))
}

// NewCourse is a coordinator-entered course record. Dept/Year/Semester default
// to the program's usual values when omitted.
type NewCourse struct {
	Name     string   `json:"name" validate:"notblank"`
	Code     string   `json:"code" validate:"notblank"`
	CFU      int      `json:"cfu" validate:"required,min=1,max=30"`
	Dept     string   `json:"dept"`
	Year     string   `json:"year"`
	Semester string   `json:"semester"`
	Links    []string `json:"links" validate:"max=2,dive,url"`
}

func (nc NewCourse) Validate() error {
	if err := core.Validate.Struct(nc); err != nil {
		return core.NewValidationError(errInvalidSubmission, core.TranslateValidationErrors(err, "")...)
	}
	return nil
}

func (nc NewCourse) Course() Course {
	dept, year, semester := nc.Dept, nc.Year, nc.Semester
	if dept == "" {
		dept = "DIETI"
	}
	if year == "" {
		year = "Second"
	}
	if semester == "" {
		semester = "Second"
	}
	return MakeCourse(nc.Name, nc.Code, nc.CFU, dept, year, semester, nc.Links...)
}

type NewSubPath struct {
	MainPath     string    `json:"main_path" validate:"notblank"`
	SubPath      string    `json:"sub_path" validate:"notblank"`
	CurricularI  NewCourse `json:"curricular_i"`
	CurricularII NewCourse `json:"curricular_ii"`
}

func (nsp NewSubPath) Validate() error {
	var flds []core.FieldError
	if err := core.Validate.StructExcept(nsp, "CurricularI", "CurricularII"); err != nil {
		flds = append(flds, core.TranslateValidationErrors(err, "")...)
	}
	if err := core.Validate.Struct(nsp.CurricularI); err != nil {
		flds = append(flds, core.TranslateValidationErrors(err, "curricular_i.")...)
	}
	if err := core.Validate.Struct(nsp.CurricularII); err != nil {
		flds = append(flds, core.TranslateValidationErrors(err, "curricular_ii.")...)
	}
	if flds != nil {
		return core.NewValidationError(errInvalidSubmission, flds...)
	}
	return nil
}

// ReplaceSubPath adds or replaces a whole sub-path entry. The pair order is
// the caller's responsibility: CurricularI carries the larger weight.
func (svc *Service) ReplaceSubPath(nsp NewSubPath) error {
	if err := nsp.Validate(); err != nil {
		return err
	}
	pair := SubPath{
		CurricularI:  nsp.CurricularI.Course(),
		CurricularII: nsp.CurricularII.Course(),
	}
	if err := svc.repo.ReplaceSubPath(nsp.MainPath, nsp.SubPath, pair); err != nil {
		return err
	}
	svc.log.Info("catalog: sub-path replaced", nsp.MainPath, nsp.SubPath)
	return nil
}

// AddFreeChoiceCourse appends to the free-choice pool; the pool is unique by
// name, duplicates are rejected with a caller-visible error.
func (svc *Service) AddFreeChoiceCourse(nc NewCourse) error {
	if err := nc.Validate(); err != nil {
		return err
	}
	if err := svc.repo.AddFreeChoiceCourse(nc.Course()); err != nil {
		if err == ErrFreeChoiceExists {
			return core.NewValidationError(err, core.FieldError{Field: "name", Error: err.Error()})
		}
		return err
	}
	svc.log.Info("catalog: free-choice course added", nc.Name)
	return nil
}

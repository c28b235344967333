// Package document renders composed study plans into self-contained HTML
// documents suitable for printing or archiving.
package document

import (
	"bytes"
	"html/template"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/dieti/studyplan/core"
	"github.com/dieti/studyplan/core/plan"
)

const templateName = "plan.gohtml"

var (
	tmplOnce sync.Once
	tmpl     *template.Template
	tmplErr  error
)

func parseTemplate() {
	path := filepath.Join(core.Conf.WorkDir, "assets", "templates", templateName)
	tmpl, tmplErr = template.ParseFiles(path)
	if tmplErr != nil {
		tmplErr = errors.Wrapf(tmplErr, "parsing %s", path)
	}
}

type renderContext struct {
	plan.RenderInput
	AcademicYearAA    string
	CurriculumDisplay string
	Today             string
	CommissionYear    int
}

type htmlRenderer struct {
	log core.Logger
}

var _ plan.DocumentRenderer = (*htmlRenderer)(nil)

func NewHTMLRenderer(log core.Logger) plan.DocumentRenderer {
	return &htmlRenderer{log: log}
}

func (r *htmlRenderer) Render(in plan.RenderInput) (*bytes.Buffer, error) {
	tmplOnce.Do(parseTemplate)
	if tmplErr != nil {
		return nil, tmplErr
	}

	now := time.Now()
	ctx := renderContext{
		RenderInput:       in,
		AcademicYearAA:    plan.AcademicYearToAAFormat(in.Academic.AcademicYear),
		CurriculumDisplay: curriculumDisplay(in.MainPath, in.SubPath),
		Today:             now.Format("02/01/2006"),
		CommissionYear:    now.Year(),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return nil, errors.Wrap(err, "executing plan template")
	}
	r.log.Debug("rendered study plan document", "bytes", buf.Len())
	return &buf, nil
}

// curriculumDisplay is the curriculum name printed in the Commissione
// approval block. Individual plans override any curriculum.
func curriculumDisplay(mainPath, subPath string) string {
	mp := strings.ToUpper(mainPath)
	switch {
	case strings.Contains(strings.ToUpper(subPath), "INDIVIDUALE"):
		return "Individuale"
	case strings.Contains(mp, "FUNDAMENTAL SCIENCES"):
		return "FUNDAMENTAL SCIENCES"
	case strings.Contains(mp, "INFORMATION TECHNOLOGIES"):
		return "INFORMATION TECHNOLOGIES"
	case strings.Contains(mp, "PUBLIC ADMINISTRATION, ECONOMY AND MANAGEMENT"), strings.Contains(mp, "ECO"):
		return "PUBLIC ADMINISTRATION, ECONOMY AND MANAGEMENT"
	case strings.Contains(mp, "INTELLIGENT SYSTEMS"):
		return "INTELLIGENT SYSTEMS"
	}
	if disp := core.CleanString(strings.Replace(mainPath, "Curriculum ", "", 1)); disp != "" {
		return disp
	}
	return "Individuale"
}

package plan

import (
	"bytes"
	"fmt"
	"net/mail"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/dieti/studyplan/core"
	"github.com/dieti/studyplan/core/catalog"
)

var errInvalidRequest = errors.New("invalid generation request")

// Service runs the whole composition attempt: validate the selection,
// compose the rows, render the document, then hand it off (relay + email)
// best-effort.
type Service struct {
	catalogSvc *catalog.Service
	renderer   DocumentRenderer
	relay      SubmissionRelay
	mailSvc    core.EmailService
	log        core.Logger
	pol        Policy
}

func NewService(
	catalogSvc *catalog.Service,
	renderer DocumentRenderer,
	relay SubmissionRelay,
	mailSvc core.EmailService,
	log core.Logger,
	pol Policy,
) *Service {
	return &Service{
		catalogSvc: catalogSvc,
		renderer:   renderer,
		relay:      relay,
		mailSvc:    mailSvc,
		log:        log,
		pol:        pol,
	}
}

func (svc *Service) Policy() Policy { return svc.pol }

// Eligible lists the free-choice courses available to a student who chose
// the given sub-path and mode.
func (svc *Service) Eligible(mode Mode, mainPath, subPath string) ([]catalog.Course, error) {
	if !mode.IsValid() {
		return nil, core.NewValidationError(nil, core.FieldError{Field: "mode", Error: fmt.Sprintf("unknown plan mode %q", mode)})
	}
	pair, err := svc.catalogSvc.SubPath(mainPath, subPath)
	if err != nil {
		return nil, err
	}
	curricular := pair.Courses()
	if mode.IsPSI() {
		curricular = curricular[:1]
	}
	return svc.catalogSvc.Eligible(subPath, curricular), nil
}

// Validate runs one full validation pass over a selection. Stateless across
// attempts: corrected selections are re-validated from scratch.
func (svc *Service) Validate(sel Selection) (*ValidatedPlan, error) {
	return NewValidator(svc.catalogSvc.Snapshot(), sel, svc.pol).Run()
}

type GenerateRequest struct {
	Student   StudentDetails  `json:"student"`
	Academic  AcademicDetails `json:"academic"`
	Selection Selection       `json:"selection"`
}

func (req GenerateRequest) validate() error {
	var flds []core.FieldError
	if err := core.Validate.Struct(req.Student); err != nil {
		flds = append(flds, core.TranslateValidationErrors(err, "student.")...)
	}
	if err := core.Validate.Struct(req.Academic); err != nil {
		flds = append(flds, core.TranslateValidationErrors(err, "academic.")...)
	}
	if flds != nil {
		return core.NewValidationError(errInvalidRequest, flds...)
	}
	return nil
}

// Document is a rendered study plan ready to hand back to the student.
type Document struct {
	FileName    string
	ContentType string
	Content     []byte
}

// Generate validates, composes and renders the plan, then fires the relay
// submission and the coordinator notification. Both are best-effort; any
// failure there is logged and the student still receives the document.
func (svc *Service) Generate(req GenerateRequest) (*Document, *ValidatedPlan, error) {
	if err := req.validate(); err != nil {
		return nil, nil, err
	}
	req.Academic.applyDefaults()

	vp, err := svc.Validate(req.Selection)
	if err != nil {
		return nil, nil, err
	}

	subPathDisp := vp.SubPath
	if vp.Mode.IsPSI() {
		subPathDisp += PSISuffix
	}
	var watermark string
	if vp.RequiresApproval {
		watermark = WatermarkPending
	}

	buf, err := svc.renderer.Render(RenderInput{
		Student:       req.Student,
		Academic:      req.Academic,
		MainPath:      vp.MainPath,
		SubPath:       subPathDisp,
		Rows:          Compose(vp),
		WatermarkText: watermark,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "rendering study plan")
	}

	doc := &Document{
		FileName:    DocumentFileName(req.Student.Matricula, vp.SubPath, vp.Mode, ".html"),
		ContentType: "text/html; charset=utf-8",
		Content:     buf.Bytes(),
	}

	svc.submit(doc, req, vp)
	svc.notify(doc, req, vp)
	return doc, vp, nil
}

func (svc *Service) submit(doc *Document, req GenerateRequest, vp *ValidatedPlan) {
	if svc.relay == nil {
		return
	}
	svc.relay.Submit(Submission{
		ID:       uuid.New().String(),
		FileName: doc.FileName,
		Document: doc.Content,
		Student:  req.Student,
		Meta: SubmissionMeta{
			AcademicYear:     req.Academic.AcademicYear,
			YearOfDegree:     req.Academic.YearOfDegree,
			DegreeType:       req.Academic.DegreeType,
			DegreeName:       req.Academic.DegreeName,
			PlanMode:         vp.Mode,
			MainPath:         vp.MainPath,
			SubPath:          vp.SubPath,
			UsingManualEntry: vp.ManualEntry,
			RequiresApproval: vp.RequiresApproval,
			TotalCFU:         vp.TotalCFU,
			Curricular:       SerializeCourses(vp.Curricular),
			FreeChoice:       SerializeCourses(vp.FreeChoice),
			Fixed:            SerializeCourses(vp.Fixed[:]),
		},
	})
}

func (svc *Service) notify(doc *Document, req GenerateRequest, vp *ValidatedPlan) {
	if svc.mailSvc == nil || core.Conf.Coordinator.Email == "" {
		return
	}

	msg := &core.EmailMessage{
		To: []mail.Address{{
			Name:    core.Conf.Coordinator.Name,
			Address: core.Conf.Coordinator.Email,
		}},
		Subject:      fmt.Sprintf("Study plan submitted — %s %s", req.Student.Matricula, PlanName(vp.SubPath, vp.Mode)),
		TemplateName: "plan-submitted",
		TemplateData: struct {
			Student          StudentDetails
			AcademicYear     string
			PlanName         string
			TotalCFU         int
			RequiresApproval bool
		}{
			Student:          req.Student,
			AcademicYear:     AcademicYearToAAFormat(req.Academic.AcademicYear),
			PlanName:         PlanName(vp.SubPath, vp.Mode),
			TotalCFU:         vp.TotalCFU,
			RequiresApproval: vp.RequiresApproval,
		},
	}
	if err := msg.Attach(bytes.NewReader(doc.Content), doc.FileName, doc.ContentType); err != nil {
		svc.log.Warn("attaching study plan to notification", err)
		return
	}
	svc.mailSvc.SendMessages(msg)
}

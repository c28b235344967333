package document

import (
	"io"
	"log"
	"strings"
	"testing"

	"github.com/dieti/studyplan/core"
	"github.com/dieti/studyplan/core/catalog"
	"github.com/dieti/studyplan/core/plan"
)

func renderInput(watermark string) plan.RenderInput {
	mk := catalog.MakeCourse
	in := plan.RenderInput{
		Student: plan.StudentDetails{
			Name:            "Mario Rossi",
			Matricula:       "N97000123",
			PlaceOfBirth:    "Napoli",
			DateOfBirth:     "01/01/2000",
			Phone:           "3331234567",
			Email:           "mario.rossi@studenti.unina.it",
			BachelorsDegree: "Informatica",
		},
		Academic: plan.AcademicDetails{
			AcademicYear: "2025-2026",
			YearOfDegree: "Second",
			DegreeType:   "LAUREA MAGISTRALE",
			DegreeName:   "DATA SCIENCE",
		},
		MainPath:      "Curriculum FUNDAMENTAL SCIENCES",
		SubPath:       "FSE/PH - CURRICULUM FUNDAMENTAL SCIENCES/PHYSICS INSPIRED METHODOLOGIES",
		WatermarkText: watermark,
	}
	courses := []catalog.Course{
		mk("Curricular I", "U1", 12, "DIETI", "Second", "I"),
		mk("Curricular II", "U2", 6, "DIETI", "Second", "II"),
		mk("Free 1", "F1", 6, "DIETI", "Second", "I"),
		mk("Free 2", "F2", 6, "DIETI", "Second", "II"),
		mk("ALTRE ATTIVITA", "12568", 6, "DIETI", "Second", "II"),
		mk("TESI DI LAUREA", "U2848", 16, "DIETI", "Second", "II"),
		mk("TIROCINIO/STAGE", "U4319", 8, "DIETI", "Second", "II"),
	}
	roles := plan.SlotRoles(plan.ModeStandard)
	for i, c := range courses {
		in.Rows[i] = plan.Row{Role: roles[i], Course: c}
	}
	return in
}

func TestHTMLRenderer_Render(t *testing.T) {
	r := NewHTMLRenderer(core.NewStdLogger(log.New(io.Discard, "", 0)))

	buf, err := r.Render(renderInput(""))
	if err != nil {
		t.Fatalf("Render(): %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"Università degli Studi di Napoli Federico II",
		"A.A 2025/26",
		"Mario Rossi",
		"N97000123",
		"FUNDAMENTAL SCIENCES", // approval block curriculum
		"TESI DI LAUREA",
		"TIROCINIO/STAGE",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered document missing %q", want)
		}
	}
	if strings.Contains(html, `class="watermark"`) {
		t.Error("unwatermarked render still has a watermark div")
	}
}

func TestHTMLRenderer_Render_watermarked(t *testing.T) {
	r := NewHTMLRenderer(core.NewStdLogger(log.New(io.Discard, "", 0)))

	buf, err := r.Render(renderInput(plan.WatermarkPending))
	if err != nil {
		t.Fatalf("Render(): %v", err)
	}
	if !strings.Contains(buf.String(), plan.WatermarkPending) {
		t.Error("watermark text missing from render")
	}
}

func Test_curriculumDisplay(t *testing.T) {
	tests := []struct {
		name     string
		mainPath string
		subPath  string
		want     string
	}{
		{
			name:     "individual plan overrides",
			mainPath: "Curriculum INTELLIGENT SYSTEMS - ISY",
			subPath:  "PDS ISY - CURRICULUM INTELLIGENT SYSTEMS — Piano di Studi Individuale",
			want:     "Individuale",
		},
		{name: "fse", mainPath: "Curriculum FUNDAMENTAL SCIENCES", want: "FUNDAMENTAL SCIENCES"},
		{name: "it", mainPath: "Curriculum INFORMATION TECHNOLOGIES", want: "INFORMATION TECHNOLOGIES"},
		{
			name:     "eco",
			mainPath: "Curriculum PUBLIC ADMINISTRATION, ECONOMY AND MANAGEMENT – ECO",
			want:     "PUBLIC ADMINISTRATION, ECONOMY AND MANAGEMENT",
		},
		{name: "isy", mainPath: "Curriculum INTELLIGENT SYSTEMS - ISY", want: "INTELLIGENT SYSTEMS"},
		{name: "unknown keeps tail", mainPath: "Curriculum ROBOTICS", want: "ROBOTICS"},
		{name: "empty falls back", mainPath: "", want: "Individuale"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := curriculumDisplay(tt.mainPath, tt.subPath); got != tt.want {
				t.Errorf("curriculumDisplay(%q, %q) = %q; want %q", tt.mainPath, tt.subPath, got, tt.want)
			}
		})
	}
}

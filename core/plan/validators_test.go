package plan

import (
	"testing"

	"github.com/dieti/studyplan/core"
)

func Test_nameSimilarity(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		wantMin float64
		wantMax float64
	}{
		{name: "identical", a: "Computer Vision", b: "Computer Vision", wantMin: 1, wantMax: 1},
		{name: "case and space ignored", a: "  computer vision ", b: "Computer Vision", wantMin: 1, wantMax: 1},
		{
			name: "near duplicate", a: "Advanced Statistical Learning & Modeling",
			b: "Advanced Statistical Learning and Modeling", wantMin: nameMaxSim, wantMax: 1,
		},
		{name: "unrelated", a: "Graph Theory", b: "Astroinformatics", wantMax: nameMaxSim},
		{name: "empty a", a: "", b: "Computer Vision", wantMax: 0},
		{name: "empty b", a: "Computer Vision", b: "", wantMax: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nameSimilarity(tt.a, tt.b)
			if got < tt.wantMin || got > tt.wantMax {
				t.Errorf("nameSimilarity(%q, %q) = %v; want within [%v, %v]", tt.a, tt.b, got, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func Test_restrictedNameValidation(t *testing.T) {
	tests := []struct {
		name    string
		course  ManualCourse
		wantErr bool
	}{
		{name: "ok", course: ManualCourse{Name: "Graph Theory", Code: "M1", CFU: 6, Dept: "D"}},
		{name: "restricted word", course: ManualCourse{Name: "Italian Literature", Code: "M1", CFU: 6, Dept: "D"}, wantErr: true},
		{name: "restricted word lower", course: ManualCourse{Name: "advanced italian grammar", Code: "M1", CFU: 6, Dept: "D"}, wantErr: true},
		{name: "substring inside a word", course: ManualCourse{Name: "Critaliano Studies", Code: "M1", CFU: 6, Dept: "D"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := core.Validate.Struct(tt.course)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate error = %v; wantErr %v", err, tt.wantErr)
			}
		})
	}
}

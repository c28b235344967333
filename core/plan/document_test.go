package plan

import "testing"

func TestAcademicYearToAAFormat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "standard range", in: "2025-2026", want: "2025/26"},
		{name: "century wrap", in: "1999-2000", want: "1999/00"},
		{name: "already formatted", in: "2025/26", want: "2025/26"},
		{name: "free text", in: "next year", want: "next year"},
		{name: "empty", in: "", want: ""},
		{name: "non-numeric tail", in: "2025-lol", want: "2025-lol"},
		{name: "spaces around hyphen", in: "2025 - 2026", want: "2025/26"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AcademicYearToAAFormat(tt.in); got != tt.want {
				t.Errorf("AcademicYearToAAFormat(%q) = %q; want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAcademicYearToAAFormat_idempotent(t *testing.T) {
	once := AcademicYearToAAFormat("2025-2026")
	if twice := AcademicYearToAAFormat(once); twice != once {
		t.Errorf("second pass changed %q to %q", once, twice)
	}
}

func TestShortCodeFromSubPath(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{name: "empty defaults", label: "", want: "PLAN"},
		{
			name:  "pds prefix stripped",
			label: "PDS ITE/TS - CURRICULUM INFORMATION TECHNOLOGIES/TEXT AND SPEECH PROCESSING",
			want:  "ITE/TS",
		},
		{
			name:  "no pds prefix",
			label: "FSE/PH - CURRICULUM FUNDAMENTAL SCIENCES/PHYSICS INSPIRED METHODOLOGIES",
			want:  "FSE/PH",
		},
		{
			name:  "psi display suffix stripped",
			label: "PDS ISY - CURRICULUM INTELLIGENT SYSTEMS — Piano di Studi Individuale",
			want:  "ISY",
		},
		{name: "bare code", label: "PDS ECO", want: "ECO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShortCodeFromSubPath(tt.label); got != tt.want {
				t.Errorf("ShortCodeFromSubPath(%q) = %q; want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestPlanName(t *testing.T) {
	label := "PDS ITE/TS - CURRICULUM INFORMATION TECHNOLOGIES/TEXT AND SPEECH PROCESSING"
	if got := PlanName(label, ModeStandard); got != "ITE-TS" {
		t.Errorf("PlanName(standard) = %q; want ITE-TS", got)
	}
	if got := PlanName(label, ModePSI); got != "ITE-TS-PSI" {
		t.Errorf("PlanName(psi) = %q; want ITE-TS-PSI", got)
	}
}

func TestDocumentFileName(t *testing.T) {
	label := "PDS ITE/TS - CURRICULUM INFORMATION TECHNOLOGIES/TEXT AND SPEECH PROCESSING"
	tests := []struct {
		name      string
		matricula string
		mode      Mode
		want      string
	}{
		{name: "standard", matricula: "N97000123", mode: ModeStandard, want: "N97000123_ITE-TS.html"},
		{name: "psi", matricula: "N97000123", mode: ModePSI, want: "N97000123_ITE-TS-PSI.html"},
		{name: "blank matricula falls back", matricula: "  ", mode: ModeStandard, want: "studente_ITE-TS.html"},
		{name: "unsafe chars replaced", matricula: "N97 0001*23", mode: ModeStandard, want: "N97_0001_23_ITE-TS.html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DocumentFileName(tt.matricula, label, tt.mode, ".html"); got != tt.want {
				t.Errorf("DocumentFileName() = %q; want %q", got, tt.want)
			}
		})
	}
}

package plan

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/dieti/studyplan/core"
)

var (
	restrictedNameTag  = "norestrictedname"
	restrictedNameText = "free-choice course name cannot contain 'Italian'"
	// Hard institutional restriction, kept verbatim from the approved rules;
	// applies to manually entered names only.
	restrictedNameSubstr = "italian"

	// similarity threshold for the non-blocking near-duplicate warning
	nameMaxSim = .85
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(restrictedNameTag, restrictedNameValidation)
	core.RegisterCustomTranslation(restrictedNameTag, restrictedNameText)
}

// Custom Validators

func restrictedNameValidation(fl validator.FieldLevel) bool {
	if name, ok := fl.Field().Interface().(string); ok {
		return !strings.Contains(strings.ToLower(name), restrictedNameSubstr)
	}
	return false
}

// nameSimilarity rates how close two course names are, ignoring case and
// surrounding space.
func nameSimilarity(a, b string) float64 {
	a = core.CleanString(a, true)
	b = core.CleanString(b, true)
	if a == "" || b == "" {
		return 0
	}
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).QuickRatio()
}

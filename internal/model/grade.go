package model

import "fmt"

// ADGrade is the accumulation/distribution letter grade, best first.
type ADGrade int

const (
	ADUnknown ADGrade = iota
	ADGradeA
	ADGradeBPlus
	ADGradeB
	ADGradeBMinus
	ADGradeCPlus
	ADGradeC
	ADGradeCMinus
	ADGradeD
	ADGradeE
)

var adGrades = []struct {
	label string
	score float64
}{
	ADUnknown:     {"?", 50},
	ADGradeA:      {"A", 99},
	ADGradeBPlus:  {"B+", 85},
	ADGradeB:      {"B", 75},
	ADGradeBMinus: {"B-", 65},
	ADGradeCPlus:  {"C+", 55},
	ADGradeC:      {"C", 45},
	ADGradeCMinus: {"C-", 35},
	ADGradeD:      {"D", 25},
	ADGradeE:      {"E", 15},
}

// ADGrades lists the valid grades from best to worst.
func ADGrades() []ADGrade {
	return []ADGrade{ADGradeA, ADGradeBPlus, ADGradeB, ADGradeBMinus, ADGradeCPlus, ADGradeC, ADGradeCMinus, ADGradeD, ADGradeE}
}

func (g ADGrade) valid() bool { return g > ADUnknown && g <= ADGradeE }

func (g ADGrade) String() string {
	if g < ADUnknown || g > ADGradeE {
		return adGrades[ADUnknown].label
	}
	return adGrades[g].label
}

// Score maps the grade onto the 1-99 composite scale. Unknown grades score 50.
func (g ADGrade) Score() float64 {
	if !g.valid() {
		return adGrades[ADUnknown].score
	}
	return adGrades[g].score
}

func (g ADGrade) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

func (g *ADGrade) UnmarshalText(b []byte) error {
	for _, c := range ADGrades() {
		if c.String() == string(b) {
			*g = c
			return nil
		}
	}
	return fmt.Errorf("unknown accumulation/distribution grade %q", string(b))
}

// SMRGrade is the sales/margin/return quality grade.
type SMRGrade int

const (
	SMRUnknown SMRGrade = iota
	SMRGradeA
	SMRGradeB
	SMRGradeC
	SMRGradeD
)

var smrGrades = []struct {
	label string
	score float64
}{
	SMRUnknown: {"?", 50},
	SMRGradeA:  {"A", 99},
	SMRGradeB:  {"B", 75},
	SMRGradeC:  {"C", 50},
	SMRGradeD:  {"D", 25},
}

// SMRGrades lists the valid grades from best to worst.
func SMRGrades() []SMRGrade {
	return []SMRGrade{SMRGradeA, SMRGradeB, SMRGradeC, SMRGradeD}
}

func (g SMRGrade) String() string {
	if g < SMRUnknown || g > SMRGradeD {
		return smrGrades[SMRUnknown].label
	}
	return smrGrades[g].label
}

// Score maps the grade onto the 1-99 composite scale. Unknown grades score 50.
func (g SMRGrade) Score() float64 {
	if g <= SMRUnknown || g > SMRGradeD {
		return smrGrades[SMRUnknown].score
	}
	return smrGrades[g].score
}

func (g SMRGrade) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

func (g *SMRGrade) UnmarshalText(b []byte) error {
	for _, c := range SMRGrades() {
		if c.String() == string(b) {
			*g = c
			return nil
		}
	}
	return fmt.Errorf("unknown SMR grade %q", string(b))
}

// IGGrade is the institutional/growth letter grade.
type IGGrade int

const (
	IGNotAvailable IGGrade = iota
	IGGradeAPlus
	IGGradeA
	IGGradeAMinus
	IGGradeBPlus
	IGGradeB
	IGGradeBMinus
	IGGradeCPlus
	IGGradeC
	IGGradeCMinus
	IGGradeD
)

var igLabels = []string{
	IGNotAvailable: "N/A",
	IGGradeAPlus:   "A+",
	IGGradeA:       "A",
	IGGradeAMinus:  "A-",
	IGGradeBPlus:   "B+",
	IGGradeB:       "B",
	IGGradeBMinus:  "B-",
	IGGradeCPlus:   "C+",
	IGGradeC:       "C",
	IGGradeCMinus:  "C-",
	IGGradeD:       "D",
}

func (g IGGrade) String() string {
	if g < IGNotAvailable || g > IGGradeD {
		return igLabels[IGNotAvailable]
	}
	return igLabels[g]
}

func (g IGGrade) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

func (g *IGGrade) UnmarshalText(b []byte) error {
	for i, l := range igLabels {
		if l == string(b) {
			*g = IGGrade(i)
			return nil
		}
	}
	return fmt.Errorf("unknown institutional/growth grade %q", string(b))
}

package calculator

import "CanslimScanner/internal/model"

// AccDisWindow is the trailing window of the accumulation/distribution grade.
const AccDisWindow = 65

var accDisThresholds = []struct {
	min   float64
	grade model.ADGrade
}{
	{0.65, model.ADGradeA},
	{0.55, model.ADGradeBPlus},
	{0.48, model.ADGradeB},
	{0.42, model.ADGradeBMinus},
	{0.35, model.ADGradeCPlus},
	{0.30, model.ADGradeC},
	{0.25, model.ADGradeCMinus},
	{0.20, model.ADGradeD},
}

// AccDisRatio weighs up and down days over the trailing window.
// An up day (close strictly above the previous close) scores 2 accumulation
// points on above-average volume and 1 otherwise. Every other day, including
// an unchanged close, scores distribution points the same way.
func AccDisRatio(series *model.PriceSeries) (ratio float64, ok bool) {
	if series.Len() < AccDisWindow {
		return 0, false
	}
	closes := series.Closes()
	volumes := series.Volumes()
	closes = closes[len(closes)-AccDisWindow:]
	volumes = volumes[len(volumes)-AccDisWindow:]

	avgVolume, err := CalculateSMA(volumes, AccDisWindow)
	if err != nil {
		return 0, false
	}

	var acc, dis float64
	for i := 1; i < len(closes); i++ {
		up := closes[i] > closes[i-1]
		highVol := volumes[i] > avgVolume
		switch {
		case up && highVol:
			acc += 2
		case up:
			acc++
		case highVol:
			dis += 2
		default:
			dis++
		}
	}
	if acc+dis == 0 {
		return 0, false
	}
	return acc / (acc + dis), true
}

// AccDisGrade maps AccDisRatio onto the A..E scale. Short series grade C.
func AccDisGrade(series *model.PriceSeries) model.ADGrade {
	ratio, ok := AccDisRatio(series)
	if !ok {
		return model.ADGradeC
	}
	for _, t := range accDisThresholds {
		if ratio >= t.min {
			return t.grade
		}
	}
	return model.ADGradeE
}

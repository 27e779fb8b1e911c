package ui

import (
	"testing"

	"github.com/pthm-cable/flock/config"
)

func TestDefaultsWithinSliderRanges(t *testing.T) {
	p := config.Defaults().Params
	for _, sd := range ParamSliders {
		v := *sd.Value(&p)
		if v < float64(sd.Min) || v > float64(sd.Max) {
			t.Errorf("%s default %v outside slider range [%v, %v]", sd.Label, v, sd.Min, sd.Max)
		}
	}
}

func TestDescriptorsBindDistinctFields(t *testing.T) {
	var p config.Params

	seen := map[*float64]string{}
	for _, sd := range ParamSliders {
		ptr := sd.Value(&p)
		if other, ok := seen[ptr]; ok {
			t.Errorf("%s and %s edit the same field", sd.Label, other)
		}
		seen[ptr] = sd.Label
	}

	toggles := map[*bool]string{}
	for _, td := range ParamToggles {
		ptr := td.Value(&p)
		if other, ok := toggles[ptr]; ok {
			t.Errorf("%s and %s edit the same field", td.Label, other)
		}
		toggles[ptr] = td.Label
	}

	*ParamToggles[0].Value(&p) = true
	if !p.PredatorEnabled {
		t.Error("predator toggle does not edit PredatorEnabled")
	}
}

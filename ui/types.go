// Package ui provides the raylib front end: a descriptor-driven parameter panel,
// the HUD, and the window loop that drives the simulation.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flock/config"
)

// SliderDescriptor binds a slider to a float parameter.
type SliderDescriptor struct {
	Label  string
	Format string // Printf format for the value readout
	Min    float32
	Max    float32
	Value  func(*config.Params) *float64
}

// ToggleDescriptor binds a checkbox to a boolean parameter.
type ToggleDescriptor struct {
	Label    string
	KeyLabel string // keyboard shortcut shown next to the label
	Value    func(*config.Params) *bool
}

// ParamSliders lists the sliders shown in the parameter panel, top to bottom.
var ParamSliders = []SliderDescriptor{
	{Label: "Separation", Format: "%.2f", Min: 0, Max: 5, Value: func(p *config.Params) *float64 { return &p.SeparationWeight }},
	{Label: "Alignment", Format: "%.2f", Min: 0, Max: 5, Value: func(p *config.Params) *float64 { return &p.AlignmentWeight }},
	{Label: "Cohesion", Format: "%.2f", Min: 0, Max: 5, Value: func(p *config.Params) *float64 { return &p.CohesionWeight }},
	{Label: "Wave damping", Format: "%.3f", Min: 0.8, Max: 0.999, Value: func(p *config.Params) *float64 { return &p.WaveDamping }},
	{Label: "Food lifespan", Format: "%.0f", Min: 10, Max: 1000, Value: func(p *config.Params) *float64 { return &p.FoodLifespan }},
	{Label: "Predator speed", Format: "%.1f", Min: 1, Max: 10, Value: func(p *config.Params) *float64 { return &p.PredatorMaxSpeed }},
}

// ParamToggles lists the checkboxes shown below the sliders.
var ParamToggles = []ToggleDescriptor{
	{Label: "Predator", KeyLabel: "P", Value: func(p *config.Params) *bool { return &p.PredatorEnabled }},
	{Label: "Fluid", KeyLabel: "F", Value: func(p *config.Params) *bool { return &p.FluidEnabled }},
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	SliderHeight   int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.LightGray,
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     90,
		SliderHeight:   14,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}

// Package styles draws the scale of a clock face.
//
// A [Scale] renders one [face.Tick] at a time; [Lines] draws radial strokes
// and [Dots] draws filled circles. The sink package opens the enclosing
// group with the attributes from [Scale.GroupAttrs] so individual marks
// carry only their geometry.
package styles

// Package pkg provides the libraries behind clockface, a generator for the
// SVG faces of web clocks.
//
// # Overview
//
// A clock face is a 200×200 SVG drawing: a colored background disc, an
// optional scale of tick marks, optional digits, a digital readout and three
// hands. Every element a client script animates carries a stable id such as
// "ptbSecondHand". The face can be wrapped in an HTML page that starts a
// WebSocket driven clock script.
//
// # Architecture
//
//	face.Options (flags, TOML, YAML)
//	         ↓
//	    [face] Resolve: typed face, fallback notices
//	         ↓
//	    [render/sink] RenderSVG, optionally RenderHTML
//	         ↓
//	    SVG or HTML bytes
//
// [pipeline] runs these stages for the CLI and the preview server.
//
// # Quick Start
//
//	f, notices := face.Resolve(face.Options{Digits: "roman", Shadow: []string{"second"}})
//	for _, n := range notices {
//	    log.Warn(n.String())
//	}
//	svg := sink.RenderSVG(f)
//
// # Main Packages
//
// [face] - Options, resolution with defaults, tick marks and digit labels.
// [face/geometry] places points on the dial.
//
// [render/styles] - Tick shapes (lines, dots) and XML text helpers.
//
// [render/sink] - SVG assembly, HTML page wrapper, timezone parsing and
// localized labels.
//
// [pipeline] - Orchestration shared by every entry point.
//
// [config] - TOML and YAML settings files.
//
// [errors], [buildinfo], [observability] - Shared infrastructure.
//
// [face]: github.com/matzehuels/clockface/pkg/face
// [face/geometry]: github.com/matzehuels/clockface/pkg/face/geometry
// [render/styles]: github.com/matzehuels/clockface/pkg/render/styles
// [render/sink]: github.com/matzehuels/clockface/pkg/render/sink
// [pipeline]: github.com/matzehuels/clockface/pkg/pipeline
// [config]: github.com/matzehuels/clockface/pkg/config
// [errors]: github.com/matzehuels/clockface/pkg/errors
// [buildinfo]: github.com/matzehuels/clockface/pkg/buildinfo
// [observability]: github.com/matzehuels/clockface/pkg/observability
package pkg

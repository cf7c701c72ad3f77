// Package render groups the clock face renderers.
//
// [styles] draws individual tick marks; [sink] assembles complete
// documents from a resolved face:
//
//	f, _ := face.Resolve(face.Options{ScaleStyle: "dot"})
//	svg := sink.RenderSVG(f)
//	page, err := sink.RenderHTML(svg, sink.PageOptions{Server: "wss://time.example.org/ws"})
//
// Output is deterministic: the same face always yields the same bytes.
//
// [styles]: github.com/matzehuels/clockface/pkg/render/styles
// [sink]: github.com/matzehuels/clockface/pkg/render/sink
package render

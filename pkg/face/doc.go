// Package face models a clock face: the user-facing [Options], the resolved
// and immutable [Face], and the marks derived from it.
//
// # Options and resolution
//
// [Options] is a flat set of named settings in which every zero value means
// "use the default". It is what configuration files decode into and what the
// command line populates. [Resolve] turns Options into a [Face], applying
// typed defaults and validating each field before any geometry runs. Values
// that cannot be used are replaced by their defaults and reported as
// [Notice] values; resolution never fails.
//
//	f, notices := face.Resolve(face.Options{Digits: "roman", Hour24: true})
//	for _, n := range notices {
//	    logger.Warn(n.String())
//	}
//
// # Marks
//
// A Face derives, on demand, the marks drawn on the dial:
//
//   - [Face.Ticks]: the scale, 60 angular positions filtered and styled by
//     the hour and minute scale switches
//   - [Face.Ring]: the 24 secondary dots of a 24-hour dial
//   - [Face.Labels]: the 12 or 24 digit labels in Arabic or Roman numerals
//
// All positions come from package geometry and are percentages of the
// 200x200 viewBox the sink package renders into.
package face

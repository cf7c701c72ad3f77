// Package sink writes clock faces as SVG documents and HTML pages.
//
// [RenderSVG] assembles the dial from a resolved [face.Face] in a fixed
// order: shadow filter definitions, background, axis, scale, 24-hour ring,
// digits, the digital readout and notice placeholders, the deviation
// display, and the hour, minute and second hands. Placeholders are left
// empty; a client-side clock script finds them by id and fills them in.
//
// [RenderHTML] embeds an SVG document in a page that loads that script and
// configures it from the tz and longitude query parameters.
//
// # Element identifiers
//
// Every id starts with the face's id prefix ("ptb" by default):
//
//	FaceBackground  background circle, data-fill-connected/-disconnected
//	Scale, Scale24  tick group and 24-hour ring group
//	Digits          digit label group
//	SwitchClock     digital readout: Date, Time, LocalTimezone, Weekday
//	Notice          status text
//	TabDeviation    deviation display: DeviationTitle, LinkDeviation,
//	                Deviation, Offset, Accuracy
//	HourHand        hour hand (HourHand24 on a 24-hour dial)
//	MinuteHand      minute hand
//	SecondHand      second hand
//	HandShadow      drop shadow filter, present only when a hand uses it
package sink

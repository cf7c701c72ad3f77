package sink

import "golang.org/x/text/language"

// Labels holds the human-readable text placed on the dial.
type Labels struct {
	DeviationTitle string // tooltip of the deviation button
	DeviationText  string // lead-in of the deviation readout
}

var (
	labelsGerman = Labels{
		DeviationTitle: "Abweichung der lokalen Geräte-Uhr anzeigen",
		DeviationText:  "Die lokale Uhr geht",
	}
	labelsEnglish = Labels{
		DeviationTitle: "Show the deviation of the local device clock",
		DeviationText:  "The local clock is off by",
	}
)

// labelMatcher lists the supported languages; the first entry is the
// fallback for unmatched tags.
var labelMatcher = language.NewMatcher([]language.Tag{
	language.German,
	language.English,
})

// LabelsFor returns the labels best matching tag. German is the default.
func LabelsFor(tag language.Tag) Labels {
	_, i, conf := labelMatcher.Match(tag)
	if conf == language.No || i == 0 {
		return labelsGerman
	}
	return labelsEnglish
}

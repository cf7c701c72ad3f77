// Package config loads clockface settings from TOML or YAML files.
//
// A file has two optional sections, face and page:
//
//	[face]
//	scale = ["hour"]
//	digits = "roman"
//	hour24 = true
//	background = ["lightgray", "#eaeaea", "#ffb2b2"]
//
//	[page]
//	server = "uhr.ptb.de/time"
//	tz = "UTC,3600"
//	lang = "en"
//
// The same layout works in YAML. Unknown keys are rejected so that typos do
// not silently fall back to defaults.
package config

import (
	"golang.org/x/text/language"

	"github.com/matzehuels/clockface/pkg/errors"
	"github.com/matzehuels/clockface/pkg/face"
	"github.com/matzehuels/clockface/pkg/render/sink"
)

// Config is the content of a settings file.
type Config struct {
	Face face.Options `toml:"face" yaml:"face"`
	Page Page         `toml:"page" yaml:"page"`
}

// Page holds HTML page settings in their textual form, as written in a
// file or given on the command line.
type Page struct {
	Server   string `toml:"server" yaml:"server"`
	Timezone string `toml:"tz" yaml:"tz"`
	Script   string `toml:"script" yaml:"script"`
	Lang     string `toml:"lang" yaml:"lang"`
	Title    string `toml:"title" yaml:"title"`
}

// Options parses p into page options with defaults applied.
func (p Page) Options() (sink.PageOptions, error) {
	tz, err := sink.ParseTimezone(p.Timezone)
	if err != nil {
		return sink.PageOptions{}, err
	}
	lang, err := ParseLanguage(p.Lang)
	if err != nil {
		return sink.PageOptions{}, err
	}
	opts := sink.PageOptions{
		Server:   p.Server,
		Timezone: tz,
		Script:   p.Script,
		Lang:     lang,
		Title:    p.Title,
	}
	opts.SetDefaults()
	return opts, nil
}

// ParseLanguage parses a BCP 47 tag. An empty string selects the default
// page language.
func ParseLanguage(s string) (language.Tag, error) {
	if s == "" {
		return sink.DefaultLanguage, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid language tag: %q", s)
	}
	return tag, nil
}

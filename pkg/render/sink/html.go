package sink

import (
	"bytes"
	"html/template"

	"golang.org/x/text/language"

	"github.com/matzehuels/clockface/pkg/errors"
)

// Page defaults.
const (
	DefaultServer = "uhr.ptb.de/time"
	DefaultScript = "webSocketClock.js"
	DefaultTitle  = "Clock"
)

// DefaultLanguage is the page language when none is configured.
var DefaultLanguage = language.German

// PageOptions configures the HTML wrapper.
type PageOptions struct {
	Server   string       // time server endpoint handed to the clock script
	Timezone Timezone     // zone used when the URL has no tz parameter
	Script   string       // clock script URL
	Lang     language.Tag // page language
	Title    string
}

// SetDefaults fills unset fields.
func (o *PageOptions) SetDefaults() {
	if o.Server == "" {
		o.Server = DefaultServer
	}
	if o.Timezone.Name == "" {
		o.Timezone.Name = DefaultTimezone
	}
	if o.Script == "" {
		o.Script = DefaultScript
	}
	if o.Lang == language.Und {
		o.Lang = DefaultLanguage
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
}

// Validate checks the fields that end up in the page script.
func (o PageOptions) Validate() error {
	return errors.ValidateEndpoint(o.Server)
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
  <head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <script src="{{.Script}}"></script>
  </head>

  <body>
    <script type="text/javascript">
      function getURLvar(k) {
        var p = {};
        location.search.replace(/[?&]+([^=&]+)=([^&]*)/gi, function(s, k, v) {p[k] = v});
        return k ? p[k] : p;
      }

      window.onload = function() {
        var defaultTZ = {{.Zone}};
        var defaultOffset = {{.Offset}};
        var tz = getURLvar("tz");
        if (tz === undefined)
          tz = defaultTZ;
        var key = tz;
        var conf;
        if (tz == 'CET' || tz == 'MEZ')
          {
            key = 'CET';
            conf = {iso_date:false, CET:{}};
          }
        else
          {
            conf = {iso_date:true};
            conf[key] = {};
          }
        if (tz === defaultTZ && defaultOffset !== null)
          conf[key].offset = defaultOffset;
        var lon = getURLvar("longitude");
        if (lon !== undefined)
          conf.longitude = parseFloat(lon);
        new webSocketClock({{.Server}}, conf);
      };
    </script>

    <div style="width:400px;justify-content:center">
{{.SVG}}
    </div>
  </body>
</html>
`))

type pageData struct {
	Lang   string
	Title  string
	Script string
	Server string
	Zone   string
	Offset *int
	SVG    template.HTML
}

// RenderHTML wraps an SVG document produced by RenderSVG in a page that
// drives it with the clock script.
func RenderHTML(svgDoc []byte, opts PageOptions) ([]byte, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	data := pageData{
		Lang:   opts.Lang.String(),
		Title:  opts.Title,
		Script: opts.Script,
		Server: opts.Server,
		Zone:   opts.Timezone.Name,
		SVG:    template.HTML(svgDoc),
	}
	if opts.Timezone.HasOffset {
		offset := opts.Timezone.Offset
		data.Offset = &offset
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render page")
	}
	return buf.Bytes(), nil
}

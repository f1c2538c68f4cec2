package embed

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Template is an embed described in a data file.
type Template struct {
	Title       string          `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	URL         string          `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Color       int             `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
	Timestamp   string          `json:"timestamp,omitempty" yaml:"timestamp,omitempty" toml:"timestamp,omitempty"` // RFC3339 or "now"
	Thumbnail   string          `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty" toml:"thumbnail,omitempty"`
	Image       string          `json:"image,omitempty" yaml:"image,omitempty" toml:"image,omitempty"`
	Author      *TemplateAuthor `json:"author,omitempty" yaml:"author,omitempty" toml:"author,omitempty"`
	Footer      *TemplateFooter `json:"footer,omitempty" yaml:"footer,omitempty" toml:"footer,omitempty"`
	Fields      []TemplateField `json:"fields,omitempty" yaml:"fields,omitempty" toml:"fields,omitempty"`
	Groups      []TemplateGroup `json:"groups,omitempty" yaml:"groups,omitempty" toml:"groups,omitempty"`
}

type TemplateAuthor struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`
	IconURL string `json:"icon_url,omitempty" yaml:"icon_url,omitempty" toml:"icon_url,omitempty"`
}

type TemplateFooter struct {
	Text    string `json:"text" yaml:"text" toml:"text"`
	IconURL string `json:"icon_url,omitempty" yaml:"icon_url,omitempty" toml:"icon_url,omitempty"`
}

type TemplateField struct {
	Name   string `json:"name" yaml:"name" toml:"name"`
	Value  string `json:"value" yaml:"value" toml:"value"`
	Inline bool   `json:"inline,omitempty" yaml:"inline,omitempty" toml:"inline,omitempty"`
}

// TemplateGroup is rendered with Group after the plain fields.
type TemplateGroup struct {
	Name   string   `json:"name" yaml:"name" toml:"name"`
	Values []string `json:"values" yaml:"values" toml:"values"`
}

// DecodeTemplate parses data in the given format: "json", "toml" or "yaml".
func DecodeTemplate(data []byte, format string) (*Template, error) {
	t := &Template{}
	var err error
	switch format {
	case "json":
		err = json.Unmarshal(data, t)
	case "toml":
		err = toml.Unmarshal(data, t)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, t)
	default:
		return nil, fmt.Errorf("unsupported template format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s template: %w", format, err)
	}
	return t, nil
}

// Expand returns a copy of t with every "{key}" in its text replaced by
// vars[key].
func (t Template) Expand(vars map[string]string) Template {
	if len(vars) == 0 {
		return t
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	r := strings.NewReplacer(pairs...)

	out := t
	out.Title = r.Replace(t.Title)
	out.Description = r.Replace(t.Description)
	if t.Author != nil {
		a := *t.Author
		a.Name = r.Replace(a.Name)
		out.Author = &a
	}
	if t.Footer != nil {
		f := *t.Footer
		f.Text = r.Replace(f.Text)
		out.Footer = &f
	}
	out.Fields = make([]TemplateField, len(t.Fields))
	for i, f := range t.Fields {
		f.Name = r.Replace(f.Name)
		f.Value = r.Replace(f.Value)
		out.Fields[i] = f
	}
	out.Groups = make([]TemplateGroup, len(t.Groups))
	for i, g := range t.Groups {
		values := make([]string, len(g.Values))
		for j, v := range g.Values {
			values[j] = r.Replace(v)
		}
		out.Groups[i] = TemplateGroup{Name: r.Replace(g.Name), Values: values}
	}
	return out
}

// Builder fills a new Builder from the template. Invalid values are
// reported through the builder's Err.
func (t *Template) Builder() *Builder {
	b := New().
		Title(t.Title).
		URL(t.URL).
		Description(t.Description).
		Color(t.Color).
		Thumbnail(t.Thumbnail).
		Image(t.Image)

	switch t.Timestamp {
	case "":
	case "now":
		b.CurrentTimestamp()
	default:
		ts, err := time.Parse(time.RFC3339, t.Timestamp)
		if err != nil {
			b.fail(fmt.Errorf("template timestamp: %w", err))
		} else {
			b.Timestamp(ts)
		}
	}

	if t.Author != nil {
		b.Author(t.Author.Name, t.Author.URL, t.Author.IconURL)
	}
	if t.Footer != nil {
		b.Footer(t.Footer.Text, t.Footer.IconURL)
	}
	for _, f := range t.Fields {
		b.Field(f.Name, f.Value, f.Inline)
	}
	for _, g := range t.Groups {
		b.Fields(Group(g.Name, g.Values))
	}
	return b
}

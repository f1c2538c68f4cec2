// Package embed builds chat message embeds as plain data and converts them
// to Discord's embed representation in Build, the only place that depends
// on the shape of the platform API.
package embed

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

// Platform limits, in characters.
const (
	TitleMaxLength       = 256
	DescriptionMaxLength = 4096
	FieldNameMaxLength   = 256
	FieldValueMaxLength  = 1024
	FooterMaxLength      = 2048
	AuthorMaxLength      = 256
	URLMaxLength         = 2000
	TotalMaxLength       = 6000
	MaxFields            = 25
)

// ZeroWidthSpace stands in for blank field names and values, which the
// platform rejects.
const ZeroWidthSpace = "\u200b"

var (
	ErrEmpty         = errors.New("cannot build an empty embed")
	ErrTooLong       = errors.New("embed text too long")
	ErrTooManyFields = errors.New("too many embed fields")
	ErrInvalidURL    = errors.New("URL must be a valid http(s) or attachment url")
)

var urlPattern = regexp.MustCompile(`(?i)^\s*(https?|attachment)://\S+\s*$`)

// nowFunc is replaced in tests.
var nowFunc = time.Now

// Builder collects embed data. Setters return the builder for chaining.
// The first invalid input is remembered and reported by Err and Build;
// the offending setter leaves the builder unchanged.
type Builder struct {
	title       string
	url         string
	description strings.Builder
	color       int
	timestamp   time.Time
	thumbnail   string
	image       string
	author      *discordgo.MessageEmbedAuthor
	footer      *discordgo.MessageEmbedFooter
	fields      []*discordgo.MessageEmbedField
	err         error
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// FromDiscord returns a Builder holding a copy of e.
func FromDiscord(e *discordgo.MessageEmbed) *Builder {
	b := New()
	if e == nil {
		return b
	}
	b.title = e.Title
	b.url = e.URL
	b.description.WriteString(e.Description)
	b.color = e.Color
	if e.Timestamp != "" {
		if ts, err := time.Parse(time.RFC3339, e.Timestamp); err == nil {
			b.timestamp = ts
		}
	}
	if e.Thumbnail != nil {
		b.thumbnail = e.Thumbnail.URL
	}
	if e.Image != nil {
		b.image = e.Image.URL
	}
	if e.Author != nil {
		a := *e.Author
		b.author = &a
	}
	if e.Footer != nil {
		f := *e.Footer
		b.footer = &f
	}
	for _, f := range e.Fields {
		if f == nil {
			continue
		}
		cp := *f
		b.fields = append(b.fields, &cp)
	}
	return b
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

func checkLength(what, s string, limit int) error {
	if n := utf8.RuneCountInString(s); n > limit {
		return fmt.Errorf("%w: %s is %d characters, limit %d", ErrTooLong, what, n, limit)
	}
	return nil
}

func checkURL(url string) error {
	if url == "" {
		return nil
	}
	if err := checkLength("URL", url, URLMaxLength); err != nil {
		return err
	}
	if !urlPattern.MatchString(url) {
		return fmt.Errorf("%w: %q", ErrInvalidURL, url)
	}
	return nil
}

// Err returns the first validation error recorded by a setter.
func (b *Builder) Err() error {
	return b.err
}

// Title sets the title. An empty title clears it.
func (b *Builder) Title(title string) *Builder {
	if err := checkLength("title", title, TitleMaxLength); err != nil {
		return b.fail(err)
	}
	b.title = title
	return b
}

// URL sets the link attached to the title.
func (b *Builder) URL(url string) *Builder {
	if err := checkURL(url); err != nil {
		return b.fail(err)
	}
	b.url = url
	return b
}

// Description replaces the description.
func (b *Builder) Description(text string) *Builder {
	if err := checkLength("description", text, DescriptionMaxLength); err != nil {
		return b.fail(err)
	}
	b.description.Reset()
	b.description.WriteString(text)
	return b
}

// AppendDescription adds text to the end of the description.
func (b *Builder) AppendDescription(text string) *Builder {
	if err := checkLength("description", b.description.String()+text, DescriptionMaxLength); err != nil {
		return b.fail(err)
	}
	b.description.WriteString(text)
	return b
}

// Color sets the side bar colour as 0xRRGGBB. Zero means no colour.
func (b *Builder) Color(rgb int) *Builder {
	b.color = rgb & 0xFFFFFF
	return b
}

// Timestamp sets the timestamp. The zero time clears it.
func (b *Builder) Timestamp(t time.Time) *Builder {
	b.timestamp = t
	return b
}

// CurrentTimestamp sets the timestamp to now.
func (b *Builder) CurrentTimestamp() *Builder {
	return b.Timestamp(nowFunc())
}

// Author sets the author line. An empty name clears it.
func (b *Builder) Author(name, url, iconURL string) *Builder {
	if name == "" {
		b.author = nil
		return b
	}
	if err := checkLength("author name", name, AuthorMaxLength); err != nil {
		return b.fail(err)
	}
	if err := checkURL(url); err != nil {
		return b.fail(err)
	}
	if err := checkURL(iconURL); err != nil {
		return b.fail(err)
	}
	b.author = &discordgo.MessageEmbedAuthor{Name: name, URL: url, IconURL: iconURL}
	return b
}

// AuthorSafe is Author without error reporting: invalid input is ignored.
func (b *Builder) AuthorSafe(name, url, iconURL string) *Builder {
	saved := b.err
	b.err = nil
	b.Author(name, url, iconURL)
	b.err = saved
	return b
}

// Footer sets the footer. Empty text clears it.
func (b *Builder) Footer(text, iconURL string) *Builder {
	if text == "" {
		b.footer = nil
		return b
	}
	if err := checkLength("footer", text, FooterMaxLength); err != nil {
		return b.fail(err)
	}
	if err := checkURL(iconURL); err != nil {
		return b.fail(err)
	}
	b.footer = &discordgo.MessageEmbedFooter{Text: text, IconURL: iconURL}
	return b
}

// Thumbnail sets the thumbnail image URL.
func (b *Builder) Thumbnail(url string) *Builder {
	if err := checkURL(url); err != nil {
		return b.fail(err)
	}
	b.thumbnail = url
	return b
}

// Image sets the main image URL.
func (b *Builder) Image(url string) *Builder {
	if err := checkURL(url); err != nil {
		return b.fail(err)
	}
	b.image = url
	return b
}

// Field appends a field. Blank names and values are replaced by
// ZeroWidthSpace.
func (b *Builder) Field(name, value string, inline bool) *Builder {
	if name == "" {
		name = ZeroWidthSpace
	}
	if value == "" {
		value = ZeroWidthSpace
	}
	return b.Fields(&discordgo.MessageEmbedField{Name: name, Value: value, Inline: inline})
}

// BlankField appends a spacer field.
func (b *Builder) BlankField(inline bool) *Builder {
	return b.Field("", "", inline)
}

// Fields appends copies of the given fields.
func (b *Builder) Fields(fields ...*discordgo.MessageEmbedField) *Builder {
	for _, f := range fields {
		if f == nil {
			continue
		}
		if len(b.fields) >= MaxFields {
			return b.fail(fmt.Errorf("%w: limit %d", ErrTooManyFields, MaxFields))
		}
		if err := checkLength("field name", f.Name, FieldNameMaxLength); err != nil {
			return b.fail(err)
		}
		if err := checkLength("field value", f.Value, FieldValueMaxLength); err != nil {
			return b.fail(err)
		}
		cp := *f
		b.fields = append(b.fields, &cp)
	}
	return b
}

// IsEmpty reports whether nothing renderable has been set.
func (b *Builder) IsEmpty() bool {
	return b.title == "" &&
		b.timestamp.IsZero() &&
		b.thumbnail == "" &&
		b.author == nil &&
		b.footer == nil &&
		b.image == "" &&
		b.color == 0 &&
		b.description.Len() == 0 &&
		len(b.fields) == 0
}

// Length returns the character count the platform applies its total limit to.
func (b *Builder) Length() int {
	n := utf8.RuneCountInString(b.description.String())
	n += utf8.RuneCountInString(b.title)
	for _, f := range b.fields {
		n += utf8.RuneCountInString(f.Name) + utf8.RuneCountInString(f.Value)
	}
	if b.author != nil {
		n += utf8.RuneCountInString(b.author.Name)
	}
	if b.footer != nil {
		n += utf8.RuneCountInString(b.footer.Text)
	}
	return n
}

// Build converts the collected data into a Discord rich embed.
func (b *Builder) Build() (*discordgo.MessageEmbed, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.IsEmpty() {
		return nil, ErrEmpty
	}
	if n := b.Length(); n > TotalMaxLength {
		return nil, fmt.Errorf("%w: embed is %d characters, limit %d", ErrTooLong, n, TotalMaxLength)
	}

	e := &discordgo.MessageEmbed{
		Type:        discordgo.EmbedTypeRich,
		URL:         b.url,
		Title:       b.title,
		Description: b.description.String(),
		Color:       b.color,
	}
	if !b.timestamp.IsZero() {
		e.Timestamp = b.timestamp.Format(time.RFC3339)
	}
	if b.thumbnail != "" {
		e.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: b.thumbnail}
	}
	if b.image != "" {
		e.Image = &discordgo.MessageEmbedImage{URL: b.image}
	}
	if b.author != nil {
		a := *b.author
		e.Author = &a
	}
	if b.footer != nil {
		f := *b.footer
		e.Footer = &f
	}
	for _, f := range b.fields {
		cp := *f
		e.Fields = append(e.Fields, &cp)
	}
	return e, nil
}

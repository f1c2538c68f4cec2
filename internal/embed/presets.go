package embed

import (
	"github.com/bwmarrin/discordgo"
)

// Common colours, as 0xRRGGBB.
const (
	ColorBlue   = 0x0000FF
	ColorGreen  = 0x00FF00
	ColorRed    = 0xFF0000
	ColorOrange = 0xFFC800
)

// User identifies the person an embed is generated for.
type User struct {
	Tag       string
	AvatarURL string
}

// UserFromDiscord extracts the display tag and avatar of u.
func UserFromDiscord(u *discordgo.User) *User {
	if u == nil {
		return nil
	}
	return &User{Tag: u.String(), AvatarURL: u.AvatarURL("")}
}

// PresetOptions are the inputs shared by FirstPreset and SecondPreset.
type PresetOptions struct {
	Title   string
	Color   int
	Command string
	User    *User
	Fields  []*discordgo.MessageEmbedField

	// Used by SecondPreset only.
	AboveTitle     string
	AboveTitleURL  string
	AboveTitleIcon string
	NoTimestamp    bool
}

// FirstPreset is the standard command reply: the invoking user as author,
// the current time, the command in the footer.
func FirstPreset(o PresetOptions) *Builder {
	b := New().
		Title(o.Title).
		Color(o.Color).
		CurrentTimestamp().
		Footer(o.Command, "").
		Fields(o.Fields...)
	if o.User != nil {
		b.AuthorSafe(o.User.Tag, "", o.User.AvatarURL)
	}
	return b
}

// SecondPreset puts an arbitrary line above the title and folds the user tag
// and command into the footer as "tag • command".
func SecondPreset(o PresetOptions) *Builder {
	b := New().
		Title(o.Title).
		Color(o.Color).
		Fields(o.Fields...)
	if o.AboveTitle != "" {
		b.AuthorSafe(o.AboveTitle, o.AboveTitleURL, o.AboveTitleIcon)
	}

	var tag, icon string
	if o.User != nil {
		tag, icon = o.User.Tag, o.User.AvatarURL
	}
	switch {
	case tag != "" && o.Command != "":
		b.Footer(tag+" • "+o.Command, icon)
	case tag != "":
		b.Footer(tag, icon)
	case o.Command != "":
		b.Footer(o.Command, "")
	}

	if !o.NoTimestamp {
		b.CurrentTimestamp()
	}
	return b
}

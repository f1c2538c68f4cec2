package embed

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

func TestFirstPreset(t *testing.T) {
	now := fixedNow(t)
	e, err := FirstPreset(PresetOptions{
		Title:   "Ping",
		Color:   ColorBlue,
		Command: "?ping",
		User:    &User{Tag: "alice", AvatarURL: "https://cdn.example.com/a.png"},
		Fields:  []*discordgo.MessageEmbedField{{Name: "Latency", Value: "42ms"}},
	}).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if e.Author == nil || e.Author.Name != "alice" || e.Author.IconURL != "https://cdn.example.com/a.png" {
		t.Errorf("Author = %+v", e.Author)
	}
	if e.Footer == nil || e.Footer.Text != "?ping" {
		t.Errorf("Footer = %+v, want ?ping", e.Footer)
	}
	if e.Timestamp != now.Format(time.RFC3339) {
		t.Errorf("Timestamp = %q", e.Timestamp)
	}
	if e.Color != ColorBlue || len(e.Fields) != 1 {
		t.Errorf("Color = %#x, fields = %d", e.Color, len(e.Fields))
	}
}

func TestFirstPresetWithoutUser(t *testing.T) {
	fixedNow(t)
	e, err := FirstPreset(PresetOptions{Title: "Ping"}).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if e.Author != nil || e.Footer != nil {
		t.Errorf("Author = %+v, Footer = %+v, want both unset", e.Author, e.Footer)
	}
}

func TestSecondPresetFooter(t *testing.T) {
	fixedNow(t)
	user := &User{Tag: "alice", AvatarURL: "https://cdn.example.com/a.png"}
	tests := []struct {
		name     string
		user     *User
		command  string
		wantText string
		wantIcon string
	}{
		{"tag and command", user, "?ban", "alice • ?ban", user.AvatarURL},
		{"tag only", user, "", "alice", user.AvatarURL},
		{"command only", nil, "?ban", "?ban", ""},
		{"neither", nil, "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := SecondPreset(PresetOptions{Title: "x", User: tt.user, Command: tt.command}).Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if tt.wantText == "" {
				if e.Footer != nil {
					t.Errorf("Footer = %+v, want nil", e.Footer)
				}
				return
			}
			if e.Footer == nil || e.Footer.Text != tt.wantText || e.Footer.IconURL != tt.wantIcon {
				t.Errorf("Footer = %+v, want %q/%q", e.Footer, tt.wantText, tt.wantIcon)
			}
		})
	}
}

func TestSecondPresetAboveTitleAndTimestamp(t *testing.T) {
	fixedNow(t)
	e, err := SecondPreset(PresetOptions{
		Title:         "Report",
		AboveTitle:    "Moderation",
		AboveTitleURL: "https://example.com/mod",
		NoTimestamp:   true,
	}).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if e.Author == nil || e.Author.Name != "Moderation" || e.Author.URL != "https://example.com/mod" {
		t.Errorf("Author = %+v", e.Author)
	}
	if e.Timestamp != "" {
		t.Errorf("Timestamp = %q, want empty", e.Timestamp)
	}
}

func TestUserFromDiscord(t *testing.T) {
	if UserFromDiscord(nil) != nil {
		t.Error("UserFromDiscord(nil) != nil")
	}
	u := UserFromDiscord(&discordgo.User{ID: "1", Username: "alice", Discriminator: "0"})
	if u.Tag != "alice" {
		t.Errorf("Tag = %q, want alice", u.Tag)
	}
	if u.AvatarURL == "" {
		t.Error("AvatarURL is empty, want default avatar")
	}
}

package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"botkit/internal/embed"

	"github.com/bwmarrin/discordgo"
)

func helpRouter(t *testing.T) *Router {
	t.Helper()
	r := newTestRouter(t,
		&Command{
			Name:        "ban",
			Aliases:     []string{"hammer"},
			Description: "Bans a user.",
			Category:    "Moderation",
			Arguments:   []Argument{{Name: "user", Description: "who to ban"}},
			Handler:     noop,
		},
		&Command{Name: "kick", Description: "Kicks a user.", Category: "Moderation", Handler: noop},
	)
	if err := r.Register(NewHelpCommand(r, "Botkit")); err != nil {
		t.Fatal(err)
	}
	return r
}

func TestHelpEmbed(t *testing.T) {
	r := helpRouter(t)
	ban, _ := r.Lookup("ban")
	e, err := r.HelpEmbed("Botkit", "?", ban, &embed.User{Tag: "alice"}).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if e.Title != "Botkit Help: ban" {
		t.Errorf("Title = %q", e.Title)
	}
	if e.Author == nil || e.Author.Name != "alice" {
		t.Errorf("Author = %+v", e.Author)
	}
	if len(e.Fields) != 3 {
		t.Fatalf("len(Fields) = %d, want 3", len(e.Fields))
	}
	if !strings.Contains(e.Fields[0].Value, "?ban <user>") {
		t.Errorf("info field = %q", e.Fields[0].Value)
	}
	if e.Fields[1].Value != "```\n- hammer```" {
		t.Errorf("aliases field = %q", e.Fields[1].Value)
	}
	if e.Fields[2].Value != "```\n- user - who to ban```" {
		t.Errorf("arguments field = %q", e.Fields[2].Value)
	}
}

func TestCategoryHelpEmbed(t *testing.T) {
	r := helpRouter(t)
	e, err := r.CategoryHelpEmbed("Botkit", "!", "Moderation", nil).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	last := e.Fields[len(e.Fields)-1]
	if last.Name != "Commands - Moderation:" {
		t.Errorf("Name = %q", last.Name)
	}
	if last.Value != "```\n- ban - Bans a user.\n- kick - Kicks a user.```" {
		t.Errorf("Value = %q", last.Value)
	}
	if !strings.Contains(e.Fields[1].Value, "Prefix: !") {
		t.Errorf("info = %q", e.Fields[1].Value)
	}
}

func TestHelpCommand(t *testing.T) {
	r := helpRouter(t)
	p := NewParser("", newPrefixStore("?"))

	tests := []struct {
		message   string
		wantTitle string
	}{
		{"?help", "Botkit Help"},
		{"?help moderation", "Botkit Help: Moderation"},
		{"?h hammer", "Botkit Help: ban"},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			var sent *discordgo.MessageEmbed
			inv := Invocation{Reply: func(_ context.Context, e *discordgo.MessageEmbed) error {
				sent = e
				return nil
			}}
			handled, err := r.Handle(context.Background(), p, tt.message, inv)
			if !handled || err != nil {
				t.Fatalf("Handle() = %v, %v", handled, err)
			}
			if sent == nil || sent.Title != tt.wantTitle {
				t.Errorf("sent = %+v, want title %q", sent, tt.wantTitle)
			}
		})
	}

	_, err := r.Handle(context.Background(), p, "?help nothing", Invocation{})
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("help for unknown topic error = %v, want ErrUnknownCommand", err)
	}
}

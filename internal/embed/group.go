package embed

import (
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Group renders values as a bulleted list inside a code block. Blank values
// are skipped; a group with nothing left reads "None".
func Group(name string, values []string) *discordgo.MessageEmbedField {
	items := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			items = append(items, v)
		}
	}

	var value string
	if len(items) == 0 {
		value = "```\nNone ```"
	} else {
		value = "```\n- " + strings.Join(items, "\n- ") + "```"
	}
	return &discordgo.MessageEmbedField{Name: name, Value: value, Inline: false}
}

// Groups renders one Group per map entry, ordered by name.
func Groups(groups map[string][]string) []*discordgo.MessageEmbedField {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]*discordgo.MessageEmbedField, 0, len(names))
	for _, name := range names {
		fields = append(fields, Group(name, groups[name]))
	}
	return fields
}

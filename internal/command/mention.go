package command

import "strings"

// Mention returns the user mention markup for id.
func Mention(id string) string {
	return "<@" + id + ">"
}

// NicknameMention converts a user mention to its nickname form by turning
// the first "@" into "@!". Mentions already in that form are returned as is.
func NicknameMention(mention string) string {
	return strings.Replace(BareMention(mention), "@", "@!", 1)
}

// BareMention converts a nickname mention "<@!id>" to "<@id>".
func BareMention(mention string) string {
	if rest, ok := strings.CutPrefix(mention, "<@!"); ok {
		return "<@" + rest
	}
	return mention
}

package propstore

import (
	"sort"
	"strconv"
	"strings"
)

const blanks = " \t\f"

// decode parses properties lines. It returns the entries and the number of
// malformed lines that were skipped. A later duplicate key wins.
func decode(raw []byte) (map[string]string, int) {
	data := make(map[string]string)
	skipped := 0

	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimLeft(line, blanks)
		if trimmed == "" || trimmed[0] == '#' || trimmed[0] == '!' {
			continue
		}

		rawKey, rawValue, ok := cutSeparator(trimmed)
		key := unescape(trimRightUnescaped(rawKey))
		if !ok || key == "" {
			skipped++
			continue
		}
		// Trailing whitespace is significant: a prefix may end in a space.
		data[key] = unescape(strings.TrimLeft(rawValue, blanks))
	}

	return data, skipped
}

// encode renders entries as key=value lines sorted by key, escaping what
// decode would otherwise strip or misread.
func encode(data map[string]string) []byte {
	keys := make([]string, 0, len(data))
	for k := range data {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(escapeKey(k))
		b.WriteByte('=')
		b.WriteString(escapeValue(data[k]))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// cutSeparator splits line at the first '=' that is not escaped.
func cutSeparator(line string) (key, value string, ok bool) {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '=':
			return line[:i], line[i+1:], true
		}
	}
	return line, "", false
}

func escapedAt(s string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

func trimRightUnescaped(s string) string {
	for len(s) > 0 && strings.IndexByte(blanks, s[len(s)-1]) >= 0 && !escapedAt(s, len(s)-1) {
		s = s[:len(s)-1]
	}
	return s
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'f':
			b.WriteByte('\f')
		case 'u':
			if i+5 <= len(s) {
				if r, err := strconv.ParseUint(s[i+1:i+5], 16, 32); err == nil {
					b.WriteRune(rune(r))
					i += 4
					continue
				}
			}
			b.WriteByte('u')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func escapeControl(b *strings.Builder, c byte) bool {
	switch c {
	case '\\':
		b.WriteString(`\\`)
	case '\n':
		b.WriteString(`\n`)
	case '\r':
		b.WriteString(`\r`)
	case '\f':
		b.WriteString(`\f`)
	default:
		return false
	}
	return true
}

func escapeKey(k string) string {
	var b strings.Builder
	for i := 0; i < len(k); i++ {
		c := k[i]
		switch {
		case escapeControl(&b, c):
		case c == ' ':
			b.WriteString(`\ `)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '=':
			b.WriteString(`\=`)
		case i == 0 && (c == '#' || c == '!'):
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// escapeValue escapes line breaks, backslashes and leading blanks. Trailing
// blanks are written as is.
func escapeValue(v string) string {
	var b strings.Builder
	leading := true
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case escapeControl(&b, c):
		case leading && c == ' ':
			b.WriteString(`\ `)
		case leading && c == '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
		if strings.IndexByte(blanks, c) < 0 {
			leading = false
		}
	}
	return b.String()
}

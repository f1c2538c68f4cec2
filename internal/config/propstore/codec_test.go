package propstore

import (
	"reflect"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        map[string]string
		wantSkipped int
	}{
		{
			name:  "simple",
			input: "prefix=?\ntoken=abc\n",
			want:  map[string]string{"prefix": "?", "token": "abc"},
		},
		{
			name:  "comments and blanks",
			input: "# comment\n! also a comment\n\n   \nprefix=!\n",
			want:  map[string]string{"prefix": "!"},
		},
		{
			name:  "crlf",
			input: "prefix=!\r\ntoken=abc\r\n",
			want:  map[string]string{"prefix": "!", "token": "abc"},
		},
		{
			name:  "whitespace around separator",
			input: "  prefix  =   >> \n",
			want:  map[string]string{"prefix": ">> "},
		},
		{
			name:  "value containing separator",
			input: "token=a=b=c\n",
			want:  map[string]string{"token": "a=b=c"},
		},
		{
			name:  "empty value",
			input: "status=\n",
			want:  map[string]string{"status": ""},
		},
		{
			name:        "malformed lines skipped",
			input:       "prefix=!\ngarbage line\n=novalue\ntoken=abc\n",
			want:        map[string]string{"prefix": "!", "token": "abc"},
			wantSkipped: 2,
		},
		{
			name:  "later duplicate wins",
			input: "prefix=!\nprefix=$\n",
			want:  map[string]string{"prefix": "$"},
		},
		{
			name:  "no trailing newline",
			input: "prefix=!",
			want:  map[string]string{"prefix": "!"},
		},
		{
			name:  "empty input",
			input: "",
			want:  map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, skipped := decode([]byte(tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("decode() = %v, want %v", got, tt.want)
			}
			if skipped != tt.wantSkipped {
				t.Errorf("skipped = %d, want %d", skipped, tt.wantSkipped)
			}
		})
	}
}

func TestDecodeEscapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{"escaped leading space", "greeting=\\ hi\n", map[string]string{"greeting": " hi"}},
		{"line break", "motd=a\\nb\n", map[string]string{"motd": "a\nb"}},
		{"backslash", "path=C:\\\\bots\n", map[string]string{"path": "C:\\bots"}},
		{"separator in key", "a\\=b=c\n", map[string]string{"a=b": "c"}},
		{"comment marker in key", "\\#k=v\n", map[string]string{"#k": "v"}},
		{"escaped trailing space in key", "k\\ =v\n", map[string]string{"k ": "v"}},
		{"unicode", "name=caf\\u00e9\n", map[string]string{"name": "caf\u00e9"}},
		{"lone trailing backslash", "k=v\\\n", map[string]string{"k": "v\\"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, skipped := decode([]byte(tt.input))
			if skipped != 0 || !reflect.DeepEqual(got, tt.want) {
				t.Errorf("decode(%q) = %q (skipped %d), want %q", tt.input, got, skipped, tt.want)
			}
		})
	}
}

func TestEncodeEscapes(t *testing.T) {
	tests := []struct {
		key, value string
		want       string
	}{
		{"greeting", " hi", "greeting=\\ hi\n"},
		{"motd", "a\nb", "motd=a\\nb\n"},
		{"cr", "a\rb", "cr=a\\rb\n"},
		{"path", "C:\\bots", "path=C:\\\\bots\n"},
		{"prefix", "bot ", "prefix=bot \n"},
		{"a=b", "v", "a\\=b=v\n"},
		{"!k", "v", "\\!k=v\n"},
		{" padded ", "v", "\\ padded\\ =v\n"},
		{"token", "x=y", "token=x=y\n"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := string(encode(map[string]string{tt.key: tt.value})); got != tt.want {
				t.Errorf("encode(%q=%q) = %q, want %q", tt.key, tt.value, got, tt.want)
			}
		})
	}
}

func TestEncodeSkipsEmptyKey(t *testing.T) {
	if got := string(encode(map[string]string{"": "v", "k": "v"})); got != "k=v\n" {
		t.Errorf("encode() = %q, want %q", got, "k=v\n")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := map[string]string{
		"prefix":   "bot ",
		"token":    "x=y",
		"status":   "",
		"greeting": " hi",
		"motd":     "a\nb",
		"tabbed":   "\t\tindented\t",
		"path":     `C:\bots\`,
		"a=b":      "#not a comment",
		"#k":       "!",
		" spaced ": "  ",
		"name":     "café",
	}
	out, skipped := decode(encode(in))
	if skipped != 0 || !reflect.DeepEqual(in, out) {
		t.Errorf("decode(encode(in)) = %q (skipped %d), want %q", out, skipped, in)
	}
}

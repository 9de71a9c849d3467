package misskey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskWords(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		words []string
		want  string
	}{
		{name: "prefix", text: "foobar", words: []string{"foo"}, want: "＊＊＊bar"},
		{name: "case insensitive", text: "FOO and Foo", words: []string{"foo"}, want: "＊＊＊ and ＊＊＊"},
		{name: "multibyte word", text: "これはバカです", words: []string{"バカ"}, want: "これは＊＊です"},
		{name: "several words", text: "spam and eggs", words: []string{"spam", "eggs"}, want: "＊＊＊＊ and ＊＊＊＊"},
		{name: "longer word wins over its prefix", text: "foobar and FOO", words: []string{"foo", "foobar"},
			want: "＊＊＊＊＊＊ and ＊＊＊"},
		{name: "overlapping words in any order", text: "FooBar foo", words: []string{"foobar", "foo"},
			want: "＊＊＊＊＊＊ ＊＊＊"},
		{name: "regex metacharacters are literal", text: "a.b a+b", words: []string{"a.b"}, want: "＊＊＊ a+b"},
		{name: "empty word ignored", text: "text", words: []string{"", " "}, want: "text"},
		{name: "no words", text: "text", words: nil, want: "text"},
		{name: "no match", text: "clean text", words: []string{"dirty"}, want: "clean text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskWords(tt.text, tt.words))
		})
	}
}

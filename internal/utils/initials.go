package utils

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
)

// Initials 取姓名第一个词和最后一个词的首字母，例如 "Bia Silva" -> "BS"。
// 汉字姓名按字拆分，并使用拼音首字母，例如 "张小明" -> "ZM"
func Initials(name string) string {
	var words []string
	for _, field := range strings.Fields(name) {
		if containsHan(field) {
			for _, r := range field {
				words = append(words, string(r))
			}
			continue
		}
		words = append(words, field)
	}

	if len(words) == 0 {
		return ""
	}

	first := initialOf(words[0])
	if len(words) == 1 {
		return first
	}
	return first + initialOf(words[len(words)-1])
}

func initialOf(word string) string {
	r := []rune(word)[0]
	if unicode.Is(unicode.Han, r) {
		py := pinyin.LazyConvert(string(r), nil)
		if len(py) == 0 || py[0] == "" {
			return ""
		}
		return strings.ToUpper(py[0][:1])
	}
	return strings.ToUpper(string(r))
}

func containsHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

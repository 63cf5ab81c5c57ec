package service

import (
	"regexp"
	"strings"
)

// listMarker は "2. " と "3. " の項目番号と、その前の空白・改行にマッチします。
// "12. " や "2.5" にはマッチしません。
var listMarker = regexp.MustCompile(`\s*\b([23])\.[ \t]+`)

// FormatCritique は AI の講評の "2." と "3." を必ず空行の後の新しい段落にします。
// 整形済みのテキストに再度適用しても結果は変わりません。
func FormatCritique(critique string) string {
	out := listMarker.ReplaceAllString(critique, "\n\n${1}. ")
	return strings.TrimLeft(out, "\n")
}

package simutil

import (
	"fmt"
	"regexp"
	"strings"
)

var urlHostRe = regexp.MustCompile(`(http://)(.*)(:)`)

// SqueezeString shortens val to about length runes by keeping both ends
// and joining them with sep. Values that already fit are returned as is
// rather than having their ends duplicated around sep.
func SqueezeString(val string, length int, sep string) string {
	runes := []rune(val)
	if len(runes) <= length {
		return val
	}
	anchor := (length - len([]rune(sep))) / 2
	if anchor <= 0 {
		return sep
	}
	return string(runes[:anchor]) + sep + string(runes[len(runes)-anchor:])
}

// StrFixedSize right-pads or truncates s to exactly width runes.
func StrFixedSize(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(fmt.Sprintf("%-*s", width, s))
	return string(runes[:width])
}

// ReplaceIPFromURL swaps the host of an http URL for ip, keeping the port.
func ReplaceIPFromURL(url, ip string) string {
	return urlHostRe.ReplaceAllString(url, "${1}"+strings.ReplaceAll(ip, "$", "$$")+"${3}")
}

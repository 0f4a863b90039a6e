package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CleanText strips any markup out of an HTML fragment and normalizes
// the remaining text to single-spaced, trimmed plain text. Fragments
// that fail to parse degrade to the raw input, trimmed.
func CleanText(fragment string) string {
	var text string
	nodes, err := html.ParseFragment(strings.NewReader(fragment), nil)
	if err != nil {
		text = fragment
	} else {
		var buffer bytes.Buffer
		for _, n := range nodes {
			getTextRecursive(n, &buffer)
		}
		text = buffer.String()
	}

	text = removeNonPrintable(text)
	text = strings.Trim(text, " \t\n")
	text = innerWhitespace.ReplaceAllString(text, " ")
	return text
}

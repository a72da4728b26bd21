package macrostate

import "strings"

// List values live in an ordinary scalar slot: items joined by a single
// newline with a trailing newline after the last item, where every literal
// newline inside an item was replaced by the two-character sequence `\n`
// before storage. Decoding is the exact inverse, with one accepted
// ambiguity: an item that already contained the literal two characters
// `\n` decodes as a real newline.

const itemSeparator = "\n"

func escapeItem(item string) string {
	return strings.ReplaceAll(item, "\n", `\n`)
}

func unescapeItem(item string) string {
	return strings.ReplaceAll(item, `\n`, "\n")
}

// decodeList strips exactly one trailing newline if present, splits on the
// separator and un-escapes each item. Splitting an empty remainder yields a
// single empty item, so a list built from one Append(key, "") call decodes
// as [""], not as an empty list.
func decodeList(raw string) []string {
	raw = strings.TrimSuffix(raw, itemSeparator)
	items := strings.Split(raw, itemSeparator)
	for i, item := range items {
		items[i] = unescapeItem(item)
	}
	return items
}

package format

import "strings"

// block is a rendered fragment, one entry per output line. Lines may themselves contain newlines
// (multi-line string literals or comments); those are never re-indented.
type block []string

func text(s string) block {
	return block{s}
}

func (b block) String() string {
	return strings.Join(b, "\n")
}

// cat concatenates blocks inline: the first line of each part continues the last line so far.
func cat(parts ...block) block {
	var out block
	for _, part := range parts {
		if len(part) == 0 {
			continue
		}

		if len(out) == 0 {
			out = append(out, part...)
			continue
		}

		out[len(out)-1] += part[0]
		out = append(out, part[1:]...)
	}

	return out
}

// join concatenates blocks inline with sep between them.
func join(parts []block, sep string) block {
	out := make([]block, 0, len(parts)*2)
	for i, part := range parts {
		if i > 0 {
			out = append(out, text(sep))
		}
		out = append(out, part)
	}

	return cat(out...)
}

// list stacks blocks vertically, ending every item but the last with a comma.
func list(items []block) block {
	var out block
	for i, item := range items {
		if i < len(items)-1 {
			item = cat(item, text(","))
		}
		out = append(out, item...)
	}

	return out
}

func (f *Formatter) nest(b block) block {
	out := make(block, len(b))
	for i, line := range b {
		out[i] = f.indent + line
	}

	return out
}

package document

// Comment is a delimiter rune plus trimmed text. It is attached either as a
// trailing annotation on the line that declared an entity, or queued as a
// pre-comment for the next declared entity. A delimiter outside the set the
// serializer is configured with is replaced by the first configured delimiter
// on output, so the result can always be read back.
type Comment struct {
	Delimiter rune
	Text      string
}

func (c Comment) String() string {
	if c.Text == "" {
		return string(c.Delimiter)
	}
	return string(c.Delimiter) + " " + c.Text
}

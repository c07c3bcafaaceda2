package highlight

import "fmt"

// Span is one styled range of the input. Start and Length are byte offsets
// into the highlighted text. Style holds only the channels the rule sets;
// Resolved is that style composed onto what was active when it was emitted.
type Span struct {
	Key      string
	Start    int
	Length   int
	Depth    int
	Style    Style
	Resolved Appearance
}

func (s Span) End() int {
	return s.Start + s.Length
}

// Text returns the part of src the span covers.
func (s Span) Text(src string) string {
	return src[s.Start:s.End()]
}

func (s Span) String() string {
	return fmt.Sprintf("%s[%d:%d]@%d %s", s.Key, s.Start, s.End(), s.Depth, s.Style)
}

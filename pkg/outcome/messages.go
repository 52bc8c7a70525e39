package outcome

import "slices"

// Messages is an ordered list of diagnostic messages. Outcomes derived from
// one another hold the same *Messages.
type Messages struct {
	lines []string
}

func newMessages(lines ...string) *Messages {
	m := &Messages{lines: make([]string, 0, len(lines))}
	m.lines = append(m.lines, lines...)
	return m
}

// Add appends messages in order.
func (m *Messages) Add(msgs ...string) *Messages {
	m.lines = append(m.lines, msgs...)
	return m
}

// Lines returns a copy of the messages.
func (m *Messages) Lines() []string {
	if m == nil {
		return []string{}
	}
	return slices.Clone(m.lines)
}

func (m *Messages) Len() int {
	if m == nil {
		return 0
	}
	return len(m.lines)
}

func (m *Messages) IsEmpty() bool {
	return m.Len() == 0
}

func (m *Messages) clone() *Messages {
	return newMessages(m.lines...)
}

package view

// Menu is a cursor over a list of entries with a scrolling window.
type Menu struct {
	Items []string
	Sel   int
	Off   int
	Rows  int // visible rows; 0 shows everything
}

func (m *Menu) Up() {
	if m.Sel > 0 {
		m.Sel--
	}
	m.scroll()
}

func (m *Menu) Down() {
	if m.Sel < len(m.Items)-1 {
		m.Sel++
	}
	m.scroll()
}

// Selected returns the entry under the cursor, or "" for an empty menu.
func (m *Menu) Selected() string {
	if m.Sel < 0 || m.Sel >= len(m.Items) {
		return ""
	}
	return m.Items[m.Sel]
}

func (m *Menu) scroll() {
	if m.Rows <= 0 {
		m.Off = 0
		return
	}
	if m.Sel < m.Off {
		m.Off = m.Sel
	}
	if m.Sel >= m.Off+m.Rows {
		m.Off = m.Sel - m.Rows + 1
	}
}

// Lines renders the visible window with "> " before the selection.
func (m *Menu) Lines() []string {
	end := len(m.Items)
	if m.Rows > 0 && m.Off+m.Rows < end {
		end = m.Off + m.Rows
	}
	var out []string
	for i := m.Off; i < end; i++ {
		prefix := "  "
		if i == m.Sel {
			prefix = "> "
		}
		out = append(out, prefix+m.Items[i])
	}
	return out
}

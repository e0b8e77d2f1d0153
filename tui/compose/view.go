package compose

import (
	"strings"

	"github.com/CrestNiraj12/ideaboard/tui/common"
)

var fieldLabels = [fieldCount]string{
	fieldTitle:       "Title *",
	fieldDescription: "Description *",
	fieldAuthor:      "Your name",
	fieldLink:        "Link",
	fieldTags:        "Tags",
}

// View renders the form as a modal panel.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.TitleStyle.Render("Post a new idea") + "\n\n")

	inputs := [fieldCount]string{
		fieldTitle:       m.title.View(),
		fieldDescription: m.description.View(),
		fieldAuthor:      m.author.View(),
		fieldLink:        m.link.View(),
		fieldTags:        m.tags.View(),
	}
	for f := range fieldCount {
		label := fieldLabels[f]
		if f == m.focus {
			label = "› " + label
		} else {
			label = "  " + label
		}
		b.WriteString(common.LabelStyle.Render(label) + "\n")
		b.WriteString(inputs[f] + "\n\n")
	}

	hints := common.HelpLine(m.keys.NextField, m.keys.Submit, m.keys.Back)
	if m.editor != nil {
		hints = common.HelpLine(m.keys.NextField, m.keys.Editor, m.keys.Submit, m.keys.Back)
	}
	b.WriteString(hints)

	return common.PanelStyle.Render(b.String())
}

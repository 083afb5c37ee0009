package result

import (
	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title    lipgloss.Style
	key      lipgloss.Style
	value    lipgloss.Style
	success  lipgloss.Style
	warning  lipgloss.Style
	guidance lipgloss.Style
	section  lipgloss.Style
	category map[domain.Category]lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		key:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		value:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		success:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		guidance: lipgloss.NewStyle().Faint(true),
		section:  lipgloss.NewStyle().MarginTop(1),
		category: map[domain.Category]lipgloss.Style{
			domain.CategoryPairing:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
			domain.CategoryRejected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
			domain.CategoryInvalid:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
			domain.CategoryUnavailable: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("177")),
			domain.CategoryInternal:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		},
	}
}

func (s styles) forCategory(category domain.Category) lipgloss.Style {
	if style, ok := s.category[category]; ok {
		return style
	}
	return s.title
}

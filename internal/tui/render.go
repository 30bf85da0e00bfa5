package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cristianoliveira/pokedex-cli/internal/pokemon"
)

const (
	idWidth         = 6
	nameWidth       = 24
	favoriteSymbol  = "♥"
	selectionSymbol = "❯"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("12")).Foreground(lipgloss.Color("0"))
	favoriteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeType    = lipgloss.NewStyle().Bold(true).Underline(true)
)

// typeBadge renders one type label on its canonical background colour.
func typeBadge(typeID string, types pokemon.TypesMap, locale string) string {
	info := types[typeID]
	label := info.Label(typeID, locale)
	style := lipgloss.NewStyle().Padding(0, 1)
	if info.BackgroundColor != "" {
		style = style.Background(lipgloss.Color(info.BackgroundColor)).Foreground(lipgloss.Color("0"))
	}
	return style.Render(label)
}

// renderRow renders one listing entry line.
func renderRow(p pokemon.Pokemon, types pokemon.TypesMap, locale string, selected, favorite bool) string {
	marker := " "
	if selected {
		marker = selectionSymbol
	}
	fav := " "
	if favorite {
		fav = favoriteStyle.Render(favoriteSymbol)
	}

	badges := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		badges = append(badges, typeBadge(t, types, locale))
	}

	line := fmt.Sprintf("%s %s %-*s %-*s %s",
		marker, fav, idWidth, pokemon.FormatID(p.ID), nameWidth, p.Name(locale), strings.Join(badges, " "))
	if selected {
		return selectedStyle.Render(line)
	}
	return line
}

// renderTypeBar renders the filter bar with the active types highlighted.
func renderTypeBar(types pokemon.TypesMap, order []string, active []string, locale string) string {
	isActive := make(map[string]bool, len(active))
	for _, t := range active {
		isActive[t] = true
	}
	parts := make([]string, 0, len(order))
	for _, t := range order {
		badge := typeBadge(t, types, locale)
		if isActive[t] {
			badge = activeType.Render(badge)
		}
		parts = append(parts, badge)
	}
	return strings.Join(parts, " ")
}

// renderStats renders the six-stat block of the selected entry.
func renderStats(p pokemon.Pokemon) string {
	rows := []struct {
		label string
		value int
	}{
		{"HP", p.Stats.HP},
		{"Attack", p.Stats.Attack},
		{"Defense", p.Stats.Defense},
		{"Sp. Atk", p.Stats.SpecialAttack},
		{"Sp. Def", p.Stats.SpecialDefense},
		{"Speed", p.Stats.Speed},
	}
	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%-8s %3d %s\n", row.label, row.value, statBar(row.value))
	}
	return b.String()
}

// statBar scales a base stat (upstream cap 255) to a 20-cell bar.
func statBar(value int) string {
	const cells = 20
	filled := value * cells / 255
	if filled > cells {
		filled = cells
	}
	return dimStyle.Render(strings.Repeat("█", filled) + strings.Repeat("░", cells-filled))
}

func renderFooter(searchFocused bool) string {
	if searchFocused {
		return dimStyle.Render("enter: apply  esc: cancel")
	}
	return dimStyle.Render("/: search  t: types  f: favorite  ←/→: page  l: language  q: quit")
}

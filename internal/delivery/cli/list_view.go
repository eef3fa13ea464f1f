// Package cli renders the discovery state for terminal presentation. Both
// views read the same filtered shop sequence; switching between them never
// refetches data.
package cli

import (
	"strings"

	"nearshop/internal/domain/entity"
	"nearshop/internal/util"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	noticeStyle = lipgloss.NewStyle().Faint(true)
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	distanceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	badgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	pendingStyle  = lipgloss.NewStyle().Faint(true).Italic(true)
)

// RenderList renders the list presentation of the given state. The shops
// argument is the filtered sequence from VisibleShops.
func RenderList(state entity.DiscoveryState, shops []entity.EnrichedShop) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Nearby Shops"))
	b.WriteString("\n")
	if state.Notice != "" {
		b.WriteString(noticeStyle.Render(state.Notice))
		b.WriteString("\n")
	}

	if state.Loading {
		b.WriteString("Finding shops near you...\n")

		return b.String()
	}
	if state.LoadError != "" {
		b.WriteString(alertStyle.Render(state.LoadError))
		b.WriteString("\n")

		return b.String()
	}
	if len(shops) == 0 {
		b.WriteString("No shops found\n")
		b.WriteString(mutedStyle.Render("Try expanding your search radius or check your location settings."))
		b.WriteString("\n")

		return b.String()
	}

	for _, shop := range shops {
		b.WriteString(renderCard(state, shop))
		b.WriteString("\n")
	}

	return b.String()
}

func renderCard(state entity.DiscoveryState, shop entity.EnrichedShop) string {
	var lines []string

	header := shop.Name
	if distance := util.FormatDistance(shop.DistanceMeters); distance != "" {
		header += "  " + distanceStyle.Render(distance+" away")
	}
	lines = append(lines, titleStyle.Render(header))
	lines = append(lines, mutedStyle.Render(shop.Address))

	if shop.Detail != nil {
		stats := util.FormatSubscribers(shop.Detail.SubscriberCount)
		if shop.Detail.IsSubscribed {
			stats += "  " + badgeStyle.Render("Subscribed")
		}
		lines = append(lines, stats)

		if _, pending := state.Pending[shop.ID]; pending {
			lines = append(lines, pendingStyle.Render("updating subscription..."))
		}
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}

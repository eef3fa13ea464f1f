package cli

import (
	"fmt"
	"strings"

	"nearshop/internal/domain/entity"
	"nearshop/internal/util"

	"github.com/charmbracelet/lipgloss"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	mapWidth  = 60
	mapHeight = 18
)

var (
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	centerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// RenderMap renders a text-grid map of the filtered shops around the current
// position. Shops outside the radius bound are clamped to the frame edge.
func RenderMap(state entity.DiscoveryState, shops []entity.EnrichedShop) string {
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
	if state.Position == nil {
		b.WriteString(mutedStyle.Render("No position acquired yet."))
		b.WriteString("\n")

		return b.String()
	}

	b.WriteString(renderGrid(*state.Position, state.RadiusMeters, shops))
	b.WriteString("\n")
	b.WriteString(renderLegend(shops))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Showing %d shop(s) within %g km", len(shops), float64(state.RadiusMeters)/1000)))
	b.WriteString("\n")

	return b.String()
}

// renderGrid projects every shop into a character grid spanning the query
// radius around the center.
func renderGrid(pos entity.Position, radiusMeters int, shops []entity.EnrichedShop) string {
	bound := geo.NewBoundAroundPoint(pos.Point(), float64(radiusMeters))

	grid := make([][]rune, mapHeight)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", mapWidth))
	}

	for i, shop := range shops {
		x, y := project(bound, shop.Position().Point())
		grid[y][x] = markerRune(i)
	}

	// Center marker drawn last so it is never hidden by a shop.
	cx, cy := project(bound, pos.Point())
	grid[cy][cx] = '@'

	lines := make([]string, 0, mapHeight)
	for y, row := range grid {
		line := string(row)
		if y == cy {
			// Re-style the center marker without disturbing alignment.
			line = line[:cx] + centerStyle.Render("@") + line[cx+1:]
		}
		lines = append(lines, line)
	}

	return frameStyle.Render(strings.Join(lines, "\n"))
}

// project maps a point into grid coordinates, clamped to the frame.
func project(bound orb.Bound, point orb.Point) (x, y int) {
	width := bound.Max[0] - bound.Min[0]
	height := bound.Max[1] - bound.Min[1]
	if width <= 0 || height <= 0 {
		return mapWidth / 2, mapHeight / 2
	}

	x = int((point[0] - bound.Min[0]) / width * float64(mapWidth-1))
	// Latitude grows upward; rows grow downward.
	y = int((bound.Max[1] - point[1]) / height * float64(mapHeight-1))

	return clamp(x, 0, mapWidth-1), clamp(y, 0, mapHeight-1)
}

func renderLegend(shops []entity.EnrichedShop) string {
	var b strings.Builder
	for i, shop := range shops {
		entry := fmt.Sprintf("%c %s", markerRune(i), shop.Name)
		if distance := util.FormatDistance(shop.DistanceMeters); distance != "" {
			entry += "  " + distanceStyle.Render(distance)
		}
		b.WriteString(markerStyle.Render(entry))
		b.WriteString("\n")
	}

	return b.String()
}

// markerRune cycles 1-9 then a-z for larger result sets.
func markerRune(i int) rune {
	if i < 9 {
		return rune('1' + i)
	}

	return rune('a' + (i-9)%26)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/focusflow/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// FocusMeter renders a focus rating as a ten-cell bar like
// [███████░░░] 7/10 Very focused. A nil rating renders as "unrated".
func FocusMeter(level *int) string {
	if level == nil {
		return Dim("unrated")
	}
	lvl := *level
	if lvl < domain.MinFocusLevel {
		lvl = domain.MinFocusLevel
	}
	if lvl > domain.MaxFocusLevel {
		lvl = domain.MaxFocusLevel
	}

	bar := strings.Repeat(filledBlock, lvl) + strings.Repeat(emptyBlock, domain.MaxFocusLevel-lvl)
	style := FocusStyle(lvl)
	return fmt.Sprintf("[%s] %d/%d %s", style.Render(bar), lvl, domain.MaxFocusLevel, FocusLabel(lvl))
}

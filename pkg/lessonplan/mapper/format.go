package mapper

import (
	"fmt"
	"strings"
)

// ObjectiveBullet prefixes every objective written to the template.
const ObjectiveBullet = "◎ "

// FormatObjectives bullets each objective and separates entries with a blank line.
func FormatObjectives(objectives []string) string {
	parts := make([]string, len(objectives))
	for i, o := range objectives {
		parts[i] = ObjectiveBullet + o
	}
	return strings.Join(parts, "\n\n")
}

// FormatClassMonth renders the class period as "2024년 3월".
func FormatClassMonth(year, month int) string {
	return fmt.Sprintf("%d년 %d월", year, month)
}

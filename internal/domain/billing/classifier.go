package billing

import (
	"strings"

	"github.com/diillson/billswitch/internal/domain/entity"
)

var (
	watchPlanKeywords  = []string{"watch", "wearable", "digits"}
	tabletPlanKeywords = []string{"tablet", "mobile internet"}
)

// ClassifyLine infers a line category from its plan name.
// Watch keywords are checked before tablet keywords, so "Wearable Tablet Plan" is a Watch line.
func ClassifyLine(planName string) entity.LineType {
	name := strings.ToLower(planName)
	if containsAny(name, watchPlanKeywords) {
		return entity.LineWatch
	}
	if containsAny(name, tabletPlanKeywords) {
		return entity.LineTablet
	}
	return entity.LineVoice
}

// lineTypeOf prefers an explicit category from the payload and falls back to the plan name.
func lineTypeOf(explicit Scalar, planName string) entity.LineType {
	if raw, ok := presentText(explicit); ok {
		switch strings.ToLower(raw) {
		case "voice":
			return entity.LineVoice
		case "watch":
			return entity.LineWatch
		case "tablet":
			return entity.LineTablet
		}
	}
	return ClassifyLine(planName)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

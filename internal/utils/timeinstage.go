package utils

import (
	"fmt"
	"time"
)

// TimeInStage renders the elapsed wall-clock time since a stage change for
// the board cards: whole days if at least a day, whole hours if at least an
// hour, otherwise "just now". Pure computation, recomputed on every read.
func TimeInStage(stageChangedAt, now time.Time) string {
	elapsed := now.Sub(stageChangedAt)

	if elapsed >= 24*time.Hour {
		return fmt.Sprintf("%dd", int(elapsed.Hours())/24)
	}
	if elapsed >= time.Hour {
		return fmt.Sprintf("%dh", int(elapsed.Hours()))
	}
	return "just now"
}

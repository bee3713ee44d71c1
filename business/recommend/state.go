package recommend

import "gameReco/domain"

const (
	warmThreshold   = 5
	activeThreshold = 30
)

// ClassifyUserState buckets a user by their total interaction count.
func ClassifyUserState(interactionCount int) domain.UserState {
	switch {
	case interactionCount < warmThreshold:
		return domain.UserStateCold
	case interactionCount < activeThreshold:
		return domain.UserStateWarm
	default:
		return domain.UserStateActive
	}
}

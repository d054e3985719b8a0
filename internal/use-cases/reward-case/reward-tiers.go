package reward_case

import "github.com/virtutask/virtutask-api/internal/entity"

// Grant ist eine berechnete, noch nicht gespeicherte Belohnung.
type Grant struct {
	Type        string
	Amount      float64
	Unit        string
	Description string
}

func GameTimeGrant(score float64) Grant {
	minutes := 15.0
	switch {
	case score >= 90:
		minutes = 60
	case score >= 75:
		minutes = 30
	}
	return Grant{
		Type:        entity.RewardGameTime,
		Amount:      minutes,
		Unit:        entity.RewardUnitMinutes,
		Description: "Bonus game time for your productivity",
	}
}

// MonthlyGrant liefert false, wenn der Durchschnitt unter 75 liegt.
func MonthlyGrant(average float64) (Grant, bool) {
	switch {
	case average >= 90:
		return Grant{
			Type:        entity.RewardGymMembership,
			Amount:      1,
			Unit:        entity.RewardUnitMonth,
			Description: "One month gym membership for an outstanding month",
		}, true
	case average >= 75:
		return Grant{
			Type:        entity.RewardGiftCard,
			Amount:      50,
			Unit:        entity.RewardUnitCurrency,
			Description: "Gift card for a strong month",
		}, true
	default:
		return Grant{}, false
	}
}

func Average(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

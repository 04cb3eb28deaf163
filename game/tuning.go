package game

// Cadences and budgets, all in milliseconds.
const (
	DiceSamplePeriod int64 = 100
	ClockTickPeriod  int64 = 100
	TimeoutThreshold int64 = 100 // a budget below this has run out
	FlashPeriod      int64 = 500
	MediumBudget     int64 = 90000
	HardBudget       int64 = 45000
	Unlimited        int64 = -1
)

const (
	DiceMin = 1
	DiceMax = 6
)

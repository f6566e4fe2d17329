package tetcolor

import "time"

const (
	flashStep  = 150 * time.Millisecond
	flashSteps = 6
)

// bonusFlash blinks the last combo bonus on the HUD for a short while.
type bonusFlash struct {
	amount  int
	elapsed time.Duration
}

func (f *bonusFlash) start(amount int) {
	f.amount = amount
	f.elapsed = 0
}

func (f *bonusFlash) advance(dt time.Duration) {
	if f.amount == 0 {
		return
	}
	f.elapsed += dt
	if f.elapsed >= flashStep*flashSteps {
		*f = bonusFlash{}
	}
}

// visible reports whether the bonus is shown in the current blink step.
func (f bonusFlash) visible() bool {
	return f.amount > 0 && int(f.elapsed/flashStep)%2 == 0
}

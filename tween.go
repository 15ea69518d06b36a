package arcball

import (
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// easings maps config-friendly names to gween easing functions.
var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inquad":     ease.InQuad,
	"outquad":    ease.OutQuad,
	"inoutquad":  ease.InOutQuad,
	"incubic":    ease.InCubic,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"inoutsine":  ease.InOutSine,
	"outback":    ease.OutBack,
	"outbounce":  ease.OutBounce,
	"outelastic": ease.OutElastic,
}

// EasingByName returns the easing function with the given name (like "OutCubic" or "linear"; case and
// dashes / underscores are ignored). The second return value is false if there's no such easing.
func EasingByName(name string) (ease.TweenFunc, bool) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(name))
	fn, ok := easings[key]
	return fn, ok
}

// orientationTween eases a rotation from one orientation to another over time.
type orientationTween struct {
	from, to Quaternion
	tween    *gween.Tween
	current  Quaternion
}

func newOrientationTween(from, to Quaternion, duration float32, easing ease.TweenFunc) *orientationTween {
	if easing == nil {
		easing = ease.OutCubic
	}
	return &orientationTween{
		from:    from,
		to:      to,
		tween:   gween.New(0, 1, duration, easing),
		current: from,
	}
}

// Update advances the tween by dt seconds, returning the eased orientation and whether the tween has finished.
func (ot *orientationTween) Update(dt float32) (Quaternion, bool) {
	percent, finished := ot.tween.Update(dt)
	if finished {
		ot.current = ot.to
	} else {
		ot.current = ot.from.Slerp(ot.to, float64(percent)).Unit()
	}
	return ot.current, finished
}

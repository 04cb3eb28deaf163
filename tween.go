package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type Action struct {
	nexts    []func(g *Game)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

func (a *Action) next(t *gween.Tween) *Action {
	action := &Action{}
	if a.nexts == nil {
		a.nexts = make([]func(g *Game), 0)
	}
	a.nexts = append(a.nexts,
		func(g *Game) {
			g.Tweens[t] = action
		})
	return action
}

// stepTweens advances every running tween by dt and chains followers.
func (g *Game) stepTweens(dt float32) {
	for t, a := range g.Tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(g)
			}
			delete(g.Tweens, t)
		}
	}
}

// showBanner fades the game-over banner in, holds it, then dims it to half.
func (g *Game) showBanner() {
	in := gween.New(0, 1, .4, ease.OutQuad)
	action := &Action{onChange: func(v float32) { g.bannerAlpha = float64(v) }}
	g.Tweens[in] = action
	hold := gween.New(1, 1, 1.5, ease.Linear)
	held := action.next(hold)
	held.onChange = func(v float32) { g.bannerAlpha = float64(v) }
	dim := gween.New(1, .5, .6, ease.InOutQuad)
	dimmed := held.next(dim)
	dimmed.onChange = func(v float32) { g.bannerAlpha = float64(v) }
}

// pulseDice scales the dice readout up and back when a roll is committed.
func (g *Game) pulseDice() {
	up := gween.New(1, 1.4, .12, ease.OutQuad)
	action := &Action{onChange: func(v float32) { g.diceScale = float64(v) }}
	g.Tweens[up] = action
	down := action.next(gween.New(1.4, 1, .2, ease.InQuad))
	down.onChange = func(v float32) { g.diceScale = float64(v) }
	down.addOnFinish(func() { g.diceScale = 1 })
}

package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/zucenko/ladders/game"
	"github.com/zucenko/ladders/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	size   = 28
	margin = 24
	panel  = 200
)

var screenWidth = margin + model.Width*size + margin + panel
var screenHeight = margin + model.Height*size + margin

type binding struct {
	key ebiten.Key
	msg model.ClientMessage
}

var playKeys = []binding{
	{ebiten.Key1, model.ClientMessage{Input: model.MoveOne}},
	{ebiten.KeySpace, model.ClientMessage{Input: model.MoveOne}},
	{ebiten.Key2, model.ClientMessage{Input: model.MoveTwo}},
	{ebiten.KeyR, model.ClientMessage{Input: model.ToggleRoll}},
	{ebiten.KeyP, model.ClientMessage{Input: model.Pause}},
	{ebiten.KeyW, model.ClientMessage{Input: model.Nudge, DY: 1}},
	{ebiten.KeyS, model.ClientMessage{Input: model.Nudge, DY: -1}},
	{ebiten.KeyA, model.ClientMessage{Input: model.Nudge, DX: -1}},
	{ebiten.KeyD, model.ClientMessage{Input: model.Nudge, DX: 1}},
}

// PlayInputs maps the keys pressed this frame to console events.
func PlayInputs(pressed func(ebiten.Key) bool) []model.ClientMessage {
	var out []model.ClientMessage
	for _, b := range playKeys {
		if pressed(b.key) {
			out = append(out, b.msg)
		}
	}
	return out
}

// SelectionInput edits the selection and returns the Select event once Enter
// is pressed.
func SelectionInput(s *Selection, pressed func(ebiten.Key) bool) (model.ClientMessage, bool) {
	if pressed(ebiten.KeyB) {
		s.NextBoard()
	}
	switch {
	case pressed(ebiten.KeyE):
		s.Setup.Difficulty = model.Easy
	case pressed(ebiten.KeyM):
		s.Setup.Difficulty = model.Medium
	case pressed(ebiten.KeyH):
		s.Setup.Difficulty = model.Hard
	}
	switch {
	case pressed(ebiten.KeyO):
		s.Setup.Players = 1
	case pressed(ebiten.KeyT):
		s.Setup.Players = 2
	}
	if pressed(ebiten.KeyEnter) {
		return s.Message(), true
	}
	return model.ClientMessage{}, false
}

// cellOrigin is the top-left pixel of board cell (x, y); y grows upwards.
func cellOrigin(x, y int) (float64, float64) {
	return float64(margin + x*size), float64(margin + (model.Height-1-y)*size)
}

func FormatRemaining(ms int64) string {
	if ms == game.Unlimited {
		return "--:--"
	}
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%02d:%02d.%d", ms/60000, ms/1000%60, ms/100%10)
}

func StatusLines(s model.Status) []string {
	lines := []string{fmt.Sprintf("MOVES %d", s.Moves)}
	for i, r := range s.Remaining {
		marker := " "
		if int32(i+1) == s.Active {
			marker = ">"
		}
		lines = append(lines, fmt.Sprintf("%sP%d %s", marker, i+1, FormatRemaining(r)))
	}
	switch {
	case s.Paused:
		lines = append(lines, "PAUSED")
	case s.Rolling:
		lines = append(lines, "ROLLING")
	}
	return lines
}

func SelectionLines(s Selection) []string {
	return []string{
		fmt.Sprintf("B BOARD %d", s.Setup.Board),
		fmt.Sprintf("E/M/H %s", s.Setup.Difficulty.Name()),
		fmt.Sprintf("O/T PLAYERS %d", s.Setup.Players),
		"ENTER START",
	}
}

func BannerText(o model.GameOver) string {
	switch o.Outcome {
	case model.Won:
		return fmt.Sprintf("P%d WINS", o.Winner)
	case model.Forfeit:
		return fmt.Sprintf("P%d WINS ON TIME", o.Winner)
	case model.TimedOut:
		return "TIME UP"
	default:
		return o.Outcome.Name()
	}
}

type Game struct {
	Model  *Model
	Link   *Link
	Bezel  *Nine
	Tweens map[*gween.Tween]*Action

	face        font.Face
	diceLabels  map[int]*ebiten.Image
	bannerAlpha float64
	diceScale   float64
	lastMoves   int
	over        bool
}

func NewGame(link *Link) (*Game, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	const dpi = 72
	face := truetype.NewFace(tt, &truetype.Options{
		Size:    18,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	bezel, err := NewBezel()
	if err != nil {
		return nil, err
	}
	bezel.SetPosition(margin/2, margin/2)
	bezel.SetSize(model.Width*size+margin, model.Height*size+margin)
	return &Game{
		Model:      &Model{Selection: NewSelection(model.DefaultCatalog().Boards())},
		Link:       link,
		Bezel:      bezel,
		Tweens:     make(map[*gween.Tween]*Action),
		face:       face,
		diceLabels: make(map[int]*ebiten.Image),
		diceScale:  1,
	}, nil
}

func (g *Game) prepareTextImage(s string) *ebiten.Image {
	image, _ := ebiten.NewImage(120, 60, ebiten.FilterLinear)
	text.Draw(image, s, g.face, 5, 40, color.White)
	return image
}

func (g *Game) diceLabel(v int) *ebiten.Image {
	if l, ok := g.diceLabels[v]; ok {
		return l
	}
	l := g.prepareTextImage(fmt.Sprintf("DICE %d", v))
	g.diceLabels[v] = l
	return l
}

func (g *Game) send(cm model.ClientMessage) {
	if g.Link == nil || g.Model.Offline != nil {
		return
	}
	if err := g.Link.Send(cm); err != nil {
		log.Errorf("send %s: %v", cm.Input.Name(), err)
		g.Model.Offline = err
	}
}

// observe starts animations for what changed since the previous frame.
func (g *Game) observe() {
	d := &g.Model.Display
	if d.Over != nil && !g.over {
		g.showBanner()
	}
	g.over = d.Over != nil
	if d.Status.Moves > g.lastMoves && !d.Status.Rolling {
		g.pulseDice()
	}
	g.lastMoves = d.Status.Moves
}

func (g *Game) update(screen *ebiten.Image) error {
	g.stepTweens(1.0 / 60)

	if g.Link != nil {
		g.Model.Drain(g.Link.Incoming, g.Link.Errors)
	}
	g.observe()

	if g.Model.Choosing() {
		if cm, ok := SelectionInput(&g.Model.Selection, inpututil.IsKeyJustPressed); ok {
			g.send(cm)
		}
	} else {
		for _, cm := range PlayInputs(inpututil.IsKeyJustPressed) {
			g.send(cm)
		}
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	g.draw(screen)
	return nil
}

func (g *Game) draw(screen *ebiten.Image) {
	_ = screen.Fill(color.RGBA{40, 40, 40, 255})
	g.Bezel.Draw(screen)

	d := &g.Model.Display
	for x := 0; x < model.Width; x++ {
		for y := 0; y < model.Height; y++ {
			px, py := cellOrigin(x, y)
			ebitenutil.DrawRect(screen, px+2, py+2, size-4, size-4, CellColor(d.Cells[x][y]))
		}
	}

	px := margin + model.Width*size + margin
	line := 0
	writeLine := func(s string) {
		text.Draw(screen, s, g.face, px, margin+20+line*26, color.White)
		line++
	}

	if d.Setup != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(g.diceScale, g.diceScale)
		op.GeoM.Translate(float64(px)-5, float64(margin))
		_ = screen.DrawImage(g.diceLabel(d.Status.Dice), op)
		line = 2
		for _, s := range StatusLines(d.Status) {
			writeLine(s)
		}
		line++
	}
	if g.Model.Choosing() {
		for _, s := range SelectionLines(g.Model.Selection) {
			writeLine(s)
		}
	}
	for _, e := range lastErrors(d.Errors, 2) {
		ebitenutil.DebugPrintAt(screen, e, px, screenHeight-40)
	}
	if g.Model.Offline != nil {
		ebitenutil.DebugPrintAt(screen, "OFFLINE", px, screenHeight-20)
	}

	if d.Over != nil {
		banner := BannerText(*d.Over)
		ebitenutil.DrawRect(screen, margin, float64(screenHeight/2-30), model.Width*size, 50,
			color.RGBA{0, 0, 0, uint8(200 * g.bannerAlpha)})
		text.Draw(screen, banner, g.face, margin+10, screenHeight/2,
			color.RGBA{0xed, 0xbc, 0x1e, uint8(255 * g.bannerAlpha)})
	}
}

func lastErrors(errs []string, n int) []string {
	if len(errs) > n {
		return errs[len(errs)-n:]
	}
	return errs
}

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	log.SetOutput(os.Stdout)

	link, err := Dial(cfg.Server)
	if err != nil {
		log.Fatal(err)
	}
	defer link.Close()

	theGame, err := NewGame(link)
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.Run(theGame.update, screenWidth, screenHeight, float64(cfg.Scale), "Snakes & Ladders"); err != nil {
		log.Fatal(err)
	}
}

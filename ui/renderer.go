package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"gridsnake/game"
	"gridsnake/game/entity"
	"gridsnake/game/types"
	"gridsnake/ui/layout"
)

var (
	HeadColor    = rl.Color{R: 179, G: 179, B: 179, A: 255} // 0.7 gray
	SegmentColor = rl.Color{R: 77, G: 77, B: 77, A: 255}    // 0.3 gray
	FoodColor    = rl.Color{R: 0xff, G: 0x2f, B: 0x88, A: 255}
)

const hudPadding = 5

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	showHUD      bool
	log          *zap.Logger
}

func NewRenderer(log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Renderer{showHUD: true, log: log.Named("render")}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// ToggleHUD shows or hides the session counters.
func (r *Renderer) ToggleHUD() {
	r.showHUD = !r.showHUD
}

// Draw renders one frame of g. Without a usable canvas the board is skipped
// for this frame.
func (r *Renderer) Draw(g *game.Game) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	l, err := layout.New(int(r.screenWidth), int(r.screenHeight), g.Grid)
	if err != nil {
		r.log.Debug("skipping layout", zap.Error(err))
		return
	}

	for _, s := range g.RenderFeed() {
		rect := l.Place(s.Pos, s.Size)
		rl.DrawRectangleRec(rl.Rectangle{X: rect.X, Y: rect.Y, Width: rect.Width, Height: rect.Height}, spriteColor(s.Kind))
		if s.Kind == entity.KindHead {
			r.drawHeading(rect, g.GetDirection())
		}
	}

	if r.showHUD {
		fontSize := r.screenHeight / 25
		label := fmt.Sprintf("Length: %d  Eaten: %d", len(g.GetSnake()), g.Eaten())
		rl.DrawText(label, hudPadding, hudPadding, fontSize, rl.White)
	}
}

func spriteColor(k entity.Kind) rl.Color {
	switch k {
	case entity.KindHead:
		return HeadColor
	case entity.KindSegment:
		return SegmentColor
	default:
		return FoodColor
	}
}

// drawHeading puts a small triangle on the leading edge of the head.
func (r *Renderer) drawHeading(rect layout.Rect, dir types.Direction) {
	x, y, w, h := rect.X, rect.Y, rect.Width, rect.Height
	cx, cy := x+w/2, y+h/2
	// Vertices go counter-clockwise, as raylib expects.
	switch dir {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: x + w, Y: cy},
			rl.Vector2{X: cx, Y: y},
			rl.Vector2{X: cx, Y: y + h},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: x, Y: cy},
			rl.Vector2{X: cx, Y: y + h},
			rl.Vector2{X: cx, Y: y},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: cx, Y: y + h},
			rl.Vector2{X: x + w, Y: cy},
			rl.Vector2{X: x, Y: cy},
			rl.Yellow)
	default:
		rl.DrawTriangle(
			rl.Vector2{X: cx, Y: y},
			rl.Vector2{X: x, Y: cy},
			rl.Vector2{X: x + w, Y: cy},
			rl.Yellow)
	}
}

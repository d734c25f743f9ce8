// Package boardimg renders session frames as PNG images, one colored
// block per cell. It is the frame-export presentation; the terminal UI
// lives in package tui, both driven by the same game core.
package boardimg

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/veresna/gridsnake/game"
	"github.com/veresna/gridsnake/options"
)

// View is the per-tick state the renderer needs from a session.
type View struct {
	Grid  game.Grid
	Body  []game.Point // head first
	Food  game.Point
	Score int
}

// Style selects the block colors. The head keeps its own color so it
// stays visually distinguished from the body.
type Style struct {
	Snake color.RGBA
	Head  color.RGBA
	Food  color.RGBA
}

// StyleFrom derives a Style from the current option selections.
func StyleFrom(o *options.Options) Style {
	return Style{Snake: o.SnakeColor(), Head: options.Blue, Food: o.FoodColor()}
}

// Renderer draws frames at a fixed block size. The empty board with its
// grid lines is drawn once per board geometry and cached.
type Renderer struct {
	BlockSize int
	bgCache   sync.Map // "WxH_block" -> *gg.Context
}

// NewRenderer returns a renderer drawing blockSize pixels per cell.
func NewRenderer(blockSize int) *Renderer {
	return &Renderer{BlockSize: blockSize}
}

func (r *Renderer) background(g game.Grid) *gg.Context {
	key := fmt.Sprintf("%dx%d_%d", g.Width, g.Height, r.BlockSize)
	if cached, ok := r.bgCache.Load(key); ok {
		return cached.(*gg.Context)
	}

	w, h := g.Width*r.BlockSize, g.Height*r.BlockSize
	dc := gg.NewContext(w, h)
	dc.SetColor(options.Black)
	dc.Clear()
	drawGridLines(dc, w, h, r.BlockSize)
	r.bgCache.Store(key, dc)
	return dc
}

func drawGridLines(dc *gg.Context, width, height, blockSize int) {
	dc.SetRGB(0.15, 0.15, 0.15)
	for x := 0; x <= width; x += blockSize {
		dc.DrawLine(float64(x), 0, float64(x), float64(height))
		dc.Stroke()
	}
	for y := 0; y <= height; y += blockSize {
		dc.DrawLine(0, float64(y), float64(width), float64(y))
		dc.Stroke()
	}
}

// Frame renders one tick of the game.
func (r *Renderer) Frame(v View, st Style) image.Image {
	dc := gg.NewContext(v.Grid.Width*r.BlockSize, v.Grid.Height*r.BlockSize)
	dc.DrawImage(r.background(v.Grid).Image(), 0, 0)

	// Tail first so the head ends up on top after a wrap.
	for i := len(v.Body) - 1; i >= 0; i-- {
		col := st.Snake
		if i == 0 {
			col = st.Head
		}
		r.block(dc, v.Body[i], col)
	}
	r.block(dc, v.Food, st.Food)
	return dc.Image()
}

func (r *Renderer) block(dc *gg.Context, p game.Point, col color.RGBA) {
	bs := float64(r.BlockSize)
	x, y := float64(p.X)*bs, float64(p.Y)*bs
	dc.SetColor(col)
	dc.DrawRectangle(x, y, bs, bs)
	dc.Fill()
	dc.SetColor(options.Black)
	dc.DrawRectangle(x+0.5, y+0.5, bs-1, bs-1)
	dc.Stroke()
}

// GameOverFrame blurs the final board and overlays the result text.
func (r *Renderer) GameOverFrame(v View, st Style, won bool) image.Image {
	base := r.Frame(v, st)
	blurred := imaging.Blur(base, 3.5)

	dc := gg.NewContextForImage(blurred)
	w := float64(dc.Width())
	h := float64(dc.Height())
	title := "GAME OVER"
	if won {
		title = "YOU WIN"
	}
	dc.SetColor(options.Red)
	dc.DrawStringAnchored(title, w/2, h/3, 0.5, 0.5)
	dc.SetColor(options.White)
	dc.DrawStringAnchored(fmt.Sprintf("Final Score: %d", v.Score), w/2, h/2, 0.5, 0.5)
	return dc.Image()
}

// Thumbnail scales a frame down to the given width, keeping the aspect
// ratio.
func Thumbnail(img image.Image, width int) image.Image {
	return imaging.Resize(img, width, 0, imaging.Lanczos)
}

// SaveFrame writes img as PNG under dir, creating the directory when
// missing, and returns the file path.
func SaveFrame(img image.Image, dir string, tick uint64) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	name := filepath.Join(dir, fmt.Sprintf("frame_%06d.png", tick))
	return name, gg.SavePNG(name, img)
}

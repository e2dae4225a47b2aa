package window

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lixenwraith/quiz-fisher/constants"
	"github.com/lixenwraith/quiz-fisher/game"
	"github.com/lixenwraith/quiz-fisher/render"
)

// Asset file names inside the asset directory
const (
	backgroundAsset = "background.png"
	hookAsset       = "hook.png"
)

// fishAssets lists sprite files per variant and animation frame
var fishAssets = [constants.FishVariants][constants.FishAnimFrames]string{
	{"fish1_1.png", "fish1_2.png"},
	{"fish3_1.png", "fish3_2.png"},
}

// SpriteSet holds every image the window draws. Missing or unreadable files
// are replaced by procedural shapes and listed in Missing.
type SpriteSet struct {
	Background *ebiten.Image
	Hook       *ebiten.Image
	Fish       [constants.FishVariants][constants.FishAnimFrames]*ebiten.Image

	Fallback bool
	Missing  []string
}

// LoadSprites reads the sprite files from dir, substituting shapes for anything missing
func LoadSprites(dir string) *SpriteSet {
	s := &SpriteSet{}

	if img, err := s.load(dir, backgroundAsset); err == nil {
		s.Background = img
	} else {
		s.Background = ebiten.NewImage(constants.WorldWidth, constants.WorldHeight)
		s.Background.Fill(render.RgbWater.RGBA())
	}

	if img, err := s.load(dir, hookAsset); err == nil {
		s.Hook = img
	} else {
		s.Hook = fallbackHook()
	}

	// Fish sprites are all-or-nothing so variants never mix styles
	var loaded [constants.FishVariants][constants.FishAnimFrames]*ebiten.Image
	complete := true
	for v := range fishAssets {
		for f, name := range fishAssets[v] {
			img, err := s.load(dir, name)
			if err != nil {
				complete = false
				continue
			}
			loaded[v][f] = img
		}
	}
	if complete {
		s.Fish = loaded
	} else {
		for v := range s.Fish {
			for f := range s.Fish[v] {
				s.Fish[v][f] = fallbackFish(v, f)
			}
		}
	}

	if s.Fallback {
		log.Printf("window: %d asset(s) missing, using drawn shapes: %v", len(s.Missing), s.Missing)
	}
	return s
}

func (s *SpriteSet) load(dir, name string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, name))
	if err != nil {
		s.Fallback = true
		s.Missing = append(s.Missing, name)
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return img, nil
}

func fallbackHook() *ebiten.Image {
	img := ebiten.NewImage(int(constants.HookWidth), int(constants.HookHeight))
	vector.DrawFilledCircle(img, float32(constants.HookWidth/2), float32(constants.HookHeight/2), 15, render.RgbHook.RGBA(), true)
	return img
}

func fallbackFish(variant, frame int) *ebiten.Image {
	img := ebiten.NewImage(int(constants.FishWidth), int(constants.FishHeight))
	fillPolygon(img, fishTriangle(frame), render.FishColor(variant).RGBA())
	return img
}

// fishTriangle is the arrow-shaped stand-in body; the second frame is pulled in
// from both ends so the shape pulses as it animates
func fishTriangle(frame int) []game.Point {
	inset := 0.0
	if frame%2 == 1 {
		inset = 5
	}
	return []game.Point{
		{X: inset, Y: constants.FishHeight / 2},
		{X: constants.FishWidth - inset, Y: 0},
		{X: constants.FishWidth - inset, Y: constants.FishHeight},
	}
}

// fillPolygon fills a convex polygon as a triangle fan
func fillPolygon(dst *ebiten.Image, pts []game.Point, c color.RGBA) {
	if len(pts) < 3 {
		return
	}

	r, g, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	vertices := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vertices[i] = ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}

	indices := make([]uint16, 0, (len(pts)-2)*3)
	for i := 1; i < len(pts)-1; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}

	dst.DrawTriangles(vertices, indices, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

var white *ebiten.Image

// whitePixel is a 1x1 white source for flat-colored triangles
func whitePixel() *ebiten.Image {
	if white == nil {
		base := ebiten.NewImage(3, 3)
		base.Fill(color.White)
		white = base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return white
}

package window

import (
	"bytes"
	"fmt"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DefaultAssetDir is where textures and fonts are looked up by default.
const DefaultAssetDir = "../assets"

// Texture names.
const (
	TexturePlayer     = "player"
	TextureEnemy      = "enemy"
	TextureBullet     = "bullet"
	TextureBackground = "background"
)

// Font sizes.
const (
	FontLarge  = "pixel_large"
	FontMedium = "pixel_medium"
	FontSmall  = "pixel_small"
)

var textureFiles = map[string]string{
	TexturePlayer:     "player_128.png",
	TextureEnemy:      "enemy_128.png",
	TextureBullet:     "bullet_128.png",
	TextureBackground: "background.png",
}

type fontSpec struct {
	file string
	size float64
}

var fontFiles = map[string]fontSpec{
	FontLarge:  {"Pixel Game Extrude.otf", 48},
	FontMedium: {"Pixel Game.otf", 24},
	FontSmall:  {"Pixel Game.otf", 16},
}

// debugGlyphW/H are the cell size of ebitenutil's debug font.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

// Assets caches textures and font faces by name. Anything that fails to load
// is logged once and drawn with a fallback.
type Assets struct {
	dir      string
	logger   *log.Logger
	textures map[string]*ebiten.Image
	faces    map[string]text.Face
	missing  map[string]bool
}

// NewAssets creates an empty cache rooted at dir.
func NewAssets(dir string, logger *log.Logger) *Assets {
	if dir == "" {
		dir = DefaultAssetDir
	}
	return &Assets{
		dir:      dir,
		logger:   logger,
		textures: make(map[string]*ebiten.Image),
		faces:    make(map[string]text.Face),
		missing:  make(map[string]bool),
	}
}

// Dir returns the asset directory.
func (a *Assets) Dir() string {
	return a.dir
}

// Load reads every known texture and font. It returns the number of assets
// that could not be loaded.
func (a *Assets) Load() int {
	failed := 0
	for name := range textureFiles {
		if _, ok := a.Texture(name); !ok {
			failed++
		}
	}
	sources := make(map[string]*text.GoTextFaceSource)
	for name, spec := range fontFiles {
		src, ok := sources[spec.file]
		if !ok {
			var err error
			src, err = loadFontSource(filepath.Join(a.dir, spec.file))
			if err != nil {
				a.logger.Warn("font unavailable, using debug font", "font", name, "err", err)
				a.missing[name] = true
				failed++
				continue
			}
			sources[spec.file] = src
		}
		a.faces[name] = &text.GoTextFace{Source: src, Size: spec.size}
	}
	a.logger.Debug("assets loaded", "dir", a.dir, "missing", failed)
	return failed
}

// Texture returns a cached texture, loading it on first use.
func (a *Assets) Texture(name string) (*ebiten.Image, bool) {
	if img, ok := a.textures[name]; ok {
		return img, true
	}
	if a.missing[name] {
		return nil, false
	}
	file, ok := textureFiles[name]
	if !ok {
		a.missing[name] = true
		return nil, false
	}
	img, _, err := ebitenutil.NewImageFromFile(filepath.Join(a.dir, file))
	if err != nil {
		a.logger.Warn("texture unavailable, using solid color", "texture", name, "err", err)
		a.missing[name] = true
		return nil, false
	}
	a.textures[name] = img
	return img, true
}

// Face returns a loaded font face.
func (a *Assets) Face(name string) (text.Face, bool) {
	f, ok := a.faces[name]
	return f, ok
}

// TextWidth measures s in the named font, or in the debug font if the face
// is missing.
func (a *Assets) TextWidth(font, s string) float64 {
	if f, ok := a.Face(font); ok {
		return text.Advance(s, f)
	}
	return float64(len(s) * debugGlyphW)
}

// DrawText draws s with its top-left corner at (x, y).
func (a *Assets) DrawText(dst *ebiten.Image, font, s string, x, y float64, clr color.Color) {
	f, ok := a.Face(font)
	if !ok {
		ebitenutil.DebugPrintAt(dst, s, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, f, op)
}

// DrawTextCentered draws s horizontally centered at row y.
func (a *Assets) DrawTextCentered(dst *ebiten.Image, font, s string, y float64, clr color.Color) {
	w := float64(dst.Bounds().Dx())
	a.DrawText(dst, font, s, (w-a.TextWidth(font, s))/2, y, clr)
}

// DrawSprite draws a texture scaled into the given box, or a filled rect in
// the fallback color if the texture is missing.
func (a *Assets) DrawSprite(dst *ebiten.Image, name string, x, y, w, h float64, fallback color.Color) {
	img, ok := a.Texture(name)
	if !ok {
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), fallback, false)
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	dst.DrawImage(img, op)
}

func loadFontSource(path string) (*text.GoTextFaceSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("window: cannot parse font %s: %w", path, err)
	}
	return src, nil
}

package window

import (
	"image/color"

	"github.com/vovakirdan/star-defender/internal/games/stardefender"
)

// Window geometry.
const (
	DefaultWidth   = 800
	DefaultHeight  = 600
	TitleBarHeight = 60 // Score bar strip above the playfield
	TileSize       = stardefender.TileSize

	scoreBarMargin = 20
	scoreBarHeight = 20
	scrollSpeed    = 0.5 // Background pixels per tick
)

// Window palette.
var (
	colorBackdrop      = color.RGBA{0, 0, 50, 255}
	colorTitleBar      = color.RGBA{100, 100, 255, 255}
	colorScoreBarTrack = color.RGBA{50, 50, 100, 255}
	colorBorder        = color.RGBA{255, 255, 255, 255}
	colorPlayer        = color.RGBA{0, 255, 0, 255}
	colorEnemy         = color.RGBA{255, 0, 0, 255}
	colorBullet        = color.RGBA{255, 255, 0, 255}
	colorShade         = color.RGBA{0, 0, 0, 128}
	colorText          = color.RGBA{255, 255, 255, 255}
	colorPrompt        = color.RGBA{200, 200, 200, 255}
	colorHint          = color.RGBA{180, 180, 180, 255}
	colorDanger        = color.RGBA{255, 0, 0, 255}
)

// GridSize returns the playfield size in tiles for a window, leaving room
// for the title bar.
func GridSize(width, height int) (int, int) {
	return width / TileSize, (height - TitleBarHeight) / TileSize
}

// TileOrigin returns the pixel position of a tile's top-left corner.
func TileOrigin(x, y int) (float64, float64) {
	return float64(x * TileSize), float64(TitleBarHeight + y*TileSize)
}

// ScoreBarWidth returns the filled width of the score bar: two pixels per
// point, capped by the track.
func ScoreBarWidth(score, width int) int {
	track := width - 2*scoreBarMargin
	return max(0, min(score*2, track))
}

// ScoreBarColor shifts from cyan toward magenta as the score grows.
func ScoreBarColor(score int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, score/2)),
		G: uint8(max(0, 255-score/4)),
		B: 255,
		A: 255,
	}
}

// ParticleColor returns the spark color for a particle.
func ParticleColor(p stardefender.Particle) color.RGBA {
	return color.RGBA{R: 255, G: p.Heat, B: 0, A: 255}
}

// scrollOffset advances the background offset, wrapping at height.
func scrollOffset(offset float64, height int) float64 {
	offset += scrollSpeed
	if h := float64(height); offset >= h {
		offset -= h
	}
	return offset
}

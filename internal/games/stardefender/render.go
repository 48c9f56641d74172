package stardefender

import (
	"fmt"

	"github.com/vovakirdan/star-defender/internal/core"
)

// Glyphs used by the text renderer.
const (
	GlyphPlayer = 'A'
	GlyphEnemy  = 'V'
	GlyphBullet = '|'
)

// Menu and overlay text shared by every frontend.
const (
	TitleText       = "STAR DEFENDER"
	StartPrompt     = "Press SPACE or ENTER to Start"
	ControlsHint    = "Use A/D to move, SPACE to shoot"
	PauseHint       = "Press ESC to pause during game"
	SoundHint       = "Press M to toggle sound"
	PausedText      = "PAUSED"
	ResumePrompt    = "Press ESC to Resume"
	BackPrompt      = "Press B for Menu"
	GameOverText    = "GAME OVER"
	MenuPrompt      = "Press SPACE to Return to Menu"
	RestartPrompt   = "Press R to play again"
	TooSmallText    = "Terminal too small"
	TooSmallSubtext = "Resize to continue"
)

// FinalScoreText formats the game-over score line.
func FinalScoreText(score int) string {
	return fmt.Sprintf("Final Score: %d", score)
}

// Layout returns the arena's outer box (border included) for a screen of the
// given size, and whether it fits. Row 0 is reserved for the HUD.
func (g *Game) Layout(screenW, screenH int) (core.Rect, bool) {
	boxW := g.width + 2
	boxH := g.height + 2
	box := core.NewRect((screenW-boxW)/2, 1, boxW, boxH)
	return box, screenW >= boxW && screenH >= boxH+1
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.phase == core.PhaseMenu {
		g.renderMenu(dst)
		return
	}

	box, ok := g.Layout(dst.Width(), dst.Height())
	if !ok {
		renderOverlay(dst, TooSmallText, TooSmallSubtext)
		return
	}

	g.renderHUD(dst)
	dst.DrawBoxColored(box, core.ColorBlue)

	ox, oy := box.X+1, box.Y+1
	g.renderParticles(dst, ox, oy)
	for _, e := range g.enemies {
		dst.SetColored(ox+e.X, oy+e.Y, GlyphEnemy, core.ColorBrightRed)
	}
	for _, b := range g.bullets {
		dst.SetColored(ox+b.X, oy+b.Y, GlyphBullet, core.ColorBrightYellow)
	}
	dst.SetColored(ox+g.player.X, oy+g.player.Y, GlyphPlayer, core.ColorBrightGreen)

	switch g.phase {
	case core.PhasePaused:
		renderOverlay(dst, PausedText, ResumePrompt, BackPrompt)
	case core.PhaseGameOver:
		renderOverlay(dst, GameOverText, FinalScoreText(g.score), MenuPrompt, RestartPrompt)
	}
}

func (g *Game) renderMenu(dst *core.Screen) {
	top := dst.Height()/2 - 3
	dst.DrawTextCenteredColored(top, TitleText, core.ColorBrightCyan)
	dst.DrawTextCentered(top+2, StartPrompt)
	dst.DrawTextCenteredColored(top+4, ControlsHint, core.ColorGray)
	dst.DrawTextCenteredColored(top+5, PauseHint, core.ColorGray)
	dst.DrawTextCenteredColored(top+6, SoundHint, core.ColorGray)
}

// renderHUD draws the status line above the arena.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Star Defender  Score: %d  Level: %d%%", g.score, int(g.Level()*100))
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

// renderParticles draws sparks under the entities, dimming as they fade.
func (g *Game) renderParticles(dst *core.Screen, ox, oy int) {
	field := core.NewRect(0, 0, g.width, g.height)
	for _, p := range g.particles {
		if p.X < 0 || p.Y < 0 || !field.Contains(int(p.X), int(p.Y)) {
			continue
		}
		glyph, color := '.', core.ColorOrange
		switch f := p.Fade(); {
		case f > 0.66:
			glyph, color = '*', core.ColorBrightYellow
		case f > 0.33:
			glyph = '+'
		}
		dst.SetColored(ox+int(p.X), oy+int(p.Y), glyph, color)
	}
}

// renderOverlay draws a bordered message box centred on the screen.
func renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = core.Max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorWhite)
	for i, l := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorBrightWhite
		}
		pad := (maxLen - len([]rune(l))) / 2
		dst.DrawTextColored(box.X+2+pad, box.Y+2+i, l, color)
	}
}

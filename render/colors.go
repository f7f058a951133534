package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/flapper/vmath"
)

// RGB color definitions for the terminal view
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbStatusBar  = tcell.NewRGBColor(180, 180, 180)
	RgbPaused     = tcell.NewRGBColor(255, 165, 0)

	RgbPipe     = tcell.NewRGBColor(0, 200, 0)
	RgbPipeDark = tcell.NewRGBColor(0, 130, 0)

	RgbPlayerRise = tcell.NewRGBColor(255, 255, 0)  // Bright yellow while climbing
	RgbPlayerFall = tcell.NewRGBColor(255, 120, 40) // Orange while diving
)

// GetPlayerColor blends between the dive and climb colors by tilt in [-pi/2, pi/2]
func GetPlayerColor(tilt float64) tcell.Color {
	t := vmath.Clamp((tilt+halfPi)/(2*halfPi), 0, 1)
	r1, g1, b1 := RgbPlayerFall.RGB()
	r2, g2, b2 := RgbPlayerRise.RGB()
	return tcell.NewRGBColor(lerp(r1, r2, t), lerp(g1, g2, t), lerp(b1, b2, t))
}

func lerp(a, b int32, t float64) int32 {
	return a + int32(math.Round(float64(b-a)*t))
}

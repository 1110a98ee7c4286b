package rendering

import (
	"github.com/cswager/voxen/common"
	"github.com/cswager/voxen/engine/device"
)

// menuSkyColor is the clear color shown behind the animated cloud background.
var menuSkyColor = device.Color{A: 255, R: 140, G: 186, B: 250}

// Progress bar background size limits in pixels.
const (
	progressBarMinW = 200
	progressBarMaxW = 600
	progressBarMinH = 24
	progressBarMaxH = 72
)

// drawMenuBackground begins the frame with either the stepped cloud scene or
// a plain black clear. Clouds are drawn only when both the caller and the
// menu_clouds setting allow them.
func (e *engine) drawMenuBackground(dtime float64, clouds bool) {
	cloudBackground := clouds && e.conf.GetBool("menu_clouds") && e.clouds != nil
	if cloudBackground {
		e.clouds.Step(dtime * 3)
		e.drv.BeginScene(menuSkyColor)
		e.clouds.Render()
	} else {
		e.drv.BeginScene(device.Color{A: 255})
	}
}

func (e *engine) DrawLoadScreen(text string, guienv GUIEnv, tsrc TextureSource, dtime float64, percent int, clouds bool) {
	screenW, screenH := e.WindowSize()

	var textW, textH int
	if e.fonts != nil {
		textW = e.fonts.TextWidth(text)
		textH = e.fonts.LineHeight()
	}
	centerX, centerY := screenW/2, screenH/2
	textRect := device.Rect{
		X: centerX - textW/2,
		Y: centerY - textH/2,
		W: textW,
		H: textH,
	}
	guitext := guienv.AddStaticText(text, textRect)

	e.drawMenuBackground(dtime, clouds)

	if percent >= 0 && percent <= 100 && tsrc != nil {
		e.drawProgressBar(tsrc, screenW, screenH, percent)
	}

	guienv.DrawAll()
	e.drv.EndScene()
	guitext.Remove()
}

// drawProgressBar draws the two-texture progress bar centered on screen. If
// either texture is missing the bar is skipped without failing the frame.
func (e *engine) drawProgressBar(tsrc TextureSource, screenW, screenH, percent int) {
	bar, err := tsrc.Texture("progress_bar.png")
	if err != nil {
		return
	}
	barBG, err := tsrc.Texture("progress_bar_bg.png")
	if err != nil {
		return
	}

	bgW, bgH := barBG.Size()
	imgW := common.Clamp(bgW, progressBarMinW, progressBarMaxW)
	imgH := common.Clamp(bgH, progressBarMinH, progressBarMaxH)
	imgX := (screenW - imgW) / 2
	imgY := (screenH - imgH) / 2

	e.drv.Draw2DImageScaled(barBG,
		device.Rect{X: imgX, Y: imgY, W: imgW, H: imgH},
		device.Rect{X: 0, Y: 0, W: bgW, H: bgH})

	fgW, fgH := bar.Size()
	e.drv.Draw2DImageScaled(bar,
		device.Rect{X: imgX, Y: imgY, W: percent * imgW / 100, H: imgH},
		device.Rect{X: 0, Y: 0, W: percent * fgW / 100, H: fgH})
}

func (e *engine) DrawMenuScene(guienv GUIEnv, dtime float64, clouds bool) {
	e.drawMenuBackground(dtime, clouds)
	guienv.DrawAll()
	e.drv.EndScene()
}

package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cswager/voxen/engine/device"
	"github.com/cswager/voxen/settings"
)

func progressBarSource(barW, barH, bgW, bgH int) *fakeTextureSource {
	return &fakeTextureSource{textures: map[string]device.Texture{
		"progress_bar.png":    &fakeTexture{name: "progress_bar.png", w: barW, h: barH},
		"progress_bar_bg.png": &fakeTexture{name: "progress_bar_bg.png", w: bgW, h: bgH},
	}}
}

func TestDrawLoadScreen(t *testing.T) {
	drv := &fakeDriver{w: 800, h: 600}
	dev := &fakeDevice{drv: drv}
	eng, _ := newTestEngine(t, settings.NewStore(), dev,
		WithFontEngine(&fakeFonts{width: 100, height: 20}))

	guienv := &fakeGUIEnv{}
	tsrc := progressBarSource(100, 20, 400, 40)
	eng.DrawLoadScreen("Loading...", guienv, tsrc, 0, 50, false)

	// Text is centered on screen and removed after the frame.
	require.Len(t, guienv.texts, 1)
	assert.Equal(t, "Loading...", guienv.texts[0])
	assert.Equal(t, device.Rect{X: 350, Y: 290, W: 100, H: 20}, guienv.rects[0])
	assert.True(t, guienv.handles[0].removed)
	assert.Equal(t, 1, guienv.drawAlls)

	// No clouds requested, so the frame clears to black.
	require.Len(t, drv.begins, 1)
	assert.Equal(t, device.Color{A: 255}, drv.begins[0])
	assert.Equal(t, 1, drv.ends)

	// Bar background centered at its natural size, foreground at 50 percent.
	require.Len(t, drv.draws, 2)
	assert.Equal(t, drawCall{
		tex:  "progress_bar_bg.png",
		dest: device.Rect{X: 200, Y: 280, W: 400, H: 40},
		src:  device.Rect{X: 0, Y: 0, W: 400, H: 40},
	}, drv.draws[0])
	assert.Equal(t, drawCall{
		tex:  "progress_bar.png",
		dest: device.Rect{X: 200, Y: 280, W: 200, H: 40},
		src:  device.Rect{X: 0, Y: 0, W: 50, H: 20},
	}, drv.draws[1])
}

func TestDrawLoadScreenClampsBarSize(t *testing.T) {
	drv := &fakeDriver{w: 800, h: 600}
	dev := &fakeDevice{drv: drv}
	eng, _ := newTestEngine(t, settings.NewStore(), dev)

	eng.DrawLoadScreen("", &fakeGUIEnv{}, progressBarSource(100, 20, 1000, 10), 0, 100, false)

	require.Len(t, drv.draws, 2)
	assert.Equal(t, device.Rect{X: 100, Y: 288, W: 600, H: 24}, drv.draws[0].dest)
	assert.Equal(t, device.Rect{X: 100, Y: 288, W: 600, H: 24}, drv.draws[1].dest)
}

func TestDrawLoadScreenHidesBarOutsideRange(t *testing.T) {
	drv := &fakeDriver{w: 800, h: 600}
	dev := &fakeDevice{drv: drv}
	eng, _ := newTestEngine(t, settings.NewStore(), dev)
	tsrc := progressBarSource(100, 20, 400, 40)

	eng.DrawLoadScreen("", &fakeGUIEnv{}, tsrc, 0, -1, false)
	eng.DrawLoadScreen("", &fakeGUIEnv{}, tsrc, 0, 101, false)
	assert.Empty(t, drv.draws)
	assert.Equal(t, 2, drv.ends)
}

func TestDrawLoadScreenSkipsBarOnMissingTexture(t *testing.T) {
	drv := &fakeDriver{w: 800, h: 600}
	dev := &fakeDevice{drv: drv}
	eng, _ := newTestEngine(t, settings.NewStore(), dev)

	guienv := &fakeGUIEnv{}
	tsrc := &fakeTextureSource{textures: map[string]device.Texture{
		"progress_bar.png": &fakeTexture{name: "progress_bar.png", w: 100, h: 20},
	}}
	eng.DrawLoadScreen("Loading...", guienv, tsrc, 0, 50, false)

	assert.Empty(t, drv.draws)
	assert.Equal(t, 1, drv.ends)
	assert.True(t, guienv.handles[0].removed)
}

func TestDrawLoadScreenCloudBackground(t *testing.T) {
	drv := &fakeDriver{w: 800, h: 600}
	dev := &fakeDevice{drv: drv}
	clouds := &fakeClouds{}
	eng, _ := newTestEngine(t, settings.NewStore(), dev, WithCloudScene(clouds))

	eng.DrawLoadScreen("", &fakeGUIEnv{}, nil, 0.5, -1, true)

	// Clouds step at triple speed and draw over the sky clear color.
	assert.Equal(t, []float64{1.5}, clouds.steps)
	assert.Equal(t, 1, clouds.renders)
	require.Len(t, drv.begins, 1)
	assert.Equal(t, menuSkyColor, drv.begins[0])
}

func TestDrawLoadScreenCloudsDisabledBySetting(t *testing.T) {
	conf := settings.NewStore()
	conf.Set("menu_clouds", "false")

	drv := &fakeDriver{w: 800, h: 600}
	dev := &fakeDevice{drv: drv}
	clouds := &fakeClouds{}
	eng, _ := newTestEngine(t, conf, dev, WithCloudScene(clouds))

	eng.DrawLoadScreen("", &fakeGUIEnv{}, nil, 0.5, -1, true)

	assert.Empty(t, clouds.steps)
	assert.Equal(t, device.Color{A: 255}, drv.begins[0])
}

func TestDrawMenuScene(t *testing.T) {
	drv := &fakeDriver{w: 800, h: 600}
	dev := &fakeDevice{drv: drv}
	clouds := &fakeClouds{}
	eng, _ := newTestEngine(t, settings.NewStore(), dev, WithCloudScene(clouds))

	guienv := &fakeGUIEnv{}
	eng.DrawMenuScene(guienv, 0.25, true)

	assert.Equal(t, []float64{0.75}, clouds.steps)
	assert.Equal(t, 1, clouds.renders)
	assert.Equal(t, 1, guienv.drawAlls)
	assert.Equal(t, 1, drv.ends)
}

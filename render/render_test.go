package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirstar13/dimension-prt/bvh"
	"github.com/mirstar13/dimension-prt/colorspace"
	"github.com/mirstar13/dimension-prt/object"
	"github.com/mirstar13/dimension-prt/scenecfg"
	"github.com/mirstar13/dimension-prt/shade"
	"github.com/mirstar13/dimension-prt/vecmath"
)

func TestCanvasSetAndGetPixel(t *testing.T) {
	c := NewCanvas(4, 4)
	tc := colorspace.NewTcolor(colorspace.New(0.5, 0.25, 0.1), 0)
	c.SetPixel(2, 1, tc)
	assert.Equal(t, tc, c.At(2, 1))
}

func TestCanvasToImageMatchesPixels(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SetPixel(0, 0, colorspace.NewTcolor(colorspace.White, 0))
	img := c.ToImage()
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestFutureProgressAndWait(t *testing.T) {
	f := NewFuture()
	f.SetTotal(4)

	done := make(chan struct{})
	go func() {
		f.Wait(1.0)
		close(done)
	}()

	for i := 0; i < 4; i++ {
		f.Increment()
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait never unblocked after full progress")
	}
	assert.Equal(t, 1.0, f.Progress())
}

func TestFutureCheckpointObservesCancel(t *testing.T) {
	f := NewFuture()
	assert.False(t, f.checkpoint())
	f.Cancel()
	assert.True(t, f.checkpoint())
	assert.True(t, f.IsCancelled())
}

func TestFuturePauseBlocksCheckpointUntilResume(t *testing.T) {
	f := NewFuture()
	f.Pause()

	unblocked := make(chan bool)
	go func() { unblocked <- f.checkpoint() }()

	select {
	case <-unblocked:
		t.Fatal("checkpoint returned while paused")
	case <-time.After(50 * time.Millisecond):
	}

	f.Resume()
	select {
	case cancelled := <-unblocked:
		assert.False(t, cancelled)
	case <-time.After(time.Second):
		t.Fatal("checkpoint never unblocked after Resume")
	}
}

func TestRenderCompletesAndFillsCanvas(t *testing.T) {
	sphere := object.NewSphere(vecmath.Identity(), nil)
	scene := &shade.Scene{
		BVH:        bvh.New([]object.Object{sphere}),
		Background: object.SolidPigment(colorspace.New(0.2, 0.2, 0.2)),
		Quality:    shade.QAll,
		Reclimit:   3,
		AdcBailout: 1.0 / 255.0,
	}
	cam := scenecfg.NewPerspectiveCamera(vecmath.New(0, 0, -5), vecmath.Zero, 60, 60)
	region := scenecfg.Region{Width: 8, Height: 8, OuterWidth: 8, OuterHeight: 8}
	canvas := NewCanvas(8, 8)

	future := Render(scene, cam, region, canvas, 2)
	require.NoError(t, future.Join())
	assert.Equal(t, 1.0, future.Progress())
	// The corner rays miss the sphere and take the background color.
	assert.InDelta(t, 0.2, canvas.At(0, 0).C.R, 1e-9)
	assert.InDelta(t, 0.2, canvas.At(7, 7).C.R, 1e-9)
}

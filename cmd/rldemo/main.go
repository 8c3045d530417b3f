// Command rldemo opens a raylib window and draws a small 3D and text scene.
//
// It loads libraylib at run time; point -lib or RAYLIB_LIBRARY at the
// shared library when it is not on the loader path.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/image/font/gofont/goregular"

	rl "github.com/gogpu/raylib"
	"github.com/gogpu/raylib/charset"
	"github.com/gogpu/raylib/raymath"
	"github.com/gogpu/raylib/rlgl"
)

func init() {
	// raylib's window and GL context belong to the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		width   = flag.Int("width", 800, "window width")
		height  = flag.Int("height", 450, "window height")
		fps     = flag.Int("fps", 60, "target frame rate")
		frames  = flag.Int("frames", 0, "exit after this many frames (0 runs until closed)")
		lib     = flag.String("lib", "", "path to the raylib shared library")
		shot    = flag.String("screenshot", "", "save a screenshot of the last frame to this file")
		text    = flag.String("text", "Grüße aus Go · raylib 5.0", "text to draw")
		verbose = flag.Bool("v", false, "log raylib trace output")
	)
	flag.Parse()

	if *verbose {
		rl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opts := []rl.Option{rl.WithTraceLogRouting(*verbose)}
	if *lib != "" {
		opts = append(opts, rl.WithLibraryPath(*lib))
	}
	if err := rl.Load(opts...); err != nil {
		log.Fatalf("Failed to load raylib: %v", err)
	}
	defer func() {
		if err := rl.Unload(); err != nil {
			log.Printf("Unload: %v", err)
		}
	}()

	if err := run(int32(*width), int32(*height), int32(*fps), *frames, *text, *shot); err != nil {
		log.Fatal(err)
	}
}

func run(width, height, fps int32, frames int, text, shot string) error {
	rl.SetConfigFlags(rl.FlagMSAA4xHint | rl.FlagWindowResizable)
	rl.InitWindow(width, height, "rldemo")
	defer rl.CloseWindow()
	rl.SetTargetFPS(fps)

	// Ask only for the glyphs the text needs that Go Regular has.
	want := charset.ASCII().Union(charset.FromString(text))
	glyphs, err := charset.Supported(goregular.TTF, want)
	if err != nil {
		return fmt.Errorf("font coverage: %w", err)
	}
	font := rl.LoadFontFromMemory(".ttf", goregular.TTF, 32, glyphs.Int32s())
	defer rl.UnloadFont(&font)
	log.Printf("Loaded Go Regular with %d glyphs", font.Glyphs.Len())

	camera := rl.Camera3D{
		Position:   rl.Vector3{X: 6, Y: 5, Z: 6},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	for n := 0; !rl.WindowShouldClose(); n++ {
		if frames > 0 && n >= frames {
			break
		}
		t := float32(rl.GetTime())
		camera.Position = raymath.Vector3RotateByAxisAngle(rl.Vector3{X: 6, Y: 5, Z: 6}, camera.Up, t*0.3)

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.BeginMode3D(camera)
		rl.DrawGrid(10, 1)
		for i := range 6 {
			c := rl.HSL(float64(i)*60, 0.7, 0.55)
			pos := raymath.Vector3RotateByAxisAngle(rl.Vector3{X: 2.5}, camera.Up, float32(i)*1.047)
			rlgl.PushMatrix()
			rlgl.Translatef(pos.X, pos.Y+0.5, pos.Z)
			rlgl.Rotatef(t*40, 0, 1, 0)
			rl.DrawCube(rl.Vector3{}, 0.8, 0.8, 0.8, c)
			rl.DrawCubeWires(rl.Vector3{}, 0.8, 0.8, 0.8, rl.Fade(rl.Black, 0.4))
			rlgl.PopMatrix()
		}
		rl.EndMode3D()

		size := rl.MeasureTextEx(font, text, 32, 1)
		at := rl.Vector2{X: (float32(rl.GetScreenWidth()) - size.X) / 2, Y: 20}
		rl.DrawTextEx(font, text, at, 32, 1, rl.DarkGray)
		rl.DrawFPS(10, int32(rl.GetScreenHeight())-30)
		rl.EndDrawing()
	}

	if shot != "" {
		rl.TakeScreenshot(shot)
		log.Printf("Screenshot saved to %s", shot)
	}
	return nil
}

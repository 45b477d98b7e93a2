// Command example opens a GLFW window and demonstrates the popup toolkit:
// a dialog with a label, text input and button row, a queued follow-up
// dialog, and a worker-driven progress popup.
package main

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/viewportkit/popup"
	"github.com/viewportkit/popup/backend/opengl"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

// glfwHost adapts a GLFW window to the popup.Host interface. UI-thread
// functions queue through uiTasks and run in the main loop.
type glfwHost struct {
	window  *glfw.Window
	uiTasks chan func()
}

func (h *glfwHost) RequestModal(p *popup.Popup) error {
	if h.window == nil {
		return fmt.Errorf("no window")
	}
	return nil
}

func (h *glfwHost) ScheduleOnUI(fn func()) {
	select {
	case h.uiTasks <- fn:
		glfw.PostEmptyEvent()
	default:
		log.Println("UI task queue full, dropping task")
	}
}

func (h *glfwHost) RequestRedraw() {
	glfw.PostEmptyEvent()
}

func main() {
	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(1024, 768, "popup demo", nil, nil)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		log.Fatalf("gl init: %v", err)
	}

	renderer, err := opengl.NewRenderer()
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}
	defer renderer.Delete()
	renderer.SetBaseFontSize(11)

	adapter := opengl.NewEventAdapter(window)
	host := &glfwHost{window: window, uiTasks: make(chan func(), 64)}
	mgr := popup.NewManager(host)
	theme := popup.DefaultTheme()

	showDemoDialog(mgr)
	go runWorker(mgr, host)

	for !window.ShouldClose() {
		glfw.WaitEventsTimeout(0.1)

		for {
			select {
			case fn := <-host.uiTasks:
				fn()
				continue
			default:
			}
			break
		}

		fbW, fbH := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbW), int32(fbH))
		gl.ClearColor(0.12, 0.12, 0.14, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := &popup.Context{
			Metrics: renderer,
			Backend: renderer,
			Theme:   theme,
			Region:  popup.Rect{W: float32(fbW), H: float32(fbH)},
		}

		active := mgr.Advance()
		events := adapter.Drain()
		if active != nil {
			for i := range events {
				active.HandleEvent(ctx, &events[i])
			}
			active = mgr.Advance()
		}

		renderer.Begin(fbW, fbH)
		if active != nil {
			active.Draw(ctx)
		}
		renderer.End()

		window.SwapBuffers()
	}
}

func showDemoDialog(mgr *popup.Manager) {
	p := popup.NewPopup("Export Scene")
	p.AddLabel("Name the export. The file is written next to the project.")
	input := p.AddTextInput("scene.glb")
	row := p.AddRow()
	row.AddButton("Export", func() {
		log.Printf("exporting %q", input.Text)
		p.Close()
	})
	row.AddButton("Cancel", func() { p.Cancel() })

	queued := popup.NewPopup("Tip", popup.WithLabel("Popups shown while one is active queue up."))
	if err := mgr.Show(p); err != nil {
		log.Printf("show: %v", err)
	}
	if err := mgr.Show(queued); err != nil {
		log.Printf("show: %v", err)
	}
}

// runWorker simulates a background job driving a progress popup.
func runWorker(mgr *popup.Manager, host *glfwHost) {
	time.Sleep(2 * time.Second)
	bar, p, err := mgr.ShowProgress("Baking", "Baking lightmaps")
	if err != nil {
		log.Printf("progress: %v", err)
		return
	}
	for i := 0; i <= 100; i++ {
		time.Sleep(40 * time.Millisecond)
		bar.Update(float64(i), false)
	}
	host.ScheduleOnUI(func() {
		p.SetPreventClose(false)
		p.AddCloseButton("Done")
	})
}

// Package popup is a retained-mode modal dialog toolkit for applications
// that render their own viewport, such as 3D editors and game tools. The
// host supplies text measurement (MetricsProvider) and drawing
// (DrawBackend); the package supplies the widgets: Label, Button,
// TextInput, ProgressBar, Row, Scrollbar, and the Popup dialog that
// contains them.
//
// Sizes are logical units multiplied by the host's UI scale; popups are
// centered in the host region, draggable by their title bar, and become
// scrollable when content exceeds three quarters of the region height.
//
// A minimal host loop:
//
//	mgr := popup.NewManager(host)
//	p := popup.NewPopup("Export")
//	p.AddLabel("Export 42 objects?")
//	row := p.AddRow()
//	row.AddButton("Export", func() { doExport(); p.Close() })
//	row.AddButton("Cancel", func() { p.Cancel() })
//	mgr.Show(p)
//
//	// per frame, on the UI thread:
//	ctx := &popup.Context{Metrics: metrics, Backend: backend,
//		Theme: popup.DefaultTheme(), Region: region}
//	if active := mgr.Advance(); active != nil {
//		for _, ev := range events {
//			active.HandleEvent(ctx, &ev)
//		}
//		active.Draw(ctx)
//	}
//
// An OpenGL backend and GLFW event adapter live in backend/opengl; any
// renderer that implements the two interfaces works.
package popup

// Package fxdoc wires documents into an Fx application.
//
// NewModule provides a *document.Document under a name tag, so several
// documents can live in one container:
//
//	app := fxdoc.NewApp(
//	    fxdoc.WithLogLevel("debug"),
//	    fxdoc.WithDocument("settings", fxdoc.WithPath("settings.yaml"), fxdoc.WithAutosave(true)),
//	    fxdoc.WithModules(fx.Invoke(fx.Annotate(run, fx.ParamTags(`name:"settings"`)))),
//	)
//
// With autosave enabled the document is written back when the application stops.
package fxdoc

// Package iconic renders Font Awesome icon glyphs as interactive elements on
// [Ebitengine] and lets spin, rotation and flip effects be layered onto any
// element without clobbering each other.
//
// # Quick start
//
//	font, _ := iconic.LoadGlyphFont(fontAwesomeOTF)
//	scene := iconic.NewScene()
//
//	v := iconic.NewIconView("loading", iconic.IconSpinner, font)
//	v.X, v.Y = 100, 100
//	v.SetSpin(true)
//	scene.Add(v.Element)
//
//	iconic.Run(scene, iconic.RunConfig{Title: "Icons", Width: 640, Height: 480})
//
// # Effects
//
// An element's render transform is a single [TransformGroup] shared by all
// effects. Each effect finds its own component by kind ([Rotate] or [Scale])
// and updates only that component, appending it the first time:
//
//   - [BeginSpin] resets the Rotate angle to 0 and binds a repeating
//     0→360° [DoubleAnimation] to it; [StopSpin] halts and forgets it.
//   - [SetRotation] copies a static angle into the Rotate component.
//   - [SetFlipOrientation] writes ±1 factors into the Scale component.
//
// The effects are generic over small capability interfaces ([Spinnable],
// [Rotatable], [Flippable]), so any type embedding *[Element] can opt in to
// whichever it needs. [IconView] implements all three.
//
// Stopping a spin leaves the Rotate component at its last angle; a later
// SetRotation reuses the same component.
//
// # Animations
//
// Animations are driven by a [Clock]. A Scene advances its clock once per
// Update; elements not yet in a scene hold a private clock whose animations
// move to the scene's clock when the element is added.
//
// # Threading
//
// iconic is single-threaded. All element, scene and effect calls must come
// from the goroutine running the game loop.
//
// # Logging
//
// The package logs through [go.uber.org/zap]. It is silent by default; call
// [SetLogger] to see spin, disposal and rasterization events.
//
// [Ebitengine]: https://ebitengine.org
package iconic

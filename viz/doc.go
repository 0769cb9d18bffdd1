// Package viz exports trees as Graphviz digraphs and drives the
// external tooling around them.
//
// DOT and WriteDOT are pure text generation: every key node is emitted
// with both child slots, missing children as point-shaped placeholders,
// styled by a Style (shape, colors, fonts, caption). Rendering to an
// image and opening a viewer are side effects hidden behind the
// Renderer and Opener interfaces, with GraphvizRenderer (dot on PATH)
// and SystemOpener (xdg-open / open / start) as the stock
// implementations. Core packages never import viz; the dependency
// points outward only.
package viz

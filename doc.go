// Package obst builds optimal binary search trees: given sorted keys
// with hit weights and optional miss weights, it finds the shape that
// minimizes expected lookup cost.
//
// 🚀 What is obst?
//
//	A focused library plus CLI that brings together:
//		• keyset/  — validated labels & weights with numeric-aware ordering
//		• obst/    — the O(N²) dynamic program (E, W, Root) & tree reconstruction
//		• tree/    — the result: iterators, clone, structural analysis
//		• render/  — terminal tables & tree drawings
//		• viz/     — Graphviz DOT export & image rendering
//		• cmd/obst — solve, analyze, tables, visualize and an interactive shell
//
// ✨ Why choose obst?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Exact – Knuth's quadratic optimization, verified against brute force
//   - Pure computation core – the library never touches disk or processes
//
// Quick ASCII example:
//
//	keys A, B, C with p = [3, 3, 1] and q = [2, 3, 1, 1] yield
//
//	    B
//	   / \
//	  A   C
//
//	expected cost 25 over total weight 14, with B carrying the heavy
//	neighborhood at the root.
//
//	go get github.com/katalvlaran/obst
package obst

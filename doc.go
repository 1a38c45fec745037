// Package clikit is the view composition and layout engine behind the
// cli-kit terminal UI framework.
//
// The engine turns a tree of declarative views into rectangular character
// blocks ready to write to a terminal. Views are plain values built fresh
// every frame and discarded after rendering; there is no retained scene
// graph and no cross-frame diffing at this layer.
//
// The pieces compose bottom-up:
//
//   - Width, Truncate and Pad do Unicode-aware column arithmetic.
//   - View is the common contract: lazily rendered text plus advisory size.
//   - Box wraps views with padding, borders and minimum sizes.
//   - Flexbox distributes space along a main axis with grow/shrink/wrap.
//   - JoinHorizontal, JoinVertical and Place are the simpler 1-D composers.
//   - Layered merges rendered blocks back-to-front with space transparency.
//   - Viewport scrolls a fixed window over larger content.
//   - HitTestRegistry maps terminal coordinates back to component ids.
//
// All dimensions are terminal columns and rows, never bytes or runes.
// Styled (ANSI escaped) text is treated as opaque: escapes cost zero
// columns everywhere the engine measures, slices or composites.
package clikit

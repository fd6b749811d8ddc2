// Package grid arranges faceted items into a 2D grid of bucket cells and
// positions every item inside its cell for downstream rendering.
//
// # Model
//
// Two facet axes (see package facet) classify each item into a
// (verticalKey, horizontalKey) cell. Rows and columns size to the largest
// cell they contain; a bounded binary search picks the one shared cell
// aspect ratio whose resulting whole-grid aspect ratio best matches the
// target, clamped to a configurable range. All geometry is expressed in
// item-height units with a y-up origin at the bottom-left.
//
// # Usage
//
//	engine, err := grid.New(vertical, horizontal,
//	    grid.WithTargetAspect[Item](16.0/9.0),
//	    grid.WithPositionSetter(func(it Item, x, y float64) { it.Move(x, y) }),
//	)
//	layout, err := engine.Arrange(items)
//
// Arrange is pure: it returns an immutable Layout and never mutates engine
// state, so one engine may serve concurrent arrangements. PositionItems
// repositions items against a prior layout without rebucketing, e.g. after
// switching the placement comparator.
//
// Items stay opaque: the engine reads facet values through the axis
// accessors and writes positions exclusively through the configured
// position setter.
package grid

// Package model provides the intermediate representation (IR) for document
// structure extraction.
//
// This package defines the data structures that flow through the extraction
// pipeline. A page feed produces [Span] values, the layout engine merges them
// into [Line] values, and classification produces [HeadingRecord] entries that
// are collected into an [ExtractionResult].
//
// # Geometry
//
// Geometric primitives support position calculations:
//
//   - [BBox] - bounding box with edge accessors and union
//   - [Point] - 2D point
//
// All coordinates follow the PDF convention: the origin is the bottom-left
// corner of the page and Y increases upward.
//
// # Output contract
//
// [ExtractionResult] serializes to a JSON object with exactly two top-level
// keys, "title" and "outline". Each outline entry carries a level ("H1",
// "H2" or "H3"), the trimmed heading text, and a 1-indexed page number.
package model

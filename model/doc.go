// Package model provides the intermediate representation (IR) for composed
// press pages.
//
// This package defines the data structures shared by the classifier, the
// flow engine, and the serializer. Composition produces these types, making
// them the primary API for inspecting a finished layout before rendering.
//
// # Document Structure
//
// The [PagedDocument] type represents a fully placed document: the
// [PageTemplate] it was flowed against, its pages, and the ordered list of
// [PlacedRun] values:
//
//	doc := model.NewPagedDocument(model.DefaultTemplate())
//	page := doc.AddPage()
//
// Each [Page] contains the column [Frame] slots derived from the template.
// Frames track a cursor that only moves down; once a document is flowed the
// structure is read-only.
//
// # Roles and Styles
//
// Every content block carries a [Role] assigned by classification. The
// [StyleSheet] maps each role to a [StyleSpec]; lookup is total, so styling
// never fails. [DefaultStyleSheet] reproduces the house style: a bold
// centered masthead, justified body text, italic centered quotes.
//
// # Geometry
//
// Geometric primitives use page coordinates with the origin at the top-left
// corner and Y increasing downward, matching the coordinate system text is
// drawn in. [BBox] carries a frame's rectangle and its edge accessors.
//
// # Page Templates
//
// A [PageTemplate] fixes paper size, margins, gutter, and column count.
// Every page of a document shares one template; [PageTemplate.Frames]
// derives the column rectangles.
//
// # Warnings
//
// Non-fatal composition problems are reported as [Warning] values next to
// results rather than as errors. A [WarningCode] identifies the class of
// problem so callers can filter.
package model

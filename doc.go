// Package rangexml groups two independent helpers:
//
//   - random – draws a value from an inclusive numeric range using a
//     caller-supplied uniform source
//   - xmldoc – serializes an in-memory XML document tree to text through a
//     pluggable transformer
//
// Both are stateless; see the sub-packages for details.
package rangexml

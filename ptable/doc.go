// Package ptable provides periodic-table metadata: atomic number, symbol,
// name, group and period for all 118 elements.
//
// The table is embedded in the binary and parsed by [Load]. Lanthanides and
// actinides carry no group; [Element.Regular] reports whether an element
// belongs to the main block that is drawn in the standard 18-column layout.
package ptable

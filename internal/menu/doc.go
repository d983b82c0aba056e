// Package menu holds the immutable item-to-price mapping the order loop
// matches against, the title-case normalization that defines its key
// convention, and an HCL loader for menus kept outside the binary.
package menu

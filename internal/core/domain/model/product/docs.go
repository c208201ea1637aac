// Package product models the pharmacy catalog. Stock accounting at checkout
// happens through a conditional update in the repository layer; the entity
// only carries the last read stock value for validation and display.
package product

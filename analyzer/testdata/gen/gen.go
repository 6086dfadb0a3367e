// Code generated by hand. DO NOT EDIT.

package gen

//@deal.Inv // want "Unknown contract 'deal.Inv'"
func Generated() {}

//@deal.Inherit // want "deal.Inherit on function 'Orphan' without receiver type"
func Orphan() {}

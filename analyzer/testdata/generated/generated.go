// Code generated by hand. DO NOT EDIT.

package generated

//@deal.Inv
func Generated() {}

//@deal.Inherit
func Orphan() {}

package heap

// Interface is the mutable random-access sequence the heap engine drives.
// The element at index 0 is the top: the entry for which Less reports
// true against every other entry on its root-to-leaf paths.
//
// Less(i, j) == true means the element at i sorts closer to the top than
// the element at j.
type Interface interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

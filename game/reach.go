package game

// Reachable reports whether ships may move between systems with the given star sizes.
// Systems connect when neither is starless and they share no star size, so a system is never
// reachable from itself.
func Reachable(a, b SizeSet) bool {
	return !a.Empty() && !b.Empty() && a.Disjoint(b)
}

// ReachableSystems is Reachable over two system views.
func ReachableSystems(a, b System) bool {
	return Reachable(a.Sizes(), b.Sizes())
}

// CanUse reports whether the player may act with the color at the system.
func CanUse(s System, p Player, c Color) bool {
	return s.Colors(p).Has(c)
}

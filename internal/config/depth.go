package config

// depthCategories carries over pawnenginemoves.py's ELO-category shortcuts
// for the engine pool's search depth, so a front-end can pass "club" instead
// of a bare integer.
var depthCategories = map[string]int{
	"beginner": 6,
	"club":     12,
	"expert":   18,
	"super":    24,
}

// DepthForCategory resolves a named depth category. ok is false when name is
// not one of the known categories.
func DepthForCategory(name string) (depth int, ok bool) {
	depth, ok = depthCategories[name]
	return depth, ok
}

package css

// Context captures the structural features of a rule that lift its cascade
// priority: pseudo-class nesting, at-rule nesting and !important markers.
type Context struct {
	Pseudo    bool
	AtRule    bool
	Important bool
}

// Priority ranks: plain declarations sort first, important overrides last.
// Only the relative order matters, the merge step sorts ascending so higher
// ranks win the cascade by emission order.
const (
	priorityBase      = 0
	priorityKeyframes = 1
	priorityPseudo    = 2
	priorityAtRule    = 3
	priorityImportant = 4
)

// Priority assigns the merge rank for a rule of the given category compiled
// in the given nesting context. The strongest applicable feature wins.
func Priority(cat Category, ctx Context) int {
	p := priorityBase
	if cat == CategoryKeyframes {
		p = priorityKeyframes
	}
	if ctx.Pseudo {
		p = priorityPseudo
	}
	if ctx.AtRule {
		p = priorityAtRule
	}
	if ctx.Important {
		p = priorityImportant
	}
	return p
}

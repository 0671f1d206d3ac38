package css

// needsRTL reports whether at least one resolved declaration is
// direction-sensitive, i.e. its physical property or value differs between
// the left-to-right and right-to-left renderings.
func needsRTL(decls []resolved) bool {
	for _, d := range decls {
		if d.directional {
			return true
		}
	}
	return false
}

// ltrDeclarations projects the left-to-right declaration set.
func ltrDeclarations(decls []resolved) Declarations {
	out := make(Declarations, len(decls))
	for i, d := range decls {
		out[i] = d.ltr
	}
	return out
}

// rtlDeclarations projects the right-to-left mirror. It has the same length
// and order as the LTR set, direction-invariant entries are carried over
// unchanged.
func rtlDeclarations(decls []resolved) Declarations {
	out := make(Declarations, len(decls))
	for i, d := range decls {
		if d.directional {
			out[i] = d.rtl
			continue
		}
		out[i] = d.ltr
	}
	return out
}

// anyImportant reports whether any declaration carries an !important marker.
func anyImportant(decls []resolved) bool {
	for _, d := range decls {
		if d.important {
			return true
		}
	}
	return false
}

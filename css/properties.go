package css

import "strings"

// physicalProperties is the set of plain CSS properties the compiler
// recognizes for strict validation. Pass-through mode does not consult it.
// The set is data, extend it here when new properties show up.
var physicalProperties = map[string]bool{
	"align-content":              true,
	"align-items":                true,
	"align-self":                 true,
	"animation":                  true,
	"animation-direction":        true,
	"animation-fill-mode":        true,
	"animation-name":             true,
	"animation-play-state":       true,
	"animation-timing-function":  true,
	"appearance":                 true,
	"backdrop-filter":            true,
	"background":                 true,
	"background-attachment":      true,
	"background-clip":            true,
	"background-image":           true,
	"background-origin":          true,
	"background-position":        true,
	"background-repeat":          true,
	"background-size":            true,
	"border":                     true,
	"border-bottom":              true,
	"border-bottom-left-radius":  true,
	"border-bottom-right-radius": true,
	"border-bottom-style":        true,
	"border-bottom-width":        true,
	"border-collapse":            true,
	"border-end-end-radius":      true,
	"border-end-start-radius":    true,
	"border-left":                true,
	"border-left-style":          true,
	"border-left-width":          true,
	"border-right":               true,
	"border-right-style":         true,
	"border-right-width":         true,
	"border-spacing":             true,
	"border-start-end-radius":    true,
	"border-start-start-radius":  true,
	"border-top":                 true,
	"border-top-left-radius":     true,
	"border-top-right-radius":    true,
	"border-top-style":           true,
	"border-top-width":           true,
	"bottom":                     true,
	"box-shadow":                 true,
	"box-sizing":                 true,
	"clear":                      true,
	"clip":                       true,
	"clip-path":                  true,
	"column-gap":                 true,
	"content":                    true,
	"cursor":                     true,
	"direction":                  true,
	"display":                    true,
	"filter":                     true,
	"flex-basis":                 true,
	"flex-direction":             true,
	"flex-flow":                  true,
	"flex-wrap":                  true,
	"float":                      true,
	"font":                       true,
	"font-family":                true,
	"font-size":                  true,
	"font-stretch":               true,
	"font-style":                 true,
	"font-variant":               true,
	"grid":                       true,
	"grid-area":                  true,
	"grid-auto-columns":          true,
	"grid-auto-flow":             true,
	"grid-auto-rows":             true,
	"grid-template":              true,
	"grid-template-areas":        true,
	"grid-template-columns":      true,
	"grid-template-rows":         true,
	"height":                     true,
	"justify-content":            true,
	"justify-items":              true,
	"justify-self":               true,
	"left":                       true,
	"letter-spacing":             true,
	"line-height":                true,
	"list-style":                 true,
	"list-style-position":        true,
	"list-style-type":            true,
	"margin-bottom":              true,
	"margin-left":                true,
	"margin-right":               true,
	"margin-top":                 true,
	"max-height":                 true,
	"max-width":                  true,
	"min-height":                 true,
	"min-width":                  true,
	"object-fit":                 true,
	"object-position":            true,
	"outline":                    true,
	"outline-offset":             true,
	"outline-style":              true,
	"outline-width":              true,
	"overflow-wrap":              true,
	"overflow-x":                 true,
	"overflow-y":                 true,
	"padding-bottom":             true,
	"padding-left":               true,
	"padding-right":              true,
	"padding-top":                true,
	"pointer-events":             true,
	"position":                   true,
	"resize":                     true,
	"right":                      true,
	"row-gap":                    true,
	"scroll-behavior":            true,
	"text-align":                 true,
	"text-decoration":            true,
	"text-decoration-line":       true,
	"text-decoration-style":      true,
	"text-indent":                true,
	"text-overflow":              true,
	"text-shadow":                true,
	"text-transform":             true,
	"top":                        true,
	"transform":                  true,
	"transform-origin":           true,
	"transition":                 true,
	"transition-property":        true,
	"transition-timing-function": true,
	"user-select":                true,
	"vertical-align":             true,
	"visibility":                 true,
	"white-space":                true,
	"width":                      true,
	"will-change":                true,
	"word-break":                 true,
	"word-spacing":               true,
	"writing-mode":               true,
}

// knownProperty reports whether strict validation accepts the property.
// Vendor-prefixed names are accepted as-is, their tables live with the
// browsers, not here.
func knownProperty(key string) bool {
	if strings.HasPrefix(key, "-") {
		return true
	}
	return physicalProperties[key] ||
		unitlessProperties[key] ||
		timeProperties[key] ||
		colorProperties[key]
}

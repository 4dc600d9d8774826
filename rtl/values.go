package rtl

import (
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// keywords which are swapped wherever they appear as a complete identifier
var keywords = map[string]string{
	"left":        "right",
	"right":       "left",
	"ltr":         "rtl",
	"rtl":         "ltr",
	"e-resize":    "w-resize",
	"w-resize":    "e-resize",
	"ne-resize":   "nw-resize",
	"nw-resize":   "ne-resize",
	"se-resize":   "sw-resize",
	"sw-resize":   "se-resize",
	"nesw-resize": "nwse-resize",
	"nwse-resize": "nesw-resize",
}

// properties whose identifiers are names, not keywords
var opaqueValues = map[string]bool{
	"animation-name": true,
	"content":        true,
	"counter-reset":  true,
	"font-family":    true,
	"grid-area":      true,
	"quotes":         true,
}

// properties with a value listing property names
var propertyLists = map[string]bool{
	"transition":          true,
	"transition-property": true,
	"will-change":         true,
}

// top, right, bottom, left shorthands
var quadProps = map[string]bool{
	"margin":         true,
	"padding":        true,
	"border-width":   true,
	"border-style":   true,
	"border-color":   true,
	"inset":          true,
	"scroll-margin":  true,
	"scroll-padding": true,
}

type token struct {
	tt   css.TokenType
	text string
}

type component []token

func tokenize(value string) []token {
	l := css.NewLexer(parse.NewInputString(value))
	var toks []token
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			return toks
		}
		toks = append(toks, token{tt: tt, text: string(data)})
	}
}

func join(toks []token) string {
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(t.text)
	}
	return sb.String()
}

func (c component) String() string {
	return join(c)
}

func (c component) single(types ...css.TokenType) bool {
	if len(c) != 1 {
		return false
	}
	for _, tt := range types {
		if c[0].tt == tt {
			return true
		}
	}
	return false
}

// layers splits tokens at top-level commas into layers, and each layer at
// top-level whitespace into components.
func layers(toks []token) [][]component {
	var all [][]component
	var layer []component
	var comp component
	depth := 0
	flush := func() {
		if len(comp) > 0 {
			layer = append(layer, comp)
			comp = nil
		}
	}
	for _, t := range toks {
		switch t.tt {
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			if depth > 0 {
				depth--
			}
		case css.WhitespaceToken, css.CommentToken:
			if depth == 0 {
				flush()
				continue
			}
		case css.CommaToken:
			if depth == 0 {
				flush()
				all = append(all, layer)
				layer = nil
				continue
			}
		}
		comp = append(comp, t)
	}
	flush()
	return append(all, layer)
}

func joinComponents(l []component) string {
	comps := make([]string, len(l))
	for i, c := range l {
		comps[i] = c.String()
	}
	return strings.Join(comps, " ")
}

func joinLayers(ls [][]component) string {
	parts := make([]string, len(ls))
	for i, l := range ls {
		parts[i] = joinComponents(l)
	}
	return strings.Join(parts, ", ")
}

// flipValue mirrors value of a (lowercase) property. If nothing has to
// change, value is returned verbatim.
func flipValue(prop, value string) string {
	if opaqueValues[prop] || strings.TrimSpace(value) == "" {
		return value
	}
	toks := tokenize(value)
	changed := flipKeywords(prop, toks)
	if strings.HasPrefix(prop, "transform") && prop != "transform-origin" {
		changed = flipTransform(toks) || changed
	}
	result := value
	if changed {
		result = join(toks)
	}
	switch {
	case quadProps[prop]:
		result = flipQuad(result)
	case prop == "border-radius":
		result = flipRadius(result)
	case prop == "box-shadow" || prop == "text-shadow":
		result = flipShadow(result)
	case prop == "background-position" || prop == "background-position-x":
		result = flipPosition(result)
	}
	return result
}

func flipKeywords(prop string, toks []token) bool {
	changed := false
	for i, t := range toks {
		if t.tt != css.IdentToken {
			continue
		}
		if kw, ok := keywords[strings.ToLower(t.text)]; ok {
			toks[i].text = kw
			changed = true
		} else if propertyLists[prop] {
			if name := FlipName(t.text); name != t.text {
				toks[i].text = name
				changed = true
			}
		}
	}
	return changed
}

func flipQuad(value string) string {
	ls := layers(tokenize(value))
	if len(ls) != 1 || len(ls[0]) != 4 {
		return value
	}
	q := ls[0]
	if q[1].String() == q[3].String() {
		return value
	}
	q[1], q[3] = q[3], q[1]
	return joinLayers(ls)
}

func flipRadius(value string) string {
	ls := layers(tokenize(value))
	if len(ls) != 1 {
		return value
	}
	var groups [][]component
	var group []component
	for _, c := range ls[0] {
		if c.single(css.DelimToken) && c[0].text == "/" {
			groups = append(groups, group)
			group = nil
			continue
		}
		// "10px/20px" arrives as one component
		if i := slashAt(c); i >= 0 {
			group = append(group, c[:i])
			groups = append(groups, group)
			group = []component{c[i+1:]}
			continue
		}
		group = append(group, c)
	}
	groups = append(groups, group)
	changed := false
	parts := make([]string, len(groups))
	for i, g := range groups {
		flipped := joinComponents(radiusCorners(g))
		if flipped != joinComponents(g) {
			changed = true
		}
		parts[i] = flipped
	}
	if !changed {
		return value
	}
	return strings.Join(parts, " / ")
}

func slashAt(c component) int {
	if len(c) < 2 {
		return -1
	}
	for i, t := range c {
		if t.tt == css.DelimToken && t.text == "/" && i > 0 && i < len(c)-1 {
			return i
		}
	}
	return -1
}

// radiusCorners mirrors corner values: top-left, top-right, bottom-right,
// bottom-left.
func radiusCorners(g []component) []component {
	switch len(g) {
	case 2:
		return []component{g[1], g[0]}
	case 3:
		return []component{g[1], g[0], g[1], g[2]}
	case 4:
		return []component{g[1], g[0], g[3], g[2]}
	}
	return g
}

func flipShadow(value string) string {
	ls := layers(tokenize(value))
	changed := false
	for _, l := range ls {
		for _, c := range l {
			if c.single(css.DimensionToken, css.NumberToken) {
				if neg := negate(c[0].text); neg != c[0].text {
					c[0].text = neg
					changed = true
				}
				break // x offset only
			}
		}
	}
	if !changed {
		return value
	}
	return joinLayers(ls)
}

func flipPosition(value string) string {
	ls := layers(tokenize(value))
	changed := false
	for _, l := range ls {
		if len(l) > 0 && l[0].single(css.PercentageToken) {
			if c := complement(l[0][0].text); c != l[0][0].text {
				l[0][0].text = c
				changed = true
			}
		}
	}
	if !changed {
		return value
	}
	return joinLayers(ls)
}

func flipTransform(toks []token) bool {
	changed := false
	depth, arg := 0, 0
	fn := ""
	for i, t := range toks {
		switch t.tt {
		case css.FunctionToken:
			if depth == 0 {
				fn = strings.ToLower(strings.TrimSuffix(t.text, "("))
				arg = 0
			}
			depth++
		case css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			if depth > 0 {
				depth--
			}
		case css.CommaToken:
			if depth == 1 {
				arg++
			}
		case css.DimensionToken, css.NumberToken, css.PercentageToken:
			if depth == 1 && negatesArg(fn, arg) {
				if neg := negate(t.text); neg != t.text {
					toks[i].text = neg
					changed = true
				}
			}
		}
	}
	return changed
}

func negatesArg(fn string, arg int) bool {
	switch fn {
	case "translate", "translatex", "translate3d", "rotate", "rotatez", "skewx", "skewy":
		return arg == 0
	case "skew":
		return arg <= 1
	}
	return false
}

// negate flips the sign of a number, dimension or percentage. Zero stays.
func negate(num string) string {
	switch {
	case strings.HasPrefix(num, "-"):
		return num[1:]
	case strings.HasPrefix(num, "+"):
		return "-" + num[1:]
	case isZero(num):
		return num
	}
	return "-" + num
}

func isZero(num string) bool {
	end := 0
	for end < len(num) && (num[end] >= '0' && num[end] <= '9' || num[end] == '.') {
		end++
	}
	f, err := strconv.ParseFloat(num[:end], 64)
	return err == nil && f == 0
}

// complement returns 100% - p for a percentage p.
func complement(pct string) string {
	f, err := strconv.ParseFloat(strings.TrimSuffix(pct, "%"), 64)
	if err != nil {
		return pct
	}
	return strconv.FormatFloat(100-f, 'f', -1, 64) + "%"
}

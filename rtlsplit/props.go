package rtlsplit

// DefaultConvert matches properties which may depend on text direction.
// Only declarations of these properties are ever moved into
// direction-scoped rules.
const DefaultConvert = `animation|animation-name` +
	`|background|background-image|background-position|background-position-x` +
	`|border|border-(left|right)(-(color|style|width))?|border-(color|style|width)` +
	`|border-radius|border-(top|bottom)-(left|right)-radius` +
	`|box-shadow|clear|cursor|direction|float|left|right` +
	`|margin|margin-(left|right)|padding|padding-(left|right)` +
	`|text-align|text-shadow|transform|transform-origin` +
	`|transition|transition-property|will-change`

// DefaultAlwaysConvert matches properties which are split even if mirroring
// leaves them unchanged. These are shorthands and keywords which may
// override a split declaration of another rule; leaving them unscoped would
// make them lose against the more specific html[dir] selectors.
const DefaultAlwaysConvert = `margin|padding|border|border-(color|style|width)|border-radius` +
	`|background|background-position|float|clear|text-align|left|right|direction`

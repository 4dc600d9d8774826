// Command cssrtl splits direction-sensitive CSS declarations into
// html[dir='ltr'] and html[dir='rtl'] scoped rules.
//
// Usage:
//
//	# Transform a stylesheet, write to stdout
//	cssrtl styles.css
//
//	# Read from stdin, write to a file
//	cat styles.css | cssrtl -o styles.rtl.css
//
//	# Configure filters from a YAML file, leaving some rules alone
//	cssrtl --config rtl.yaml --ignore '^\.no-flip' styles.css
//
//	# Transform all <style> elements of an HTML document
//	cssrtl --html index.html
//
// A configuration file may set the keys ignore, convert and alwaysConvert,
// each a regular expression.
package main

func main() {
	Execute()
}

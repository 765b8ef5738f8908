// Package parser maps file extensions to the capabilities that decode them
// into configuration trees.
//
// A Registry has two pieces of state:
//   - registered: extension -> Capability, filled once at startup (re-registering replaces)
//   - enabled: ordered subset of registered extensions
//
// Enable order is guess priority: the extension enabled first wins when an
// extension-less file name is expanded into several candidates. Only files
// whose extension is both registered and enabled can be parsed.
//
// Extensions are case-insensitive and stored without the leading dot.
//
// # Example
//
//	reg, err := parser.NewDefault()
//	_, _ = reg.Enable("yml")
//	cfg, err = reg.ParseFile("config/app.yml")
package parser

// The font subpackage provides a [Library] type to load atlas fonts in
// bulk from a resources directory and access them by name.
//
// A typical program creates a single library at startup:
//   library := font.NewLibrary()
//   _, _, err := library.ParseAllFromPath("resources/fonts")
//   if err != nil { log.Fatal(err) }
//   defaultFont := library.Default()
//
// Each *.yml definition in the directory becomes a font named after
// the file, without the extension.
package font

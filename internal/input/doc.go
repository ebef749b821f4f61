// Package input selects and reads the item document a session starts from.
//
// Exactly one source is allowed: standard input (read until a blank line or
// EOF), a file, or a literal argument. Files with a .yaml or .yml extension
// are converted to JSON first, keeping mapping order:
//
//	src, err := input.SelectSource(useStdin, file, literal)
//	if err != nil {
//	    return err // *UsageError
//	}
//	set, err := input.Load(src, input.Options{Hint: os.Stderr})
//
// Decoding errors are items.Error values of type MalformedInput.
package input

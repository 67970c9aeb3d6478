package assertion

// Check runs fn and returns the *Failure or *UsageError it raised, or nil if every assertion in
// it held. Any other panic is not an assertion outcome and is propagated.
func Check(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case *Failure:
				err = e
			case *UsageError:
				err = e
			default:
				panic(r)
			}
		}
	}()
	fn()
	return nil
}

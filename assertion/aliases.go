package assertion

// Dialect names for the predicates. Each delegates to one canonical check.

// math

func (a *Assertion) Is(expected interface{})       { a.ToBe(expected) }
func (a *Assertion) WasEvaluated()                 { a.ToHaveBeenCalled() }
func (a *Assertion) AppliedTo(args ...interface{}) { a.ToHaveBeenCalledWith(args...) }
func (a *Assertion) Evaluated(times int)           { a.ToHaveBeenCalledTimes(times) }

// narrative

func (a *Assertion) Be(expected interface{})      { a.ToBe(expected) }
func (a *Assertion) Have(name string)             { a.ToHaveProperty(name) }
func (a *Assertion) WasCalled()                   { a.ToHaveBeenCalled() }
func (a *Assertion) Received(args ...interface{}) { a.ToHaveBeenCalledWith(args...) }
func (a *Assertion) Uploaded(args ...interface{}) { a.ToHaveBeenCalledWith(args...) }
func (a *Assertion) Called(times int)             { a.ToHaveBeenCalledTimes(times) }

// imperative

func (a *Assertion) IsOk()                          { a.ToBeTruthy() }
func (a *Assertion) Matches(pattern interface{})    { a.ToMatch(pattern) }
func (a *Assertion) Triggered()                     { a.ToHaveBeenCalled() }
func (a *Assertion) CalledWith(args ...interface{}) { a.ToHaveBeenCalledWith(args...) }
func (a *Assertion) TriggeredCount(times int)       { a.ToHaveBeenCalledTimes(times) }

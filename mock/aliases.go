package mock

// Dialect names for the configuration operations. Each one is exactly the canonical operation
// listed in configAliases.

func (m *Mock) MockReturnValue(value interface{})   { m.SetReturn(value) }
func (m *Mock) MockResolvedValue(value interface{}) { m.SetDeferredReturn(value) }
func (m *Mock) MockImplementation(fn Func)          { m.SetImplementation(fn) }

func (m *Mock) Yields(value interface{})      { m.SetReturn(value) }
func (m *Mock) MapsTo(value interface{})      { m.SetReturn(value) }
func (m *Mock) ConvergesTo(value interface{}) { m.SetDeferredReturn(value) }
func (m *Mock) Derive(fn Func)                { m.SetImplementation(fn) }

func (m *Mock) RespondsWith(value interface{})    { m.SetReturn(value) }
func (m *Mock) EventuallyGives(value interface{}) { m.SetDeferredReturn(value) }
func (m *Mock) ActsLike(fn Func)                  { m.SetImplementation(fn) }

func (m *Mock) ForceReturn(value interface{}) { m.SetReturn(value) }
func (m *Mock) ResolveWith(value interface{}) { m.SetDeferredReturn(value) }
func (m *Mock) Executes(fn Func)              { m.SetImplementation(fn) }

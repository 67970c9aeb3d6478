package framework

type TestLogger interface {
	GroupStarted(name string)
	TestStarted(id TestID)
	TestFinished(id TestID, err error, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) GroupStarted(string)                        {}
func (n nullTestLogger) TestStarted(TestID)                         {}
func (n nullTestLogger) TestFinished(TestID, error, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(TestID, string)                 {}

package testutil

import "context"

// Call records one process a FakeRunner was asked to run
type Call struct {
	Name string
	Args []string
}

// FakeRunner stands in for external processes
type FakeRunner struct {
	Calls []Call

	// ExitCode and Err are returned from every call
	ExitCode int
	Err      error

	// OnRun, when set, runs before the call returns; fakes use it to leave
	// outputs behind
	OnRun func(name string, args []string)
}

func (f *FakeRunner) Run(ctx context.Context, name string, args []string) (int, error) {
	f.Calls = append(f.Calls, Call{Name: name, Args: append([]string(nil), args...)})
	if f.OnRun != nil {
		f.OnRun(name, args)
	}
	return f.ExitCode, f.Err
}

package builder

// Builder is the capability set a Director drives.
//
// Every method is expected to mutate the implementer's product under
// construction. None return a value; a step that fails should panic and the
// panic propagates to whoever called the Director.
type Builder interface {
	Start()
	Step1()
	Step2()
	Step3()
	Reset()
}

// Step names a single Builder call.
type Step int

const (
	StepStart Step = iota
	Step1
	Step2
	Step3
	StepReset
)

// String implements fmt.Stringer.
func (s Step) String() string {
	switch s {
	case StepStart:
		return "start"
	case Step1:
		return "step1"
	case Step2:
		return "step2"
	case Step3:
		return "step3"
	case StepReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Director sequences Builder calls into named recipes.
//
// It holds no state; the zero value is ready to use and a single Director may
// drive any number of builders.
type Director struct{}

// BuildTypeA runs the full recipe: Start, Step1, Step2, Step3.
func (Director) BuildTypeA(b Builder) {
	b.Start()
	b.Step1()
	b.Step2()
	b.Step3()
}

// BuildTypeB skips Step2: Start, Step1, Step3.
func (Director) BuildTypeB(b Builder) {
	b.Start()
	b.Step1()
	b.Step3()
}

// BuildTypeC calls Reset between Step2 and Step3: Start, Step2, Reset, Step3.
// The Director does not define what Reset does to the partial product.
func (Director) BuildTypeC(b Builder) {
	b.Start()
	b.Step2()
	b.Reset()
	b.Step3()
}

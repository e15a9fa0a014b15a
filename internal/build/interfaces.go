package build

//go:generate mockgen -source=interfaces.go -destination=../mock/build_environment_mock.go -package=mock

// Environment is the firmware build that consumes resolved settings as
// compile-time constants.
//
// Define registers one constant. Implementations embed the value as a C
// string literal produced by [Stringify]. Flush materializes everything
// registered so far (writes a header, prints flags, ...); calling Define
// after Flush is allowed and a later Flush includes the new definitions.
type Environment interface {
	Define(name, value string) error
	Flush() error
}

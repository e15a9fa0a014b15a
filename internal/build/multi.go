package build

import "errors"

type multiEnvironment struct {
	envs []Environment
}

// Multi returns an [Environment] that forwards every call to envs in order.
// Define stops at the first failing sink; Flush flushes every sink and
// joins their errors.
func Multi(envs ...Environment) Environment {
	return &multiEnvironment{envs: envs}
}

func (m *multiEnvironment) Define(name, value string) error {
	for _, env := range m.envs {
		if err := env.Define(name, value); err != nil {
			return err
		}
	}

	return nil
}

func (m *multiEnvironment) Flush() error {
	var errs []error
	for _, env := range m.envs {
		if err := env.Flush(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

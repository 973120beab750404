package assert

import "github.com/driftworks/kartsim/kerror"

func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(kerror.New(message, args...))
	}
}

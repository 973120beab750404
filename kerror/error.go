package kerror

import "fmt"

type KartError struct {
	Err string
}

func New(format string, args ...interface{}) *KartError {
	return &KartError{Err: fmt.Sprintf(format, args...)}
}

func (e *KartError) Error() string {
	return e.Err
}

package dispatch

// Call invokes fn and converts the result to R.
func Call[R any](fn Function, args ...any) (R, error) {
	var r R
	res, err := fn.Invoke(args...)
	if err != nil {
		return r, err
	}
	r, ok := res.(R)
	if ok {
		return r, nil
	}
	return r, ConvertError{Res: res}
}

package pure_utils

// Amazingly, the Go standard library to not provide the function 'map'
// The rational of why the Go team rejects it is explained in this wonderfull stack overflow answer.
// https://stackoverflow.com/questions/71624828/is-there-a-way-to-map-an-array-of-objects-in-golang

// Map returns a new slice with the same length as src, but with values transformed by f
func Map[T, U any](src []T, f func(T) U) []U {
	us := make([]U, len(src))
	for i := range src {
		us[i] = f(src[i])
	}
	return us
}

func MapKeyValue[KL, KR comparable, VL, VR any](in map[KL]VL, f func(k KL, v VL) (KR, VR)) map[KR]VR {
	out := make(map[KR]VR, len(in))

	for k, v := range in {
		kr, vr := f(k, v)

		out[kr] = vr
	}

	return out
}

package utils

func Map[T, U any](ts []T, f func(T) U) []U {
	us := make([]U, len(ts))
	for i, v := range ts {
		us[i] = f(v)
	}
	return us
}

func SumBy[T any](ts []T, f func(T) int64) int64 {
	var total int64
	for _, v := range ts {
		total += f(v)
	}
	return total
}

package iteru

import (
	"iter"
)

// Collect both iterator values into 2 separate slices.
func Collect2[T1, T2 any](it iter.Seq2[T1, T2]) ([]T1, []T2) {
	var values1 []T1
	var values2 []T2
	for v1, v2 := range it {
		values1 = append(values1, v1)
		values2 = append(values2, v2)
	}
	return values1, values2
}

// Values2 collects only the second value of each pair in the sequence.
func Values2[T1, T2 any](it iter.Seq2[T1, T2]) []T2 {
	var values []T2
	for _, v := range it {
		values = append(values, v)
	}
	return values
}

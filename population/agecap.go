package population

// AgeCapSchedule builds a monotone increasing per-layer age-cap function
// from a base age_gap, following spec.md §4.10's reference polynomial
// schedule: cap(0) = ageGap, cap(1) = 2*ageGap, cap(l) = l^2 * ageGap for
// l >= 2. The last layer's cap is meaningless (unenforced) by
// construction of the replacement strategy, not by this function, which
// always returns a finite number.
func AgeCapSchedule(ageGap int) func(layer int) int {
	return func(layer int) int {
		switch layer {
		case 0:
			return ageGap
		case 1:
			return 2 * ageGap
		default:
			return layer * layer * ageGap
		}
	}
}

// LinearAgeCapSchedule is an acceptable alternative per spec.md §4.10
// ("other schedules ... are acceptable if monotone and yielding
// cap(0) = age_gap"): cap(l) = (l+1) * ageGap.
func LinearAgeCapSchedule(ageGap int) func(layer int) int {
	return func(layer int) int { return (layer + 1) * ageGap }
}

// ExponentialAgeCapSchedule: cap(l) = ageGap * 2^l.
func ExponentialAgeCapSchedule(ageGap int) func(layer int) int {
	return func(layer int) int {
		cap := ageGap
		for i := 0; i < layer; i++ {
			cap *= 2
		}
		return cap
	}
}

// FibonacciAgeCapSchedule: cap(l) = ageGap * fib(l+1), fib(1)=fib(2)=1.
func FibonacciAgeCapSchedule(ageGap int) func(layer int) int {
	return func(layer int) int {
		a, b := 1, 1
		for i := 0; i < layer; i++ {
			a, b = b, a+b
		}
		return ageGap * a
	}
}

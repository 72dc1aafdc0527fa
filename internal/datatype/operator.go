package datatype

// Capability contracts. Each is implemented per concrete type; not every
// value type supports every capability (Binary and Date support none, Month
// only Incrementable).

// Summable is implemented by types whose values can be totalled with peers
// of the same concrete type.
type Summable[T any] interface {
	// Plus returns the receiver plus others as a new value.
	Plus(others ...T) (T, error)
}

// SignInvertible is implemented by types whose sign can be flipped.
type SignInvertible[T any] interface {
	Negate() T
}

// Subtractable is implemented by types supporting minuend - subtrahend.
type Subtractable[T any] interface {
	Minus(subtrahend T) (T, error)
}

// Incrementable is implemented by types stepping through a discrete sequence.
type Incrementable interface {
	Increment()
	Decrement()
}

var (
	_ Summable[Amount]             = Amount{}
	_ SignInvertible[Amount]       = Amount{}
	_ Summable[WorkingHour]        = WorkingHour{}
	_ SignInvertible[WorkingHour]  = WorkingHour{}
	_ Summable[WorkingTime]        = WorkingTime{}
	_ SignInvertible[WorkingTime]  = WorkingTime{}
	_ Summable[WorkingTimeBalance] = WorkingTimeBalance{}

	_ Subtractable[WorkingTimeBalance] = WorkingTimeBalance{}
	_ Incrementable                    = (*Month)(nil)
)

// Sum totals one or more values of the same concrete type.
// It fails with an ArithmeticError when values is empty.
func Sum[T Summable[T]](values ...T) (T, error) {
	if len(values) == 0 {
		var zero T
		return zero, newArithmeticError("sum", "there must be at least one summand")
	}
	return values[0].Plus(values[1:]...)
}

// SignChange returns v with its sign inverted.
func SignChange[T SignInvertible[T]](v T) T {
	return v.Negate()
}

// Subtract returns minuend - subtrahend.
func Subtract[T Subtractable[T]](minuend, subtrahend T) (T, error) {
	return minuend.Minus(subtrahend)
}

// SumValues totals a dynamically typed collection. All values must share
// the concrete type of the first one.
func SumValues(values []Value) (Value, error) {
	if len(values) == 0 {
		return nil, newArithmeticError("sum", "there must be at least one summand")
	}
	switch values[0].(type) {
	case Amount:
		return sumAs[Amount](values)
	case WorkingHour:
		return sumAs[WorkingHour](values)
	case WorkingTime:
		return sumAs[WorkingTime](values)
	case WorkingTimeBalance:
		return sumAs[WorkingTimeBalance](values)
	default:
		return nil, newArithmeticError("sum", "%s values cannot be summed", values[0].Kind())
	}
}

func sumAs[T interface {
	Value
	Summable[T]
}](values []Value) (Value, error) {
	typed := make([]T, len(values))
	for i, v := range values {
		t, ok := v.(T)
		if !ok {
			return nil, newArithmeticError("sum", "all summands must be of kind %s, got %s at index %d",
				values[0].Kind(), v.Kind(), i)
		}
		typed[i] = t
	}
	result, err := Sum(typed...)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// NegateValue inverts the sign of a dynamically typed value.
func NegateValue(v Value) (Value, error) {
	switch val := v.(type) {
	case Amount:
		return SignChange(val), nil
	case WorkingHour:
		return SignChange(val), nil
	case WorkingTime:
		return SignChange(val), nil
	default:
		return nil, newArithmeticError("negate", "%s values do not support sign change", v.Kind())
	}
}

// SubtractValues computes minuend - subtrahend for dynamically typed values.
// Both operands must be of the same concrete type.
func SubtractValues(minuend, subtrahend Value) (Value, error) {
	switch m := minuend.(type) {
	case WorkingTimeBalance:
		s, ok := subtrahend.(WorkingTimeBalance)
		if !ok {
			return nil, newArithmeticError("subtract", "subtrahend must be of kind %s, got %s",
				minuend.Kind(), subtrahend.Kind())
		}
		result, err := Subtract(m, s)
		if err != nil {
			return nil, err
		}
		return result, nil
	default:
		return nil, newArithmeticError("subtract", "%s values do not support subtraction", minuend.Kind())
	}
}

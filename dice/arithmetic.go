package dice

import (
	"fmt"

	"manydice/domain/randvar"
)

// Number constrains the element types the arithmetic combinators accept. A
// single generic facade replaces per-type operator overloads.
type Number interface {
	~int | ~int32 | ~int64 | ~float64
}

// Add returns a + b, preserving any dependence between the operands.
func Add[N Number](a, b randvar.Variable[N]) randvar.Variable[N] {
	return randvar.Combine(a, b, binaryName(a, "+", b), func(x, y N) N { return x + y })
}

// Sub returns a - b.
func Sub[N Number](a, b randvar.Variable[N]) randvar.Variable[N] {
	return randvar.Combine(a, b, binaryName(a, "-", b), func(x, y N) N { return x - y })
}

// Mul returns a * b.
func Mul[N Number](a, b randvar.Variable[N]) randvar.Variable[N] {
	return randvar.Combine(a, b, binaryName(a, "*", b), func(x, y N) N { return x * y })
}

// Neg returns -a.
func Neg[N Number](a randvar.Variable[N]) randvar.Variable[N] {
	return randvar.Map(a, "-"+a.Name(), func(x N) N { return -x })
}

// AddConst returns a + c.
func AddConst[N Number](a randvar.Variable[N], c N) randvar.Variable[N] {
	return randvar.Map(a, fmt.Sprintf("%s + %v", a.Name(), c), func(x N) N { return x + c })
}

// Scale returns a * c.
func Scale[N Number](a randvar.Variable[N], c N) randvar.Variable[N] {
	return randvar.Map(a, fmt.Sprintf("%s * %v", a.Name(), c), func(x N) N { return x * c })
}

// Sum folds any number of variables into their total. At least one variable
// is required.
func Sum[N Number](vs ...randvar.Variable[N]) (randvar.Variable[N], error) {
	if len(vs) == 0 {
		return nil, fmt.Errorf("sum requires at least one variable")
	}
	total := vs[0]
	for _, v := range vs[1:] {
		total = Add(total, v)
	}
	return total, nil
}

// GreaterThan returns the boolean variable a > b.
func GreaterThan[N Number](a, b randvar.Variable[N]) randvar.Variable[bool] {
	return randvar.Combine(a, b, binaryName(a, ">", b), func(x, y N) bool { return x > y })
}

// LessThan returns the boolean variable a < b.
func LessThan[N Number](a, b randvar.Variable[N]) randvar.Variable[bool] {
	return randvar.Combine(a, b, binaryName(a, "<", b), func(x, y N) bool { return x < y })
}

// EqualTo returns the boolean variable a == b.
func EqualTo[N Number](a, b randvar.Variable[N]) randvar.Variable[bool] {
	return randvar.Combine(a, b, binaryName(a, "==", b), func(x, y N) bool { return x == y })
}

func binaryName(a randvar.AnyVariable, op string, b randvar.AnyVariable) string {
	return fmt.Sprintf("%s %s %s", a.Name(), op, b.Name())
}

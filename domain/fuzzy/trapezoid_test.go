package fuzzy

import (
	"math"
	"testing"

	"goamb/domain/core"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNew_ValidatesOrdering(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d float64
		wantErr    bool
	}{
		{"ascending", 1, 2, 3, 4, false},
		{"crisp", 5, 5, 5, 5, false},
		{"degenerate wings", 1, 1, 3, 3, false},
		{"b before a", 2, 1, 3, 4, true},
		{"d before c", 1, 2, 4, 3, true},
		{"nan boundary", math.NaN(), 1, 2, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.a, tt.b, tt.c, tt.d)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("New(%v, %v, %v, %v) expected error", tt.a, tt.b, tt.c, tt.d)
				}
				if !core.IsShapeError(err) {
					t.Errorf("expected shape error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%v, %v, %v, %v) unexpected error: %v", tt.a, tt.b, tt.c, tt.d, err)
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	tra := MustNew(1, 2, 3, 4)

	if lo, hi := tra.Support(); lo != 1 || hi != 4 {
		t.Errorf("Support() = (%v, %v), want (1, 4)", lo, hi)
	}
	if lo, hi := tra.Core(); lo != 2 || hi != 3 {
		t.Errorf("Core() = (%v, %v), want (2, 3)", lo, hi)
	}
	if lo, hi := tra.AlphaInterval(); !almostEqual(lo, 5.0/6) || !almostEqual(hi, 10.0/6) {
		t.Errorf("AlphaInterval() = (%v, %v), want (0.8333, 1.6667)", lo, hi)
	}
	if lo, hi := tra.ExpectedInterval(); lo != 1.5 || hi != 3.5 {
		t.Errorf("ExpectedInterval() = (%v, %v), want (1.5, 3.5)", lo, hi)
	}
	if got := tra.ExpectedValue(); got != 2.5 {
		t.Errorf("ExpectedValue() = %v, want 2.5", got)
	}
	if got := tra.Value(); !almostEqual(got, 2.5) {
		t.Errorf("Value() = %v, want 2.5", got)
	}
	if got := tra.Width(); got != 2 {
		t.Errorf("Width() = %v, want 2", got)
	}
}

func TestAmbiguity(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d float64
		want       float64
	}{
		{"unit trapezoid", 1, 2, 3, 4, 5.0 / 6},
		{"sum result", 3, 5, 7, 9, 5.0 / 3},
		{"difference result", -1, 1, 3, 5, 5.0 / 3},
		{"product result", -4, 0, 6, 12, 14.0 / 3},
		{"quotient result", 0.2, 0.5, 1, 2, 0.25 + 1.3/6},
		{"crisp", 7, 7, 7, 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustNew(tt.a, tt.b, tt.c, tt.d).Ambiguity()
			if !almostEqual(got, tt.want) {
				t.Errorf("Ambiguity() = %v, want %v", got, tt.want)
			}
			if got < 0 {
				t.Errorf("Ambiguity() = %v, must be non-negative", got)
			}
		})
	}
}

func TestAdd(t *testing.T) {
	got, err := MustNew(1, 2, 3, 4).Add(MustNew(2, 3, 4, 5))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got != MustNew(3, 5, 7, 9) {
		t.Errorf("Add = %v, want Tra(3, 5, 7, 9)", got)
	}
	if !almostEqual(got.Ambiguity(), 5.0/3) {
		t.Errorf("Ambiguity of sum = %v, want 1.6667", got.Ambiguity())
	}
}

func TestAdd_Commutative(t *testing.T) {
	pairs := [][2]Trapezoid{
		{MustNew(1, 2, 3, 4), MustNew(2, 3, 4, 5)},
		{MustNew(-5, -1, 0, 2), MustNew(0.5, 0.5, 0.5, 0.5)},
		{MustNew(-3, -2, -1, 0), MustNew(-1, 0, 2, 3)},
	}
	for _, pair := range pairs {
		xy, err1 := pair[0].Add(pair[1])
		yx, err2 := pair[1].Add(pair[0])
		if err1 != nil || err2 != nil {
			t.Fatalf("Add errors: %v, %v", err1, err2)
		}
		if xy != yx {
			t.Errorf("%v + %v: got %v and %v", pair[0], pair[1], xy, yx)
		}
	}
}

func TestAdd_RejectsNaNResult(t *testing.T) {
	_, err := Crisp(math.Inf(1)).Add(Crisp(math.Inf(-1)))
	if !core.IsShapeError(err) {
		t.Fatalf("Inf + -Inf should fail revalidation, got %v", err)
	}
}

func TestSub(t *testing.T) {
	got, err := MustNew(3, 4, 5, 6).Sub(MustNew(1, 2, 3, 4))
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if got != MustNew(-1, 1, 3, 5) {
		t.Errorf("Sub = %v, want Tra(-1, 1, 3, 5)", got)
	}
	if !almostEqual(got.Ambiguity(), 5.0/3) {
		t.Errorf("Ambiguity of difference = %v, want 1.6667", got.Ambiguity())
	}
}

func TestNeg(t *testing.T) {
	tra := MustNew(1, 2, 3, 4)
	if got := tra.Neg(); got != MustNew(-4, -3, -2, -1) {
		t.Errorf("Neg = %v, want Tra(-4, -3, -2, -1)", got)
	}

	// X + (-X) is symmetric about zero with value exactly zero. Fuzzy
	// subtraction does not cancel spread, so only crisp numbers collapse
	// all the way to Tra(0, 0, 0, 0).
	sum, err := tra.Add(tra.Neg())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	a, b, c, d := sum.Bounds()
	if a != -d || b != -c {
		t.Errorf("X + (-X) = %v is not symmetric about zero", sum)
	}
	if !almostEqual(sum.Value(), 0) {
		t.Errorf("Value of X + (-X) = %v, want 0", sum.Value())
	}

	crisp := Crisp(3.5)
	sum, err = crisp.Add(crisp.Neg())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sum != Crisp(0) {
		t.Errorf("crisp X + (-X) = %v, want Tra(0, 0, 0, 0)", sum)
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		x, y Trapezoid
		want Trapezoid
	}{
		{"positive operands", MustNew(1, 2, 3, 4), MustNew(2, 3, 4, 5), MustNew(2, 6, 12, 20)},
		{"straddling operand", MustNew(1, 2, 3, 4), MustNew(-1, 0, 2, 3), MustNew(-4, 0, 6, 12)},
		{"both negative", MustNew(-4, -3, -2, -1), MustNew(-4, -3, -2, -1), MustNew(1, 4, 9, 16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.x.Mul(tt.y)
			if err != nil {
				t.Fatalf("Mul: %v", err)
			}
			if got != tt.want {
				t.Errorf("Mul = %v, want %v", got, tt.want)
			}
			a, b, c, d := got.Bounds()
			if !(a <= b && b <= c && c <= d) {
				t.Errorf("Mul result %v violates ordering", got)
			}
		})
	}
}

func TestDiv(t *testing.T) {
	got, err := MustNew(1, 2, 3, 4).Div(MustNew(2, 3, 4, 5))
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	want := MustNew(0.2, 0.5, 1, 2)
	a1, b1, c1, d1 := got.Bounds()
	a2, b2, c2, d2 := want.Bounds()
	if !almostEqual(a1, a2) || !almostEqual(b1, b2) || !almostEqual(c1, c2) || !almostEqual(d1, d2) {
		t.Errorf("Div = %v, want %v", got, want)
	}
	if !almostEqual(got.Ambiguity(), 0.25+1.3/6) {
		t.Errorf("Ambiguity of quotient = %v, want 0.4667", got.Ambiguity())
	}
}

func TestDiv_SupportContainsZero(t *testing.T) {
	divisors := []Trapezoid{
		MustNew(-1, 0, 1, 2),
		MustNew(0, 1, 2, 3),  // zero on the left edge
		MustNew(-3, -2, -1, 0), // zero on the right edge
	}
	for _, divisor := range divisors {
		_, err := MustNew(1, 2, 3, 4).Div(divisor)
		if err == nil {
			t.Errorf("Div by %v expected error", divisor)
			continue
		}
		if !core.IsArithmeticError(err) {
			t.Errorf("Div by %v: expected arithmetic error, got %v", divisor, err)
		}
	}
}

func TestMembershipAt(t *testing.T) {
	tra := MustNew(1, 2, 3, 4)
	tests := []struct {
		x    float64
		want float64
	}{
		{0.5, 0},
		{1, 0},
		{1.5, 0.5},
		{2, 1},
		{2.5, 1},
		{3, 1},
		{3.5, 0.5},
		{4, 0},
		{4.5, 0},
	}
	for _, tt := range tests {
		if got := tra.MembershipAt(tt.x); !almostEqual(got, tt.want) {
			t.Errorf("MembershipAt(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}

	// Crisp numbers have a single fully-true point.
	if got := Crisp(2).MembershipAt(2); got != 1 {
		t.Errorf("crisp MembershipAt(2) = %v, want 1", got)
	}
	if got := Crisp(2).MembershipAt(2.1); got != 0 {
		t.Errorf("crisp MembershipAt(2.1) = %v, want 0", got)
	}
}

func TestSignClassification(t *testing.T) {
	tests := []struct {
		tra       Trapezoid
		positive  bool
		negative  bool
		straddles bool
	}{
		{MustNew(0, 1, 2, 3), true, false, false},
		{MustNew(-3, -2, -1, 0), false, true, false},
		{MustNew(-2, 1, 2, 3), false, false, true},
		{Crisp(0), true, true, false},
	}
	for _, tt := range tests {
		if got := tt.tra.IsPositive(); got != tt.positive {
			t.Errorf("%v IsPositive = %v, want %v", tt.tra, got, tt.positive)
		}
		if got := tt.tra.IsNegative(); got != tt.negative {
			t.Errorf("%v IsNegative = %v, want %v", tt.tra, got, tt.negative)
		}
		if got := tt.tra.StraddlesZero(); got != tt.straddles {
			t.Errorf("%v StraddlesZero = %v, want %v", tt.tra, got, tt.straddles)
		}
	}
}

func TestScale(t *testing.T) {
	tra := MustNew(1, 2, 3, 4)
	if got := tra.Scale(2); got != MustNew(2, 4, 6, 8) {
		t.Errorf("Scale(2) = %v, want Tra(2, 4, 6, 8)", got)
	}
	if got := tra.Scale(-1); got != tra.Neg() {
		t.Errorf("Scale(-1) = %v, want %v", got, tra.Neg())
	}
	if got := tra.Scale(0); got != Crisp(0) {
		t.Errorf("Scale(0) = %v, want Tra(0, 0, 0, 0)", got)
	}
}

func TestString(t *testing.T) {
	if got := MustNew(1, 2.5, 3, 4).String(); got != "Tra(1, 2.5, 3, 4)" {
		t.Errorf("String() = %q", got)
	}
}
